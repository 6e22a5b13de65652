/*
Copyright © 2021 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

package quantity

import (
	"errors"
	"fmt"

	"github.com/spatialmodel/units/storage"
	"github.com/spatialmodel/units/tag"
)

// ErrDimensionMismatch is returned by TryRebind when the source and target
// tags describe different dimensions.
var ErrDimensionMismatch = errors.New("quantity: dimension mismatch")

// Rebind moves q to the tag To, which must describe the same dimension as
// From but may be a different type, for example
//
//	ab := quantity.Mul(a, b)                          // tag.Mul[A, B]
//	a2 := quantity.Rebind[A](quantity.Div(ab, b))     // back to A
//
// Rebind panics if the dimensions differ. The check runs when the program
// runs; the dimcheck analyzer reports the same mismatch ahead of time
// whenever both tags are built from the markers in package tag.
func Rebind[To tag.Dim, S storage.Kind, From tag.Dim](q Quantity[S, From]) Quantity[S, To] {
	r, err := TryRebind[To](q)
	if err != nil {
		panic(err)
	}
	return r
}

// TryRebind is like Rebind but returns ErrDimensionMismatch instead of
// panicking.
func TryRebind[To tag.Dim, S storage.Kind, From tag.Dim](q Quantity[S, From]) (Quantity[S, To], error) {
	from, to := tag.Of[From](), tag.Of[To]()
	if from != to {
		return Quantity[S, To]{}, fmt.Errorf("%w: cannot rebind [%s] to [%s]", ErrDimensionMismatch, from, to)
	}
	return Quantity[S, To]{v: q.v}, nil
}
