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

// Package quantity binds numeric values to physical dimensions.
//
// A Quantity[S, T] holds a value of storage kind S tagged with the
// dimension marker T. The tag exists only in the type: Quantity values are
// the same size as S. Adding or subtracting quantities requires identical
// tags, which the compiler enforces, while multiplying or dividing them
// derives the result tag:
//
//	d := quantity.New[tag.Length](120.0)
//	t := quantity.New[tag.Time](60.0)
//	v := quantity.Div(d, t) // Quantity[float64, tag.Div[tag.Length, tag.Time]]
//
// Arithmetic on the stored values is plain Go arithmetic on S: integer
// overflow wraps, integer division by zero panics, and floating-point
// operations may round or produce infinities and NaNs. None of these are
// intercepted.
//
// Quantities backed by a storage.NonZero or by one of the 128-bit kinds
// can be created, read and converted with IntoStandardUnit, but the
// arithmetic functions accept only storage.Number kinds.
package quantity

import (
	"fmt"

	"github.com/spatialmodel/units/dimension"
	"github.com/spatialmodel/units/storage"
	"github.com/spatialmodel/units/tag"
)

// Quantity is a value of storage kind S with dimension T.
type Quantity[S storage.Kind, T tag.Dim] struct {
	v S
}

// New returns v tagged with dimension T.
func New[T tag.Dim, S storage.Kind](v S) Quantity[S, T] {
	return Quantity[S, T]{v: v}
}

// Value returns the stored value.
func (q Quantity[S, T]) Value() S { return q.v }

// ValueMut returns a pointer to the stored value. Writing through it
// changes the magnitude but never the dimension.
func (q *Quantity[S, T]) ValueMut() *S { return &q.v }

// IntoInner returns the stored value, dropping the dimension.
func (q Quantity[S, T]) IntoInner() S { return q.v }

// Dims returns the dimension vector of T.
func (q Quantity[S, T]) Dims() dimension.Vector { return tag.Of[T]() }

func (q Quantity[S, T]) String() string {
	return fmt.Sprintf("%v [%s]", q.v, q.Dims())
}
