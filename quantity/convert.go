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
	"github.com/spatialmodel/units/storage"
	"github.com/spatialmodel/units/tag"
	"github.com/spatialmodel/units/unit"
)

// IntoStandardUnit returns the value of q, which is held in the base unit
// of its catalog, expressed in u. u must belong to the catalog for T; any
// other pairing does not compile.
func IntoStandardUnit[S storage.Kind, T tag.Dim](q Quantity[S, T], u unit.Standard[T]) float64 {
	return unit.DisplayRepr(u, storage.ToDisplay(q.v))
}

// FromStandardUnit returns a quantity holding display, expressed in u,
// converted to the base unit of u's catalog. Conversion to an integer
// storage kind truncates toward zero.
func FromStandardUnit[S storage.Number, T tag.Dim](display float64, u unit.Standard[T]) Quantity[S, T] {
	return Quantity[S, T]{v: storage.FromDisplay[S](unit.BaseRepr(u, display))}
}
