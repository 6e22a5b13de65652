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
	"cmp"

	"github.com/spatialmodel/units/storage"
	"github.com/spatialmodel/units/tag"
	"gonum.org/v1/gonum/floats"
)

// Add returns a + b.
func Add[S storage.Number, T tag.Dim](a, b Quantity[S, T]) Quantity[S, T] {
	return Quantity[S, T]{v: a.v + b.v}
}

// Sub returns a - b.
func Sub[S storage.Number, T tag.Dim](a, b Quantity[S, T]) Quantity[S, T] {
	return Quantity[S, T]{v: a.v - b.v}
}

// Mul returns a × b, whose dimension is the sum of A and B.
func Mul[S storage.Number, A, B tag.Dim](a Quantity[S, A], b Quantity[S, B]) Quantity[S, tag.Mul[A, B]] {
	return Quantity[S, tag.Mul[A, B]]{v: a.v * b.v}
}

// Div returns a ÷ b, whose dimension is A minus B.
func Div[S storage.Number, A, B tag.Dim](a Quantity[S, A], b Quantity[S, B]) Quantity[S, tag.Div[A, B]] {
	return Quantity[S, tag.Div[A, B]]{v: a.v / b.v}
}

// Scale returns a × k for a dimensionless scalar k.
func Scale[S storage.Number, T tag.Dim](a Quantity[S, T], k S) Quantity[S, T] {
	return Quantity[S, T]{v: a.v * k}
}

// DivScalar returns a ÷ k for a dimensionless scalar k.
func DivScalar[S storage.Number, T tag.Dim](a Quantity[S, T], k S) Quantity[S, T] {
	return Quantity[S, T]{v: a.v / k}
}

// Neg returns -a.
func Neg[S storage.Number, T tag.Dim](a Quantity[S, T]) Quantity[S, T] {
	return Quantity[S, T]{v: -a.v}
}

// AddAssign sets *a to *a + b.
func AddAssign[S storage.Number, T tag.Dim](a *Quantity[S, T], b Quantity[S, T]) {
	a.v += b.v
}

// SubAssign sets *a to *a - b.
func SubAssign[S storage.Number, T tag.Dim](a *Quantity[S, T], b Quantity[S, T]) {
	a.v -= b.v
}

// MulAssign sets *a to *a × b. b must be dimensionless so that the
// dimension of *a does not change.
func MulAssign[S storage.Number, T tag.Dim](a *Quantity[S, T], b Quantity[S, tag.Dimensionless]) {
	a.v *= b.v
}

// DivAssign sets *a to *a ÷ b. b must be dimensionless so that the
// dimension of *a does not change.
func DivAssign[S storage.Number, T tag.Dim](a *Quantity[S, T], b Quantity[S, tag.Dimensionless]) {
	a.v /= b.v
}

// MulAssignScalar sets *a to *a × k.
func MulAssignScalar[S storage.Number, T tag.Dim](a *Quantity[S, T], k S) {
	a.v *= k
}

// DivAssignScalar sets *a to *a ÷ k.
func DivAssignScalar[S storage.Number, T tag.Dim](a *Quantity[S, T], k S) {
	a.v /= k
}

// Sum returns the sum of qs, or zero if qs is empty.
func Sum[S storage.Number, T tag.Dim](qs ...Quantity[S, T]) Quantity[S, T] {
	var s Quantity[S, T]
	for _, q := range qs {
		AddAssign(&s, q)
	}
	return s
}

// Compare returns -1, 0 or +1 depending on whether a is less than, equal
// to or greater than b. NaN sorts before every other value.
func Compare[S storage.Number, T tag.Dim](a, b Quantity[S, T]) int {
	return cmp.Compare(a.v, b.v)
}

// ApproxEqual reports whether a and b are equal within the absolute or
// relative tolerance tol.
func ApproxEqual[S storage.Number, T tag.Dim](a, b Quantity[S, T], tol float64) bool {
	return floats.EqualWithinAbsOrRel(storage.ToDisplay(a.v), storage.ToDisplay(b.v), tol, tol)
}
