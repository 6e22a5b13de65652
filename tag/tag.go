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

// Package tag holds zero-size marker types that attach a physical
// dimension to a type. A quantity.Quantity carries one of these as a type
// parameter, so two quantities with different tags are different types
// and cannot be added together.
//
// Derived dimensions are built from the combinators Mul, Div, Inv, Square
// and Cube. Two different marker types can describe the same vector, for
// example Div[Mul[Length, Time], Time] and Length; quantity.Rebind moves a
// value between such types. Products are not commutative at the type
// level either: Mul[Length, Time] and Mul[Time, Length] are different
// types, so a sum of commuted products rebinds one operand first:
//
//	lt := quantity.Mul(l, t) // Quantity[S, Mul[Length, Time]]
//	tl := quantity.Mul(t, l) // Quantity[S, Mul[Time, Length]]
//	sum := quantity.Add(lt, quantity.Rebind[tag.Mul[tag.Length, tag.Time]](tl))
package tag

import "github.com/spatialmodel/units/dimension"

// Dim is implemented by every dimension marker.
type Dim interface {
	Dims() dimension.Vector
}

// Of returns the dimension vector of marker type T.
func Of[T Dim]() dimension.Vector {
	var t T
	return t.Dims()
}

type (
	// Dimensionless tags a pure number.
	Dimensionless struct{}
	// Time tags a duration.
	Time struct{}
	// Length tags a distance.
	Length struct{}
	// Mass tags a mass.
	Mass struct{}
	// ElectricCurrent tags an electric current.
	ElectricCurrent struct{}
	// Temperature tags a thermodynamic temperature.
	Temperature struct{}
	// Amount tags an amount of substance.
	Amount struct{}
	// LuminousIntensity tags a luminous intensity.
	LuminousIntensity struct{}
)

func (Dimensionless) Dims() dimension.Vector     { return dimension.Dimensionless }
func (Time) Dims() dimension.Vector              { return dimension.Time }
func (Length) Dims() dimension.Vector            { return dimension.Length }
func (Mass) Dims() dimension.Vector              { return dimension.Mass }
func (ElectricCurrent) Dims() dimension.Vector   { return dimension.ElectricCurrent }
func (Temperature) Dims() dimension.Vector       { return dimension.Temperature }
func (Amount) Dims() dimension.Vector            { return dimension.Amount }
func (LuminousIntensity) Dims() dimension.Vector { return dimension.LuminousIntensity }

// Mul tags the product of an A and a B.
type Mul[A, B Dim] struct{}

// Dims returns Of[A]() + Of[B]().
func (Mul[A, B]) Dims() dimension.Vector { return Of[A]().Add(Of[B]()) }

// Div tags the quotient of an A by a B.
type Div[A, B Dim] struct{}

// Dims returns Of[A]() - Of[B]().
func (Div[A, B]) Dims() dimension.Vector { return Of[A]().Sub(Of[B]()) }

// Inv tags the reciprocal of an A.
type Inv[A Dim] struct{}

func (Inv[A]) Dims() dimension.Vector { return Of[A]().Neg() }

// Square tags an A raised to the second power.
type Square[A Dim] struct{}

func (Square[A]) Dims() dimension.Vector { return Of[A]().Mul(2) }

// Cube tags an A raised to the third power.
type Cube[A Dim] struct{}

func (Cube[A]) Dims() dimension.Vector { return Of[A]().Mul(3) }

// Common derived dimensions.
type (
	Frequency    = Inv[Time]
	Area         = Square[Length]
	Volume       = Cube[Length]
	Velocity     = Div[Length, Time]
	Acceleration = Div[Velocity, Time]
	Force        = Mul[Mass, Acceleration]
	Energy       = Mul[Force, Length]
	Power        = Div[Energy, Time]
	Charge       = Mul[ElectricCurrent, Time]
	Density      = Div[Mass, Volume]
)
