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

// Package siunit converts between typed quantities and the dynamically
// dimensioned SI values of github.com/ctessum/unit.
//
// A quantity holds its value in the base unit of its catalog (nanoseconds,
// nanometers, milligrams, picoamperes); a *unit.Unit holds its value in
// coherent SI units (seconds, meters, kilograms, amperes). The scale
// between the two follows from the quantity's dimension vector.
package siunit

import (
	"errors"
	"fmt"
	"math"

	"github.com/ctessum/unit"

	"github.com/spatialmodel/units/dimension"
	"github.com/spatialmodel/units/quantity"
	"github.com/spatialmodel/units/storage"
	"github.com/spatialmodel/units/tag"
)

// AmountDim is the amount-of-substance dimension, which
// github.com/ctessum/unit does not define itself.
var AmountDim = unit.NewDimension("mole")

var (
	// ErrDimension is returned when a *unit.Unit does not have the
	// dimensions of the requested quantity.
	ErrDimension = errors.New("siunit: wrong dimensions")

	// ErrUnsupported is returned for a dimension that has no place in a
	// dimension.Vector, such as angle.
	ErrUnsupported = errors.New("siunit: unsupported dimension")
)

// baseScale is the SI value of one catalog base unit, in the order of
// dimension.Vector.Components.
var baseScale = [dimension.NumBase]float64{
	1e-9,  // nanosecond
	1e-9,  // nanometer
	1e-6,  // milligram
	1e-12, // picoampere
	1, 1, 1,
}

var siDims = [dimension.NumBase]unit.Dimension{
	unit.TimeDim,
	unit.LengthDim,
	unit.MassDim,
	unit.CurrentDim,
	unit.TemperatureDim,
	AmountDim,
	unit.LuminousIntensityDim,
}

// Scale returns the SI value of one base unit of a quantity with
// dimension v. For example, the scale of velocity (nanometers per
// nanosecond) is 1.
func Scale(v dimension.Vector) float64 {
	s := 1.0
	for i, e := range v.Components() {
		if e != 0 {
			s *= math.Pow(baseScale[i], float64(e))
		}
	}
	return s
}

// Dimensions returns v as a github.com/ctessum/unit dimension map.
// Dimensions with a zero exponent are omitted.
func Dimensions(v dimension.Vector) unit.Dimensions {
	d := make(unit.Dimensions)
	for i, e := range v.Components() {
		if e != 0 {
			d[siDims[i]] = e
		}
	}
	return d
}

// Vector returns d as a dimension vector. It returns ErrUnsupported if d
// has a non-zero power of a dimension outside the seven base dimensions.
func Vector(d unit.Dimensions) (dimension.Vector, error) {
	var c [dimension.NumBase]int
	for dim, e := range d {
		if e == 0 {
			continue
		}
		i := index(dim)
		if i < 0 {
			return dimension.Vector{}, fmt.Errorf("%w: %s^%d", ErrUnsupported, dim, e)
		}
		c[i] = e
	}
	return dimension.FromComponents(c), nil
}

func index(d unit.Dimension) int {
	for i, sd := range siDims {
		if sd == d {
			return i
		}
	}
	return -1
}

// ToSI returns q as a value in coherent SI units.
func ToSI[S storage.Kind, T tag.Dim](q quantity.Quantity[S, T]) *unit.Unit {
	v := q.Dims()
	return unit.New(storage.ToDisplay(q.Value())*Scale(v), Dimensions(v))
}

// FromSI returns u as a quantity tagged T. It returns ErrDimension if the
// dimensions of u are not those of T. Conversion to an integer storage
// kind truncates toward zero.
func FromSI[T tag.Dim, S storage.Number](u *unit.Unit) (quantity.Quantity[S, T], error) {
	v := tag.Of[T]()
	if err := u.Check(Dimensions(v)); err != nil {
		return quantity.Quantity[S, T]{}, fmt.Errorf("%w: %v", ErrDimension, err)
	}
	return quantity.New[T](storage.FromDisplay[S](u.Value() / Scale(v))), nil
}
