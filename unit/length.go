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

package unit

import (
	"sync"

	"github.com/spatialmodel/units/dimension"
	"github.com/spatialmodel/units/tag"
)

// Length is a unit of distance. The base unit is Nanometer.
type Length int

const (
	Nanometer Length = iota
	Micrometer
	Millimeter
	Centimeter
	Decimeter
	Meter
	Kilometer
	AstronomicalUnit
	LightYear
	numLength
)

var lengthNames = []string{
	Nanometer:        "nanometer",
	Micrometer:       "micrometer",
	Millimeter:       "millimeter",
	Centimeter:       "centimeter",
	Decimeter:        "decimeter",
	Meter:            "meter",
	Kilometer:        "kilometer",
	AstronomicalUnit: "au",
	LightYear:        "lightyear",
}

var lengthFactors = sync.OnceValue(func() [numLength]float64 {
	var f [numLength]float64
	f[Nanometer] = 1
	f[Micrometer] = 1000 * f[Nanometer]
	f[Millimeter] = 1000 * f[Micrometer]
	f[Centimeter] = 10 * f[Millimeter]
	f[Decimeter] = 100 * f[Millimeter]
	f[Meter] = 1000 * f[Millimeter]
	f[Kilometer] = 1000 * f[Meter]
	f[AstronomicalUnit] = 1.496e+11 * f[Meter]
	f[LightYear] = 9.461e+15 * f[Meter]
	return f
})

// LengthUnits returns every Length variant, finest first.
func LengthUnits() []Length {
	u := make([]Length, numLength)
	for i := range u {
		u[i] = Length(i)
	}
	return u
}

// AmountOfBase returns the number of nanometers in u. It panics if u is
// not a valid variant.
func (u Length) AmountOfBase() float64 { return lengthFactors()[u] }

func (Length) Dims() dimension.Vector { return dimension.Length }

func (Length) Tag() tag.Length { return tag.Length{} }

// BaseUnit returns Nanometer.
func (Length) BaseUnit() Length { return Nanometer }

// Valid reports whether u is one of the declared variants.
func (u Length) Valid() bool { return u >= 0 && u < numLength }

func (u Length) String() string { return enumString("Length", lengthNames, int(u)) }
