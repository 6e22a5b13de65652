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

// Mass is a unit of mass. The base unit is Milligram.
type Mass int

// Ton is the US short ton of 2000 pounds; Tonne is the metric ton.
const (
	Milligram Mass = iota
	Gram
	Kilogram
	Tonne
	Ounce
	Pound
	Ton
	EarthMass
	SolarMass
	numMass
)

var massNames = []string{
	Milligram: "milligram",
	Gram:      "gram",
	Kilogram:  "kilogram",
	Tonne:     "tonne",
	Ounce:     "ounce",
	Pound:     "pound",
	Ton:       "ton",
	EarthMass: "earthmass",
	SolarMass: "solarmass",
}

var massFactors = sync.OnceValue(func() [numMass]float64 {
	var f [numMass]float64
	f[Milligram] = 1
	f[Gram] = 1000 * f[Milligram]
	f[Kilogram] = 1000 * f[Gram]
	f[Tonne] = 1000 * f[Kilogram]
	f[Ounce] = 28.3495 * f[Gram]
	f[Pound] = 453.59237 * f[Gram]
	f[Ton] = 2000 * f[Pound]
	f[EarthMass] = 5.9722e+24 * f[Kilogram]
	f[SolarMass] = 1.989e+30 * f[Kilogram]
	return f
})

// MassUnits returns every Mass variant. The metric units come first,
// finest first, followed by the imperial and astronomical units.
func MassUnits() []Mass {
	u := make([]Mass, numMass)
	for i := range u {
		u[i] = Mass(i)
	}
	return u
}

// AmountOfBase returns the number of milligrams in u. It panics if u is
// not a valid variant.
func (u Mass) AmountOfBase() float64 { return massFactors()[u] }

func (Mass) Dims() dimension.Vector { return dimension.Mass }

func (Mass) Tag() tag.Mass { return tag.Mass{} }

// BaseUnit returns Milligram.
func (Mass) BaseUnit() Mass { return Milligram }

// Valid reports whether u is one of the declared variants.
func (u Mass) Valid() bool { return u >= 0 && u < numMass }

func (u Mass) String() string { return enumString("Mass", massNames, int(u)) }
