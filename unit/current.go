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

// ElectricCurrent is a unit of electric current. The base unit is
// Picoampere.
type ElectricCurrent int

const (
	Picoampere ElectricCurrent = iota
	Nanoampere
	Microampere
	Milliampere
	Ampere
	numElectricCurrent
)

var currentNames = []string{
	Picoampere:  "picoampere",
	Nanoampere:  "nanoampere",
	Microampere: "microampere",
	Milliampere: "milliampere",
	Ampere:      "ampere",
}

var currentFactors = sync.OnceValue(func() [numElectricCurrent]float64 {
	var f [numElectricCurrent]float64
	f[Picoampere] = 1
	f[Nanoampere] = 1000 * f[Picoampere]
	f[Microampere] = 1000 * f[Nanoampere]
	f[Milliampere] = 1000 * f[Microampere]
	f[Ampere] = 1000 * f[Milliampere]
	return f
})

// ElectricCurrentUnits returns every ElectricCurrent variant, finest first.
func ElectricCurrentUnits() []ElectricCurrent {
	u := make([]ElectricCurrent, numElectricCurrent)
	for i := range u {
		u[i] = ElectricCurrent(i)
	}
	return u
}

// AmountOfBase returns the number of picoamperes in u. It panics if u is
// not a valid variant.
func (u ElectricCurrent) AmountOfBase() float64 { return currentFactors()[u] }

func (ElectricCurrent) Dims() dimension.Vector { return dimension.ElectricCurrent }

func (ElectricCurrent) Tag() tag.ElectricCurrent { return tag.ElectricCurrent{} }

// BaseUnit returns Picoampere.
func (ElectricCurrent) BaseUnit() ElectricCurrent { return Picoampere }

// Valid reports whether u is one of the declared variants.
func (u ElectricCurrent) Valid() bool { return u >= 0 && u < numElectricCurrent }

func (u ElectricCurrent) String() string {
	return enumString("ElectricCurrent", currentNames, int(u))
}
