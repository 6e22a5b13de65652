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

// Package unit holds the catalogs of named units for time, length, mass
// and electric current, along with ad hoc custom and composite units.
//
// Every catalog is a closed enumeration. Each variant knows how many of
// the catalog's base unit (its finest-grained variant) it equals. Factor
// tables are computed once, on first use, and are read-only afterwards.
package unit

import (
	"errors"
	"fmt"

	"github.com/spatialmodel/units/dimension"
	"github.com/spatialmodel/units/tag"
)

// Any is implemented by every unit: catalog variants, Custom and Composite.
type Any interface {
	// Dims returns the dimension measured by the unit.
	Dims() dimension.Vector
	// AmountOfBase returns how many base units the unit equals.
	AmountOfBase() float64
	String() string
}

// Standard is implemented by the variants of the catalog for dimension T.
// Tag binds the catalog to T so that pairing a unit with a quantity of a
// different dimension does not compile.
type Standard[T tag.Dim] interface {
	Any
	Tag() T
}

// BaseRepr converts a value expressed in u to the catalog's base unit.
func BaseRepr(u Any, display float64) float64 {
	return display * u.AmountOfBase()
}

// DisplayRepr converts a value expressed in the catalog's base unit to u.
func DisplayRepr(u Any, base float64) float64 {
	return base / u.AmountOfBase()
}

// ErrIncompatible is returned when converting between units of different
// dimensions.
var ErrIncompatible = errors.New("unit: incompatible dimensions")

// Convert converts v from one unit to another of the same dimension. It is
// the runtime counterpart of quantity.IntoStandardUnit for units that are
// only known at run time.
func Convert(v float64, from, to Any) (float64, error) {
	if from.Dims() != to.Dims() {
		return 0, fmt.Errorf("%w: cannot convert %s [%s] to %s [%s]",
			ErrIncompatible, from, from.Dims(), to, to.Dims())
	}
	return DisplayRepr(to, BaseRepr(from, v)), nil
}

// Custom is a unit that is not part of any catalog.
type Custom struct {
	Name       string
	Dimensions dimension.Vector
	// Factor is the number of base units the unit equals.
	Factor float64
}

func (c Custom) Dims() dimension.Vector { return c.Dimensions }

func (c Custom) AmountOfBase() float64 { return c.Factor }

func (c Custom) String() string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("%g %s", c.Factor, c.Dimensions)
}

// Catalog describes one catalog for listing and lookup.
type Catalog struct {
	Name  string
	Dims  dimension.Vector
	Base  Any
	Units []Any
}

// Catalogs returns a description of every catalog.
func Catalogs() []Catalog {
	return []Catalog{
		catalog("time", TimeUnits()),
		catalog("length", LengthUnits()),
		catalog("mass", MassUnits()),
		catalog("electric current", ElectricCurrentUnits()),
	}
}

func catalog[U Any](name string, units []U) Catalog {
	c := Catalog{Name: name, Dims: units[0].Dims(), Base: units[0]}
	for _, u := range units {
		c.Units = append(c.Units, u)
	}
	return c
}

// Lookup returns the catalog variant with the given name, such as "hour".
func Lookup(name string) (Any, bool) {
	for _, c := range Catalogs() {
		for _, u := range c.Units {
			if u.String() == name {
				return u, true
			}
		}
	}
	return nil, false
}

// enumString returns names[i], or a placeholder for an invalid variant.
func enumString(kind string, names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("%s(%d)", kind, i)
	}
	return names[i]
}
