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

// Package units tags numeric values with their physical dimension so that
// physically incompatible quantities cannot be mixed.
//
// The work is split across subpackages:
//
//   - dimension: the vector of seven integer exponents and its algebra.
//   - tag: zero-size marker types that carry a dimension vector in the type
//     system.
//   - storage: the closed set of numeric kinds that may back a quantity.
//   - quantity: Quantity[S, T] and its arithmetic. Adding quantities of
//     different dimensions does not compile.
//   - unit: the time, length, mass and electric current catalogs and
//     composite units.
//   - siunit: conversion to and from github.com/ctessum/unit values.
//   - dimcheck: a vet analyzer for re-tagging between dimensions.
//
// A short example:
//
//	d := quantity.FromStandardUnit[float64, tag.Length](42, unit.Kilometer)
//	t := quantity.FromStandardUnit[float64, tag.Time](2, unit.Hour)
//	v := quantity.Div(d, t) // Quantity[float64, tag.Div[tag.Length, tag.Time]]
//	kmh := quantity.IntoStandardUnit(d, unit.Kilometer) / quantity.IntoStandardUnit(t, unit.Hour)
package units

// Version gives the version of this package.
const Version = "0.1.0"
