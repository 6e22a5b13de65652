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

// Time is a unit of duration. The base unit is Nanosecond.
type Time int

// The standard calendar units use fixed 30-day months and 360-day years.
const (
	Nanosecond Time = iota
	Microsecond
	Millisecond
	Second
	Minute
	Hour
	StandardDay
	StandardMonth
	StandardYear
	StandardCentury
	StandardMillennium
	numTime
)

var timeNames = []string{
	Nanosecond:         "nanosecond",
	Microsecond:        "microsecond",
	Millisecond:        "millisecond",
	Second:             "second",
	Minute:             "minute",
	Hour:               "hour",
	StandardDay:        "day",
	StandardMonth:      "month",
	StandardYear:       "year",
	StandardCentury:    "century",
	StandardMillennium: "millennium",
}

var timeFactors = sync.OnceValue(func() [numTime]float64 {
	var f [numTime]float64
	f[Nanosecond] = 1
	f[Microsecond] = 1000 * f[Nanosecond]
	f[Millisecond] = 1000 * f[Microsecond]
	f[Second] = 1000 * f[Millisecond]
	f[Minute] = 60 * f[Second]
	f[Hour] = 60 * f[Minute]
	f[StandardDay] = 24 * f[Hour]
	f[StandardMonth] = 30 * f[StandardDay]
	f[StandardYear] = 12 * f[StandardMonth]
	f[StandardCentury] = 100 * f[StandardYear]
	f[StandardMillennium] = 1000 * f[StandardYear]
	return f
})

// TimeUnits returns every Time variant, finest first.
func TimeUnits() []Time {
	u := make([]Time, numTime)
	for i := range u {
		u[i] = Time(i)
	}
	return u
}

// AmountOfBase returns the number of nanoseconds in u. It panics if u is
// not a valid variant.
func (u Time) AmountOfBase() float64 { return timeFactors()[u] }

func (Time) Dims() dimension.Vector { return dimension.Time }

func (Time) Tag() tag.Time { return tag.Time{} }

// BaseUnit returns Nanosecond.
func (Time) BaseUnit() Time { return Nanosecond }

// Valid reports whether u is one of the declared variants.
func (u Time) Valid() bool { return u >= 0 && u < numTime }

func (u Time) String() string { return enumString("Time", timeNames, int(u)) }
