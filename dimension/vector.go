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

// Package dimension represents physical dimensions as vectors of integer
// exponents over the SI base quantities.
//
// Multiplying two physical quantities corresponds to adding their
// dimension vectors, and dividing them corresponds to subtraction.
// Vectors are plain comparable values: arithmetic returns new vectors and
// never modifies the receiver.
package dimension

import (
	"bytes"
	"fmt"
)

// NumBase is the number of base dimensions in a Vector.
const NumBase = 7

// Vector holds the exponent of each base dimension. The zero value is
// Dimensionless.
type Vector struct {
	Time              int
	Length            int
	Mass              int
	ElectricCurrent   int
	Temperature       int
	Amount            int
	LuminousIntensity int
}

// These are the dimensionless vector and the single-axis base vectors.
// Temperature, Amount and LuminousIntensity are declared for completeness;
// no unit catalog uses them yet.
var (
	Dimensionless     = Vector{}
	Time              = Vector{Time: 1}
	Length            = Vector{Length: 1}
	Mass              = Vector{Mass: 1}
	ElectricCurrent   = Vector{ElectricCurrent: 1}
	Temperature       = Vector{Temperature: 1}
	Amount            = Vector{Amount: 1}
	LuminousIntensity = Vector{LuminousIntensity: 1}
)

// symbols are the SI base unit symbols, in Components order.
var symbols = [NumBase]string{"s", "m", "kg", "A", "K", "mol", "cd"}

// Components returns the exponents in the order time, length, mass,
// electric current, temperature, amount, luminous intensity.
func (v Vector) Components() [NumBase]int {
	return [NumBase]int{
		v.Time,
		v.Length,
		v.Mass,
		v.ElectricCurrent,
		v.Temperature,
		v.Amount,
		v.LuminousIntensity,
	}
}

// FromComponents is the inverse of Vector.Components.
func FromComponents(c [NumBase]int) Vector {
	return Vector{
		Time:              c[0],
		Length:            c[1],
		Mass:              c[2],
		ElectricCurrent:   c[3],
		Temperature:       c[4],
		Amount:            c[5],
		LuminousIntensity: c[6],
	}
}

// apply maps f over every exponent of v.
func (v Vector) apply(f func(a int) int) Vector {
	c := v.Components()
	for i := range c {
		c[i] = f(c[i])
	}
	return FromComponents(c)
}

// Add returns the componentwise sum v + o, the dimension of a product.
func (v Vector) Add(o Vector) Vector {
	c, oc := v.Components(), o.Components()
	for i := range c {
		c[i] += oc[i]
	}
	return FromComponents(c)
}

// Sub returns the componentwise difference v - o, the dimension of a
// quotient.
func (v Vector) Sub(o Vector) Vector {
	return v.Add(o.Neg())
}

// Neg returns the dimension of the reciprocal of a quantity with
// dimension v.
func (v Vector) Neg() Vector {
	return v.Mul(-1)
}

// Mul multiplies every exponent by k, the dimension of raising a quantity
// to the power k.
func (v Vector) Mul(k int) Vector {
	return v.apply(func(a int) int { return a * k })
}

// Div divides every exponent by k using integer division. It panics if k
// is zero.
func (v Vector) Div(k int) Vector {
	return v.apply(func(a int) int { return a / k })
}

// Rem returns the remainder of every exponent divided by k. It has no
// physical meaning and exists so the scalar operator set is complete.
// It panics if k is zero.
func (v Vector) Rem(k int) Vector {
	return v.apply(func(a int) int { return a % k })
}

// Equal reports whether v and o describe the same dimension.
func (v Vector) Equal(o Vector) bool {
	return v == o
}

// IsDimensionless reports whether every exponent is zero.
func (v Vector) IsDimensionless() bool {
	return v == Dimensionless
}

// AssertEqual panics if v and o differ. It is meant for package-level
// declarations such as
//
//	var _ = dimension.Length.Sub(dimension.Time).AssertEqual(tag.Of[tag.Velocity]())
//
// so that an inconsistent declaration stops the program during
// initialization, before main or any test runs. The returned value is
// always zero.
func (v Vector) AssertEqual(o Vector) int {
	if v != o {
		panic(fmt.Errorf("dimension: vectors not equal: [%s] != [%s]", v, o))
	}
	return 0
}

// String formats v with SI base unit symbols, positive powers first,
// for example "m s^-1". The dimensionless vector is formatted as "1".
func (v Vector) String() string {
	if v.IsDimensionless() {
		return "1"
	}
	c := v.Components()
	var b bytes.Buffer
	write := func(i int) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(symbols[i])
		if c[i] != 1 {
			fmt.Fprintf(&b, "^%d", c[i])
		}
	}
	for i, p := range c {
		if p > 0 {
			write(i)
		}
	}
	for i, p := range c {
		if p < 0 {
			write(i)
		}
	}
	return b.String()
}
