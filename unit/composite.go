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
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/spatialmodel/units/dimension"
)

// ErrZeroExponent is returned by NewComposite for a term with a zero
// exponent.
var ErrZeroExponent = errors.New("unit: zero exponent in composite unit")

// Term is one factor of a Composite: Unit raised to Exponent.
type Term struct {
	Unit     Any
	Exponent int
}

// Composite is an ordered product of units raised to integer powers, such
// as meter·second⁻². It describes derived units without a named variant
// for each combination.
//
// NewComposite rejects zero exponents, but a Composite built as a literal
// is not checked again: Dims and AmountOfBase fold whatever terms it holds.
type Composite struct {
	Terms []Term
}

// NewComposite returns a Composite of terms, or ErrZeroExponent if any
// exponent is zero.
func NewComposite(terms ...Term) (Composite, error) {
	for i, t := range terms {
		if t.Exponent == 0 {
			return Composite{}, fmt.Errorf("%w: term %d (%s)", ErrZeroExponent, i, t.Unit)
		}
	}
	return Composite{Terms: terms}, nil
}

// Per returns the Composite num·den⁻¹.
func Per(num, den Any) Composite {
	return Composite{Terms: []Term{{Unit: num, Exponent: 1}, {Unit: den, Exponent: -1}}}
}

// Dims returns the sum over the terms of each unit's dimension scaled by
// its exponent.
func (c Composite) Dims() dimension.Vector {
	var d dimension.Vector
	for _, t := range c.Terms {
		d = d.Add(t.Unit.Dims().Mul(t.Exponent))
	}
	return d
}

// AmountOfBase returns the product over the terms of each unit's factor
// raised to its exponent. The result is relative to the composite of the
// corresponding base units, for example nanometer per nanosecond.
func (c Composite) AmountOfBase() float64 {
	f := 1.0
	for _, t := range c.Terms {
		f *= math.Pow(t.Unit.AmountOfBase(), float64(t.Exponent))
	}
	return f
}

// String formats c as, for example, "meter second^-1".
func (c Composite) String() string {
	var b bytes.Buffer
	for i, t := range c.Terms {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.Unit.String())
		if t.Exponent != 1 {
			fmt.Fprintf(&b, "^%d", t.Exponent)
		}
	}
	return b.String()
}
