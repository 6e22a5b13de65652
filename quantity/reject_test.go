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

package quantity_test

import (
	"fmt"
	"testing"

	"github.com/spatialmodel/units/internal/compiletest"
)

const program = `package main

import (
	"github.com/spatialmodel/units/quantity"
	"github.com/spatialmodel/units/tag"
	"github.com/spatialmodel/units/unit"
)

var (
	_ = unit.Hour
	_ = tag.Time{}
)

func main() {
	t := quantity.New[tag.Time](int64(1))
	m := quantity.New[tag.Mass](int64(1))
	var ratio quantity.Quantity[int64, tag.Dimensionless]
	_, _, _ = t, m, ratio
	%s
}
`

// Every dimension error in this table must be caught by the type checker.
// The accepted line of each case is the control: it must compile, so the
// rejection is known to come from the dimension mismatch.
func TestRejectedAtCompileTime(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}
	tests := []struct {
		name, accepted, rejected string
	}{
		{
			name:     "add",
			accepted: "_ = quantity.Add(t, t)",
			rejected: "_ = quantity.Add(t, m)",
		},
		{
			name:     "sub",
			accepted: "_ = quantity.Sub(m, m)",
			rejected: "_ = quantity.Sub(m, t)",
		},
		{
			name:     "add assign",
			accepted: "quantity.AddAssign(&t, t)",
			rejected: "quantity.AddAssign(&t, m)",
		},
		{
			name:     "sub assign",
			accepted: "quantity.SubAssign(&m, m)",
			rejected: "quantity.SubAssign(&m, t)",
		},
		{
			name:     "mul assign by tagged value",
			accepted: "quantity.MulAssign(&t, ratio)",
			rejected: "quantity.MulAssign(&t, m)",
		},
		{
			name:     "div assign by tagged value",
			accepted: "quantity.DivAssign(&m, ratio)",
			rejected: "quantity.DivAssign(&m, t)",
		},
		{
			name:     "product is not its factor",
			accepted: "_ = quantity.Add(quantity.Mul(t, m), quantity.Mul(t, m))",
			rejected: "_ = quantity.Add(quantity.Mul(t, m), t)",
		},
		{
			name:     "unit from another catalog",
			accepted: "_ = quantity.IntoStandardUnit(t, unit.Hour)",
			rejected: "_ = quantity.IntoStandardUnit(m, unit.Hour)",
		},
		{
			name:     "from unit of another catalog",
			accepted: "_ = quantity.FromStandardUnit[int64, tag.Mass](1, unit.Kilogram)",
			rejected: "_ = quantity.FromStandardUnit[int64, tag.Mass](1, unit.Meter)",
		},
		{
			name:     "assign across tags",
			accepted: "t = quantity.New[tag.Time](int64(2))",
			rejected: "t = m",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			if errs := compiletest.Errors(t, fmt.Sprintf(program, test.accepted)); len(errs) != 0 {
				t.Fatalf("control program does not compile: %v", errs)
			}
			if !compiletest.Rejected(t, fmt.Sprintf(program, test.rejected), "") {
				t.Errorf("%q was accepted by the type checker", test.rejected)
			}
		})
	}
}

// A storage kind outside the closed set is rejected.
func TestRejectedStorageKind(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}
	src := fmt.Sprintf(program, `_ = quantity.New[tag.Time]("one second")`)
	if !compiletest.Rejected(t, src, "does not satisfy") {
		t.Error("string storage was accepted")
	}
}

// The 128-bit kinds are stored but have no arithmetic.
func TestRejectedWideArithmetic(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}
	const wide = `package main

import (
	"github.com/spatialmodel/units/quantity"
	"github.com/spatialmodel/units/storage"
	"github.com/spatialmodel/units/tag"
	"github.com/spatialmodel/units/unit"
)

func main() {
	q := quantity.New[tag.Time](storage.Int128{})
	_ = quantity.IntoStandardUnit(q, unit.Second)
	%s
}
`
	if errs := compiletest.Errors(t, fmt.Sprintf(wide, "_ = q.Value()")); len(errs) != 0 {
		t.Fatalf("control program does not compile: %v", errs)
	}
	if !compiletest.Rejected(t, fmt.Sprintf(wide, "_ = quantity.Add(q, q)"), "does not satisfy") {
		t.Error("128-bit addition was accepted")
	}
}
