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

// Package dimcheck defines an analyzer that reports uses of
// quantity.Rebind and quantity.TryRebind whose source and target tags
// describe different dimensions. Calls and function values are both
// checked.
//
// The compiler cannot see that Div[Mul[Length, Time], Time] and Length are
// the same dimension, so re-tagging is checked when the program runs.
// When both tags are built only from the markers and combinators of
// package tag the vectors are known statically, and dimcheck reports a
// mismatch before the program is run. Tags that involve type parameters or
// marker types declared elsewhere are left to the run-time check.
//
// Run it with
//
//	go vet -vettool=$(which dimcheck) ./...
package dimcheck

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/spatialmodel/units/dimension"
)

const (
	tagPath      = "github.com/spatialmodel/units/tag"
	quantityPath = "github.com/spatialmodel/units/quantity"
)

// Analyzer reports re-tagging between tags with different dimensions.
var Analyzer = &analysis.Analyzer{
	Name:     "dimcheck",
	Doc:      "report quantity.Rebind uses between tags of different dimensions",
	URL:      "https://pkg.go.dev/github.com/spatialmodel/units/dimcheck",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	// Every use of Rebind names it with an identifier that is recorded as
	// an instance, whether it is called directly, parenthesized or stored
	// as a function value.
	insp.Preorder([]ast.Node{(*ast.Ident)(nil)}, func(n ast.Node) {
		id := n.(*ast.Ident)
		inst, ok := pass.TypesInfo.Instances[id]
		if !ok || inst.TypeArgs.Len() != 3 {
			return
		}
		fn, ok := pass.TypesInfo.Uses[id].(*types.Func)
		if !ok || fn.Pkg() == nil || fn.Pkg().Path() != quantityPath {
			return
		}
		if fn.Name() != "Rebind" && fn.Name() != "TryRebind" {
			return
		}
		to, ok := Vector(inst.TypeArgs.At(0))
		if !ok {
			return
		}
		from, ok := Vector(inst.TypeArgs.At(2))
		if !ok {
			return
		}
		if from != to {
			pass.Reportf(id.Pos(), "%s: cannot rebind [%s] to [%s]", fn.Name(), from, to)
		}
	})
	return nil, nil
}

var base = map[string]dimension.Vector{
	"Dimensionless":     dimension.Dimensionless,
	"Time":              dimension.Time,
	"Length":            dimension.Length,
	"Mass":              dimension.Mass,
	"ElectricCurrent":   dimension.ElectricCurrent,
	"Temperature":       dimension.Temperature,
	"Amount":            dimension.Amount,
	"LuminousIntensity": dimension.LuminousIntensity,
}

// Vector returns the dimension vector described by the tag type t. The
// result is false if t is not built entirely from the types of package
// tag.
func Vector(t types.Type) (dimension.Vector, bool) {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return dimension.Vector{}, false
	}
	obj := named.Obj()
	if obj.Pkg() == nil || obj.Pkg().Path() != tagPath {
		return dimension.Vector{}, false
	}
	if v, ok := base[obj.Name()]; ok {
		return v, true
	}

	args := named.TypeArgs()
	if args == nil {
		return dimension.Vector{}, false
	}
	vs := make([]dimension.Vector, args.Len())
	for i := range vs {
		if vs[i], ok = Vector(args.At(i)); !ok {
			return dimension.Vector{}, false
		}
	}
	switch {
	case obj.Name() == "Mul" && len(vs) == 2:
		return vs[0].Add(vs[1]), true
	case obj.Name() == "Div" && len(vs) == 2:
		return vs[0].Sub(vs[1]), true
	case obj.Name() == "Inv" && len(vs) == 1:
		return vs[0].Neg(), true
	case obj.Name() == "Square" && len(vs) == 1:
		return vs[0].Mul(2), true
	case obj.Name() == "Cube" && len(vs) == 1:
		return vs[0].Mul(3), true
	}
	return dimension.Vector{}, false
}
