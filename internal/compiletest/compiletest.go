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

// Package compiletest type-checks small programs against this module so
// tests can assert that an expression is rejected by the compiler.
package compiletest

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// moduleRoot returns the directory holding go.mod.
func moduleRoot() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..")
}

// Errors writes src as the only file of a temporary package inside the
// module, loads it with go/packages and returns every error reported while
// parsing and type-checking it. The package is removed when the test ends.
// Errors skips the test if the go command is not available.
func Errors(t testing.TB, src string) []packages.Error {
	t.Helper()
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go command not available")
	}
	root := moduleRoot()
	dir, err := os.MkdirTemp(root, "compiletest")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	if err := os.WriteFile(filepath.Join(dir, "main.go"), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
		Dir:  root,
	}
	pkgs, err := packages.Load(cfg, "./"+filepath.Base(dir))
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}
	var errs []packages.Error
	packages.Visit(pkgs, nil, func(p *packages.Package) {
		errs = append(errs, p.Errors...)
	})
	return errs
}

// Rejected reports whether src fails to type-check with an error whose
// message contains want. The errors are logged to t.
func Rejected(t testing.TB, src, want string) bool {
	t.Helper()
	errs := Errors(t, src)
	for _, e := range errs {
		t.Log(e)
		if e.Kind == packages.TypeError && strings.Contains(e.Msg, want) {
			return true
		}
	}
	return false
}
