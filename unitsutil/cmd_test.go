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

package unitsutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/kr/pretty"
	"github.com/sirupsen/logrus"

	"github.com/spatialmodel/units"
	"github.com/spatialmodel/units/unit"
)

// execute runs Root with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var b bytes.Buffer
	Root.SetOutput(&b)
	defer Root.SetOutput(nil)
	Root.SetArgs(args)
	err := Root.Execute()
	return b.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if want := "units v" + units.Version + "\n"; out != want {
		t.Errorf("%q != %q", out, want)
	}
}

func TestConvertCmd(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"convert", "90", "--from", "minute", "--to", "hour"}, "1.5 hour\n"},
		{[]string{"convert", "1", "--from", "kilometer", "--to", "meter"}, "1000 meter\n"},
		{[]string{"convert", "2", "-f", "kilogram", "-t", "gram"}, "2000 gram\n"},
		{[]string{"convert", "5", "--from", "ampere", "--to", "milliampere"}, "5000 milliampere\n"},
	}
	for _, test := range tests {
		t.Run(strings.Join(test.args[1:], " "), func(t *testing.T) {
			out, err := execute(t, test.args...)
			if err != nil {
				t.Fatal(err)
			}
			if out != test.want {
				t.Errorf("%q != %q", out, test.want)
			}
		})
	}
}

func TestConvertCmdErrors(t *testing.T) {
	if _, err := execute(t, "convert", "1", "--from", "hour", "--to", "meter"); !errors.Is(err, unit.ErrIncompatible) {
		t.Errorf("err = %v, want ErrIncompatible", err)
	}
	if _, err := execute(t, "convert", "1", "--from", "furlong", "--to", "meter"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("err = %v, want ErrUnknownUnit", err)
	}
	if _, err := execute(t, "convert", "one", "--from", "hour", "--to", "minute"); err == nil {
		t.Error("non-numeric value was accepted")
	}
}

func TestDimsCmd(t *testing.T) {
	out, err := execute(t, "dims", "--term", "kilometer=1", "--term", "hour=-1")
	if err != nil {
		t.Fatal(err)
	}
	want := "kilometer hour^-1 [m s^-1] = 0.27777777"
	if !strings.HasPrefix(out, want) {
		t.Errorf("%q does not start with %q", out, want)
	}

	// A second run in the same process sees only its own terms.
	out, err = execute(t, "dims", "--term", "meter=2")
	if err != nil {
		t.Fatal(err)
	}
	if want := "meter^2 [m^2] = 1e+18 base units\n"; out != want {
		t.Errorf("%q != %q", out, want)
	}
	if _, err := execute(t, "dims"); err == nil {
		t.Error("terms of an earlier run were reused")
	}
}

func TestCatalogCmd(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		out, err := execute(t, "catalog", "--format", "text")
		if err != nil {
			t.Fatal(err)
		}
		for _, want := range []string{
			"time [s], base unit nanosecond\n",
			"length [m], base unit nanometer\n",
			"mass [kg], base unit milligram\n",
			"electric current [A], base unit picoampere\n",
			"\thour         3.6e+12\n",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output does not contain %q:\n%s", want, out)
			}
		}
	})
	t.Run("json", func(t *testing.T) {
		out, err := execute(t, "catalog", "--format", "json")
		if err != nil {
			t.Fatal(err)
		}
		var got CatalogListing
		if err := json.Unmarshal([]byte(out), &got); err != nil {
			t.Fatal(err)
		}
		if diff := pretty.Diff(got, Listing()); len(diff) != 0 {
			t.Error(diff)
		}
	})
	t.Run("toml", func(t *testing.T) {
		out, err := execute(t, "catalog", "--format", "toml")
		if err != nil {
			t.Fatal(err)
		}
		var got struct {
			Catalog []struct {
				Name string
				Unit []struct{ Name string }
			}
		}
		if _, err := toml.Decode(out, &got); err != nil {
			t.Fatal(err)
		}
		if len(got.Catalog) != 4 {
			t.Fatalf("%d catalogs != 4", len(got.Catalog))
		}
		if got.Catalog[0].Name != "time" || got.Catalog[0].Unit[5].Name != "hour" {
			t.Errorf("unexpected listing: %# v", pretty.Formatter(got))
		}
	})
	t.Run("invalid", func(t *testing.T) {
		if _, err := execute(t, "catalog", "--format", "xml"); err == nil {
			t.Error("invalid format was accepted")
		}
	})
}

func TestLogLevel(t *testing.T) {
	if _, err := execute(t, "version", "--LogLevel", "loud"); err == nil {
		t.Error("invalid LogLevel was accepted")
	}
	if _, err := execute(t, "version", "--LogLevel", "debug"); err != nil {
		t.Error(err)
	}
	if l := logrus.GetLevel(); l != logrus.DebugLevel {
		t.Errorf("%v != %v", l, logrus.DebugLevel)
	}
	if _, err := execute(t, "version", "--LogLevel", "info"); err != nil {
		t.Error(err)
	}
}
