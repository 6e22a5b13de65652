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
	"errors"
	"reflect"
	"testing"

	"github.com/lnashier/viper"

	"github.com/spatialmodel/units/dimension"
	"github.com/spatialmodel/units/unit"
)

func TestGetStringSlice(t *testing.T) {
	cfg := viper.New()
	cfg.Set("flag", "[meter=1,second=-1]")
	cfg.Set("file", []interface{}{"meter=1", "second=-1"})
	cfg.Set("slice", []string{"meter=1", "second=-1"})
	cfg.Set("empty", "[]")
	want := []string{"meter=1", "second=-1"}
	for _, name := range []string{"flag", "file", "slice"} {
		t.Run(name, func(t *testing.T) {
			if got := GetStringSlice(name, cfg); !reflect.DeepEqual(got, want) {
				t.Errorf("%v != %v", got, want)
			}
		})
	}
	if got := GetStringSlice("empty", cfg); len(got) != 0 {
		t.Errorf("empty: %v", got)
	}
	if got := GetStringSlice("missing", cfg); got != nil {
		t.Errorf("missing: %v", got)
	}
}

func TestParseTerms(t *testing.T) {
	c, err := ParseTerms([]string{"meter=2", " second = -1", "kilogram"})
	if err != nil {
		t.Fatal(err)
	}
	want := dimension.Vector{Length: 2, Time: -1, Mass: 1}
	if c.Dims() != want {
		t.Errorf("%v != %v", c.Dims(), want)
	}
	if s := c.String(); s != "meter^2 second^-1 kilogram" {
		t.Errorf("%q != \"meter^2 second^-1 kilogram\"", s)
	}

	if _, err := ParseTerms(nil); err == nil {
		t.Error("no terms accepted")
	}
	if _, err := ParseTerms([]string{"furlong=1"}); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("err = %v, want ErrUnknownUnit", err)
	}
	if _, err := ParseTerms([]string{"meter=x"}); err == nil {
		t.Error("invalid exponent accepted")
	}
	if _, err := ParseTerms([]string{"meter=0"}); !errors.Is(err, unit.ErrZeroExponent) {
		t.Errorf("err = %v, want ErrZeroExponent", err)
	}
}

func TestConvert(t *testing.T) {
	v, err := Convert(3, "day", "hour")
	if err != nil {
		t.Fatal(err)
	}
	if v != 72 {
		t.Errorf("%g != 72", v)
	}
	if _, err := Convert(1, "hour", "parsec"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("err = %v, want ErrUnknownUnit", err)
	}
}
