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
	"fmt"
	"strings"

	"github.com/lnashier/viper"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"

	"github.com/spatialmodel/units/unit"
)

// ErrUnknownUnit is returned for a unit name that is not in any catalog.
var ErrUnknownUnit = errors.New("units: unknown unit")

// GetStringSlice returns a []string from a viper configuration,
// accounting for the fact that it might be the string form of a slice
// if it was set from a command line argument.
func GetStringSlice(varName string, cfg *viper.Viper) []string {
	i := cfg.Get(varName)
	switch v := i.(type) {
	case nil:
		return nil
	case []string:
		return v
	case []interface{}:
		return cast.ToStringSlice(v)
	case string:
		v = strings.TrimSuffix(strings.TrimPrefix(v, "["), "]")
		if v == "" {
			return nil
		}
		return strings.Split(v, ",")
	default:
		panic(fmt.Errorf("invalid type for GetStringSlice variable %s: %#v", varName, i))
	}
}

// termFlag holds the values of the repeatable --term flag.
var termFlag = new(termList)

// termList is a repeatable string flag. Unlike a pflag StringSlice it does
// not split on commas, and reset empties it so that a later run of the
// same command starts from no terms.
type termList struct {
	terms []string
}

func (l *termList) String() string { return "[" + strings.Join(l.terms, ",") + "]" }

func (l *termList) Set(s string) error {
	l.terms = append(l.terms, s)
	return nil
}

func (l *termList) Type() string { return "term" }

// reset empties l and marks f, the flag l backs, as unset.
func (l *termList) reset(f *pflag.Flag) {
	l.terms = nil
	if f != nil {
		f.Changed = false
	}
}

// lookup returns the catalog unit with the given name.
func lookup(name string) (unit.Any, error) {
	u, ok := unit.Lookup(strings.TrimSpace(name))
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownUnit, name)
	}
	return u, nil
}

// Convert converts v from the unit named from to the unit named to.
func Convert(v float64, from, to string) (float64, error) {
	f, err := lookup(from)
	if err != nil {
		return 0, err
	}
	t, err := lookup(to)
	if err != nil {
		return 0, err
	}
	return unit.Convert(v, f, t)
}

// ParseTerms builds a composite unit from terms of the form NAME=EXPONENT.
// An omitted exponent is 1.
func ParseTerms(terms []string) (unit.Composite, error) {
	if len(terms) == 0 {
		return unit.Composite{}, fmt.Errorf("units: no terms specified. Please use the --term flag and try again")
	}
	var ts []unit.Term
	for _, term := range terms {
		name, exp, found := strings.Cut(term, "=")
		u, err := lookup(name)
		if err != nil {
			return unit.Composite{}, err
		}
		e := 1
		if found {
			if e, err = cast.ToIntE(strings.TrimSpace(exp)); err != nil {
				return unit.Composite{}, fmt.Errorf("units: invalid exponent in term %q: %v", term, err)
			}
		}
		ts = append(ts, unit.Term{Unit: u, Exponent: e})
	}
	return unit.NewComposite(ts...)
}
