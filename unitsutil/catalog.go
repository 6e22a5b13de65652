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
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/spatialmodel/units/unit"
)

// CatalogListing is the machine-readable form of the unit catalogs.
type CatalogListing struct {
	Catalogs []CatalogEntry `json:"catalogs" toml:"catalog"`
}

// CatalogEntry describes one catalog.
type CatalogEntry struct {
	Name       string      `json:"name" toml:"name"`
	Dimensions string      `json:"dimensions" toml:"dimensions"`
	Base       string      `json:"base" toml:"base"`
	Units      []UnitEntry `json:"units" toml:"unit"`
}

// UnitEntry describes one unit of a catalog.
type UnitEntry struct {
	Name string `json:"name" toml:"name"`
	// AmountOfBase is the number of base units the unit equals.
	AmountOfBase float64 `json:"amount_of_base" toml:"amount_of_base"`
}

// Listing returns every catalog in listing form.
func Listing() CatalogListing {
	var l CatalogListing
	for _, c := range unit.Catalogs() {
		e := CatalogEntry{
			Name:       c.Name,
			Dimensions: c.Dims.String(),
			Base:       c.Base.String(),
		}
		for _, u := range c.Units {
			e.Units = append(e.Units, UnitEntry{Name: u.String(), AmountOfBase: u.AmountOfBase()})
		}
		l.Catalogs = append(l.Catalogs, e)
	}
	return l
}

// WriteCatalogs writes the catalog listing to w in the given format:
// "text", "json" or "toml".
func WriteCatalogs(w io.Writer, format string) error {
	l := Listing()
	switch format {
	case "text", "":
		for _, c := range l.Catalogs {
			fmt.Fprintf(w, "%s [%s], base unit %s\n", c.Name, c.Dimensions, c.Base)
			for _, u := range c.Units {
				fmt.Fprintf(w, "\t%-12s %g\n", u.Name, u.AmountOfBase)
			}
		}
		return nil
	case "json":
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e.Encode(l)
	case "toml":
		return toml.NewEncoder(w).Encode(l)
	default:
		return fmt.Errorf("units: invalid catalog format %q; valid formats are text, json and toml", format)
	}
}
