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

// Command dimcheck reports quantity.Rebind calls between tags of different
// dimensions.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/spatialmodel/units/dimcheck"
)

func main() { singlechecker.Main(dimcheck.Analyzer) }
