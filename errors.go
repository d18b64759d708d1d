/*
Copyright (C) 2013-2014 Regents of the University of Minnesota.
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

package replace

import "fmt"

// Sentinel error values for the core's init-phase failure modes (spec
// §7). Iteration-phase routines are total functions and never return
// these; they clamp instead.
var (
	// ErrCoreEmpty means a BinGrid was asked to initialize with no
	// placeable instances.
	ErrCoreEmpty = fmt.Errorf("replace: no placeable instances")

	// ErrDegenerateGeometry means the die has zero area, or bin sizing
	// collapsed to zero-size bins.
	ErrDegenerateGeometry = fmt.Errorf("replace: degenerate die or bin geometry")

	// ErrInsufficientWhitespace means filler synthesis computed a
	// negative filler budget; the caller must raise target density or
	// enlarge the core area.
	ErrInsufficientWhitespace = fmt.Errorf("replace: insufficient whitespace for requested target density")

	// ErrLayerCountMismatch means a route file's declared layer count
	// disagreed with the technology data the caller expected.
	ErrLayerCountMismatch = fmt.Errorf("replace: route file layer count mismatch")

	// ErrUnimplemented is the error for a deliberately stubbed-out
	// façade method (spec §9 dead/stub methods). The façade has no such
	// method, so nothing in this package returns it.
	ErrUnimplemented = fmt.Errorf("replace: not implemented")
)
