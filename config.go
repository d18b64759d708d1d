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

// Config holds the Nesterov base layer's configuration (spec §6). It
// replaces the source's global mutable NesterovBaseVars+reset()
// pattern (spec §9) with an explicit value passed to the constructor;
// there is no package-level state to reset between runs.
type Config struct {
	// TargetDensity is ρ*, the user-specified target ratio of cell area
	// to whitespace. Default 1.0.
	TargetDensity float64

	// MinAvgCut, MaxAvgCut are the trimmed-mean cut points used by
	// filler sizing. Defaults 0.1 and 0.9.
	MinAvgCut, MaxAvgCut float64

	// BinCntX, BinCntY, if both positive, override the automatically
	// computed power-of-two bin count.
	BinCntX, BinCntY int

	// MinWireLengthForceBar guards fastExp from evaluating arguments
	// that would underflow. Default -300.
	MinWireLengthForceBar float64
}

// DefaultConfig returns the CLI defaults enumerated in spec §6.
func DefaultConfig() Config {
	return Config{
		TargetDensity:         1.0,
		MinAvgCut:             0.1,
		MaxAvgCut:             0.9,
		MinWireLengthForceBar: -300,
	}
}
