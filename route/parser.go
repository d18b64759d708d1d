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

package route

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseError reports a malformed route file with file:line context
// (spec §7). The parser never attempts resynchronization: the first
// ParseError aborts the parse.
type ParseError struct {
	File string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}

// mode tracks which section of the route-file grammar the parser is
// currently in (spec §4.8). A plain (non-directive) line is an edge
// adjustment in edge mode, ignored in blockage mode, and an error in
// any other mode.
type mode int

const (
	modeHeader mode = iota
	modeBEOL
	modeBlockage
	modeEdge
)

// Parse reads a global-router capacity report from r (spec §4.8) and
// builds the TileGrid it describes. name is used only for ParseError
// context. Lines starting with "#", shorter than 5 characters, or
// beginning with the literal "route" are ignored outright.
func Parse(r io.Reader, name string) (*TileGrid, error) {
	h := Header{}
	scanner := bufio.NewScanner(r)
	m := modeHeader
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if len(line) < 5 || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "route") {
			continue
		}
		fields := stripColon(strings.Fields(line))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "Grid":
			nums, err := parseInts(fields[1:], name, lineNo, "Grid")
			if err != nil {
				return nil, err
			}
			if len(nums) != 3 {
				return nil, &ParseError{name, lineNo, "Grid expects Nx Ny L"}
			}
			h.Nx, h.Ny, h.Layers = nums[0], nums[1], nums[2]
			m = modeBEOL

		case "VerticalCapacity":
			vals, err := parseFloats(fields[1:], name, lineNo, "VerticalCapacity")
			if err != nil {
				return nil, err
			}
			h.VerticalCapacity = vals

		case "HorizontalCapacity":
			vals, err := parseFloats(fields[1:], name, lineNo, "HorizontalCapacity")
			if err != nil {
				return nil, err
			}
			h.HorizontalCapacity = vals

		case "MinWireWidth":
			vals, err := parseFloats(fields[1:], name, lineNo, "MinWireWidth")
			if err != nil {
				return nil, err
			}
			h.MinWireWidth = vals

		case "MinWireSpacing":
			vals, err := parseFloats(fields[1:], name, lineNo, "MinWireSpacing")
			if err != nil {
				return nil, err
			}
			h.MinWireSpacing = vals

		case "ViaSpacing":
			// Consumed and discarded (spec §4.8).

		case "GridOrigin":
			nums, err := parseInts(fields[1:], name, lineNo, "GridOrigin")
			if err != nil {
				return nil, err
			}
			if len(nums) != 2 {
				return nil, &ParseError{name, lineNo, "GridOrigin expects x y"}
			}
			h.OriginLx, h.OriginLy = int64(nums[0]), int64(nums[1])

		case "TileSize":
			nums, err := parseInts(fields[1:], name, lineNo, "TileSize")
			if err != nil {
				return nil, err
			}
			if len(nums) != 2 {
				return nil, &ParseError{name, lineNo, "TileSize expects w h"}
			}
			h.TileSizeX, h.TileSizeY = int64(nums[0]), int64(nums[1])

		case "BlockagePorosity":
			vals, err := parseFloats(fields[1:], name, lineNo, "BlockagePorosity")
			if err != nil {
				return nil, err
			}
			if len(vals) != 1 {
				return nil, &ParseError{name, lineNo, "BlockagePorosity expects one value"}
			}
			h.BlockagePorosity = vals[0]

		case "NumNiTerminals":
			m = modeHeader

		case "NumBlockageNodes":
			m = modeBlockage

		case "NumEdgeCapacityAdjustments":
			m = modeEdge

		default:
			switch m {
			case modeEdge:
				e, err := parseEdgeCapacity(fields, name, lineNo)
				if err != nil {
					return nil, err
				}
				h.EdgeCapacityStor = append(h.EdgeCapacityStor, e)
			case modeBlockage:
				// Blockage-node lines are ignored (spec §4.8).
			default:
				return nil, &ParseError{name, lineNo, fmt.Sprintf("unrecognized directive %q", fields[0])}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{name, lineNo, err.Error()}
	}

	return Build(h)
}

// stripColon drops a lone ":" token immediately after the directive
// name, so both "Grid : 4 4 6" and "VerticalCapacity 1 2 3" forms parse
// the same way.
func stripColon(fields []string) []string {
	if len(fields) >= 2 && fields[1] == ":" {
		out := make([]string, 0, len(fields)-1)
		out = append(out, fields[0])
		out = append(out, fields[2:]...)
		return out
	}
	return fields
}

func parseInts(toks []string, name string, line int, directive string) ([]int, error) {
	out := make([]int, len(toks))
	for i, t := range toks {
		v, err := strconv.Atoi(t)
		if err != nil {
			return nil, &ParseError{name, line, fmt.Sprintf("%s: invalid integer %q", directive, t)}
		}
		out[i] = v
	}
	return out, nil
}

func parseFloats(toks []string, name string, line int, directive string) ([]float64, error) {
	out := make([]float64, len(toks))
	for i, t := range toks {
		v, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return nil, &ParseError{name, line, fmt.Sprintf("%s: invalid number %q", directive, t)}
		}
		out[i] = v
	}
	return out, nil
}

// parseEdgeCapacity parses one "lx ly ll ux uy ul cap" line in edge
// mode (spec §4.8).
func parseEdgeCapacity(fields []string, name string, line int) (EdgeCapacityInfo, error) {
	if len(fields) != 7 {
		return EdgeCapacityInfo{}, &ParseError{name, line, fmt.Sprintf("edge capacity line expects 7 fields, got %d", len(fields))}
	}
	nums, err := parseInts(fields[:6], name, line, "edge capacity")
	if err != nil {
		return EdgeCapacityInfo{}, err
	}
	capVal, err := strconv.ParseFloat(fields[6], 64)
	if err != nil {
		return EdgeCapacityInfo{}, &ParseError{name, line, fmt.Sprintf("edge capacity: invalid capacity %q", fields[6])}
	}
	return EdgeCapacityInfo{
		Lx: nums[0], Ly: nums[1], Ll: nums[2],
		Ux: nums[3], Uy: nums[4], Ul: nums[5],
		Cap: capVal,
	}, nil
}
