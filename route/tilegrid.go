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
	"fmt"
	"math"

	"github.com/ctessum/sparse"
	"github.com/enzoleo/RePlAce/geometry"
)

// Header is the accumulated, directive-order-independent state the
// parser collects before calling Build (spec §4.8's "calls initTiles()
// once at EOF"). It is also the entry point for building a TileGrid
// directly, without going through the parser — useful for tests and
// for any future in-memory caller.
type Header struct {
	Nx, Ny, Layers int

	VerticalCapacity, HorizontalCapacity []float64
	MinWireWidth, MinWireSpacing         []float64

	OriginLx, OriginLy   int64
	TileSizeX, TileSizeY int64
	BlockagePorosity     float64

	EdgeCapacityStor []EdgeCapacityInfo
}

// Build constructs a TileGrid from h (spec §4.7's initTiles): per-layer
// track counts and pitches, initial HL/HR/VL/VR supply, then the
// edge-capacity adjustments and isMacroIncluded flagging.
func Build(h Header) (*TileGrid, error) {
	if h.Nx <= 0 || h.Ny <= 0 || h.Layers <= 0 {
		return nil, fmt.Errorf("route: degenerate grid (Nx=%d Ny=%d layers=%d)", h.Nx, h.Ny, h.Layers)
	}
	if len(h.VerticalCapacity) != h.Layers || len(h.HorizontalCapacity) != h.Layers ||
		len(h.MinWireWidth) != h.Layers || len(h.MinWireSpacing) != h.Layers {
		return nil, fmt.Errorf("route: layer count mismatch (declared %d)", h.Layers)
	}
	if h.TileSizeX <= 0 || h.TileSizeY <= 0 {
		return nil, fmt.Errorf("route: degenerate tile size (%d x %d)", h.TileSizeX, h.TileSizeY)
	}

	var tracksH, tracksV float64
	for i := 0; i < h.Layers; i++ {
		pitch := h.MinWireWidth[i] + h.MinWireSpacing[i]
		if pitch <= 0 {
			continue
		}
		tracksH += h.HorizontalCapacity[i] / pitch
		tracksV += h.VerticalCapacity[i] / pitch
	}

	g := &TileGrid{
		OriginLx:           h.OriginLx,
		OriginLy:           h.OriginLy,
		Tx:                 h.Nx,
		Ty:                 h.Ny,
		TileSizeX:          h.TileSizeX,
		TileSizeY:          h.TileSizeY,
		Layers:             h.Layers,
		VerticalCapacity:   h.VerticalCapacity,
		HorizontalCapacity: h.HorizontalCapacity,
		MinWireWidth:       h.MinWireWidth,
		MinWireSpacing:     h.MinWireSpacing,
		EdgeCapacityStor:   h.EdgeCapacityStor,
		tiles:              make([]Tile, h.Nx*h.Ny),
		Capacity:           make([]*sparse.DenseArray, h.Layers),
		Route:              make([]*sparse.DenseArray, h.Layers),
		Blockage:           make([]*sparse.DenseArray, h.Layers),
		UsageHL:            make([]*sparse.DenseArray, h.Layers),
		UsageHR:            make([]*sparse.DenseArray, h.Layers),
		UsageVL:            make([]*sparse.DenseArray, h.Layers),
		UsageVR:            make([]*sparse.DenseArray, h.Layers),
	}

	for l := 0; l < h.Layers; l++ {
		g.Capacity[l] = sparse.ZerosDense(h.Ny, h.Nx)
		g.Route[l] = sparse.ZerosDense(h.Ny, h.Nx)
		g.Blockage[l] = sparse.ZerosDense(h.Ny, h.Nx)
		g.UsageHL[l] = sparse.ZerosDense(h.Ny, h.Nx)
		g.UsageHR[l] = sparse.ZerosDense(h.Ny, h.Nx)
		g.UsageVL[l] = sparse.ZerosDense(h.Ny, h.Nx)
		g.UsageVR[l] = sparse.ZerosDense(h.Ny, h.Nx)

		cap := h.HorizontalCapacity[l]
		if cap <= 0 {
			cap = h.VerticalCapacity[l]
		}
		if cap > 0 {
			for y := 0; y < h.Ny; y++ {
				for x := 0; x < h.Nx; x++ {
					g.Capacity[l].Set(cap, y, x)
				}
			}
		}
	}

	area := float64(h.TileSizeX) * float64(h.TileSizeY)
	pitchH := tilePitch(float64(h.TileSizeY), tracksH)
	pitchV := tilePitch(float64(h.TileSizeX), tracksV)
	var initHL, initHR, initVL, initVR float64
	if pitchH > 0 {
		initHL, initHR = area/pitchH, area/pitchH
	}
	if pitchV > 0 {
		initVL, initVR = area/pitchV, area/pitchV
	}

	for y := 0; y < h.Ny; y++ {
		for x := 0; x < h.Nx; x++ {
			lx := h.OriginLx + int64(x)*h.TileSizeX
			ly := h.OriginLy + int64(y)*h.TileSizeY
			g.tiles[g.tileIndex(x, y)] = Tile{
				X:        x,
				Y:        y,
				Box:      geometry.NewRect(lx, ly, lx+h.TileSizeX, ly+h.TileSizeY),
				SupplyHL: initHL,
				SupplyHR: initHR,
				SupplyVL: initVL,
				SupplyVR: initVR,
			}
		}
	}

	for _, e := range h.EdgeCapacityStor {
		if err := g.applyEdgeCapacity(e); err != nil {
			return nil, err
		}
	}

	for y := 0; y < h.Ny; y++ {
		for x := 0; x < h.Nx; x++ {
			t := g.Tile(x, y)
			t.SupplyH = math.Min(t.SupplyHL, t.SupplyHR)
			t.SupplyV = math.Min(t.SupplyVL, t.SupplyVR)
		}
	}

	return g, nil
}

// tilePitch implements pitch = round(size / tracks * gRoutePitchScale),
// returning 0 if tracks is non-positive (no supply can be derived).
func tilePitch(size, tracks float64) float64 {
	if tracks <= 0 {
		return 0
	}
	return math.Round(size / tracks * gRoutePitchScale)
}

// applyEdgeCapacity folds one EdgeCapacityInfo adjustment into the
// lower/upper tile's supply and isMacroIncluded flag (spec §4.7). The
// adjustment is horizontal iff e.Ly == e.Uy, vertical otherwise.
func (g *TileGrid) applyEdgeCapacity(e EdgeCapacityInfo) error {
	if e.Ll != e.Ul {
		return fmt.Errorf("route: edge capacity layer mismatch (%d vs %d)", e.Ll, e.Ul)
	}
	layer := e.Ll - 1
	if layer < 0 || layer >= g.Layers {
		return fmt.Errorf("route: edge capacity layer %d out of range [1,%d]", e.Ll, g.Layers)
	}
	if e.Lx < 0 || e.Lx >= g.Tx || e.Ly < 0 || e.Ly >= g.Ty ||
		e.Ux < 0 || e.Ux >= g.Tx || e.Uy < 0 || e.Uy >= g.Ty {
		return fmt.Errorf("route: edge capacity adjustment out of bounds: %+v", e)
	}

	lower := g.Tile(e.Lx, e.Ly)
	upper := g.Tile(e.Ux, e.Uy)

	if e.Ly == e.Uy {
		pitch := g.MinWireWidth[layer] + g.MinWireSpacing[layer]
		if pitch > 0 && g.TileSizeX > 0 {
			delta := (g.HorizontalCapacity[layer] - e.Cap) / pitch / float64(g.TileSizeX)
			lower.SupplyHR -= delta
			upper.SupplyHL -= delta
		}
		if layer+1 <= 5 && g.HorizontalCapacity[layer] > 0 && e.Cap < 0.01 {
			lower.IsMacroIncluded = true
		}
	} else {
		pitch := g.MinWireWidth[layer] + g.MinWireSpacing[layer]
		if pitch > 0 && g.TileSizeY > 0 {
			delta := (g.VerticalCapacity[layer] - e.Cap) / pitch / float64(g.TileSizeY)
			lower.SupplyVR -= delta
			upper.SupplyVL -= delta
		}
		if layer+1 <= 5 && g.VerticalCapacity[layer] > 0 && e.Cap < 0.01 {
			lower.IsMacroIncluded = true
		}
	}
	return nil
}
