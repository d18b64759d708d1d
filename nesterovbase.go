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

import "github.com/enzoleo/RePlAce/geometry"

// NesterovBase owns every arena the optimizer touches: the GCell,
// GPin, and GNet vectors, the bin grid, and the wirelength/density
// models that operate over them (spec §4.6). It is built once from a
// PlacerBase and never resizes its arenas afterward, so every index
// handed out by GCells()/GPins()/GNets() stays valid for the
// façade's lifetime — the optimizer can cache indices across
// iterations instead of re-resolving pointers.
type NesterovBase struct {
	cfg Config
	pb  PlacerBase

	bingrid *BinGrid
	wl      *WirelengthModel
	density DensityModel

	gcells []*GCell
	gpins  []*GPin
	gnets  []*GNet

	instToCell map[*Instance]int
}

// NewNesterovBase builds the full arena set from pb: bins, fillers,
// GCells, GPins, and GNets, in that order, matching the initialization
// sequence in spec §4.2/§4.3/§4.6. Only placeable instances get a
// GCell; fixed instances contribute to the bin grid's NonPlaceArea
// directly (done inside InitBins) and their pins still participate in
// wirelength as immovable points with no owning GCell.
func NewNesterovBase(pb PlacerBase, cfg Config) (*NesterovBase, error) {
	bg, err := InitBins(pb, cfg.TargetDensity, cfg.BinCntX, cfg.BinCntY)
	if err != nil {
		return nil, err
	}

	fillers, err := SynthesizeFillers(pb, bg, cfg.TargetDensity, cfg.MinAvgCut, cfg.MaxAvgCut)
	if err != nil {
		return nil, err
	}

	placeInsts := pb.PlaceInsts()
	gcells := make([]*GCell, 0, len(placeInsts)+len(fillers))
	instToCell := make(map[*Instance]int, len(placeInsts))
	for _, inst := range placeInsts {
		instToCell[inst] = len(gcells)
		gcells = append(gcells, newInstanceGCell(inst))
	}
	gcells = append(gcells, fillers...)

	for _, c := range gcells {
		ComputeDensityBox(c, bg.Sx, bg.Sy)
	}
	bg.UpdateBinsGCellDensityArea(gcells)

	pins := pb.Pins()
	gpins := make([]*GPin, len(pins))
	pinToGPin := make(map[*Pin]int, len(pins))
	for i, p := range pins {
		pinToGPin[p] = i
		cellIdx := -1
		if ci, ok := instToCell[p.Inst]; ok {
			cellIdx = ci
			gcells[ci].PinIdx = append(gcells[ci].PinIdx, i)
		}
		gp := &GPin{
			Pin:      p,
			CellIdx:  cellIdx,
			NetIdx:   -1,
			OffsetCx: float64(p.OffsetCx),
			OffsetCy: float64(p.OffsetCy),
		}
		if cellIdx >= 0 {
			gp.updatePosition(gcells[cellIdx].Box.Cx(), gcells[cellIdx].Box.Cy())
		} else {
			gp.updatePosition(p.Inst.Cx(), p.Inst.Cy())
		}
		gpins[i] = gp
	}

	nets := pb.Nets()
	gnets := make([]*GNet, len(nets))
	for i, n := range nets {
		pinIdx := make([]int, 0, len(n.Pins))
		for _, p := range n.Pins {
			if pi, ok := pinToGPin[p]; ok {
				pinIdx = append(pinIdx, pi)
				gpins[pi].NetIdx = i
			}
		}
		gnets[i] = &GNet{Nets: []*Net{n}, PinIdx: pinIdx, CustomWeight: 1}
	}

	return &NesterovBase{
		cfg:        cfg,
		pb:         pb,
		bingrid:    bg,
		wl:         NewWirelengthModel(cfg.MinWireLengthForceBar),
		gcells:     gcells,
		gpins:      gpins,
		gnets:      gnets,
		instToCell: instToCell,
	}, nil
}

// BinGrid returns the façade's bin grid.
func (nb *NesterovBase) BinGrid() *BinGrid { return nb.bingrid }

// GCells returns the façade's full GCell arena (instance cells, then
// fillers, in that fixed order).
func (nb *NesterovBase) GCells() []*GCell { return nb.gcells }

// GPins returns the façade's full GPin arena.
func (nb *NesterovBase) GPins() []*GPin { return nb.gpins }

// GNets returns the façade's full GNet arena.
func (nb *NesterovBase) GNets() []*GNet { return nb.gnets }

// UpdateGCellLocation overwrites every GCell's placement box from
// coords, one-to-one by index, then propagates the new centre to every
// pin the cell owns (spec §4.6). len(coords) must equal len(GCells()).
func (nb *NesterovBase) UpdateGCellLocation(coords []geometry.Rect) {
	for i, c := range nb.gcells {
		c.Box = coords[i]
		nb.propagatePinPositions(i)
	}
}

// UpdateGCellCenterLocation re-centres every GCell on coords without
// changing its size, then propagates the new centre to every pin the
// cell owns (spec §4.6).
func (nb *NesterovBase) UpdateGCellCenterLocation(coords []Coord) {
	for i, c := range nb.gcells {
		dx, dy := c.Box.Dx(), c.Box.Dy()
		lx, ly := coords[i].X-dx/2, coords[i].Y-dy/2
		c.Box = geometry.NewRect(lx, ly, lx+dx, ly+dy)
		nb.propagatePinPositions(i)
	}
}

// UpdateGCellDensityCenterLocation re-centres every GCell's density box
// on coords without changing its size, leaving the placement box and
// pin positions untouched (spec §4.6): this is the call the optimizer
// makes when it wants the density field to see a trial move that
// hasn't committed to the placement box yet.
func (nb *NesterovBase) UpdateGCellDensityCenterLocation(coords []Coord) {
	for i, c := range nb.gcells {
		dx, dy := c.DBox.Dx(), c.DBox.Dy()
		lx, ly := float64(coords[i].X)-dx/2, float64(coords[i].Y)-dy/2
		c.DBox = geometry.FloatRect{Lx: lx, Ly: ly, Ux: lx + dx, Uy: ly + dy}
	}
}

// propagatePinPositions recomputes Cx/Cy for every pin owned by
// gcells[cellIdx] from the cell's current centre.
func (nb *NesterovBase) propagatePinPositions(cellIdx int) {
	c := nb.gcells[cellIdx]
	cx, cy := c.Box.Cx(), c.Box.Cy()
	for _, pi := range c.PinIdx {
		nb.gpins[pi].updatePosition(cx, cy)
	}
}

// UpdateWireLengthForceWA runs Pass A of the wirelength model over the
// façade's own arenas (spec §4.4, §4.6).
func (nb *NesterovBase) UpdateWireLengthForceWA(wlCoeffX, wlCoeffY float64) {
	nb.wl.UpdateWireLengthForceWA(nb.gpins, nb.gnets, wlCoeffX, wlCoeffY)
}

// GetWireLengthGradientWA returns the wirelength gradient for
// GCells()[cellIdx] (spec §4.4, §4.6). UpdateWireLengthForceWA must
// have been called since the cells' positions last changed.
func (nb *NesterovBase) GetWireLengthGradientWA(cellIdx int, wlCoeffX, wlCoeffY float64) (gx, gy float64) {
	return nb.wl.GetWireLengthGradientWA(cellIdx, nb.gcells, nb.gpins, nb.gnets, wlCoeffX, wlCoeffY)
}

// UpdateDensityForceBin deposits every GCell's scaled density-box
// overlap into the bin grid, runs the FFT/Poisson collaborator, and
// caches the resulting potential and electric-force fields (spec §4.5,
// §4.6).
func (nb *NesterovBase) UpdateDensityForceBin(solver FFTSolver) {
	nb.density.Deposit(nb.bingrid, nb.gcells)
	nb.bingrid.UpdateDensityForceBin(solver)
}

// GetDensityGradient returns the density-force gradient for
// GCells()[cellIdx] (spec §4.5, §4.6). UpdateDensityForceBin must have
// been called since the cells' density boxes last changed.
func (nb *NesterovBase) GetDensityGradient(cellIdx int) (gx, gy float64) {
	return nb.bingrid.GetDensityGradient(nb.gcells[cellIdx])
}
