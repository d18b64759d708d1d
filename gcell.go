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

// GCellKind tags what a GCell mirrors on the netlist side. This replaces
// the source's setInstance/setClusteredInstance polymorphism (spec §9)
// with a plain tagged variant: isInstance and isFiller become pattern
// matches on Kind instead of separate boolean flags that could drift
// out of sync with the instance list.
type GCellKind int

const (
	// GCellInstance mirrors exactly one netlist instance.
	GCellInstance GCellKind = iota
	// GCellCluster mirrors a cluster of netlist instances.
	GCellCluster
	// GCellFiller is a virtual cell with no source instance, inserted
	// to pad whitespace toward the target density.
	GCellFiller
)

// GCell is the placement-layer mirror of one netlist instance, a
// cluster of instances, or a filler. Its placement box is mutated every
// iteration by the optimizer; its density box is a derived, possibly
// inflated, copy used only for density deposition.
type GCell struct {
	Kind GCellKind

	// Insts holds the source instances: exactly one for GCellInstance,
	// two or more for GCellCluster, none for GCellFiller.
	Insts []*Instance

	// Box is the placement box, mutated by updateGCellLocation et al.
	Box geometry.Rect

	// DBox is the density box: equal to Box unless the cell is smaller
	// than √2·binSize on an axis, in which case that axis is resized to
	// √2·binSize/2 (§4.5).
	DBox geometry.FloatRect

	// DensityScaleX, DensityScaleY are the scale factors applied when
	// DBox is resized relative to Box (see ComputeDensityBox). Both are
	// 1 when the cell is not in the tiny regime.
	DensityScaleX, DensityScaleY float64

	// GradX, GradY hold the transient result of the last gradient call
	// (wirelength or density); they are overwritten, never accumulated,
	// by each call.
	GradX, GradY float64

	// PinIdx holds indices into NesterovBase.gpins for this cell's
	// owned pins (non-owning back-references). Empty for fillers.
	PinIdx []int
}

// IsInstance reports whether g mirrors exactly one netlist instance.
func (g *GCell) IsInstance() bool { return g.Kind == GCellInstance && len(g.Insts) == 1 }

// IsCluster reports whether g mirrors a cluster of netlist instances.
func (g *GCell) IsCluster() bool { return g.Kind == GCellCluster && len(g.Insts) > 1 }

// IsFiller reports whether g carries no source instance.
func (g *GCell) IsFiller() bool { return g.Kind == GCellFiller && len(g.Insts) == 0 }

// DensityScale is the combined density scale factor
// DensityScaleX·DensityScaleY (spec §4.5).
func (g *GCell) DensityScale() float64 { return g.DensityScaleX * g.DensityScaleY }

// newInstanceGCell builds a GCell mirroring a single netlist instance.
func newInstanceGCell(inst *Instance) *GCell {
	return &GCell{
		Kind:          GCellInstance,
		Insts:         []*Instance{inst},
		Box:           geometry.NewRect(inst.Lx, inst.Ly, inst.Ux, inst.Uy),
		DensityScaleX: 1,
		DensityScaleY: 1,
	}
}

// newFillerGCell builds a filler GCell of the given size centered at
// (cx, cy). Fillers carry no pins and no source instance.
func newFillerGCell(cx, cy, dx, dy int64) *GCell {
	lx, ly := cx-dx/2, cy-dy/2
	return &GCell{
		Kind:          GCellFiller,
		Box:           geometry.NewRect(lx, ly, lx+dx, ly+dy),
		DensityScaleX: 1,
		DensityScaleY: 1,
	}
}
