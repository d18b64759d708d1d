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

import (
	"math"

	"github.com/enzoleo/RePlAce/geometry"
)

// sqrt2 is used repeatedly in the density-box inflation formula below.
var sqrt2 = math.Sqrt2

// ComputeDensityBox derives c.DBox and c.DensityScaleX/Y from c.Box and
// the bin sizes (spec §4.5): a cell smaller than √2·binSize on an axis
// is resized to √2·binSize/2 on that axis, with scale factor
// dx/(√2·binSize). On such an axis scale·densityDx is dx/2, so the mass
// deposited for a tiny cell is half its extent per resized axis (a
// quarter of its area when both axes are resized). The box stays
// centred on the placement box's centre.
func ComputeDensityBox(c *GCell, sx, sy int64) {
	cx := float64(c.Box.Lx+c.Box.Ux) / 2
	cy := float64(c.Box.Ly+c.Box.Uy) / 2
	dx, dy := float64(c.Box.Dx()), float64(c.Box.Dy())

	threshX := sqrt2 * float64(sx)
	var scaleX, densityDx float64
	if dx < threshX {
		scaleX = dx / threshX
		densityDx = threshX / 2
	} else {
		scaleX = 1
		densityDx = dx
	}

	threshY := sqrt2 * float64(sy)
	var scaleY, densityDy float64
	if dy < threshY {
		scaleY = dy / threshY
		densityDy = threshY / 2
	} else {
		scaleY = 1
		densityDy = dy
	}

	c.DensityScaleX, c.DensityScaleY = scaleX, scaleY
	c.DBox = geometry.FloatRect{
		Lx: cx - densityDx/2,
		Ly: cy - densityDy/2,
		Ux: cx + densityDx/2,
		Uy: cy + densityDy/2,
	}
}

// DensityModel deposits scaled cell-density-box overlap into the bin
// grid's Density field, which updateDensityForceBin then hands to the
// FFT/Poisson collaborator (spec §4.5).
type DensityModel struct{}

// Deposit zeroes bg.Density and re-accumulates scale·overlapArea(DBox,
// binBox) for every cell.
func (DensityModel) Deposit(bg *BinGrid, cells []*GCell) {
	for y := 0; y < bg.Ny; y++ {
		for x := 0; x < bg.Nx; x++ {
			bg.Density.Set(0, y, x)
		}
	}
	for _, c := range cells {
		scale := c.DensityScale()
		bg.depositAreaF(c.DBox, func(b *Bin, area float64) {
			bg.Density.AddVal(scale*area, b.Y, b.X)
		})
	}
}

// UpdateDensityForceBin pushes every bin's density into solver, solves,
// and copies the resulting phi/electric-force fields back onto bg
// (spec §4.5, §4.6). solver is the opaque FFT/Poisson collaborator.
func (g *BinGrid) UpdateDensityForceBin(solver FFTSolver) {
	for y := 0; y < g.Ny; y++ {
		for x := 0; x < g.Nx; x++ {
			solver.UpdateDensity(x, y, g.Density.Get(y, x))
		}
	}
	solver.Solve()
	for y := 0; y < g.Ny; y++ {
		for x := 0; x < g.Nx; x++ {
			g.Phi.Set(solver.Phi(x, y), y, x)
			g.ElectroForceX.Set(solver.ElectroForceX(x, y), y, x)
			g.ElectroForceY.Set(solver.ElectroForceY(x, y), y, x)
		}
	}
}

// GetDensityGradient returns the density-force gradient for a cell:
// the area-weighted average of the electric force over every bin the
// cell's density box overlaps. This is the standard ePlace formulation;
// spec §4.5/§4.6 name the call but leave its internals to the
// collaborator-facing implementation (recorded as an open-question
// decision in DESIGN.md).
func (g *BinGrid) GetDensityGradient(c *GCell) (gx, gy float64) {
	area := c.DBox.Area()
	if area == 0 {
		c.GradX, c.GradY = 0, 0
		return 0, 0
	}
	g.depositAreaF(c.DBox, func(b *Bin, overlap float64) {
		w := overlap / area
		gx += w * g.ElectroForceX.Get(b.Y, b.X)
		gy += w * g.ElectroForceY.Get(b.Y, b.X)
	})
	c.GradX, c.GradY = gx, gy
	return gx, gy
}

// DensityPrecondition is the density preconditioner diagonal entry for
// a cell: its placement-box area, on both axes (spec §4.5).
func DensityPrecondition(c *GCell) float64 {
	return float64(c.Box.Dx() * c.Box.Dy())
}
