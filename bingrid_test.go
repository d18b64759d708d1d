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
	"testing"

	"github.com/enzoleo/RePlAce/geometry"
)

// TestInitBinsTrivialGrid is scenario S1: a 1000x1000 die, four unit
// squares at its corners, targetDensity 1.0, with an explicit 2x2 bin
// count override, should yield each corner bin carrying placedArea 1
// after deposition. S1's "Nx=Ny=2" only holds with this override: the
// §4.2 auto-sizing formula on these inputs (avgInstArea=1, idealBinArea=1,
// idealBinCnt=1_000_000) picks Nx=Ny=512, not 2.
func TestInitBinsTrivialGrid(t *testing.T) {
	pb := newUnitSquareCorners()
	bg, err := InitBins(pb, 1.0, 2, 2)
	if err != nil {
		t.Fatalf("InitBins: %v", err)
	}
	if bg.Nx != 2 || bg.Ny != 2 {
		t.Fatalf("want Nx=Ny=2, got Nx=%d Ny=%d", bg.Nx, bg.Ny)
	}

	cells := make([]*GCell, len(pb.insts))
	for i, inst := range pb.insts {
		cells[i] = newInstanceGCell(inst)
	}
	bg.UpdateBinsGCellArea(cells)

	for _, b := range bg.Bins() {
		if b.PlacedArea != 1 {
			t.Errorf("bin (%d,%d): want placedArea=1, got %v", b.X, b.Y, b.PlacedArea)
		}
	}
}

// TestInitBinsAutoSizing checks the §4.2 auto-sizing formula directly:
// on the S1 inputs without a binCntX/binCntY override, avgInstArea=1
// and idealBinArea=1 over a 1000x1000 die give idealBinCnt=1_000_000,
// and the smallest power-of-two k with k² ≤ idealBinCnt < (2k)² is 512.
func TestInitBinsAutoSizing(t *testing.T) {
	pb := newUnitSquareCorners()
	bg, err := InitBins(pb, 1.0, 0, 0)
	if err != nil {
		t.Fatalf("InitBins: %v", err)
	}
	if bg.Nx != 512 || bg.Ny != 512 {
		t.Fatalf("want Nx=Ny=512, got Nx=%d Ny=%d", bg.Nx, bg.Ny)
	}
}

// TestInitBinsDegenerate checks the CoreEmpty and DegenerateGeometry
// failure modes from spec §4.2.
func TestInitBinsDegenerate(t *testing.T) {
	empty := &fakePlacerBase{die: Die{Lx: 0, Ly: 0, Ux: 100, Uy: 100}}
	if _, err := InitBins(empty, 1.0, 0, 0); err != ErrCoreEmpty {
		t.Errorf("want ErrCoreEmpty, got %v", err)
	}

	degenerate := &fakePlacerBase{
		insts: []*Instance{{Lx: 0, Ly: 0, Ux: 1, Uy: 1}},
		die:   Die{Lx: 0, Ly: 0, Ux: 0, Uy: 100},
	}
	if _, err := InitBins(degenerate, 1.0, 0, 0); err != ErrDegenerateGeometry {
		t.Errorf("want ErrDegenerateGeometry, got %v", err)
	}
}

// TestComputeDensityBoxTinyCellScaling is scenario S2: a 1x1 cell in a
// 256x256 die with an 8x8 bin grid (Sx=Sy=32) gets inflated to
// densityDx=densityDy≈22.6 with a per-axis scale of 1/45.25,
// per spec §4.5, §8 invariant 2.
func TestComputeDensityBoxTinyCellScaling(t *testing.T) {
	c := newInstanceGCell(&Instance{Lx: 100, Ly: 100, Ux: 101, Uy: 101})
	ComputeDensityBox(c, 32, 32)

	wantScale := 1.0 / (sqrt2 * 32)
	if diff := c.DensityScaleX - wantScale; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("DensityScaleX: want %v, got %v", wantScale, c.DensityScaleX)
	}
	wantDx := sqrt2 * 32 / 2
	if diff := c.DBox.Dx() - wantDx; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("DBox.Dx(): want %v, got %v", wantDx, c.DBox.Dx())
	}

	// Invariant 2: densityScale is scaleX*scaleY, so a cell scaled
	// identically on both axes gets densityScale == wantScale² — not
	// the cell's own area (spec §8 invariant 2 is an inequality on
	// deposited area, not an equality to 1).
	wantDensityScale := wantScale * wantScale
	if diff := c.DensityScale() - wantDensityScale; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("DensityScale(): want %v, got %v", wantDensityScale, c.DensityScale())
	}
}

// TestUpdateBinsGCellDensityAreaMatchesDensityBoxArea is invariant 3:
// after updateBinsGCellDensityArea, the sum of per-bin placedArea
// equals the sum of per-cell density-box areas clipped to the die.
func TestUpdateBinsGCellDensityAreaMatchesDensityBoxArea(t *testing.T) {
	pb := newUnitSquareCorners()
	bg, err := InitBins(pb, 1.0, 2, 2)
	if err != nil {
		t.Fatalf("InitBins: %v", err)
	}
	var cells []*GCell
	for _, inst := range pb.insts {
		c := newInstanceGCell(inst)
		ComputeDensityBox(c, bg.Sx, bg.Sy)
		cells = append(cells, c)
	}
	bg.UpdateBinsGCellDensityArea(cells)

	var binSum, cellSum float64
	for _, b := range bg.Bins() {
		binSum += b.PlacedArea + b.FillerArea
	}
	dieBox := geometry.FromRect(geometry.NewRect(bg.Die.Lx, bg.Die.Ly, bg.Die.Ux, bg.Die.Uy))
	for _, c := range cells {
		cellSum += geometry.OverlapAreaF(c.DBox, dieBox)
	}
	if diff := binSum - cellSum; diff > 1.0 || diff < -1.0 {
		t.Errorf("bin area sum %v does not match cell density-box area sum %v", binSum, cellSum)
	}
}

// TestUpdateBinsGCellAreaInvariant1 checks that placed+filler+nonPlace
// area never exceeds the die area, and that it equals the total cell
// area when every cell lies fully inside the die.
func TestUpdateBinsGCellAreaInvariant1(t *testing.T) {
	pb := newUnitSquareCorners()
	bg, err := InitBins(pb, 1.0, 0, 0)
	if err != nil {
		t.Fatalf("InitBins: %v", err)
	}
	var cells []*GCell
	for _, inst := range pb.insts {
		cells = append(cells, newInstanceGCell(inst))
	}
	bg.UpdateBinsGCellArea(cells)

	var total float64
	for _, b := range bg.Bins() {
		total += b.PlacedArea + b.FillerArea + b.NonPlaceArea
	}
	dieArea := float64(bg.Die.Area())
	if total > dieArea+1e-6 {
		t.Errorf("total deposited area %v exceeds die area %v", total, dieArea)
	}
	if diff := total - 4.0; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("total deposited area: want 4 (four unit squares), got %v", total)
	}
}
