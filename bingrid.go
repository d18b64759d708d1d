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
	"github.com/ctessum/sparse"
	"github.com/enzoleo/RePlAce/geometry"
)

// Bin is one cell of the uniform density grid: an absolute box plus
// three area accumulators (spec §3). Density/phi/electric-force fields
// live on BinGrid as dense arrays rather than per-Bin scalars, since
// those are what gets handed to and read back from the FFT collaborator
// as a whole grid at a time.
type Bin struct {
	X, Y int // grid-relative integer coordinates
	Box  geometry.Rect

	NonPlaceArea float64 // immutable after init
	PlacedArea   float64 // recomputed every iteration
	FillerArea   float64 // recomputed every iteration
}

// BinGrid is the uniform grid overlaying the die that cell density is
// deposited and spread on (spec §3, §4.2). Nx, Ny, Sx, Sy are immutable
// once InitBins returns.
type BinGrid struct {
	Die           Die
	Nx, Ny        int
	Sx, Sy        int64
	TargetDensity float64

	bins []Bin // row-major, length Nx*Ny

	// Density, Phi, ElectroForceX, ElectroForceY are the per-bin scalar
	// fields populated by the FFT/Poisson collaborator (spec §4.5,
	// §4.6). Shape is (Ny, Nx), matching the row-major bin layout.
	Density       *sparse.DenseArray
	Phi           *sparse.DenseArray
	ElectroForceX *sparse.DenseArray
	ElectroForceY *sparse.DenseArray
}

// binIndex returns the row-major index of bin (x, y).
func (g *BinGrid) binIndex(x, y int) int { return y*g.Nx + x }

// Bin returns a pointer to the bin at grid coordinates (x, y).
func (g *BinGrid) Bin(x, y int) *Bin { return &g.bins[g.binIndex(x, y)] }

// Bins returns every bin, row-major.
func (g *BinGrid) Bins() []Bin { return g.bins }

// minPowerOfTwoBinCount picks the smallest power-of-two k in {2,4,...,1024}
// such that k*k <= idealBinCnt < (2k)*(2k), per spec §4.2 step 4.
func minPowerOfTwoBinCount(idealBinCnt int64) int {
	k := 2
	for int64(k)*int64(k) <= idealBinCnt && k < 1024 {
		if int64(2*k)*int64(2*k) > idealBinCnt {
			return k
		}
		k *= 2
	}
	return k
}

// ceilDiv divides rounding up, for positive operands only.
func ceilDiv(a, b int64) int64 {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// InitBins builds the bin grid from placeInsts()/nonPlaceInsts()
// (spec §4.2). binCntX and binCntY, if both positive, override the
// automatic power-of-two bin count.
func InitBins(pb PlacerBase, targetDensity float64, binCntX, binCntY int) (*BinGrid, error) {
	placeInsts := pb.PlaceInsts()
	if len(placeInsts) == 0 {
		return nil, ErrCoreEmpty
	}
	die := pb.Die()
	if die.Area() <= 0 {
		return nil, ErrDegenerateGeometry
	}

	var totalArea int64
	for _, inst := range placeInsts {
		totalArea += inst.Dx() * inst.Dy()
	}
	avgInstArea := float64(totalArea) / float64(len(placeInsts))
	idealBinArea := int64(avgInstArea/targetDensity + 0.5)
	if idealBinArea <= 0 {
		return nil, ErrDegenerateGeometry
	}
	idealBinCnt := die.Area() / idealBinArea

	nx, ny := binCntX, binCntY
	if nx <= 0 || ny <= 0 {
		k := minPowerOfTwoBinCount(idealBinCnt)
		nx, ny = k, k
	}

	sx := ceilDiv(die.Dx(), int64(nx))
	sy := ceilDiv(die.Dy(), int64(ny))
	if sx <= 0 || sy <= 0 {
		return nil, ErrDegenerateGeometry
	}

	g := &BinGrid{
		Die:           die,
		Nx:            nx,
		Ny:            ny,
		Sx:            sx,
		Sy:            sy,
		TargetDensity: targetDensity,
		bins:          make([]Bin, nx*ny),
		Density:       sparse.ZerosDense(ny, nx),
		Phi:           sparse.ZerosDense(ny, nx),
		ElectroForceX: sparse.ZerosDense(ny, nx),
		ElectroForceY: sparse.ZerosDense(ny, nx),
	}

	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			lx := minInt64(die.Lx+int64(x)*sx, die.Ux)
			ly := minInt64(die.Ly+int64(y)*sy, die.Uy)
			ux := minInt64(lx+sx, die.Ux)
			uy := minInt64(ly+sy, die.Uy)
			g.bins[g.binIndex(x, y)] = Bin{
				X:   x,
				Y:   y,
				Box: geometry.NewRect(lx, ly, ux, uy),
			}
		}
	}

	for _, inst := range pb.NonPlaceInsts() {
		box := geometry.NewRect(inst.Lx, inst.Ly, inst.Ux, inst.Uy)
		g.depositArea(box, func(b *Bin, area float64) { b.NonPlaceArea += area })
	}

	return g, nil
}

// binRange returns the half-open [min, max) bin-index range a box
// spans along one axis, per the tie-break rule in spec §4.2: a box
// flush with a bin boundary does not extend into the next bin.
func binRange(lo, hi, origin, size int64, count int) (int, int) {
	iMin := int((lo - origin) / size)
	var iMax int
	rel := hi - origin
	if rel%size == 0 {
		iMax = int(rel / size)
	} else {
		iMax = int(rel/size) + 1
	}
	if iMin < 0 {
		iMin = 0
	}
	if iMax > count {
		iMax = count
	}
	return iMin, iMax
}

// depositArea adds accumulate(bin, overlapArea) for every bin box
// touches.
func (g *BinGrid) depositArea(box geometry.Rect, accumulate func(*Bin, float64)) {
	ixMin, ixMax := binRange(box.Lx, box.Ux, g.Die.Lx, g.Sx, g.Nx)
	iyMin, iyMax := binRange(box.Ly, box.Uy, g.Die.Ly, g.Sy, g.Ny)
	for y := iyMin; y < iyMax; y++ {
		for x := ixMin; x < ixMax; x++ {
			b := g.Bin(x, y)
			area := float64(geometry.OverlapArea(box, b.Box))
			if area > 0 {
				accumulate(b, area)
			}
		}
	}
}

// depositAreaF is the float-box counterpart of depositArea, used for
// density-box deposition.
func (g *BinGrid) depositAreaF(box geometry.FloatRect, accumulate func(*Bin, float64)) {
	ixMin, ixMax := binRangeF(box.Lx, box.Ux, float64(g.Die.Lx), float64(g.Sx), g.Nx)
	iyMin, iyMax := binRangeF(box.Ly, box.Uy, float64(g.Die.Ly), float64(g.Sy), g.Ny)
	for y := iyMin; y < iyMax; y++ {
		for x := ixMin; x < ixMax; x++ {
			b := g.Bin(x, y)
			area := geometry.OverlapAreaF(box, geometry.FromRect(b.Box))
			if area > 0 {
				accumulate(b, area)
			}
		}
	}
}

func binRangeF(lo, hi, origin, size float64, count int) (int, int) {
	iMin := int((lo - origin) / size)
	rel := hi - origin
	var iMax int
	// A float box exactly flush with a bin edge follows the same
	// non-extension rule as the integer case.
	q := rel / size
	if q == float64(int(q)) {
		iMax = int(q)
	} else {
		iMax = int(q) + 1
	}
	if iMin < 0 {
		iMin = 0
	}
	if iMax > count {
		iMax = count
	}
	return iMin, iMax
}

// UpdateBinsGCellArea clears and recomputes PlacedArea/FillerArea from
// each cell's placement box (spec §4.2).
func (g *BinGrid) UpdateBinsGCellArea(cells []*GCell) {
	g.resetAreas()
	for _, c := range cells {
		var target func(*Bin, float64)
		switch {
		case c.IsFiller():
			target = func(b *Bin, a float64) { b.FillerArea += a }
		default:
			target = func(b *Bin, a float64) { b.PlacedArea += a }
		}
		g.depositArea(c.Box, target)
	}
}

// UpdateBinsGCellDensityArea is UpdateBinsGCellArea but reads each
// cell's density box instead of its placement box; this is the routine
// called every outer iteration (spec §4.2).
func (g *BinGrid) UpdateBinsGCellDensityArea(cells []*GCell) {
	g.resetAreas()
	for _, c := range cells {
		var target func(*Bin, float64)
		switch {
		case c.IsFiller():
			target = func(b *Bin, a float64) { b.FillerArea += a }
		default:
			target = func(b *Bin, a float64) { b.PlacedArea += a }
		}
		g.depositAreaF(c.DBox, target)
	}
}

func (g *BinGrid) resetAreas() {
	for i := range g.bins {
		g.bins[i].PlacedArea = 0
		g.bins[i].FillerArea = 0
	}
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
