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
	"math/rand"
	"sort"
)

// fillerRNGSeed is fixed so that filler synthesis is deterministic
// (spec §4.3, test-visible contract, invariant 5). This uses Go's
// stdlib math/rand rather than a ported Mersenne Twister: the contract
// under test is "same inputs produce identical filler coordinates
// within this implementation," not bit-for-bit compatibility with the
// original C++ RNG, and no Mersenne Twister package exists among the
// dependencies this repository otherwise draws on.
const fillerRNGSeed = 0

// trimmedMeanCellSize computes the per-axis trimmed-mean size of insts
// (spec §4.3): sort each axis independently, then average the interval
// [minIdx, maxIdx). Guards the tiny-design case where minIdx==maxIdx
// (spec §9 off-by-one note) by widening the interval by one.
func trimmedMeanCellSize(insts []*Instance, minCut, maxCut float64) (avgDx, avgDy float64) {
	n := len(insts)
	dxs := make([]float64, n)
	dys := make([]float64, n)
	for i, inst := range insts {
		dxs[i] = float64(inst.Dx())
		dys[i] = float64(inst.Dy())
	}
	sort.Float64s(dxs)
	sort.Float64s(dys)

	minIdx := int(minCut * float64(n))
	maxIdx := int(maxCut * float64(n))
	if maxIdx <= minIdx {
		maxIdx = minIdx + 1
	}
	if maxIdx > n {
		maxIdx = n
	}
	if minIdx >= maxIdx {
		minIdx = maxIdx - 1
	}

	var dxSum, dySum float64
	for i := minIdx; i < maxIdx; i++ {
		dxSum += dxs[i]
		dySum += dys[i]
	}
	denom := float64(maxIdx - minIdx)
	return dxSum / denom, dySum / denom
}

// SynthesizeFillers computes the filler budget for targetDensity and
// generates that many filler GCells at pseudo-random positions inside
// the die (spec §4.3). minCut/maxCut are the trimmed-mean cut points
// (CLI options minAvgCut/maxAvgCut, default 0.1/0.9).
func SynthesizeFillers(pb PlacerBase, bg *BinGrid, targetDensity, minCut, maxCut float64) ([]*GCell, error) {
	placeInsts := pb.PlaceInsts()
	avgDx, avgDy := trimmedMeanCellSize(placeInsts, minCut, maxCut)
	if avgDx <= 0 || avgDy <= 0 {
		return nil, ErrDegenerateGeometry
	}

	var nonPlaceArea, placeArea float64
	for i := range bg.bins {
		nonPlaceArea += bg.bins[i].NonPlaceArea
	}
	for _, inst := range placeInsts {
		placeArea += float64(inst.Dx() * inst.Dy())
	}

	coreArea := float64(bg.Die.Area())
	whiteSpace := coreArea - nonPlaceArea
	movableArea := whiteSpace * targetDensity
	totalFiller := movableArea - placeArea
	if totalFiller < 0 {
		return nil, ErrInsufficientWhitespace
	}

	fillerCnt := int(totalFiller / (avgDx * avgDy))
	dx, dy := int64(avgDx+0.5), int64(avgDy+0.5)
	if dx <= 0 {
		dx = 1
	}
	if dy <= 0 {
		dy = 1
	}

	rng := rand.New(rand.NewSource(fillerRNGSeed))
	fillers := make([]*GCell, fillerCnt)
	die := bg.Die
	spanX := die.Dx() - dx
	spanY := die.Dy() - dy
	if spanX < 0 {
		spanX = 0
	}
	if spanY < 0 {
		spanY = 0
	}
	for i := 0; i < fillerCnt; i++ {
		lx := die.Lx + dx/2
		if spanX > 0 {
			lx += rng.Int63n(spanX)
		}
		ly := die.Ly + dy/2
		if spanY > 0 {
			ly += rng.Int63n(spanY)
		}
		fillers[i] = newFillerGCell(lx, ly, dx, dy)
	}
	return fillers, nil
}
