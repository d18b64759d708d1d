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

// GNet is the placement-layer mirror of one or more netlist nets
// (clustered nets share a GNet). Its eight accumulator scalars are
// wirelength-pass scratch space, rebuilt from scratch every call to
// updateWireLengthForceWA.
type GNet struct {
	// Nets holds the source netlist nets this GNet mirrors.
	Nets []*Net

	// PinIdx indexes into NesterovBase.gpins for every pin on this net.
	PinIdx []int

	// Lx, Ly, Ux, Uy is the bounding box over this net's pins,
	// recomputed at the start of every wirelength pass.
	Lx, Ly, Ux, Uy float64

	CustomWeight float64

	// waExpMinSumX/waXExpMinSumX etc. mirror the per-pin exponential
	// sums, accumulated across every pin on the net (spec §4.4).
	WaExpMinSumX, WaXExpMinSumX float64
	WaExpMaxSumX, WaXExpMaxSumX float64
	WaExpMinSumY, WaYExpMinSumY float64
	WaExpMaxSumY, WaYExpMaxSumY float64
}

// IsDontCare reports whether the net contributes nothing to wirelength:
// either it has no pins, or it was externally flagged as don't-care.
func (n *GNet) IsDontCare() bool {
	if len(n.PinIdx) == 0 {
		return true
	}
	for _, net := range n.Nets {
		if net.DontCare {
			return true
		}
	}
	return false
}

// clearAccumulators resets the bounding box and exponential-sum
// accumulators at the start of a wirelength pass.
func (n *GNet) clearAccumulators() {
	n.Lx, n.Ly, n.Ux, n.Uy = 0, 0, 0, 0
	n.WaExpMinSumX, n.WaXExpMinSumX = 0, 0
	n.WaExpMaxSumX, n.WaXExpMaxSumX = 0, 0
	n.WaExpMinSumY, n.WaYExpMinSumY = 0, 0
	n.WaExpMaxSumY, n.WaYExpMaxSumY = 0, 0
}
