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

import "testing"

// TestNewNesterovBaseWiresArenas checks that the façade builds a GCell
// per placeable instance plus fillers, a GPin per netlist pin, and a
// GNet per netlist net, with pin positions derived from their owning
// cell's centre.
func TestNewNesterovBaseWiresArenas(t *testing.T) {
	pb := newTwoPinNet(0, 100, 0)
	nb, err := NewNesterovBase(pb, Config{TargetDensity: 0.3, MinAvgCut: 0.1, MaxAvgCut: 0.9, MinWireLengthForceBar: -300})
	if err != nil {
		t.Fatalf("NewNesterovBase: %v", err)
	}

	if len(nb.GPins()) != 2 {
		t.Fatalf("want 2 GPins, got %d", len(nb.GPins()))
	}
	if len(nb.GNets()) != 1 {
		t.Fatalf("want 1 GNet, got %d", len(nb.GNets()))
	}
	instanceCells := 0
	for _, c := range nb.GCells() {
		if c.IsInstance() {
			instanceCells++
		}
	}
	if instanceCells != 2 {
		t.Fatalf("want 2 instance GCells, got %d", instanceCells)
	}

	for _, p := range nb.GPins() {
		c := nb.GCells()[p.CellIdx]
		if p.Cx != float64(c.Box.Cx()) || p.Cy != float64(c.Box.Cy()) {
			t.Errorf("pin position %v,%v does not match owning cell centre %v,%v", p.Cx, p.Cy, c.Box.Cx(), c.Box.Cy())
		}
	}
}

// TestUpdateGCellCenterLocationPropagatesToPins checks that moving a
// GCell's placement box recomputes the position of every pin it owns.
func TestUpdateGCellCenterLocationPropagatesToPins(t *testing.T) {
	pb := newTwoPinNet(0, 100, 0)
	nb, err := NewNesterovBase(pb, Config{TargetDensity: 0.3, MinAvgCut: 0.1, MaxAvgCut: 0.9, MinWireLengthForceBar: -300})
	if err != nil {
		t.Fatalf("NewNesterovBase: %v", err)
	}

	coords := make([]Coord, len(nb.GCells()))
	for i, c := range nb.GCells() {
		coords[i] = Coord{X: c.Box.Cx() + 10, Y: c.Box.Cy() + 20}
	}
	nb.UpdateGCellCenterLocation(coords)

	for i, c := range nb.GCells() {
		if c.Box.Cx() != coords[i].X || c.Box.Cy() != coords[i].Y {
			t.Errorf("cell %d centre: want (%d,%d), got (%d,%d)", i, coords[i].X, coords[i].Y, c.Box.Cx(), c.Box.Cy())
		}
		for _, pi := range c.PinIdx {
			p := nb.GPins()[pi]
			if p.Cx != float64(coords[i].X)+p.OffsetCx || p.Cy != float64(coords[i].Y)+p.OffsetCy {
				t.Errorf("pin %d not repositioned after cell %d moved", pi, i)
			}
		}
	}
}
