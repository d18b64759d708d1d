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

func approxEqual(a, b, tol float64) bool {
	d := a - b
	return d < tol && d > -tol
}

// buildTwoPinGraph returns a single net with two pins at (x0,y) and
// (x1,y), each owned by its own one-pin GCell, wired up through the
// façade arenas directly (bypassing NesterovBase, since this test only
// exercises WirelengthModel).
func buildTwoPinGraph(x0, x1, y int64) ([]*GCell, []*GPin, []*GNet) {
	ca := newInstanceGCell(&Instance{Lx: x0, Ly: y, Ux: x0, Uy: y})
	cb := newInstanceGCell(&Instance{Lx: x1, Ly: y, Ux: x1, Uy: y})
	ca.PinIdx = []int{0}
	cb.PinIdx = []int{1}

	pa := &GPin{CellIdx: 0, NetIdx: 0, Cx: float64(x0), Cy: float64(y)}
	pb := &GPin{CellIdx: 1, NetIdx: 0, Cx: float64(x1), Cy: float64(y)}

	n := &GNet{Nets: []*Net{{Name: "n", Pins: []*Pin{{}, {}}}}, PinIdx: []int{0, 1}}

	return []*GCell{ca, cb}, []*GPin{pa, pb}, []*GNet{n}
}

// TestWirelengthTwoPinTranslation is scenario S4: a two-pin net with
// pins at (0,0) and (100,0), γ=0.01. The gradient on each pin's cell
// must be equal and opposite in X, zero in Y, and invariant under
// translating both pins by the same offset.
func TestWirelengthTwoPinTranslation(t *testing.T) {
	wl := NewWirelengthModel(-300)

	run := func(x0, x1, y int64) (gxA, gyA, gxB, gyB float64) {
		cells, pins, nets := buildTwoPinGraph(x0, x1, y)
		wl.UpdateWireLengthForceWA(pins, nets, 0.01, 0.01)
		gxA, gyA = wl.GetWireLengthGradientWA(0, cells, pins, nets, 0.01, 0.01)
		gxB, gyB = wl.GetWireLengthGradientWA(1, cells, pins, nets, 0.01, 0.01)
		return
	}

	gxA, gyA, gxB, gyB := run(0, 100, 0)
	if !approxEqual(gxA, -gxB, 1e-9) {
		t.Errorf("want opposite-sign X gradients, got gxA=%v gxB=%v", gxA, gxB)
	}
	if gxA == 0 {
		t.Errorf("want nonzero X gradient on pin A")
	}
	if !approxEqual(gyA, 0, 1e-9) || !approxEqual(gyB, 0, 1e-9) {
		t.Errorf("want zero Y gradients, got gyA=%v gyB=%v", gyA, gyB)
	}

	gxA2, gyA2, gxB2, gyB2 := run(50, 150, 50)
	if !approxEqual(gxA, gxA2, 1e-4) || !approxEqual(gxB, gxB2, 1e-4) {
		t.Errorf("gradient not translation invariant in X: before=(%v,%v) after=(%v,%v)", gxA, gxB, gxA2, gxB2)
	}
	if !approxEqual(gyA, gyA2, 1e-4) || !approxEqual(gyB, gyB2, 1e-4) {
		t.Errorf("gradient not translation invariant in Y: before=(%v,%v) after=(%v,%v)", gyA, gyB, gyA2, gyB2)
	}
}

// TestWirelengthCoincidentPins is invariant 6: when every pin of a net
// coincides at one point, every waExp*Sum* equals the pin count and
// every gradient is 0.
func TestWirelengthCoincidentPins(t *testing.T) {
	cells, pins, nets := buildTwoPinGraph(42, 42, 7)
	wl := NewWirelengthModel(-300)
	wl.UpdateWireLengthForceWA(pins, nets, 0.01, 0.01)

	n := nets[0]
	for _, sum := range []float64{n.WaExpMinSumX, n.WaExpMaxSumX, n.WaExpMinSumY, n.WaExpMaxSumY} {
		if !approxEqual(sum, 2, 1e-9) {
			t.Errorf("want waExpSum=2 (pin count), got %v", sum)
		}
	}

	gx, gy := wl.GetWireLengthGradientWA(0, cells, pins, nets, 0.01, 0.01)
	if !approxEqual(gx, 0, 1e-9) || !approxEqual(gy, 0, 1e-9) {
		t.Errorf("want zero gradient for coincident pins, got (%v,%v)", gx, gy)
	}
}

// TestDontCareNet is scenario S5: a net with zero pins contributes
// nothing and reports IsDontCare.
func TestDontCareNet(t *testing.T) {
	n := &GNet{Nets: []*Net{{Name: "empty"}}}
	if !n.IsDontCare() {
		t.Errorf("want IsDontCare true for a zero-pin net")
	}

	wl := NewWirelengthModel(-300)
	wl.UpdateWireLengthForceWA(nil, []*GNet{n}, 0.01, 0.01)
	for _, sum := range []float64{n.WaExpMinSumX, n.WaExpMaxSumX, n.WaExpMinSumY, n.WaExpMaxSumY} {
		if sum != 0 {
			t.Errorf("want zero accumulator for a don't-care net, got %v", sum)
		}
	}
}

func TestFastExp(t *testing.T) {
	// fastExp(0) must be 1 exactly: (1+0/1024)^1024 == 1.
	if got := fastExp(0); got != 1 {
		t.Errorf("fastExp(0): want 1, got %v", got)
	}
	// Sanity check against a known small value, loose tolerance since
	// fastExp is an approximation, not math.Exp.
	if got := fastExp(1); got < 2.5 || got > 2.9 {
		t.Errorf("fastExp(1): want ≈e (2.71828), got %v", got)
	}
}
