package replace

// fakePlacerBase is a minimal in-memory PlacerBase used across the
// package's test files to build small, hand-checkable netlists.
type fakePlacerBase struct {
	insts    []*Instance
	nonPlace []*Instance
	pins     []*Pin
	nets     []*Net
	die      Die
}

func (f *fakePlacerBase) Insts() []*Instance {
	return append(append([]*Instance{}, f.insts...), f.nonPlace...)
}
func (f *fakePlacerBase) PlaceInsts() []*Instance    { return f.insts }
func (f *fakePlacerBase) NonPlaceInsts() []*Instance { return f.nonPlace }
func (f *fakePlacerBase) Pins() []*Pin               { return f.pins }
func (f *fakePlacerBase) Nets() []*Net               { return f.nets }
func (f *fakePlacerBase) Die() Die                   { return f.die }

// newUnitSquareCorners builds the S1 scenario: a 1000x1000 die with
// four unit-square placeable instances at its corners.
func newUnitSquareCorners() *fakePlacerBase {
	mk := func(lx, ly int64) *Instance {
		return &Instance{Lx: lx, Ly: ly, Ux: lx + 1, Uy: ly + 1}
	}
	return &fakePlacerBase{
		insts: []*Instance{
			mk(0, 0),
			mk(999, 0),
			mk(0, 999),
			mk(999, 999),
		},
		die: Die{Lx: 0, Ly: 0, Ux: 1000, Uy: 1000},
	}
}

// newTwoPinNet builds the S4 scenario: a single net with two pins at
// (x0, y) and (x1, y) on two otherwise unconnected instances.
func newTwoPinNet(x0, x1, y int64) *fakePlacerBase {
	a := &Instance{Lx: x0 - 1, Ly: y - 1, Ux: x0 + 1, Uy: y + 1}
	b := &Instance{Lx: x1 - 1, Ly: y - 1, Ux: x1 + 1, Uy: y + 1}
	pa := &Pin{Name: "a", Inst: a}
	pb := &Pin{Name: "b", Inst: b}
	net := &Net{Name: "n", Pins: []*Pin{pa, pb}}
	pa.Net, pb.Net = net, net
	a.Pins = []*Pin{pa}
	b.Pins = []*Pin{pb}
	return &fakePlacerBase{
		insts: []*Instance{a, b},
		pins:  []*Pin{pa, pb},
		nets:  []*Net{net},
		die:   Die{Lx: -20, Ly: -20, Ux: x1 + 20, Uy: 20},
	}
}
