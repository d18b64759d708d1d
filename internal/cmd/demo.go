package cmd

import (
	replace "github.com/enzoleo/RePlAce"
)

// demoPlacerBase is a small synthetic PlacerBase used by `nestplace
// run` to exercise the placement core end to end without a real
// netlist loader, which SPEC_FULL §1 explicitly keeps out of scope.
// Instances sit on an evenly spaced grid inside a fixed die and are
// chained into two-pin nets, deterministically, so the same run
// produces the same iteration summaries every time.
type demoPlacerBase struct {
	insts []*replace.Instance
	pins  []*replace.Pin
	nets  []*replace.Net
	die   replace.Die
}

func newDemoPlacerBase(rows, cols int, cellSize, pitch int64) *demoPlacerBase {
	pb := &demoPlacerBase{
		die: replace.Die{Lx: 0, Ly: 0, Ux: int64(cols) * pitch, Uy: int64(rows) * pitch},
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			lx := int64(c)*pitch + pitch/2 - cellSize/2
			ly := int64(r)*pitch + pitch/2 - cellSize/2
			inst := &replace.Instance{
				Name: cellName(r, c),
				Lx:   lx, Ly: ly,
				Ux: lx + cellSize, Uy: ly + cellSize,
			}
			pb.insts = append(pb.insts, inst)
		}
	}

	// Chain each cell to its right and lower neighbor with a two-pin
	// net, giving the wirelength model something non-trivial to pull on.
	index := func(r, c int) *replace.Instance { return pb.insts[r*cols+c] }
	addNet := func(a, b *replace.Instance) {
		pa := &replace.Pin{Name: "o", Inst: a}
		pb2 := &replace.Pin{Name: "i", Inst: b}
		net := &replace.Net{Name: a.Name + "_" + b.Name, Pins: []*replace.Pin{pa, pb2}}
		pa.Net, pb2.Net = net, net
		a.Pins = append(a.Pins, pa)
		b.Pins = append(b.Pins, pb2)
		pb.pins = append(pb.pins, pa, pb2)
		pb.nets = append(pb.nets, net)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				addNet(index(r, c), index(r, c+1))
			}
			if r+1 < rows {
				addNet(index(r, c), index(r+1, c))
			}
		}
	}

	return pb
}

func cellName(r, c int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	return "cell_" + string(letters[r%len(letters)]) + string(letters[c%len(letters)])
}

func (pb *demoPlacerBase) Insts() []*replace.Instance         { return pb.insts }
func (pb *demoPlacerBase) PlaceInsts() []*replace.Instance    { return pb.insts }
func (pb *demoPlacerBase) NonPlaceInsts() []*replace.Instance { return nil }
func (pb *demoPlacerBase) Pins() []*replace.Pin               { return pb.pins }
func (pb *demoPlacerBase) Nets() []*replace.Net               { return pb.nets }
func (pb *demoPlacerBase) Die() replace.Die                   { return pb.die }
