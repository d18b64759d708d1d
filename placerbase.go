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

// This file describes the upstream collaborator the core reads but
// never writes (spec §6, "PlacerBase"). In the real placer this is the
// netlist loader and geometry database; here it is a narrow read-only
// interface plus the leaf value types the core needs pointer identity
// from. Pointer identity of Instance/Pin/Net is stable for the lifetime
// of a PlacerBase, which is what lets NesterovBase build its index maps
// once at init and never touch them again.

// Instance is a single placeable or fixed netlist instance.
type Instance struct {
	Name   string
	Lx, Ly int64
	Ux, Uy int64
	Fixed  bool // true for macros/blockages that never move
	Pins   []*Pin
}

// Cx is the instance's centre x-coordinate.
func (i *Instance) Cx() int64 { return (i.Lx + i.Ux) / 2 }

// Cy is the instance's centre y-coordinate.
func (i *Instance) Cy() int64 { return (i.Ly + i.Uy) / 2 }

// Dx is the instance's width.
func (i *Instance) Dx() int64 { return i.Ux - i.Lx }

// Dy is the instance's height.
func (i *Instance) Dy() int64 { return i.Uy - i.Ly }

// Pin is a single netlist pin, owned by exactly one Instance and
// connected to exactly one Net (or none, for a dangling pin).
type Pin struct {
	Name               string
	Inst               *Instance
	Net                *Net
	OffsetCx, OffsetCy int64 // offset from the owning instance's centre
}

// Net is a single netlist net connecting one or more pins.
type Net struct {
	Name     string
	Pins     []*Pin
	DontCare bool // externally flagged as not contributing to wirelength
}

// Die is the placeable die region in integer manufacturing units.
type Die struct {
	Lx, Ly, Ux, Uy int64
}

// Dx is the die's width.
func (d Die) Dx() int64 { return d.Ux - d.Lx }

// Dy is the die's height.
func (d Die) Dy() int64 { return d.Uy - d.Ly }

// Area is the die's area.
func (d Die) Area() int64 { return d.Dx() * d.Dy() }

// PlacerBase is the read-only upstream collaborator: the netlist and
// geometry database the Nesterov base layer is built on top of.
type PlacerBase interface {
	// Insts returns every instance, placeable and fixed.
	Insts() []*Instance
	// PlaceInsts returns only the movable instances.
	PlaceInsts() []*Instance
	// NonPlaceInsts returns only the fixed instances (macros, blockages).
	NonPlaceInsts() []*Instance
	// Pins returns every pin across every instance.
	Pins() []*Pin
	// Nets returns every net.
	Nets() []*Net
	// Die returns the placeable die region.
	Die() Die
}
