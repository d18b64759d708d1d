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

// Package geometry holds the integer and float rectangle primitives
// shared by the placement core: the placer reasons about cell and bin
// geometry in integer manufacturing units, but the density deposition
// path needs a float-capable box for cells that get scaled up to avoid
// degenerate overlap arithmetic.
package geometry

import "github.com/ctessum/geom"

// Rect is an axis-aligned integer rectangle in manufacturing units.
// The zero value is degenerate (a single point at the origin); callers
// that build rectangles incrementally should start from NewRect.
type Rect struct {
	Lx, Ly, Ux, Uy int64
}

// NewRect builds a Rect, panicking if the bounds are inverted. Inverted
// bounds indicate a bug in the caller, not a recoverable input error.
func NewRect(lx, ly, ux, uy int64) Rect {
	if lx > ux || ly > uy {
		panic("geometry: inverted rectangle bounds")
	}
	return Rect{Lx: lx, Ly: ly, Ux: ux, Uy: uy}
}

// Dx is the rectangle's width.
func (r Rect) Dx() int64 { return r.Ux - r.Lx }

// Dy is the rectangle's height.
func (r Rect) Dy() int64 { return r.Uy - r.Ly }

// Cx is the rectangle's centre x-coordinate, integer-divided (truncated
// toward zero).
func (r Rect) Cx() int64 { return (r.Lx + r.Ux) / 2 }

// Cy is the rectangle's centre y-coordinate, integer-divided (truncated
// toward zero).
func (r Rect) Cy() int64 { return (r.Ly + r.Uy) / 2 }

// Area is the rectangle's area as a 64-bit integer.
func (r Rect) Area() int64 { return r.Dx() * r.Dy() }

// OverlapArea returns the overlap area of a and b, or 0 if they don't
// overlap. Flush-touching rectangles (sharing only an edge) overlap in
// zero area, consistent with the half-open bin indexing in bingrid.go.
func OverlapArea(a, b Rect) int64 {
	dx := min64(a.Ux, b.Ux) - max64(a.Lx, b.Lx)
	if dx < 0 {
		dx = 0
	}
	dy := min64(a.Uy, b.Uy) - max64(a.Ly, b.Ly)
	if dy < 0 {
		dy = 0
	}
	return dx * dy
}

// FloatRect is the float-capable counterpart of Rect, used for the
// density box: a GCell smaller than one bin gets inflated in density
// space while its placement box (a Rect) stays exact.
type FloatRect struct {
	Lx, Ly, Ux, Uy float64
}

// Dx is the rectangle's width.
func (r FloatRect) Dx() float64 { return r.Ux - r.Lx }

// Dy is the rectangle's height.
func (r FloatRect) Dy() float64 { return r.Uy - r.Ly }

// Cx is the rectangle's centre x-coordinate.
func (r FloatRect) Cx() float64 { return (r.Lx + r.Ux) / 2 }

// Cy is the rectangle's centre y-coordinate.
func (r FloatRect) Cy() float64 { return (r.Ly + r.Uy) / 2 }

// Area is the rectangle's area.
func (r FloatRect) Area() float64 { return r.Dx() * r.Dy() }

// OverlapAreaF returns the overlap area of a and b, or 0 if disjoint.
func OverlapAreaF(a, b FloatRect) float64 {
	dx := fmin(a.Ux, b.Ux) - fmax(a.Lx, b.Lx)
	if dx < 0 {
		dx = 0
	}
	dy := fmin(a.Uy, b.Uy) - fmax(a.Ly, b.Ly)
	if dy < 0 {
		dy = 0
	}
	return dx * dy
}

// FromRect converts an integer Rect to a FloatRect.
func FromRect(r Rect) FloatRect {
	return FloatRect{Lx: float64(r.Lx), Ly: float64(r.Ly), Ux: float64(r.Ux), Uy: float64(r.Uy)}
}

// ToBounds converts r to a *geom.Bounds, the float-geometry type used at
// the edges of the dependency graph (rtree indices, projections).
func (r FloatRect) ToBounds() *geom.Bounds {
	return &geom.Bounds{
		Min: geom.Point{X: r.Lx, Y: r.Ly},
		Max: geom.Point{X: r.Ux, Y: r.Uy},
	}
}

// FromBounds converts a *geom.Bounds to a FloatRect.
func FromBounds(b *geom.Bounds) FloatRect {
	return FloatRect{Lx: b.Min.X, Ly: b.Min.Y, Ux: b.Max.X, Uy: b.Max.Y}
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func fmin(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func fmax(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
