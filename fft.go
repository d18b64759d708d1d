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

// FFTSolver is the opaque FFT/Poisson collaborator described in spec
// §6: the core only ever calls through this interface, never a
// concrete implementation, so the 2-D Poisson solve itself stays a
// swappable collaborator. See package fft for a reference
// implementation built on a real 2-D FFT.
type FFTSolver interface {
	// UpdateDensity records bin (x, y)'s density for the next Solve.
	UpdateDensity(x, y int, rho float64)
	// Solve runs the Poisson solve over every density value recorded
	// since the last Solve call.
	Solve()
	// Phi returns bin (x, y)'s potential after the last Solve.
	Phi(x, y int) float64
	// ElectroForceX returns bin (x, y)'s x electric-force component
	// after the last Solve.
	ElectroForceX(x, y int) float64
	// ElectroForceY returns bin (x, y)'s y electric-force component
	// after the last Solve.
	ElectroForceY(x, y int) float64
}
