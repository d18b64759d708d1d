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

// Package fft provides a reference implementation of the FFT/Poisson
// collaborator described in spec §6: the core depends only on an
// interface shaped like PoissonSolver, never on this package directly,
// so the Nesterov base layer stays exercisable end to end without
// wiring in the full external optimizer.
package fft

import (
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/dsp/fourier"
)

// PoissonSolver solves the discrete 2-D Poisson equation ∇²φ = -ρ on a
// uniform Nx×Ny grid by a separable FFT: transform rows, transform
// columns, divide by the discrete Laplacian eigenvalues in frequency
// space, then invert. The electric force field is the negative
// gradient of the resulting potential, taken by central differences in
// bin space.
type PoissonSolver struct {
	nx, ny int
	sx, sy float64

	rho [][]complex128 // (ny, nx), row-major access via rho[y][x]
	phi [][]float64
	efX [][]float64
	efY [][]float64
}

// forEachStrided runs f(i) for i in [0,n), split across
// runtime.GOMAXPROCS(0) goroutines in round-robin stride order. This is
// the same worker-pool shape the dependency lineage uses for its
// per-cell grid calculations (SPEC_FULL §5): row/column FFT transforms
// over disjoint bins are embarrassingly parallel, and each worker gets
// its own *fourier.CmplxFFT since the type is not safe for concurrent
// reuse.
func forEachStrided(n int, f func(worker, i int)) {
	nprocs := runtime.GOMAXPROCS(0)
	if nprocs > n {
		nprocs = n
	}
	if nprocs <= 1 {
		for i := 0; i < n; i++ {
			f(0, i)
		}
		return
	}
	var wg sync.WaitGroup
	wg.Add(nprocs)
	for pp := 0; pp < nprocs; pp++ {
		go func(pp int) {
			defer wg.Done()
			for i := pp; i < n; i += nprocs {
				f(pp, i)
			}
		}(pp)
	}
	wg.Wait()
}

// New builds a PoissonSolver for an Nx×Ny bin grid with bin sizes
// (sx, sy), matching the FFT collaborator's construction contract in
// spec §6.
func New(nx, ny int, sx, sy float64) *PoissonSolver {
	rho := make([][]complex128, ny)
	phi := make([][]float64, ny)
	efX := make([][]float64, ny)
	efY := make([][]float64, ny)
	for y := 0; y < ny; y++ {
		rho[y] = make([]complex128, nx)
		phi[y] = make([]float64, nx)
		efX[y] = make([]float64, nx)
		efY[y] = make([]float64, nx)
	}
	return &PoissonSolver{
		nx: nx, ny: ny, sx: sx, sy: sy,
		rho: rho, phi: phi, efX: efX, efY: efY,
	}
}

// UpdateDensity records bin (x, y)'s density for the next Solve.
func (s *PoissonSolver) UpdateDensity(x, y int, rho float64) {
	s.rho[y][x] = complex(rho, 0)
}

// Solve runs the Poisson solve over every density value recorded since
// the last Solve call, writing Phi and the two ElectroForce components.
// The row and column transform passes run over disjoint rows/columns on
// a bounded worker pool (SPEC_FULL §5); each worker builds its own
// *fourier.CmplxFFT since the type is not safe to share across
// goroutines.
func (s *PoissonSolver) Solve() {
	freq := make([][]complex128, s.ny)
	for y := range freq {
		freq[y] = make([]complex128, s.nx)
	}

	// Row transform: each row is an independent 1-D FFT.
	forEachStrided(s.ny, func(_, y int) {
		rowFFT := fourier.NewCmplxFFT(s.nx)
		freq[y] = rowFFT.Coefficients(freq[y], s.rho[y])
	})
	// Column transform: each column is an independent 1-D FFT.
	forEachStrided(s.nx, func(_, x int) {
		colFFT := fourier.NewCmplxFFT(s.ny)
		col := make([]complex128, s.ny)
		for y := 0; y < s.ny; y++ {
			col[y] = freq[y][x]
		}
		col = colFFT.Coefficients(col, col)
		for y := 0; y < s.ny; y++ {
			freq[y][x] = col[y]
		}
	})

	// Divide by the discrete Laplacian eigenvalues; the DC term (kx=ky=0)
	// has no finite solution for a pure Neumann/periodic Poisson problem
	// and is pinned to zero, matching the usual ePlace convention of
	// leaving the mean potential undetermined.
	forEachStrided(s.ny, func(_, ky int) {
		lapY := 2 * (1 - math.Cos(2*math.Pi*float64(ky)/float64(s.ny))) / (s.sy * s.sy)
		for kx := 0; kx < s.nx; kx++ {
			if kx == 0 && ky == 0 {
				freq[ky][kx] = 0
				continue
			}
			lapX := 2 * (1 - math.Cos(2*math.Pi*float64(kx)/float64(s.nx))) / (s.sx * s.sx)
			eig := lapX + lapY
			freq[ky][kx] = freq[ky][kx] / complex(eig, 0)
		}
	})

	// Inverse transform: columns then rows.
	forEachStrided(s.nx, func(_, x int) {
		colFFT := fourier.NewCmplxFFT(s.ny)
		col := make([]complex128, s.ny)
		for y := 0; y < s.ny; y++ {
			col[y] = freq[y][x]
		}
		col = colFFT.Sequence(col, col)
		for y := 0; y < s.ny; y++ {
			freq[y][x] = col[y]
		}
	})
	forEachStrided(s.ny, func(_, y int) {
		rowFFT := fourier.NewCmplxFFT(s.nx)
		row := rowFFT.Sequence(freq[y], freq[y])
		for x := 0; x < s.nx; x++ {
			s.phi[y][x] = real(row[x])
		}
	})

	s.computeElectroForce()
}

// computeElectroForce takes the negative central-difference gradient of
// phi to approximate the electric force field, one row per worker.
func (s *PoissonSolver) computeElectroForce() {
	forEachStrided(s.ny, func(_, y int) {
		ym, yp := y-1, y+1
		if ym < 0 {
			ym = 0
		}
		if yp >= s.ny {
			yp = s.ny - 1
		}
		for x := 0; x < s.nx; x++ {
			xm, xp := x-1, x+1
			if xm < 0 {
				xm = 0
			}
			if xp >= s.nx {
				xp = s.nx - 1
			}
			s.efX[y][x] = -(s.phi[y][xp] - s.phi[y][xm]) / (2 * s.sx)
			s.efY[y][x] = -(s.phi[yp][x] - s.phi[ym][x]) / (2 * s.sy)
		}
	})
}

// Phi returns bin (x, y)'s potential after the last Solve.
func (s *PoissonSolver) Phi(x, y int) float64 { return s.phi[y][x] }

// ElectroForceX returns bin (x, y)'s x electric-force component after
// the last Solve.
func (s *PoissonSolver) ElectroForceX(x, y int) float64 { return s.efX[y][x] }

// ElectroForceY returns bin (x, y)'s y electric-force component after
// the last Solve.
func (s *PoissonSolver) ElectroForceY(x, y int) float64 { return s.efY[y][x] }
