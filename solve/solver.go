// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solve implements the Lagrange-multiplier (KKT / saddle-point)
// constrained static solve of spec.md §4.G:
//
//	[ K   Bt ] [ U ]   [ F ]
//	[ B    0 ] [ l ] = [ b ]
//
// Grounded directly on the teacher's fem/domain.go (Kb sized
// NnzKb+2*NnzA, built as one la.Triplet) and fem/essenbcs.go (the A
// matrix of Lagrange-multiplier rows) together with the la.GetSolver /
// LinSol.InitR/Fact/SolveR idiom used throughout fem/s_linimp.go.
package solve

import (
	"github.com/cpmech/framecore/assembly"
	"github.com/cpmech/framecore/bc"
	"github.com/cpmech/framecore/gfaerr"
	"github.com/cpmech/gosl/la"
)

// Options controls the underlying linear solver.
type Options struct {
	SolverName string // passed to la.GetSolver; defaults to "umfpack"
	Symmetric  bool
	Verbose    bool
	Timing     bool
}

// DefaultOptions mirrors the teacher's serial (non-MPI) default in
// fem/fem.go: "umfpack" when running as a single process.
func DefaultOptions() Options {
	return Options{SolverName: "umfpack", Symmetric: false}
}

// Solution holds the recovered displacement vector and the Lagrange
// multipliers (== reaction loads at the constrained DOFs).
type Solution struct {
	U      []float64
	Lambda []float64
}

// Solve builds and solves the augmented saddle-point system for n
// unconstrained DOFs, given the element stiffness contributions (K's
// block) and the constraint rows from package bc, with load vector F.
func Solve(n int, elems []assembly.ElementContribution, rows []bc.Row, F []float64, opts Options) (*Solution, error) {
	nrows := len(rows)
	if len(F) != n {
		return nil, gfaerr.New(gfaerr.DimensionMismatch, "load vector length %d does not match ndofs %d", len(F), n)
	}
	for _, r := range rows {
		for _, c := range r.Cols {
			if c < 0 || c >= n {
				return nil, gfaerr.New(gfaerr.DimensionMismatch, "constraint column %d out of range [0,%d)", c, n)
			}
		}
	}

	nyb := n + nrows
	nnzK := 0
	for _, e := range elems {
		for i := 0; i < 12; i++ {
			for j := 0; j < 12; j++ {
				if e.Kglob[i][j] != 0 {
					nnzK++
				}
			}
		}
	}
	nnzB := 0
	for _, r := range rows {
		nnzB += len(r.Cols)
	}

	var Kb la.Triplet
	Kb.Init(nyb, nyb, nnzK+2*nnzB)

	for _, e := range elems {
		g := globalDofs(e.N1, e.N2)
		for i := 0; i < 12; i++ {
			for j := 0; j < 12; j++ {
				if e.Kglob[i][j] != 0 {
					Kb.Put(g[i], g[j], e.Kglob[i][j])
				}
			}
		}
	}
	for i, r := range rows {
		for k, c := range r.Cols {
			Kb.Put(n+i, c, r.Vals[k])
			Kb.Put(c, n+i, r.Vals[k])
		}
	}

	Fb := make([]float64, nyb)
	copy(Fb[:n], F)
	// rows' right-hand side is zero (spec.md §4.F): Fb[n:] left at zero.

	if opts.SolverName == "" {
		opts = DefaultOptions()
	}
	linsol := la.GetSolver(opts.SolverName)
	defer linsol.Free()

	if err := linsol.InitR(&Kb, opts.Symmetric, opts.Verbose, opts.Timing); err != nil {
		return nil, gfaerr.New(gfaerr.SingularSystem, "cannot initialise linear solver: %v", err)
	}
	if err := linsol.Fact(); err != nil {
		return nil, gfaerr.New(gfaerr.SingularSystem, "factorisation failed (singular or incompatible constraints): %v", err)
	}
	Wb := make([]float64, nyb)
	if err := linsol.SolveR(Wb, Fb, false); err != nil {
		return nil, gfaerr.New(gfaerr.SingularSystem, "solve failed: %v", err)
	}

	return &Solution{U: Wb[:n], Lambda: Wb[n:]}, nil
}

// globalDofs mirrors assembly.globalDofs; duplicated here (unexported) to
// avoid the assembly package having to export an internal indexing helper.
func globalDofs(n1, n2 int) [12]int {
	var g [12]int
	for i := 0; i < 6; i++ {
		g[i] = 6*n1 + i
		g[6+i] = 6*n2 + i
	}
	return g
}
