// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"testing"

	"github.com/cpmech/framecore/assembly"
	"github.com/cpmech/framecore/bc"
	"github.com/cpmech/framecore/elem"
	"github.com/cpmech/framecore/geom"
	"github.com/cpmech/framecore/gfaerr"
	"github.com/cpmech/gosl/chk"
)

func cantileverContribs(t *testing.T) []assembly.ElementContribution {
	props := elem.Props{E: 1, G: 1, Rho: 1, A: 1, Iy: 1, Iz: 1, J: 1}
	e, err := elem.New(geom.Vec3{0, 0, 0}, geom.Vec3{1, 0, 0}, geom.Vec3{0, 0, 1}, props)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e.AddPointLoad(2, [6]float64{1, 0, 0, 0, 0, 0}, false) // unit axial tip load
	return []assembly.ElementContribution{
		{N1: 0, N2: 1, Kglob: e.Kglob, Mglob: e.Mglob, Fglob: e.Fglob},
	}
}

func TestSolveAxialCantilever(t *testing.T) {
	elems := cantileverContribs(t)
	n := 12
	tensors, err := assembly.Assemble(n, elems)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var b bc.Builder
	b.AddFixed(0, []int{0, 1, 2, 3, 4, 5})

	sol, err := Solve(n, elems, b.Rows, tensors.F, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// EA/L = 1, axial tip load = 1 => tip ux = 1
	chk.Scalar(t, "ux_tip", 1e-9, sol.U[6], 1.0)
	for i := 0; i < 6; i++ {
		chk.Scalar(t, "u_root", 1e-12, sol.U[i], 0.0)
	}
	if len(sol.Lambda) != 6 {
		t.Fatalf("expected 6 multipliers, got %d", len(sol.Lambda))
	}
}

func TestSolveSingularWithoutConstraints(t *testing.T) {
	elems := cantileverContribs(t)
	n := 12
	tensors, err := assembly.Assemble(n, elems)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = Solve(n, elems, nil, tensors.F, DefaultOptions())
	if !gfaerr.Is(err, gfaerr.SingularSystem) {
		t.Fatalf("expected SingularSystem for an unconstrained rigid-body-mobile structure, got %v", err)
	}
}

func TestSolveDimensionMismatch(t *testing.T) {
	elems := cantileverContribs(t)
	_, err := Solve(12, elems, nil, make([]float64, 5), DefaultOptions())
	if !gfaerr.Is(err, gfaerr.DimensionMismatch) {
		t.Fatalf("expected DimensionMismatch, got %v", err)
	}
}
