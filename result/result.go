// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package result implements the result projection of spec.md §4.H and the
// Result aggregate of SPEC_FULL.md §3/§6: splitting U and F into six named
// per-component views by strided slicing, and grouping the solved Lagrange
// multipliers back into node/symbol-tagged reactions. Grounded on the
// teacher's fem/domain.go OutIpsData-style "un-interleave by stride 6"
// pattern used when writing per-DOF output arrays.
package result

import (
	"github.com/cpmech/framecore/assembly"
	"github.com/cpmech/framecore/bc"
	"github.com/cpmech/framecore/elem"
	"github.com/cpmech/framecore/gfaerr"
	"github.com/cpmech/framecore/inp"
	"github.com/cpmech/framecore/mesh"
	"github.com/cpmech/framecore/solve"
	"github.com/cpmech/gosl/la"
)

// Components holds the six named per-DOF views of a length-n vector,
// each of length n/6, per spec.md §4.H.
type Components struct {
	Ux, Uy, Uz    []float64
	Thx, Thy, Thz []float64
}

// Split builds the six strided component views of v (length n, n%6==0).
func Split(v []float64) Components {
	nn := len(v) / 6
	c := Components{
		Ux: make([]float64, nn), Uy: make([]float64, nn), Uz: make([]float64, nn),
		Thx: make([]float64, nn), Thy: make([]float64, nn), Thz: make([]float64, nn),
	}
	for i := 0; i < nn; i++ {
		c.Ux[i] = v[6*i+0]
		c.Uy[i] = v[6*i+1]
		c.Uz[i] = v[6*i+2]
		c.Thx[i] = v[6*i+3]
		c.Thy[i] = v[6*i+4]
		c.Thz[i] = v[6*i+5]
	}
	return c
}

// Interleave reassembles a Components back into one length-6n vector; the
// round-trip Split(Interleave(c)) == c is an exact identity (spec.md §8).
func Interleave(c Components) []float64 {
	nn := len(c.Ux)
	v := make([]float64, 6*nn)
	for i := 0; i < nn; i++ {
		v[6*i+0] = c.Ux[i]
		v[6*i+1] = c.Uy[i]
		v[6*i+2] = c.Uz[i]
		v[6*i+3] = c.Thx[i]
		v[6*i+4] = c.Thy[i]
		v[6*i+5] = c.Thz[i]
	}
	return v
}

// NodeReaction names the global node and fix symbol that produced one
// solved Lagrange multiplier, together with its value (spec.md §8 scenario
// 5: "its six reaction components appear in lambda").
type NodeReaction struct {
	Node   int
	Symbol inp.FixSymbol
	Value  float64
}

// BuildReactions zips the constraint builder's row origins with the solved
// multiplier vector.
func BuildReactions(origins []bc.RowOrigin, lambda []float64) ([]NodeReaction, error) {
	if len(origins) != len(lambda) {
		return nil, gfaerr.New(gfaerr.DimensionMismatch, "row origin count %d does not match lambda length %d", len(origins), len(lambda))
	}
	out := make([]NodeReaction, len(lambda))
	for i, o := range origins {
		out[i] = NodeReaction{Node: o.Node, Symbol: o.Symbol, Value: lambda[i]}
	}
	return out, nil
}

// Result is the output aggregate of spec.md §6: the abstract mesh, the
// assembled tensors, the solved displacement/reaction vectors, and their
// per-component views.
type Result struct {
	Mesh *mesh.AbstractMesh

	// Elements holds the built per-element matrices/geometry, indexed
	// [beamIdx][elementIdx] -- the handle a caller needs to invoke Sample
	// for deflected-shape post-processing.
	Elements [][]*elem.Element

	K *la.CCMatrix
	M *la.CCMatrix
	F []float64
	B *la.CCMatrix

	U      []float64
	Freact []float64 // solved Lagrange multipliers, length == number of constraint rows

	CompU Components
	CompF Components

	Density   float64
	Reactions []NodeReaction
}

// Project builds a Result from the assembled tensors, the constraint rows'
// origins, and the solver's solution, per spec.md §4.H.
func Project(am *mesh.AbstractMesh, elements [][]*elem.Element, tensors *assembly.Tensors, B *la.CCMatrix, origins []bc.RowOrigin, sol *solve.Solution) (*Result, error) {
	reactions, err := BuildReactions(origins, sol.Lambda)
	if err != nil {
		return nil, err
	}
	return &Result{
		Mesh:      am,
		Elements:  elements,
		K:         tensors.K,
		M:         tensors.M,
		F:         tensors.F,
		B:         B,
		U:         sol.U,
		Freact:    sol.Lambda,
		CompU:     Split(sol.U),
		CompF:     Split(tensors.F),
		Density:   tensors.Density,
		Reactions: reactions,
	}, nil
}

// Sample evaluates the element's local-frame shape functions N(xi) against
// its local displacement vector, at the local coordinate xi in [0,1].
// Supplements the "plot deflected shape" feature dropped from
// original_source/fem/plot.py (SPEC_FULL.md §9) without reintroducing
// plotting itself; never used by the solve path.
func Sample(e *elem.Element, uGlobal [12]float64, xi float64) [6]float64 {
	uLocal := make([]float64, 12)
	la.MatVecMul(uLocal, 1, e.T, uGlobal[:]) // uLocal = T * uGlobal

	L := e.L
	x := xi
	x2 := x * x
	x3 := x2 * x

	// cubic Hermite translation shape functions and their x-derivatives
	h1 := 1 - 3*x2 + 2*x3
	h2 := L * (x - 2*x2 + x3)
	h3 := 3*x2 - 2*x3
	h4 := L * (x3 - x2)
	dh1 := (-6*x + 6*x2) / L
	dh2 := 1 - 4*x + 3*x2
	dh3 := (6*x - 6*x2) / L
	dh4 := 3*x2 - 2*x

	var out [6]float64
	// ux: linear
	out[0] = (1-x)*uLocal[0] + x*uLocal[6]
	// uy: cubic Hermite against (uy1,thz1,uy2,thz2)
	out[1] = h1*uLocal[1] + h2*uLocal[5] + h3*uLocal[7] + h4*uLocal[11]
	// uz: cubic Hermite against (uz1,thy1,uz2,thy2)
	out[2] = h1*uLocal[2] + h2*uLocal[4] + h3*uLocal[8] + h4*uLocal[10]
	// thx: linear
	out[3] = (1-x)*uLocal[3] + x*uLocal[9]
	// thy: derivative of the uz row
	out[4] = dh1*uLocal[2] + dh2*uLocal[4] + dh3*uLocal[8] + dh4*uLocal[10]
	// thz: derivative of the uy row
	out[5] = dh1*uLocal[1] + dh2*uLocal[5] + dh3*uLocal[7] + dh4*uLocal[11]
	return out
}
