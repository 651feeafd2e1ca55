// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bc implements the constraint builder of spec.md §4.F: rows of
// the constraint matrix B for fixed DOFs and rigid multipoint connectors,
// using the same Lagrange-multiplier bookkeeping as the teacher's
// fem/essenbcs.go EssentialBcs (one row per scalar constraint, an A
// matrix built as a la.Triplet once every row is known).
package bc

import (
	"github.com/cpmech/framecore/geom"
	"github.com/cpmech/framecore/inp"
	"github.com/cpmech/gosl/la"
)

// Row is one constraint row: sparse (column, value) pairs. All rows built
// by this package are homogeneous (b_i = 0), per spec.md §4.F.
type Row struct {
	Cols []int
	Vals []float64
}

// RowOrigin names the (node, DOF symbol) pair a constraint row enforces, so
// a caller can trace a solved Lagrange multiplier back to the reaction it
// represents (SPEC_FULL.md §3's Result.Reactions).
type RowOrigin struct {
	Node   int
	Symbol inp.FixSymbol
}

// Builder accumulates constraint rows; duplicate or over-constrained rows
// are not deduplicated here -- the solver detects rank deficiency
// (spec.md §4.F).
type Builder struct {
	Rows    []Row
	Origins []RowOrigin
}

// AddFixed emits one row per selected DOF offset at globalNode, each a
// single 1 at column 6*globalNode+offset.
func (b *Builder) AddFixed(globalNode int, offsets []int) {
	base := 6 * globalNode
	for _, off := range offsets {
		b.Rows = append(b.Rows, Row{
			Cols: []int{base + off},
			Vals: []float64{1},
		})
		b.Origins = append(b.Origins, RowOrigin{Node: globalNode, Symbol: symbolAt(off)})
	}
}

// symbolAt maps a 0..5 DOF offset back to its canonical fix symbol.
func symbolAt(off int) inp.FixSymbol {
	switch off {
	case 0:
		return inp.FixUx
	case 1:
		return inp.FixUy
	case 2:
		return inp.FixUz
	case 3:
		return inp.FixThx
	case 4:
		return inp.FixThy
	default:
		return inp.FixThz
	}
}

// AddRigidLink emits the rigid-link rows of spec.md §4.F between node A
// (global index nodeA, coordinate coordA) and node B (nodeB, coordB), for
// the selected DOF offsets. Translation rows (0,1,2) carry the
// skew-symmetric moment-arm coupling into B's rotational DOFs; rotation
// rows (3,4,5) are a plain identity-minus-identity.
func (b *Builder) AddRigidLink(nodeA, nodeB int, coordA, coordB geom.Vec3, offsets []int) {
	baseA := 6 * nodeA
	baseB := 6 * nodeB
	dx := coordA[0] - coordB[0]
	dy := coordA[1] - coordB[1]
	dz := coordA[2] - coordB[2]

	for _, off := range offsets {
		row := Row{Cols: []int{baseA + off}, Vals: []float64{1}}
		switch off {
		case 0: // ux
			row.Cols = append(row.Cols, baseB+0, baseB+4, baseB+5)
			row.Vals = append(row.Vals, -1, -dz, dy)
		case 1: // uy
			row.Cols = append(row.Cols, baseB+1, baseB+3, baseB+5)
			row.Vals = append(row.Vals, -1, dz, -dx)
		case 2: // uz
			row.Cols = append(row.Cols, baseB+2, baseB+3, baseB+4)
			row.Vals = append(row.Vals, -1, -dy, dx)
		default: // thx, thy, thz: rotations equal
			row.Cols = append(row.Cols, baseB+off)
			row.Vals = append(row.Vals, -1)
		}
		b.Rows = append(b.Rows, row)
		b.Origins = append(b.Origins, RowOrigin{Node: nodeA, Symbol: symbolAt(off)})
	}
}

// Build assembles B as a sparse la.CCMatrix (rows x ny) and the
// (zero) right-hand side b, per spec.md §4.F.
func (b *Builder) Build(ny int) (B *la.CCMatrix, rhs []float64, nrows int) {
	nrows = len(b.Rows)
	if nrows == 0 {
		return nil, nil, 0
	}
	nnz := 0
	for _, r := range b.Rows {
		nnz += len(r.Cols)
	}
	var trip la.Triplet
	trip.Init(nrows, ny, nnz)
	for i, r := range b.Rows {
		for k, c := range r.Cols {
			trip.Put(i, c, r.Vals[k])
		}
	}
	B = trip.ToMatrix(nil)
	rhs = make([]float64, nrows)
	return
}
