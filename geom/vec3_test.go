// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"testing"

	"github.com/cpmech/framecore/gfaerr"
	"github.com/cpmech/gosl/chk"
)

func TestLocalAxesStraightX(t *testing.T) {
	p1 := Vec3{0, 0, 0}
	p2 := Vec3{1, 0, 0}
	up := Vec3{0, 0, 1}
	xhat, yhat, zhat, err := LocalAxes(p1, p2, up)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chk.Vector(t, "xhat", 1e-15, xhat[:], []float64{1, 0, 0})
	chk.Vector(t, "zhat", 1e-15, zhat[:], []float64{0, 0, 1})
	chk.Vector(t, "yhat", 1e-15, yhat[:], []float64{0, 1, 0})
}

func TestLocalAxesDegenerate(t *testing.T) {
	p1 := Vec3{0, 0, 0}
	p2 := Vec3{1, 0, 0}
	up := Vec3{1, 0, 0} // parallel to the axis
	_, _, _, err := LocalAxes(p1, p2, up)
	if !gfaerr.Is(err, gfaerr.DegenerateOrientation) {
		t.Fatalf("expected DegenerateOrientation, got %v", err)
	}
}

func TestLocalAxesZeroSegment(t *testing.T) {
	p1 := Vec3{1, 2, 3}
	p2 := Vec3{1, 2, 3}
	_, _, _, err := LocalAxes(p1, p2, Vec3{0, 0, 1})
	if !gfaerr.Is(err, gfaerr.ZeroSegment) {
		t.Fatalf("expected ZeroSegment, got %v", err)
	}
}

func TestRotationBlockDiagOrthonormal(t *testing.T) {
	xhat, yhat, zhat, err := LocalAxes(Vec3{0, 0, 0}, Vec3{1, 1, 0}, Vec3{0, 0, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	T3 := DirCosines3x3(xhat, yhat, zhat)
	// a rotation matrix's rows are orthonormal: row_i . row_i = 1, row_i . row_j = 0
	for i := 0; i < 3; i++ {
		norm := 0.0
		for k := 0; k < 3; k++ {
			norm += T3[i][k] * T3[i][k]
		}
		if math.Abs(norm-1) > 1e-12 {
			t.Fatalf("row %d is not unit length: %v", i, norm)
		}
		for j := i + 1; j < 3; j++ {
			dot := 0.0
			for k := 0; k < 3; k++ {
				dot += T3[i][k] * T3[j][k]
			}
			if math.Abs(dot) > 1e-12 {
				t.Fatalf("rows %d and %d are not orthogonal: %v", i, j, dot)
			}
		}
	}
	T := RotationBlockDiag(T3)
	if len(T) != 12 || len(T[0]) != 12 {
		t.Fatalf("expected 12x12, got %dx%d", len(T), len(T[0]))
	}
	for k := 0; k < 4; k++ {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				if T[3*k+i][3*k+j] != T3[i][j] {
					t.Fatalf("block %d entry (%d,%d) mismatch", k, i, j)
				}
			}
		}
	}
}
