// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elem

import (
	"math"
	"testing"

	"github.com/cpmech/framecore/geom"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

func unitProps() Props {
	return Props{E: 1, G: 1, Rho: 1, A: 1, Iy: 1, Iz: 1, J: 1}
}

func isSymmetric(m [][]float64, tol float64) bool {
	for i := range m {
		for j := range m[i] {
			if math.Abs(m[i][j]-m[j][i]) > tol {
				return false
			}
		}
	}
	return true
}

func TestLocalMatricesSymmetric(t *testing.T) {
	e, err := New(geom.Vec3{0, 0, 0}, geom.Vec3{2, 0, 0}, geom.Vec3{0, 0, 1}, unitProps())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !isSymmetric(e.Kloc, 1e-13) {
		t.Fatalf("Kloc is not symmetric")
	}
	if !isSymmetric(e.Mloc, 1e-13) {
		t.Fatalf("Mloc is not symmetric")
	}
	if !isSymmetric(e.Kglob, 1e-10) {
		t.Fatalf("Kglob is not symmetric")
	}
}

func TestKglobEqualsTtKlocT(t *testing.T) {
	e, err := New(geom.Vec3{0, 0, 0}, geom.Vec3{1, 1, 0}, geom.Vec3{0, 0, 1}, unitProps())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := la.MatAlloc(12, 12)
	la.MatTrMul3(want, 1, e.T, e.Kloc, e.T)
	for i := 0; i < 12; i++ {
		chk.Vector(t, "Kglob row", 1e-10, e.Kglob[i], want[i])
	}
}

func TestAxialStiffnessScalesInverselyWithLength(t *testing.T) {
	e1, _ := New(geom.Vec3{0, 0, 0}, geom.Vec3{1, 0, 0}, geom.Vec3{0, 0, 1}, unitProps())
	e2, _ := New(geom.Vec3{0, 0, 0}, geom.Vec3{2, 0, 0}, geom.Vec3{0, 0, 1}, unitProps())
	chk.Scalar(t, "K[0][0] ratio", 1e-12, e1.Kloc[0][0]/e2.Kloc[0][0], 2.0)
}

func TestAddPointLoadNonLocal(t *testing.T) {
	e, _ := New(geom.Vec3{0, 0, 0}, geom.Vec3{1, 0, 0}, geom.Vec3{0, 0, 1}, unitProps())
	e.AddPointLoad(2, [6]float64{0, 0, -1, 0, 0, 0}, false)
	chk.Scalar(t, "Fglob[8]", 1e-15, e.Fglob[8], -1)
	for i, v := range e.Fglob {
		if i != 8 && v != 0 {
			t.Fatalf("unexpected nonzero Fglob[%d]=%v", i, v)
		}
	}
}

func TestAddPointMass(t *testing.T) {
	e, _ := New(geom.Vec3{0, 0, 0}, geom.Vec3{1, 0, 0}, geom.Vec3{0, 0, 1}, unitProps())
	before := e.Mglob[0][0]
	e.AddPointMass(1, 5)
	chk.Scalar(t, "Mglob[0][0]", 1e-15, e.Mglob[0][0], before+5)
	chk.Scalar(t, "Mglob[1][1]", 1e-15, e.Mglob[1][1], e.Mloc[1][1]+5)
}
