// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements the 3-vector primitives used to build element
// local axes: unit vectors, the Gram-Schmidt rejection, and direction
// cosines versus the global frame.
package geom

import (
	"math"

	"github.com/cpmech/framecore/gfaerr"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// ParallelTol is the tolerance below which an orientation vector is
// considered parallel to the element axis (spec: |up·x̂| < 1-ε).
const ParallelTol = 1e-12

// Vec3 is a plain 3-component vector; x,y,z map to global X,Y,Z.
type Vec3 [3]float64

// Sub returns a-b.
func Sub(a, b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Norm returns the Euclidean length of v.
func Norm(v Vec3) float64 {
	return la.VecNorm(v[:])
}

// Unit returns v normalised; panics (as a bug) if v is (numerically) zero
// length -- callers must have already checked for a zero-length segment.
func Unit(v Vec3) Vec3 {
	n := Norm(v)
	if n < 1e-15 {
		gfaerr.Bug("geom: cannot normalise a zero-length vector")
	}
	return Vec3{v[0] / n, v[1] / n, v[2] / n}
}

// Dot returns the scalar product of a and b.
func Dot(a, b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns a×b.
func Cross(a, b Vec3) Vec3 {
	var c Vec3
	utl.Cross3d(c[:], a[:], b[:])
	return c
}

// Reject returns the component of v orthogonal to the unit vector axis,
// i.e. v - (v·axis)·axis. axis must already be a unit vector.
func Reject(v, axis Vec3) Vec3 {
	d := Dot(v, axis)
	return Vec3{v[0] - d*axis[0], v[1] - d*axis[1], v[2] - d*axis[2]}
}

// LocalAxes builds the right-handed local triad (xhat, yhat, zhat) for a
// beam element whose axis runs p1->p2, given the user-assigned "up"
// orientation vector, following spec.md §3/§4.D:
//
//	x̂ = unit(p2-p1)
//	ẑ = unit(up - (up·x̂)x̂)
//	ŷ = ẑ × x̂
//
// Returns gfaerr.DegenerateOrientation if up is (nearly) parallel to x̂.
func LocalAxes(p1, p2, up Vec3) (xhat, yhat, zhat Vec3, err error) {
	d := Sub(p2, p1)
	length := Norm(d)
	if length < 1e-15 {
		return xhat, yhat, zhat, gfaerr.New(gfaerr.ZeroSegment, "element endpoints coincide")
	}
	xhat = Unit(d)
	upUnit := Unit(up)
	cosAngle := Dot(upUnit, xhat)
	if math.Abs(cosAngle) > 1-ParallelTol {
		return xhat, yhat, zhat, gfaerr.New(gfaerr.DegenerateOrientation,
			"orientation vector is parallel to element axis (|up.xhat|=%.3e)", math.Abs(cosAngle))
	}
	rej := Reject(up, xhat)
	zhat = Unit(rej)
	yhat = Cross(zhat, xhat)
	return xhat, yhat, zhat, nil
}

// DirCosines3x3 builds the 3x3 direction-cosine block whose rows are the
// local axes expressed in global (X,Y,Z) coordinates -- the same layout
// the teacher's Beam.Recompute uses when filling o.T row-by-row.
func DirCosines3x3(xhat, yhat, zhat Vec3) [][]float64 {
	T3 := la.MatAlloc(3, 3)
	T3[0][0], T3[0][1], T3[0][2] = xhat[0], xhat[1], xhat[2]
	T3[1][0], T3[1][1], T3[1][2] = yhat[0], yhat[1], yhat[2]
	T3[2][0], T3[2][1], T3[2][2] = zhat[0], zhat[1], zhat[2]
	return T3
}

// RotationBlockDiag builds the 12x12 transform T = diag(T3,T3,T3,T3) used to
// rotate element matrices between local and global frames.
func RotationBlockDiag(T3 [][]float64) [][]float64 {
	T := la.MatAlloc(12, 12)
	for k := 0; k < 4; k++ {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				T[3*k+i][3*k+j] = T3[i][j]
			}
		}
	}
	return T
}
