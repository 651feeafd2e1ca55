// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package elem implements the per-element Euler-Bernoulli 12-DOF beam
// formulation of spec.md §4.D: local stiffness and consistent mass
// matrices, the 12x12 rotation to the global frame, and aggregation of
// point/distributed/inertial contributions into the element's global load
// vector and mass matrix. Grounded on the teacher's ele/solid/beam.go
// Recompute/AddToRhs pair, generalised from the teacher's horizontal-or-
// vertical-only 3D case to an arbitrary user-supplied "up" orientation
// vector per spec.md §3/§4.D.
package elem

import (
	"github.com/cpmech/framecore/geom"
	"github.com/cpmech/gosl/la"
)

// Props bundles the material and cross-section scalars one element needs.
type Props struct {
	E, G, Rho    float64
	A, Iy, Iz, J float64
}

// Element holds one beam element's geometry, local axes, and the 12x12
// global stiffness/mass matrices plus the accumulated 12x1 global load
// vector.
type Element struct {
	P1, P2           geom.Vec3
	L                float64
	Xhat, Yhat, Zhat geom.Vec3
	Props            Props

	T     [][]float64 // 12x12 rotation, global-to-local convention: v_local = T*v_global
	Kloc  [][]float64
	Mloc  [][]float64
	Kglob [][]float64
	Mglob [][]float64
	Fglob []float64
}

// New builds an element spanning p1->p2 with orientation vector up and the
// given material/section properties, per spec.md §4.D. Returns
// gfaerr.ZeroSegment / gfaerr.DegenerateOrientation through geom.LocalAxes.
func New(p1, p2, up geom.Vec3, props Props) (*Element, error) {
	xhat, yhat, zhat, err := geom.LocalAxes(p1, p2, up)
	if err != nil {
		return nil, err
	}
	e := &Element{
		P1: p1, P2: p2, L: geom.Norm(geom.Sub(p2, p1)),
		Xhat: xhat, Yhat: yhat, Zhat: zhat,
		Props: props,
		Fglob: make([]float64, 12),
	}
	T3 := geom.DirCosines3x3(xhat, yhat, zhat)
	e.T = geom.RotationBlockDiag(T3)
	e.Kloc = buildKloc(e.L, props)
	e.Mloc = buildMloc(e.L, props)
	e.Kglob = la.MatAlloc(12, 12)
	e.Mglob = la.MatAlloc(12, 12)
	la.MatTrMul3(e.Kglob, 1, e.T, e.Kloc, e.T) // Kglob = Tt * Kloc * T
	la.MatTrMul3(e.Mglob, 1, e.T, e.Mloc, e.T) // Mglob = Tt * Mloc * T
	return e, nil
}

// buildKloc builds the local 12x12 stiffness matrix per spec.md §4.D's
// closed form.
func buildKloc(L float64, p Props) [][]float64 {
	K := la.MatAlloc(12, 12)
	EA := p.E * p.A
	EIy := p.E * p.Iy
	EIz := p.E * p.Iz
	GJ := p.G * p.J
	l, ll, lll := L, L*L, L*L*L

	set := func(i, j int, v float64) {
		K[i][j] = v
		if i != j {
			K[j][i] = v
		}
	}
	set(0, 0, EA/l)
	set(0, 6, -EA/l)

	set(1, 1, 12*EIz/lll)
	set(1, 5, 6*EIz/ll)
	set(1, 7, -12*EIz/lll)
	set(1, 11, 6*EIz/ll)

	set(2, 2, 12*EIy/lll)
	set(2, 4, -6*EIy/ll)
	set(2, 8, -12*EIy/lll)
	set(2, 10, -6*EIy/ll)

	set(3, 3, GJ/l)
	set(3, 9, -GJ/l)

	set(4, 4, 4*EIy/l)
	set(4, 8, 6*EIy/ll)
	set(4, 10, 2*EIy/l)

	set(5, 5, 4*EIz/l)
	set(5, 7, -6*EIz/ll)
	set(5, 11, 2*EIz/l)

	set(6, 6, EA/l)

	set(7, 7, 12*EIz/lll)
	set(7, 11, -6*EIz/ll)

	set(8, 8, 12*EIy/lll)
	set(8, 10, 6*EIy/ll)

	set(9, 9, GJ/l)

	set(10, 10, 4*EIy/l)
	set(11, 11, 4*EIz/l)
	return K
}

// buildMloc builds the local 12x12 consistent mass matrix per spec.md
// §4.D: the Archer/Przemieniecki form scaled by rho*A*L/420, with
// rotational inertia rx2 = (Iy+Iz)/A on the twist DOFs (3 and 9).
func buildMloc(L float64, p Props) [][]float64 {
	M := la.MatAlloc(12, 12)
	m := p.Rho * p.A * L / 420.0
	ll := L * L
	rx2 := (p.Iy + p.Iz) / p.A

	set := func(i, j int, v float64) {
		M[i][j] = v
		if i != j {
			M[j][i] = v
		}
	}

	// axial
	set(0, 0, 140*m)
	set(0, 6, 70*m)
	set(6, 6, 140*m)

	// torsion (scaled by rx2, same pattern as axial)
	set(3, 3, 140*m*rx2)
	set(3, 9, 70*m*rx2)
	set(9, 9, 140*m*rx2)

	// bending in x-y plane (uy, thz): dofs 1,5,7,11
	set(1, 1, 156*m)
	set(1, 5, 22*L*m)
	set(1, 7, 54*m)
	set(1, 11, -13*L*m)
	set(5, 5, 4*ll*m)
	set(5, 7, 13*L*m)
	set(5, 11, -3*ll*m)
	set(7, 7, 156*m)
	set(7, 11, -22*L*m)
	set(11, 11, 4*ll*m)

	// bending in x-z plane (uz, thy): dofs 2,4,8,10 -- translation/rotation
	// cross terms flip sign relative to the x-y plane, mirroring the
	// stiffness matrix's sign convention for the same plane.
	set(2, 2, 156*m)
	set(2, 4, -22*L*m)
	set(2, 8, 54*m)
	set(2, 10, 13*L*m)
	set(4, 4, 4*ll*m)
	set(4, 8, -13*L*m)
	set(4, 10, -3*ll*m)
	set(8, 8, 156*m)
	set(8, 10, 22*L*m)
	set(10, 10, 4*ll*m)

	return M
}

// AddPointLoad inserts a nodal point load [Fx,Fy,Fz,Mx,My,Mz] at endpoint
// 1 or 2 into the element's global load vector. If localSys, the load is
// given in the element's local frame and rotated to global via Tt (the
// transpose of the global-to-local T).
func (e *Element) AddPointLoad(endpoint int, load [6]float64, localSys bool) {
	slot := 0
	if endpoint == 2 {
		slot = 6
	}
	if !localSys {
		for i := 0; i < 6; i++ {
			e.Fglob[slot+i] += load[i]
		}
		return
	}
	full := make([]float64, 12)
	copy(full[slot:slot+6], load[:])
	la.MatTrVecMulAdd(e.Fglob, 1, e.T, full) // Fglob += Tt * full
}

// AddDistrLoad adds the equivalent nodal load of a uniform distributed
// load [qx,qy,qz,mx,my,mz] per spec.md §4.D's standard beam tables. Per
// spec.md §9's Open Question, the local_sys branch applies T (not Tt),
// mirroring the late framat draft rather than the point-load convention.
func (e *Element) AddDistrLoad(load [6]float64, localSys bool) {
	qx, qy, qz, mx, my, mz := load[0], load[1], load[2], load[3], load[4], load[5]
	L := e.L
	f := make([]float64, 12)
	f[0] = qx * L / 2
	f[6] = qx * L / 2
	f[3] = mx * L / 2
	f[9] = mx * L / 2

	f[1] = qy*L/2 - mz
	f[7] = qy*L/2 + mz

	f[2] = qz*L/2 + my
	f[8] = qz*L/2 - my

	f[4] = -qz * L * L / 12
	f[10] = qz * L * L / 12

	f[5] = qy * L * L / 12
	f[11] = -qy * L * L / 12

	if !localSys {
		for i := 0; i < 12; i++ {
			e.Fglob[i] += f[i]
		}
		return
	}
	rotated := make([]float64, 12)
	la.MatVecMul(rotated, 1, e.T, f) // rotated = T * f
	for i := 0; i < 12; i++ {
		e.Fglob[i] += rotated[i]
	}
}

// AddPointMass adds m*I3 to the translational 3x3 sub-block of Mglob at
// the given endpoint (spec.md §4.D).
func (e *Element) AddPointMass(endpoint int, mass float64) {
	slot := 0
	if endpoint == 2 {
		slot = 6
	}
	for i := 0; i < 3; i++ {
		e.Mglob[slot+i][slot+i] += mass
	}
}
