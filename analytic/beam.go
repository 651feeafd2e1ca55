// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package analytic implements closed-form Euler-Bernoulli beam reference
// solutions for spec.md §8's end-to-end scenarios, grounded on the
// teacher's ana package (struct-with-Init-and-Check idiom, chk.Scalar /
// chk.Vector assertions) but holding static beam-theory formulae instead
// of the teacher's self-weight/fluid-pressure solutions.
package analytic

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// CantileverTipLoad is the classical tip-loaded cantilever: fixed at the
// root, length L, bending stiffness EI, transverse tip load P (same sign
// convention as the engine's point_load Fz/Fy component).
type CantileverTipLoad struct {
	E, I, L, P float64
}

// TipDeflection returns the tip transverse deflection and the tip
// rotation about the bending axis.
func (c CantileverTipLoad) TipDeflection() (w, theta float64) {
	w = c.P * c.L * c.L * c.L / (3 * c.E * c.I)
	theta = -c.P * c.L * c.L / (2 * c.E * c.I)
	return
}

// CheckTip asserts the solved tip deflection/rotation against the
// closed-form values within tol.
func (c CantileverTipLoad) CheckTip(tst *testing.T, wGot, thetaGot, tol float64) {
	w, theta := c.TipDeflection()
	chk.Scalar(tst, "w_tip", tol, wGot, w)
	chk.Scalar(tst, "theta_tip", tol, thetaGot, theta)
}

// RootMoment returns the maximum (root) bending moment of a tip-loaded
// cantilever, M = P*L -- used by tests that want to cross-check a
// solved reaction moment independently of the deflection formula.
func (c CantileverTipLoad) RootMoment() float64 {
	return c.P * c.L
}
