// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package framecore is the root driver package of SPEC_FULL.md §4.M: it
// sequences the mesh, element, assembly, constraint, solve, and
// projection components (B through H) behind a single Run entry point.
// Grounded on the teacher's fem/fem.go Main.SolveOneStage sequencing,
// collapsed to the single linear-static path -- no time loop, no Newton
// iteration, no MPI.
package framecore

import (
	"github.com/cpmech/framecore/assembly"
	"github.com/cpmech/framecore/bc"
	"github.com/cpmech/framecore/elem"
	"github.com/cpmech/framecore/gfaerr"
	"github.com/cpmech/framecore/geom"
	"github.com/cpmech/framecore/inp"
	"github.com/cpmech/framecore/mesh"
	"github.com/cpmech/framecore/report"
	"github.com/cpmech/framecore/result"
	"github.com/cpmech/framecore/solve"
)

// Option configures one Run call.
type Option func(*config)

type config struct {
	reporter  report.Reporter
	solveOpts solve.Options
}

// WithReporter installs a passive progress reporter (spec.md §7: "the core
// performs no logging of its own; it may accept a passive reporter").
func WithReporter(r report.Reporter) Option {
	return func(c *config) { c.reporter = r }
}

// WithSolverName overrides the underlying direct linear solver (default
// "umfpack", see solve.DefaultOptions).
func WithSolverName(name string) Option {
	return func(c *config) { c.solveOpts.SolverName = name }
}

// beamAssignments is the per-element resolution state for one beam while
// its orientation/material/cross-section ranges are being applied.
type beamAssignments struct {
	up  []geom.Vec3
	mat []*inp.Material
	sec []*inp.CrossSection
	set []struct{ up, mat, sec bool }
}

// Run executes the full B->H pipeline over a validated model and returns
// the Result, or a typed *gfaerr.Error / panic-free error on failure.
func Run(model *inp.Model, opts ...Option) (*result.Result, error) {
	cfg := config{reporter: report.Noop, solveOpts: solve.DefaultOptions()}
	for _, o := range opts {
		o(&cfg)
	}

	if err := model.Validate(); err != nil {
		return nil, err
	}

	am, err := mesh.Build(model)
	if err != nil {
		return nil, err
	}
	cfg.reporter.Event("mesh", "abstract beam mesh built")

	var elemContribs []assembly.ElementContribution
	builtElems := make([][]*elem.Element, len(model.Beams))

	for bi, beam := range model.Beams {
		meshElems := am.ElementsByBeam[bi]
		assign, err := resolveBeamAssignments(am, model, bi, beam, len(meshElems))
		if err != nil {
			return nil, err
		}

		built := make([]*elem.Element, len(meshElems))
		for i, me := range meshElems {
			if !assign.set[i].up || !assign.set[i].mat || !assign.set[i].sec {
				return nil, gfaerr.New(gfaerr.MissingProperty, "beam %d element %d has no material/cross-section/orientation assigned", bi, i)
			}
			props := elem.Props{
				E: assign.mat[i].E, G: assign.mat[i].G, Rho: assign.mat[i].Rho,
				A: assign.sec[i].A, Iy: assign.sec[i].Iy, Iz: assign.sec[i].Iz, J: assign.sec[i].J,
			}
			e, err := elem.New(me.P1.Coord, me.P2.Coord, assign.up[i], props)
			if err != nil {
				return nil, err
			}
			built[i] = e
		}
		builtElems[bi] = built

		for _, pl := range beam.PointLoads {
			me, endpoint, err := am.ElementByNamedNode(bi, pl.At)
			if err != nil {
				return nil, err
			}
			built[me.Index].AddPointLoad(endpoint, pl.Load, pl.LocalSys)
		}
		for _, dl := range beam.DistrLoads {
			rng, err := am.IterFromTo(bi, dl.From, dl.To)
			if err != nil {
				return nil, err
			}
			for _, me := range rng {
				built[me.Index].AddDistrLoad(dl.Load, dl.LocalSys)
			}
		}
		for _, pm := range beam.PointMasses {
			me, endpoint, err := am.ElementByNamedNode(bi, pm.At)
			if err != nil {
				return nil, err
			}
			built[me.Index].AddPointMass(endpoint, pm.Mass)
		}

		for i, me := range meshElems {
			elemContribs = append(elemContribs, assembly.ElementContribution{
				N1: me.N1, N2: me.N2,
				Kglob: built[i].Kglob, Mglob: built[i].Mglob, Fglob: built[i].Fglob,
			})
		}
	}
	cfg.reporter.Event("element", "per-element matrices built")

	n := am.NDofs()
	tensors, err := assembly.Assemble(n, elemContribs)
	if err != nil {
		return nil, err
	}
	cfg.reporter.Event("assemble", "global K, M, F assembled")

	var builder bc.Builder
	for _, fx := range model.BC.Fix {
		g, ok := am.GlobalIndex(fx.Node)
		if !ok {
			return nil, gfaerr.New(gfaerr.UnknownUid, "fix references unknown node uid %q", fx.Node)
		}
		offsets, err := inp.Expand(fx.Fix)
		if err != nil {
			return nil, err
		}
		builder.AddFixed(g, offsets)
	}
	for _, cn := range model.BC.Connect {
		gA, ok := am.GlobalIndex(cn.Node1)
		if !ok {
			return nil, gfaerr.New(gfaerr.UnknownUid, "connect references unknown node uid %q", cn.Node1)
		}
		gB, ok := am.GlobalIndex(cn.Node2)
		if !ok {
			return nil, gfaerr.New(gfaerr.UnknownUid, "connect references unknown node uid %q", cn.Node2)
		}
		offsets, err := inp.Expand(cn.Fix)
		if err != nil {
			return nil, err
		}
		builder.AddRigidLink(gA, gB, am.NodeCoord(gA), am.NodeCoord(gB), offsets)
	}
	B, _, nrows := builder.Build(n)
	cfg.reporter.Event("constrain", "constraint rows built")

	sol, err := solve.Solve(n, elemContribs, builder.Rows, tensors.F, cfg.solveOpts)
	if err != nil {
		return nil, err
	}
	if nrows != len(sol.Lambda) {
		return nil, gfaerr.New(gfaerr.DimensionMismatch, "constraint row count %d does not match solved multiplier length %d", nrows, len(sol.Lambda))
	}
	cfg.reporter.Event("solve", "saddle-point system solved")

	res, err := result.Project(am, builtElems, tensors, B, builder.Origins, sol)
	if err != nil {
		return nil, err
	}
	cfg.reporter.Event("project", "result components split")
	return res, nil
}

// resolveBeamAssignments applies every orientation/material/cross-section
// range assignment of beam in list order (later assignments override
// earlier ones on overlapping elements), over the beam's nElems elements.
func resolveBeamAssignments(am *mesh.AbstractMesh, model *inp.Model, beamIdx int, beam *inp.Beam, nElems int) (*beamAssignments, error) {
	a := &beamAssignments{
		up:  make([]geom.Vec3, nElems),
		mat: make([]*inp.Material, nElems),
		sec: make([]*inp.CrossSection, nElems),
		set: make([]struct{ up, mat, sec bool }, nElems),
	}
	for _, o := range beam.Orientations {
		rng, err := am.IterFromTo(beamIdx, o.From, o.To)
		if err != nil {
			return nil, err
		}
		up := geom.Vec3{o.Up[0], o.Up[1], o.Up[2]}
		for _, me := range rng {
			a.up[me.Index] = up
			a.set[me.Index].up = true
		}
	}
	for _, ma := range beam.Materials {
		rng, err := am.IterFromTo(beamIdx, ma.From, ma.To)
		if err != nil {
			return nil, err
		}
		mat, ok := model.Materials[ma.UID]
		if !ok {
			return nil, gfaerr.New(gfaerr.UnknownUid, "material assignment references unknown uid %q", ma.UID)
		}
		for _, me := range rng {
			a.mat[me.Index] = mat
			a.set[me.Index].mat = true
		}
	}
	for _, sa := range beam.Sections {
		rng, err := am.IterFromTo(beamIdx, sa.From, sa.To)
		if err != nil {
			return nil, err
		}
		sec, ok := model.Sections[sa.UID]
		if !ok {
			return nil, gfaerr.New(gfaerr.UnknownUid, "cross-section assignment references unknown uid %q", sa.UID)
		}
		for _, me := range rng {
			a.sec[me.Index] = sec
			a.set[me.Index].sec = true
		}
	}
	return a, nil
}
