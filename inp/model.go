// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp implements the declarative model schema consumed by the
// frame analysis core: materials, cross-sections, beams (named nodes plus
// per-segment property/load assignments) and boundary conditions. It
// mirrors the JSON-tagged, UID-keyed record style of the teacher's
// inp/mat.go and inp/sim.go, but the core never reads or writes these
// records to disk itself -- a collaborator (model builder / file I/O
// layer) is responsible for constructing a *Model and calling Validate.
package inp

import (
	"sort"

	"github.com/cpmech/framecore/gfaerr"
)

// Material holds the linear-elastic properties shared by every element
// referencing it.
type Material struct {
	UID string  `json:"uid"`
	E   float64 `json:"E"`   // Young's modulus
	G   float64 `json:"G"`   // shear modulus
	Rho float64 `json:"rho"` // density
}

// CrossSection holds the section properties shared by every element
// referencing it.
type CrossSection struct {
	UID string  `json:"uid"`
	A   float64 `json:"A"`  // area
	Iy  float64 `json:"Iy"` // second moment of area about local y
	Iz  float64 `json:"Iz"` // second moment of area about local z
	J   float64 `json:"J"`  // torsional constant
}

// Node is a support point addressable by UID.
type Node struct {
	UID   string     `json:"uid"`
	Coord [3]float64 `json:"coord"`
}

// OrientationAssign assigns the "up" vector to the segment from..to.
type OrientationAssign struct {
	From string     `json:"from"`
	To   string     `json:"to"`
	Up   [3]float64 `json:"up"`
}

// MaterialAssign assigns a material UID to the segment from..to.
type MaterialAssign struct {
	From string `json:"from"`
	To   string `json:"to"`
	UID  string `json:"uid"`
}

// SectionAssign assigns a cross-section UID to the segment from..to.
type SectionAssign struct {
	From string `json:"from"`
	To   string `json:"to"`
	UID  string `json:"uid"`
}

// PointLoad applies a 6-component nodal load at a named node.
type PointLoad struct {
	At       string     `json:"at"`
	Load     [6]float64 `json:"load"` // Fx,Fy,Fz,Mx,My,Mz
	LocalSys bool       `json:"local_sys"`
}

// DistrLoad applies a uniform 6-component distributed load along from..to.
type DistrLoad struct {
	From     string     `json:"from"`
	To       string     `json:"to"`
	Load     [6]float64 `json:"load"` // qx,qy,qz,mx,my,mz
	LocalSys bool       `json:"local_sys"`
}

// PointMass attaches a lumped translational mass at a named node.
type PointMass struct {
	At   string  `json:"at"`
	Mass float64 `json:"mass"`
}

// Beam is an ordered polyline of named nodes plus the per-segment
// assignments that, together, must fully cover every element by the time
// assembly begins.
type Beam struct {
	Nodes        []Node              `json:"node"`
	Nelem        int                 `json:"nelem"`
	Orientations []OrientationAssign `json:"orientation"`
	Materials    []MaterialAssign    `json:"material"`
	Sections     []SectionAssign     `json:"cross_section"`
	PointLoads   []PointLoad         `json:"point_load"`
	DistrLoads   []DistrLoad         `json:"distr_load"`
	PointMasses  []PointMass         `json:"point_mass"`
}

// FixSymbol is a single-DOF fixity symbol. The canonical rotational names
// are thx/thy/thz (spec.md §9's Open Question resolves the tx/ty/tz vs.
// thx/thy/thz drift in favour of the latter); "all" expands to all six.
type FixSymbol string

// fixity symbols
const (
	FixUx  FixSymbol = "ux"
	FixUy  FixSymbol = "uy"
	FixUz  FixSymbol = "uz"
	FixThx FixSymbol = "thx"
	FixThy FixSymbol = "thy"
	FixThz FixSymbol = "thz"
	FixAll FixSymbol = "all"
)

// dofOffset maps a (non-"all") fix symbol to its 0..5 DOF offset within a
// node's six-DOF block.
var dofOffset = map[FixSymbol]int{
	FixUx: 0, FixUy: 1, FixUz: 2, FixThx: 3, FixThy: 4, FixThz: 5,
}

// Expand returns the set of 0..5 DOF offsets this symbol list selects,
// de-duplicated and sorted; "all" expands to {0,...,5}.
func Expand(symbols []FixSymbol) ([]int, error) {
	set := make(map[int]bool)
	for _, s := range symbols {
		if s == FixAll {
			for i := 0; i < 6; i++ {
				set[i] = true
			}
			continue
		}
		off, ok := dofOffset[s]
		if !ok {
			return nil, gfaerr.New(gfaerr.InvalidSchema, "unknown fix symbol %q (did you mean thx/thy/thz?)", s)
		}
		set[off] = true
	}
	offs := make([]int, 0, len(set))
	for o := range set {
		offs = append(offs, o)
	}
	sort.Ints(offs)
	return offs, nil
}

// FixBC fixes a subset of DOFs at a node to zero.
type FixBC struct {
	Node string      `json:"node"`
	Fix  []FixSymbol `json:"fix"`
}

// ConnectBC rigidly links node1 and node2 (a multipoint constraint); the
// Fix list selects which of the six relations to emit ("all" emits all six
// for a fully rigid connector; an empty list emits none).
type ConnectBC struct {
	Node1 string      `json:"node1"`
	Node2 string      `json:"node2"`
	Fix   []FixSymbol `json:"fix"`
}

// BC collects all boundary conditions of a model.
type BC struct {
	Fix     []FixBC     `json:"fix"`
	Connect []ConnectBC `json:"connect"`
}

// Model is the top-level, validated input aggregate consumed by the driver.
type Model struct {
	Materials map[string]*Material     `json:"material"`
	Sections  map[string]*CrossSection `json:"cross_section"`
	Beams     []*Beam                  `json:"beam"`
	BC        BC                       `json:"bc"`
}

// NewModel returns an empty Model ready for population by a collaborator
// (builder facade or file decoder).
func NewModel() *Model {
	return &Model{
		Materials: make(map[string]*Material),
		Sections:  make(map[string]*CrossSection),
	}
}

// nodeIndex returns the position of uid within beam's named-node sequence,
// or -1 if absent.
func (b *Beam) nodeIndex(uid string) int {
	for i, n := range b.Nodes {
		if n.UID == uid {
			return i
		}
	}
	return -1
}

// Validate checks every invariant spec.md §3/§6/§7 requires before meshing:
// UID uniqueness and resolution, from/to ordering, positive properties, and
// the canonical fix-symbol vocabulary. It performs no geometric or assembly
// work -- MissingProperty (segment coverage) is only detectable once the
// mesh exists, and is raised by the driver's Run when it builds the
// elements.
func (m *Model) Validate() error {
	for uid, mat := range m.Materials {
		if uid == "" {
			return gfaerr.New(gfaerr.InvalidSchema, "material has empty uid")
		}
		if mat.E <= 0 || mat.G <= 0 || mat.Rho <= 0 {
			return gfaerr.New(gfaerr.InvalidSchema, "material %q must have E,G,rho > 0", uid)
		}
	}
	for uid, sec := range m.Sections {
		if uid == "" {
			return gfaerr.New(gfaerr.InvalidSchema, "cross_section has empty uid")
		}
		if sec.A <= 0 || sec.Iy <= 0 || sec.Iz <= 0 || sec.J <= 0 {
			return gfaerr.New(gfaerr.InvalidSchema, "cross_section %q must have A,Iy,Iz,J > 0", uid)
		}
	}

	globalUids := make(map[string]bool)
	for bi, beam := range m.Beams {
		if len(beam.Nodes) < 2 {
			return gfaerr.New(gfaerr.InsufficientSupport, "beam %d has fewer than two named nodes", bi)
		}
		if beam.Nelem < 1 {
			return gfaerr.New(gfaerr.InvalidSchema, "beam %d: nelem must be >= 1", bi)
		}
		for _, n := range beam.Nodes {
			if n.UID == "" {
				return gfaerr.New(gfaerr.InvalidSchema, "beam %d has a node with empty uid", bi)
			}
			if globalUids[n.UID] {
				return gfaerr.New(gfaerr.DuplicateUid, "node uid %q is not unique across the model", n.UID)
			}
			globalUids[n.UID] = true
		}
		for i := 1; i < len(beam.Nodes); i++ {
			if beam.Nodes[i].Coord == beam.Nodes[i-1].Coord {
				return gfaerr.New(gfaerr.ZeroSegment, "beam %d: consecutive nodes %q and %q coincide", bi, beam.Nodes[i-1].UID, beam.Nodes[i].UID)
			}
		}
		if err := beam.validateRanges(bi); err != nil {
			return err
		}
		for _, a := range beam.Materials {
			if _, ok := m.Materials[a.UID]; !ok {
				return gfaerr.New(gfaerr.UnknownUid, "beam %d: unknown material uid %q", bi, a.UID)
			}
		}
		for _, a := range beam.Sections {
			if _, ok := m.Sections[a.UID]; !ok {
				return gfaerr.New(gfaerr.UnknownUid, "beam %d: unknown cross_section uid %q", bi, a.UID)
			}
		}
		for _, pm := range beam.PointMasses {
			if pm.Mass <= 0 {
				return gfaerr.New(gfaerr.InvalidSchema, "beam %d: point_mass at %q must be > 0", bi, pm.At)
			}
		}
	}

	allUids := func(uid string) bool { return globalUids[uid] }
	for _, fb := range m.BC.Fix {
		if !allUids(fb.Node) {
			return gfaerr.New(gfaerr.UnknownUid, "bc.fix: unknown node uid %q", fb.Node)
		}
		if _, err := Expand(fb.Fix); err != nil {
			return err
		}
	}
	for _, cb := range m.BC.Connect {
		if !allUids(cb.Node1) {
			return gfaerr.New(gfaerr.UnknownUid, "bc.connect: unknown node uid %q", cb.Node1)
		}
		if !allUids(cb.Node2) {
			return gfaerr.New(gfaerr.UnknownUid, "bc.connect: unknown node uid %q", cb.Node2)
		}
		if _, err := Expand(cb.Fix); err != nil {
			return err
		}
	}
	return nil
}

// validateRanges checks that every from/to pair in a beam's assignments
// references nodes on this beam, in order.
func (b *Beam) validateRanges(beamIdx int) error {
	check := func(kind, from, to string) error {
		fi, ti := b.nodeIndex(from), b.nodeIndex(to)
		if fi < 0 {
			return gfaerr.New(gfaerr.UnknownUid, "beam %d: %s.from uid %q not on this beam", beamIdx, kind, from)
		}
		if ti < 0 {
			return gfaerr.New(gfaerr.UnknownUid, "beam %d: %s.to uid %q not on this beam", beamIdx, kind, to)
		}
		if fi >= ti {
			return gfaerr.New(gfaerr.InvalidSchema, "beam %d: %s.from %q must precede %s.to %q", beamIdx, kind, from, kind, to)
		}
		return nil
	}
	for _, o := range b.Orientations {
		if err := check("orientation", o.From, o.To); err != nil {
			return err
		}
	}
	for _, a := range b.Materials {
		if err := check("material", a.From, a.To); err != nil {
			return err
		}
	}
	for _, a := range b.Sections {
		if err := check("cross_section", a.From, a.To); err != nil {
			return err
		}
	}
	for _, dl := range b.DistrLoads {
		if err := check("distr_load", dl.From, dl.To); err != nil {
			return err
		}
	}
	for _, pl := range b.PointLoads {
		if b.nodeIndex(pl.At) < 0 {
			return gfaerr.New(gfaerr.UnknownUid, "beam %d: point_load.at uid %q not on this beam", beamIdx, pl.At)
		}
	}
	for _, pm := range b.PointMasses {
		if b.nodeIndex(pm.At) < 0 {
			return gfaerr.New(gfaerr.UnknownUid, "beam %d: point_mass.at uid %q not on this beam", beamIdx, pm.At)
		}
	}
	return nil
}
