// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/cpmech/framecore/gfaerr"
	"github.com/cpmech/framecore/inp"
)

func twoNodeBeam(nelem int) *inp.Beam {
	return &inp.Beam{
		Nodes: []inp.Node{
			{UID: "root", Coord: [3]float64{0, 0, 0}},
			{UID: "tip", Coord: [3]float64{1, 0, 0}},
		},
		Nelem: nelem,
	}
}

func TestBuildNDofs(t *testing.T) {
	model := inp.NewModel()
	model.Beams = []*inp.Beam{twoNodeBeam(1)}
	am, err := Build(model)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if am.NDofs() != 12 {
		t.Fatalf("expected 12 dofs (2 nodes x 6), got %d", am.NDofs())
	}
	if am.NDofsBeam(0) != 12 {
		t.Fatalf("expected ndofs_beam(0)=12, got %d", am.NDofsBeam(0))
	}
	total := 0
	for bi := range am.ElementsByBeam {
		total += am.NDofsBeam(bi)
	}
	if total != am.NDofs() {
		t.Fatalf("sum of per-beam dofs %d != total %d", total, am.NDofs())
	}
}

func TestBuildDuplicateUidAcrossBeams(t *testing.T) {
	model := inp.NewModel()
	model.Beams = []*inp.Beam{twoNodeBeam(1), twoNodeBeam(1)} // both reuse "root","tip"
	_, err := Build(model)
	if !gfaerr.Is(err, gfaerr.DuplicateUid) {
		t.Fatalf("expected DuplicateUid, got %v", err)
	}
}

func TestIterFromToMisorderedRange(t *testing.T) {
	model := inp.NewModel()
	beam := &inp.Beam{
		Nodes: []inp.Node{
			{UID: "a", Coord: [3]float64{0, 0, 0}},
			{UID: "b", Coord: [3]float64{1, 0, 0}},
			{UID: "c", Coord: [3]float64{2, 0, 0}},
		},
		Nelem: 2,
	}
	model.Beams = []*inp.Beam{beam}
	am, err := Build(model)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = am.IterFromTo(0, "c", "a")
	if !gfaerr.Is(err, gfaerr.MisorderedRange) {
		t.Fatalf("expected MisorderedRange, got %v", err)
	}
	elems, err := am.IterFromTo(0, "a", "c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(elems) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(elems))
	}
}

func TestIterFromToUnknownUid(t *testing.T) {
	model := inp.NewModel()
	model.Beams = []*inp.Beam{twoNodeBeam(1)}
	am, err := Build(model)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = am.IterFromTo(0, "root", "nowhere")
	if !gfaerr.Is(err, gfaerr.UnknownUid) {
		t.Fatalf("expected UnknownUid, got %v", err)
	}
}
