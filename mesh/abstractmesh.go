// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"github.com/cpmech/framecore/gfaerr"
	"github.com/cpmech/framecore/geom"
	"github.com/cpmech/framecore/inp"
	"github.com/cpmech/gosl/gm"
)

// Element is one bounded span of an AbstractMesh: the two consecutive
// MeshPoints that delimit it and the global node indices of its endpoints.
// Per-element matrices (stiffness/mass/load, spec.md §4.D) are built by
// package elem from this plus the beam's property assignments -- the
// abstract mesh only carries topology.
type Element struct {
	BeamIdx int
	Index   int // position within ElementsByBeam[BeamIdx]
	P1, P2  MeshPoint
	N1, N2  int // global node indices of P1, P2
}

// AbstractMesh is the container of spec.md §4.C: per-beam element
// sequences, the named-node -> global-index map, and UID-addressed range
// iteration / bounding-box queries.
type AbstractMesh struct {
	ElementsByBeam [][]Element
	GlobNum        map[string]int  // uid -> global node index
	namedByBeam    []map[string]int // beam index -> (uid -> global node index, for that beam's named nodes only)

	nodeCoord []geom.Vec3 // global node index -> coordinate
	bins      gm.Bins     // spatial index over node coordinates, for Find
	binsReady bool
}

// Build meshes every beam of the model and assembles the abstract mesh,
// assigning contiguous global node indices in beam/element visit order
// (spec.md §3: "total global DOFs = 6 x (total MeshPoints)").
func Build(model *inp.Model) (*AbstractMesh, error) {
	am := &AbstractMesh{
		GlobNum: make(map[string]int),
	}
	nextGlobal := 0
	for bi, beam := range model.Beams {
		pts, err := Polyline(beam.Nodes, beam.Nelem)
		if err != nil {
			return nil, err
		}
		named := make(map[string]int)
		firstIdx := nextGlobal
		for i, p := range pts {
			gidx := firstIdx + i
			am.nodeCoord = append(am.nodeCoord, p.Coord)
			if p.UID != "" {
				if _, dup := am.GlobNum[p.UID]; dup {
					return nil, gfaerr.New(gfaerr.DuplicateUid, "node uid %q is not unique across the model", p.UID)
				}
				am.GlobNum[p.UID] = gidx
				named[p.UID] = gidx
			}
		}
		nextGlobal += len(pts)
		am.namedByBeam = append(am.namedByBeam, named)

		elems := make([]Element, 0, len(pts)-1)
		for i := 0; i < len(pts)-1; i++ {
			elems = append(elems, Element{
				BeamIdx: bi,
				Index:   i,
				P1:      pts[i],
				P2:      pts[i+1],
				N1:      firstIdx + i,
				N2:      firstIdx + i + 1,
			})
		}
		am.ElementsByBeam = append(am.ElementsByBeam, elems)
	}
	return am, nil
}

// NDofs returns the total DOF count: 6 x total MeshPoints.
func (am *AbstractMesh) NDofs() int {
	return 6 * len(am.nodeCoord)
}

// NDofsBeam returns 6 x (nelements+1) for the given beam.
func (am *AbstractMesh) NDofsBeam(beamIdx int) int {
	return 6 * (len(am.ElementsByBeam[beamIdx]) + 1)
}

// GlobalIndex resolves a named node's global node index.
func (am *AbstractMesh) GlobalIndex(uid string) (int, bool) {
	idx, ok := am.GlobNum[uid]
	return idx, ok
}

// NodeCoord returns the coordinate of a global node index.
func (am *AbstractMesh) NodeCoord(globalIdx int) geom.Vec3 {
	return am.nodeCoord[globalIdx]
}

// NNodes returns the total number of global nodes (== NDofs()/6).
func (am *AbstractMesh) NNodes() int { return len(am.nodeCoord) }

// IterFromTo returns the contiguous slice of elements from the element
// whose P1 carries uid1 up to and including the element whose P2 carries
// uid2, on the given beam (spec.md §4.C).
func (am *AbstractMesh) IterFromTo(beamIdx int, uid1, uid2 string) ([]Element, error) {
	named := am.namedByBeam[beamIdx]
	g1, ok1 := named[uid1]
	g2, ok2 := named[uid2]
	if !ok1 {
		return nil, gfaerr.New(gfaerr.UnknownUid, "uid %q not found on beam %d", uid1, beamIdx)
	}
	if !ok2 {
		return nil, gfaerr.New(gfaerr.UnknownUid, "uid %q not found on beam %d", uid2, beamIdx)
	}
	if g2 <= g1 {
		return nil, gfaerr.New(gfaerr.MisorderedRange, "misordered range: %q is reached before %q on beam %d", uid2, uid1, beamIdx)
	}
	elems := am.ElementsByBeam[beamIdx]
	startIdx, endIdx := -1, -1
	for i, e := range elems {
		if e.N1 == g1 {
			startIdx = i
		}
		if e.N2 == g2 {
			endIdx = i
		}
	}
	if startIdx < 0 || endIdx < 0 {
		return nil, gfaerr.New(gfaerr.UnknownUid, "uid %q or %q does not bound an element on beam %d", uid1, uid2, beamIdx)
	}
	if endIdx < startIdx {
		return nil, gfaerr.New(gfaerr.MisorderedRange, "misordered range: %q is reached before %q on beam %d", uid2, uid1, beamIdx)
	}
	return elems[startIdx : endIdx+1], nil
}

// ElementByNamedNode returns the element incident to the named node uid on
// beamIdx, and which endpoint (1 or 2) carries it. If uid is interior (has
// two incident elements) the element to its left (lower arc-length) wins.
func (am *AbstractMesh) ElementByNamedNode(beamIdx int, uid string) (Element, int, error) {
	named := am.namedByBeam[beamIdx]
	g, ok := named[uid]
	if !ok {
		return Element{}, 0, gfaerr.New(gfaerr.UnknownUid, "uid %q not found on beam %d", uid, beamIdx)
	}
	elems := am.ElementsByBeam[beamIdx]
	for _, e := range elems {
		if e.N2 == g {
			return e, 2, nil
		}
	}
	for _, e := range elems {
		if e.N1 == g {
			return e, 1, nil
		}
	}
	return Element{}, 0, gfaerr.New(gfaerr.UnknownUid, "uid %q does not bound any element on beam %d", uid, beamIdx)
}

// BoundingBox returns the axis-aligned box enclosing every mesh node.
func (am *AbstractMesh) BoundingBox() (min, max geom.Vec3) {
	if len(am.nodeCoord) == 0 {
		return
	}
	min, max = am.nodeCoord[0], am.nodeCoord[0]
	for _, c := range am.nodeCoord[1:] {
		for i := 0; i < 3; i++ {
			if c[i] < min[i] {
				min[i] = c[i]
			}
			if c[i] > max[i] {
				max[i] = c[i]
			}
		}
	}
	return
}

// buildBins lazily indexes all node coordinates into a gm.Bins spatial
// structure, mirroring the teacher's out/out.go NodBins/IpsBins pattern.
func (am *AbstractMesh) buildBins() error {
	if am.binsReady {
		return nil
	}
	min, max := am.BoundingBox()
	pad := 1e-6
	xi := []float64{min[0] - pad, min[1] - pad, min[2] - pad}
	xf := []float64{max[0] + pad, max[1] + pad, max[2] + pad}
	if err := am.bins.Init(xi, xf, 20); err != nil {
		return err
	}
	for gidx, c := range am.nodeCoord {
		if err := am.bins.Append(c[:], gidx); err != nil {
			return err
		}
	}
	am.binsReady = true
	return nil
}

// FindNode returns the global index of the node at coord (within the bins'
// rounding tolerance), or -1 if none is indexed there.
func (am *AbstractMesh) FindNode(coord geom.Vec3) (int, error) {
	if err := am.buildBins(); err != nil {
		return -1, err
	}
	return am.bins.Find(coord[:]), nil
}
