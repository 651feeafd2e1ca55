// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh implements the polyline mesher (spec.md §4.B) and the
// abstract beam mesh container (spec.md §4.C): turning a beam's ordered
// named nodes into evenly-distributed MeshPoints, then collecting the
// resulting elements across every beam into one UID-addressable container.
package mesh

import (
	"math"

	"github.com/cpmech/framecore/gfaerr"
	"github.com/cpmech/framecore/geom"
	"github.com/cpmech/framecore/inp"
)

// MeshPoint is one vertex of the subdivided polyline: a coordinate, its
// beam-global arc-length fraction, and -- for endpoints inherited from a
// support point -- the originating UID.
type MeshPoint struct {
	Coord geom.Vec3
	Eta   float64
	UID   string // "" for interior subdivision points
}

// Polyline subdivides the ordered support points of one beam into MeshPoints
// per spec.md §4.B: segment lengths are computed, each segment gets
// ceil(nTarget*Li/L) sub-elements (at least one), uniformly subdivided, and
// concatenated with the shared endpoint between adjacent segments
// deduplicated.
func Polyline(nodes []inp.Node, nTarget int) ([]MeshPoint, error) {
	if len(nodes) < 2 {
		return nil, gfaerr.New(gfaerr.InsufficientSupport, "polyline needs at least two support points, got %d", len(nodes))
	}
	if nTarget < 1 {
		return nil, gfaerr.New(gfaerr.InvalidSchema, "nelem must be >= 1, got %d", nTarget)
	}

	nseg := len(nodes) - 1
	segLen := make([]float64, nseg)
	total := 0.0
	for i := 0; i < nseg; i++ {
		d := geom.Sub(toVec3(nodes[i+1].Coord), toVec3(nodes[i].Coord))
		segLen[i] = geom.Norm(d)
		if segLen[i] < 1e-15 {
			return nil, gfaerr.New(gfaerr.ZeroSegment, "segment %d (%q -> %q) has zero length", i, nodes[i].UID, nodes[i+1].UID)
		}
		total += segLen[i]
	}

	var pts []MeshPoint
	cum := 0.0
	for i := 0; i < nseg; i++ {
		ni := int(math.Ceil(float64(nTarget) * segLen[i] / total))
		if ni < 1 {
			ni = 1
		}
		p0 := toVec3(nodes[i].Coord)
		p1 := toVec3(nodes[i+1].Coord)
		for k := 0; k <= ni; k++ {
			if i > 0 && k == 0 {
				continue // dedupe shared endpoint with previous segment
			}
			xi := float64(k) / float64(ni)
			coord := geom.Vec3{
				p0[0] + xi*(p1[0]-p0[0]),
				p0[1] + xi*(p1[1]-p0[1]),
				p0[2] + xi*(p1[2]-p0[2]),
			}
			eta := (cum + xi*segLen[i]) / total
			uid := ""
			if k == 0 {
				uid = nodes[i].UID
			} else if k == ni {
				uid = nodes[i+1].UID
			}
			pts = append(pts, MeshPoint{Coord: coord, Eta: eta, UID: uid})
		}
		cum += segLen[i]
	}
	pts[0].Eta = 0
	pts[len(pts)-1].Eta = 1
	return pts, nil
}

func toVec3(c [3]float64) geom.Vec3 { return geom.Vec3{c[0], c[1], c[2]} }
