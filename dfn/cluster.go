package dfn

import (
	"math"

	"github.com/ongchi/dfngen/fram"
	"github.com/ongchi/dfngen/geom"
)

// Cluster is one connected component of the accepted-fracture graph
// (nodes: polygons, edges: intersection records), plus the boundary-face
// adherence and intersection-presence facts SelectFinalFractures filters on.
type Cluster struct {
	Members          []int
	TouchesFace      [6]bool
	HasIntersections bool
}

// ufFind is a recursive, path-compression-free lookup of a node's set
// representative.
func ufFind(parent map[int]int, x int) int {
	p := parent[x]
	if p == x {
		return x
	}
	return ufFind(parent, p)
}

// ufUnion merges the sets containing x and y.
func ufUnion(parent map[int]int, x, y int) {
	key := ufFind(parent, y)
	value := ufFind(parent, x)
	parent[key] = value
}

// AnalyzeClusters computes connected components of net's accepted
// fractures via union-find over intersection records, then tags each
// component with which of the domain's six faces (in the order -x, +x,
// -y, +y, -z, +z, matching Config.BoundaryFaces) any member's truncated
// vertices touch.
func AnalyzeClusters(net *fram.Network, domain geom.AABB, eps float64) []Cluster {
	parent := map[int]int{}
	for i := range net.Polys {
		parent[net.Polys[i].ID] = net.Polys[i].ID
	}
	for _, inter := range net.Inters {
		ufUnion(parent, inter.P1, inter.P2)
	}

	groups := map[int][]int{}
	for i := range net.Polys {
		id := net.Polys[i].ID
		root := ufFind(parent, id)
		groups[root] = append(groups[root], id)
	}

	clusters := make([]Cluster, 0, len(groups))
	for _, members := range groups {
		hasInter := false
		for _, id := range members {
			if len(net.Polys[id].Intersections) > 0 {
				hasInter = true
				break
			}
		}
		groupID := len(clusters) + 1
		for _, id := range members {
			net.Polys[id].Group = groupID
		}
		clusters = append(clusters, Cluster{
			Members:          members,
			TouchesFace:      facesTouched(members, net, domain, eps),
			HasIntersections: hasInter,
		})
	}
	return clusters
}

func facesTouched(members []int, net *fram.Network, domain geom.AABB, eps float64) [6]bool {
	var touched [6]bool
	for _, id := range members {
		for _, v := range net.Polys[id].Verts {
			if math.Abs(v.X-domain.Min.X) <= eps {
				touched[0] = true
			}
			if math.Abs(v.X-domain.Max.X) <= eps {
				touched[1] = true
			}
			if math.Abs(v.Y-domain.Min.Y) <= eps {
				touched[2] = true
			}
			if math.Abs(v.Y-domain.Max.Y) <= eps {
				touched[3] = true
			}
			if math.Abs(v.Z-domain.Min.Z) <= eps {
				touched[4] = true
			}
			if math.Abs(v.Z-domain.Max.Z) <= eps {
				touched[5] = true
			}
		}
	}
	return touched
}

// SelectFinalFractures applies three selection modes:
// IgnoreBoundaryFaces keeps every component with at least one
// intersection; KeepOnlyLargestCluster keeps only the single largest
// boundary-touching component; otherwise every boundary-touching
// component is kept. Isolated single-fracture components with no
// intersections are always dropped in the non-IgnoreBoundaryFaces modes.
func SelectFinalFractures(clusters []Cluster, cfg *Config) []int {
	if cfg.IgnoreBoundaryFaces {
		var out []int
		for _, c := range clusters {
			if c.HasIntersections {
				out = append(out, c.Members...)
			}
		}
		return out
	}

	var touching []Cluster
	for _, c := range clusters {
		if len(c.Members) == 1 && !c.HasIntersections {
			continue // isolated fracture, always removed
		}
		if touchesAnyRequested(c, cfg.BoundaryFaces) {
			touching = append(touching, c)
		}
	}

	if cfg.KeepOnlyLargestCluster {
		var largest *Cluster
		for i := range touching {
			if largest == nil || len(touching[i].Members) > len(largest.Members) {
				largest = &touching[i]
			}
		}
		if largest == nil {
			return nil
		}
		return largest.Members
	}

	var out []int
	for _, c := range touching {
		out = append(out, c.Members...)
	}
	return out
}

func touchesAnyRequested(c Cluster, requested [6]bool) bool {
	any := false
	for _, r := range requested {
		if r {
			any = true
			break
		}
	}
	if !any {
		return true // no faces requested: boundary predicate doesn't filter
	}
	for i := 0; i < 6; i++ {
		if requested[i] && c.TouchesFace[i] {
			return true
		}
	}
	return false
}
