package obb

import (
	"math/bits"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ollestrom/furnish/pkg/geom"
)

// Edge is one of the twelve edges of an OBB.
type Edge struct {
	Start     mgl64.Vec3
	End       mgl64.Vec3
	Direction mgl64.Vec3 // unit vector from Start to End
	Midpoint  mgl64.Vec3
}

// edgePairs connects corner indices that differ in exactly one sign
// bit, which is the adjacency relation of a box.
var edgePairs = buildEdgePairs()

func buildEdgePairs() [12][2]int {
	var pairs [12][2]int
	n := 0
	for i := 0; i < 8; i++ {
		for j := i + 1; j < 8; j++ {
			if bits.OnesCount(uint(i^j)) == 1 {
				pairs[n] = [2]int{i, j}
				n++
			}
		}
	}
	return pairs
}

// Edges returns the twelve edges of the box.
func (o OBB) Edges() []Edge {
	corners := o.Corners()
	edges := make([]Edge, 0, 12)
	for _, p := range edgePairs {
		start, end := corners[p[0]], corners[p[1]]
		edges = append(edges, Edge{
			Start:     start,
			End:       end,
			Direction: geom.SafeNormalize(end.Sub(start)),
			Midpoint:  start.Add(end).Mul(0.5),
		})
	}
	return edges
}
