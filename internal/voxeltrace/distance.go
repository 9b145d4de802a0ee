package voxeltrace

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// RayHit is the running state of a single ray. It is threaded through the
// distance field by value: each evaluation returns an updated copy.
type RayHit struct {
	Position mgl32.Vec3 // last sample point that improved the distance
	Distance float32    // best signed distance seen so far
	Color    mgl32.Vec4
}

// boxDistance is the signed distance from p to an axis-aligned box.
func boxDistance(p, center, half mgl32.Vec3) float32 {
	d := absVec(p.Sub(center)).Sub(half)
	return math32.Min(maxComp(d), 0) + maxVec(d, 0).Len()
}

// Map evaluates every active voxel as a box at p and keeps the nearest.
// A voxel replaces the hit only when strictly closer, so on ties the
// first voxel in buffer order wins. Exactly min(amount, len) voxels are
// visited.
func Map(p mgl32.Vec3, hit RayHit, voxels []Voxel, amount uint32) RayHit {
	n := len(voxels)
	if int(amount) < n {
		n = int(amount)
	}
	for i := 0; i < n; i++ {
		v := &voxels[i]
		if d := boxDistance(p, v.Center(), BoxHalf); d < hit.Distance {
			hit.Position = p
			hit.Color = v.Color.Vec4(1)
			hit.Distance = d
		}
	}
	return hit
}
