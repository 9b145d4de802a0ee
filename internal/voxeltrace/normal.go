package voxeltrace

import "github.com/go-gl/mathgl/mgl32"

// estimateNormal takes central differences of the distance field around
// hit.Position. All six samples are seeded with the same base hit, so a
// sample that is not closer than the base reports the base distance.
// A vanishing gradient yields FallbackNormal.
func estimateNormal(hit RayHit, voxels []Voxel, amount uint32) mgl32.Vec3 {
	p := hit.Position
	var n mgl32.Vec3
	for axis := 0; axis < 3; axis++ {
		var e mgl32.Vec3
		e[axis] = NormalEpsilon
		n[axis] = Map(p.Add(e), hit, voxels, amount).Distance -
			Map(p.Sub(e), hit, voxels, amount).Distance
	}
	return safeNorm(n, FallbackNormal)
}
