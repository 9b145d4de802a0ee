package voxeltrace

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// absVec returns the component-wise absolute value.
func absVec(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{math32.Abs(v[0]), math32.Abs(v[1]), math32.Abs(v[2])}
}

// maxVec returns the component-wise maximum of v and s.
func maxVec(v mgl32.Vec3, s float32) mgl32.Vec3 {
	return mgl32.Vec3{math32.Max(v[0], s), math32.Max(v[1], s), math32.Max(v[2], s)}
}

// maxComp returns the largest component of v.
func maxComp(v mgl32.Vec3) float32 {
	return math32.Max(v[0], math32.Max(v[1], v[2]))
}

// safeNorm returns a unit-length version of v, or fallback when v is
// (near) zero or not finite.
func safeNorm(v, fallback mgl32.Vec3) mgl32.Vec3 {
	l2 := v.Dot(v)
	if !(l2 > epsLen2) || !isFinite32(l2) {
		return fallback
	}
	return v.Mul(1 / math32.Sqrt(l2))
}

func finiteVec(v mgl32.Vec3) bool {
	return isFinite32(v[0]) && isFinite32(v[1]) && isFinite32(v[2])
}
