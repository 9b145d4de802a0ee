package voxeltrace

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestEstimateNormalFlatFaces(t *testing.T) {
	voxels := []Voxel{NewVoxel(0, 0, 0, red)}
	const off = VoxelSize + 0.0005
	faces := []mgl32.Vec3{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}
	for _, axis := range faces {
		p := axis.Mul(off)
		hit := Map(p, RayHit{Distance: 100}, voxels, 1)
		if hit.Distance >= HitEpsilon {
			t.Fatalf("sample %v is not on the surface: %.6g", p, hit.Distance)
		}
		n := estimateNormal(hit, voxels, 1)
		if !nearVec3(n, axis, 1e-3) {
			t.Fatalf("face %v: normal %v", axis, n)
		}
	}
}

func TestEstimateNormalOffCentreFace(t *testing.T) {
	voxels := []Voxel{NewVoxel(0, 0, 0, red), NewVoxel(1, 0, 0, red)}
	// on the shared +y face of two touching voxels
	p := mgl32.Vec3{0.2, VoxelSize + 0.0004, 0.05}
	hit := Map(p, RayHit{Distance: 100}, voxels, 2)
	n := estimateNormal(hit, voxels, 2)
	if !nearVec3(n, mgl32.Vec3{0, 1, 0}, 1e-3) {
		t.Fatalf("normal %v", n)
	}
}

func TestEstimateNormalFallback(t *testing.T) {
	hit := RayHit{Position: mgl32.Vec3{1, 2, 3}, Distance: 0.0001}
	if n := estimateNormal(hit, nil, 0); n != FallbackNormal {
		t.Fatalf("flat field must fall back, got %v", n)
	}
}
