package voxeltrace

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var red = mgl32.Vec3{1, 0, 0}

// singleVoxelSetup is one red voxel at the origin seen from (0,0,-5).
func singleVoxelSetup(res uint32) (Uniforms, Camera, *VoxelGrid) {
	grid := NewVoxelGrid(NewVoxel(0, 0, 0, red))
	u := DefaultUniforms(grid.Len())
	u.MaxSteps = 100
	u.Resolution = [2]uint32{res, res}
	u.BackgroundColor = mgl32.Vec4{0.2, 0.3, 0.4, 1}
	u.LightPosition = mgl32.Vec3{0, 5, -5}
	u.SunIntensity = 10
	cam := Camera{Position: mgl32.Vec3{0, 0, -5}, LookAt: mgl32.Vec3{}, Zoom: 5}
	return u, cam, grid
}

func mustTracer(t *testing.T, u Uniforms, cam Camera, grid *VoxelGrid) *Tracer {
	t.Helper()
	tr, err := NewTracer(u, cam, grid)
	if err != nil {
		t.Fatalf("NewTracer: %v", err)
	}
	return tr
}

func near(a, b, eps float32) bool { return math32.Abs(a-b) <= eps }

// nearVec3 and nearVec4 compare component-wise with an absolute tolerance.
func nearVec3(a, b mgl32.Vec3, eps float32) bool {
	for i := range a {
		if !near(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

func nearVec4(a, b mgl32.Vec4, eps float32) bool {
	for i := range a {
		if !near(a[i], b[i], eps) {
			return false
		}
	}
	return true
}
