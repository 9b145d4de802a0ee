package voxeltrace

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func shadeUniforms() Uniforms {
	u := DefaultUniforms(1)
	u.LightPosition = mgl32.Vec3{0, 5, -5}
	u.SunIntensity = 10
	return u
}

func TestShadeDiffuse(t *testing.T) {
	u := shadeUniforms()
	hit := RayHit{Position: mgl32.Vec3{0, 0, -0.16}, Color: mgl32.Vec4{1, 0.5, 0, 1}}
	n := mgl32.Vec3{0, 0, -1}
	got := shade(hit, n, &u)

	l := mgl32.Vec3{0, 5, -4.84}
	want := 1 + 4.84/math32.Sqrt(l.Dot(l))
	if !near(got[0], want, 1e-5) || !near(got[1], want*0.5, 1e-5) || got[2] != 0 || got[3] != 1 {
		t.Fatalf("shade = %v, want r=%.6g", got, want)
	}
}

func TestShadeBackFacingClamped(t *testing.T) {
	u := shadeUniforms()
	u.SunIntensity = 1
	hit := RayHit{Position: mgl32.Vec3{0, 0, -0.16}, Color: mgl32.Vec4{1, 1, 1, 0.3}}
	got := shade(hit, mgl32.Vec3{0, 0, 1}, &u)
	if !nearVec4(got, mgl32.Vec4{0.1, 0.1, 0.1, 1}, 1e-6) {
		t.Fatalf("back-facing surface must get ambient only, got %v", got)
	}
}

func TestShadeLightOnHitPoint(t *testing.T) {
	u := shadeUniforms()
	u.SunIntensity = 2
	hit := RayHit{Position: u.LightPosition, Color: mgl32.Vec4{0, 1, 0, 1}}
	got := shade(hit, mgl32.Vec3{1, 0, 0}, &u)
	if !nearVec4(got, mgl32.Vec4{0, 1.2, 0, 1}, 1e-6) {
		t.Fatalf("light on hit point: got %v", got)
	}
	if math32.IsNaN(got[1]) {
		t.Fatal("NaN leaked from zero-length light vector")
	}
}

func TestShadeIgnoresReservedUniforms(t *testing.T) {
	u := shadeUniforms()
	hit := RayHit{Position: mgl32.Vec3{0.16, 0, 0}, Color: mgl32.Vec4{0.3, 0.6, 0.9, 1}}
	n := mgl32.Vec3{1, 0, 0}
	base := shade(hit, n, &u)

	u.FloorColor = mgl32.Vec4{1, 0, 1, 1}
	u.ObjectColor = mgl32.Vec3{0, 0, 0}
	u.Smoothing = 0.7
	u.AmbientOcclusion = 0
	if got := shade(hit, n, &u); got != base {
		t.Fatalf("reserved uniforms changed shading: %v vs %v", got, base)
	}
}

func TestMissColor(t *testing.T) {
	u := shadeUniforms()
	u.BackgroundColor = mgl32.Vec4{0.1, 0.2, 0.3, 1}
	if got := missColor(&u); got != u.BackgroundColor {
		t.Fatalf("miss colour %v", got)
	}
}
