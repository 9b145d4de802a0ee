package voxeltrace

import "github.com/go-gl/mathgl/mgl32"

// shade applies diffuse lighting from a point light to a resolved hit.
// A light sitting on the hit point lights it head-on.
func shade(hit RayHit, normal mgl32.Vec3, u *Uniforms) mgl32.Vec4 {
	lightDir := safeNorm(u.LightPosition.Sub(hit.Position), normal)
	diffuse := u.SunIntensity/SunDivisor + clamp01(normal.Dot(lightDir))
	diffuse *= ambientOcclusion(hit, normal, u)
	return hit.Color.Vec3().Mul(diffuse).Vec4(1)
}

// ambientOcclusion is a reserved hook; occlusion is currently disabled.
func ambientOcclusion(RayHit, mgl32.Vec3, *Uniforms) float32 {
	return 1
}

// missColor is what a ray that found no surface resolves to.
func missColor(u *Uniforms) mgl32.Vec4 {
	return u.BackgroundColor
}
