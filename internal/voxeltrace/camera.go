package voxeltrace

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is supplied once per frame and never mutated by the renderer.
type Camera struct {
	Position mgl32.Vec3 `json:"position"`
	LookAt   mgl32.Vec3 `json:"lookAt"`
	Zoom     float32    `json:"zoom"`
}

// Ray is an origin and a direction. Direction is not required to be unit
// length.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns origin + t*direction.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Basis returns the camera's forward, right and up vectors.
// look_at == position or forward parallel to WorldUp give a degenerate
// basis; Validate rejects both before any pixel is traced.
func (c Camera) Basis() (forward, right, up mgl32.Vec3) {
	forward = c.LookAt.Sub(c.Position).Normalize()
	right = WorldUp.Cross(forward).Normalize()
	up = forward.Cross(right)
	return
}

// Ray builds the pinhole ray through uv. The direction runs from the
// camera to a point on the focal plane and is left unnormalized.
func (c Camera) Ray(uv mgl32.Vec2) Ray {
	forward, right, up := c.Basis()
	focal := c.Position.Add(forward.Mul(c.Zoom - FocalOffset))
	target := focal.Add(right.Mul(uv[0])).Add(up.Mul(uv[1]))
	return Ray{Origin: c.Position, Direction: target.Sub(c.Position)}
}

// PixelUV maps pixel (x, y) of a w*h image to view-centred coordinates,
// y flipped so that positive is up.
func PixelUV(x, y, w, h int) mgl32.Vec2 {
	return mgl32.Vec2{
		float32(x)/float32(w) - 0.5,
		-(float32(y)/float32(h) - 0.5),
	}
}

// Validate reports a degenerate camera.
func (c Camera) Validate() error {
	if !finiteVec(c.Position) || !finiteVec(c.LookAt) || !isFinite32(c.Zoom) {
		return fmt.Errorf("%w: camera has non-finite values: %+v", ErrPrecondition, c)
	}
	if c.Zoom <= FocalOffset {
		return fmt.Errorf("%w: zoom must be > %.2f, got %g", ErrPrecondition, FocalOffset, c.Zoom)
	}
	dir := c.LookAt.Sub(c.Position)
	if dir.Dot(dir) <= epsLen2 {
		return fmt.Errorf("%w: camera position and lookAt coincide at %v", ErrPrecondition, c.Position)
	}
	side := WorldUp.Cross(dir.Normalize())
	if side.Len() < 1e-6 {
		return fmt.Errorf("%w: camera forward %v is parallel to world up", ErrPrecondition, dir)
	}
	return nil
}

// Orbit returns the camera rotated by angle (radians) about the world up
// axis through LookAt.
func (c Camera) Orbit(angle float32) Camera {
	off := c.Position.Sub(c.LookAt)
	s, co := math32.Sin(angle), math32.Cos(angle)
	rot := mgl32.Vec3{
		off[0]*co + off[2]*s,
		off[1],
		-off[0]*s + off[2]*co,
	}
	c.Position = c.LookAt.Add(rot)
	return c
}
