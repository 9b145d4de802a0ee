package voxeltrace

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrPrecondition wraps every frame-boundary validation failure.
var ErrPrecondition = errors.New("render precondition violated")

// Uniforms are the per-frame render parameters.
type Uniforms struct {
	Time            float32    `json:"time"`
	Frames          uint32     `json:"frames"`
	MaxSteps        uint32     `json:"maxSteps"`
	VoxelAmount     uint32     `json:"voxelAmount"`
	Resolution      [2]uint32  `json:"resolution"`
	BackgroundColor mgl32.Vec4 `json:"backgroundColor"`
	// Reserved: not used by shading.
	FloorColor mgl32.Vec4 `json:"floorColor"`
	// Reserved: not used by shading.
	ObjectColor   mgl32.Vec3 `json:"objectColor"`
	LightPosition mgl32.Vec3 `json:"lightPosition"`
	SunIntensity  float32    `json:"sunIntensity"`
	// Reserved for smooth-minimum blending; not used.
	Smoothing float32 `json:"smoothing"`
	// Reserved ambient occlusion step count; not used.
	AmbientOcclusion int32 `json:"ambientOcclusion"`
}

// DefaultUniforms returns the application's start-up parameters for a grid
// of n voxels.
func DefaultUniforms(n int) Uniforms {
	return Uniforms{
		MaxSteps:         MaxSteps,
		VoxelAmount:      uint32(n),
		Resolution:       [2]uint32{ResolutionX, ResolutionY},
		BackgroundColor:  mgl32.Vec4{0, 0, 0, 1},
		FloorColor:       mgl32.Vec4{0.1, 0.1, 0.1, 1},
		ObjectColor:      mgl32.Vec3{1, 1, 1},
		LightPosition:    mgl32.Vec3{0, 0.25, 0},
		SunIntensity:     SunIntensity,
		AmbientOcclusion: AmbientOcclusion,
	}
}

// Width and Height return the output resolution as ints.
func (u Uniforms) Width() int  { return int(u.Resolution[0]) }
func (u Uniforms) Height() int { return int(u.Resolution[1]) }

// Validate checks the preconditions the per-pixel code relies on.
func (u Uniforms) Validate(grid *VoxelGrid, cam Camera) error {
	if u.Resolution[0] == 0 || u.Resolution[1] == 0 {
		return fmt.Errorf("%w: resolution must be positive, got %dx%d", ErrPrecondition, u.Resolution[0], u.Resolution[1])
	}
	if u.MaxSteps == 0 {
		return fmt.Errorf("%w: maxSteps must be positive", ErrPrecondition)
	}
	if int(u.VoxelAmount) > grid.Len() {
		return fmt.Errorf("%w: voxelAmount %d exceeds voxel buffer length %d", ErrPrecondition, u.VoxelAmount, grid.Len())
	}
	if !finiteVec(u.LightPosition) || !isFinite32(u.SunIntensity) {
		return fmt.Errorf("%w: light has non-finite values: pos=%v intensity=%g", ErrPrecondition, u.LightPosition, u.SunIntensity)
	}
	return cam.Validate()
}

// Advance moves the frame clock forward by dt seconds.
func (u *Uniforms) Advance(dt float32) {
	u.Time += dt
	u.Frames++
}
