package voxeltrace

import "github.com/go-gl/mathgl/mgl32"

var (
	Debug    = false // set to true for verbose debug output and march logging
	PNG      = true  // set to false to skip saving the rendered frame as PNG
	GIF      = false // set to true to render an orbit animation into an animated GIF
	RAW      = false // set to true to dump the float frame (zstd compressed when path ends in .zst)
	Progress = false // set to true to print per-row render progress
	// WorldUp is the fixed up axis used to build the camera basis.
	WorldUp = mgl32.Vec3{0, 1, 0}
	// FallbackNormal is returned when the distance field gradient vanishes.
	FallbackNormal = mgl32.Vec3{0, 1, 0}
	// BoxHalf is the half-extent of every voxel box.
	BoxHalf = mgl32.Vec3{VoxelSize, VoxelSize, VoxelSize}
)
