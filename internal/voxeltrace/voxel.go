package voxeltrace

import "github.com/go-gl/mathgl/mgl32"

// Voxel is a single coloured cell of the grid.
type Voxel struct {
	Position [3]int32  `json:"position"`
	Color    mgl32.Vec3 `json:"color"`
}

// NewVoxel constructs a voxel at grid position (x, y, z).
func NewVoxel(x, y, z int32, color mgl32.Vec3) Voxel {
	return Voxel{Position: [3]int32{x, y, z}, Color: color}
}

// Center returns the voxel's world-space box centre.
// Adjacent voxels touch: the grid step is twice the box half-extent.
func (v Voxel) Center() mgl32.Vec3 {
	const step = VoxelSize * 2
	return mgl32.Vec3{
		float32(v.Position[0]) * step,
		float32(v.Position[1]) * step,
		float32(v.Position[2]) * step,
	}
}

// VoxelGrid is the ordered voxel buffer sampled every frame.
// It must not be mutated while a frame that reads it is in flight.
type VoxelGrid struct {
	Voxels []Voxel
}

// NewVoxelGrid returns a grid holding voxels in the given order.
func NewVoxelGrid(voxels ...Voxel) *VoxelGrid {
	g := &VoxelGrid{Voxels: make([]Voxel, 0, len(voxels))}
	g.Voxels = append(g.Voxels, voxels...)
	DebugLog("Created voxel grid with %d voxels", len(g.Voxels))
	return g
}

// Len returns the buffer length (capacity available to VoxelAmount).
func (g *VoxelGrid) Len() int {
	if g == nil {
		return 0
	}
	return len(g.Voxels)
}

func (g *VoxelGrid) Append(v ...Voxel) {
	g.Voxels = append(g.Voxels, v...)
}

// Active returns the first n voxels, the slice the evaluator iterates.
func (g *VoxelGrid) Active(n uint32) []Voxel {
	if g == nil {
		return nil
	}
	if int(n) > len(g.Voxels) {
		n = uint32(len(g.Voxels))
	}
	return g.Voxels[:n]
}

// DefaultGrid is the five-voxel scene the application starts with.
func DefaultGrid() *VoxelGrid {
	return NewVoxelGrid(
		NewVoxel(0, 0, 0, mgl32.Vec3{1, 1, 1}),
		NewVoxel(1, 1, 0, mgl32.Vec3{0, 1, 0}),
		NewVoxel(1, 2, 0, mgl32.Vec3{1, 1, 0}),
		NewVoxel(-1, 1, 0, mgl32.Vec3{0, 0, 1}),
		NewVoxel(0, 1, -1, mgl32.Vec3{1, 0, 0}),
	)
}
