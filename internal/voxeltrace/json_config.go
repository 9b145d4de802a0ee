package voxeltrace

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

// UniformsCfg is the JSON form of Uniforms. Pointer fields distinguish
// "not given" from an explicit zero.
type UniformsCfg struct {
	Time             float32     `json:"time,omitempty"`
	Frames           uint32      `json:"frames,omitempty"`
	MaxSteps         uint32      `json:"maxSteps,omitempty"`
	VoxelAmount      *uint32     `json:"voxelAmount,omitempty"` // defaults to the number of voxels
	Resolution       [2]uint32   `json:"resolution,omitempty"`
	BackgroundColor  *mgl32.Vec4 `json:"backgroundColor,omitempty"`
	FloorColor       *mgl32.Vec4 `json:"floorColor,omitempty"`
	ObjectColor      *mgl32.Vec3 `json:"objectColor,omitempty"`
	LightPosition    *mgl32.Vec3 `json:"lightPosition,omitempty"`
	SunIntensity     *float32    `json:"sunIntensity,omitempty"`
	Smoothing        float32     `json:"smoothing,omitempty"`
	AmbientOcclusion *int32      `json:"ambientOcclusion,omitempty"`
}

type CameraCfg struct {
	Position *mgl32.Vec3 `json:"position,omitempty"`
	LookAt   *mgl32.Vec3 `json:"lookAt,omitempty"`
	Zoom     float32     `json:"zoom,omitempty"`
}

type Config struct {
	Uniforms UniformsCfg `json:"uniforms"`
	Camera   CameraCfg   `json:"camera"`
	// nil (key absent) selects the default grid; [] is an empty scene.
	Voxels         []Voxel `json:"voxels"`
	PNGOut         string  `json:"pngOut,omitempty"`
	GIFOut         string  `json:"gifOut,omitempty"`
	GIFFrames      int     `json:"gifFrames,omitempty"`
	GIFDelay       int     `json:"gifDelay,omitempty"`
	OrbitStepDeg   float32 `json:"orbitStepDeg,omitempty"`
	RAWOut         string  `json:"rawOut,omitempty"`
	CoverageProbes int     `json:"coverageProbes,omitempty"`
}

// Build fills unset fields with the application defaults.
func (c UniformsCfg) Build(nVoxels int) Uniforms {
	u := DefaultUniforms(nVoxels)
	u.Time = c.Time
	u.Frames = c.Frames
	if c.MaxSteps > 0 {
		u.MaxSteps = c.MaxSteps
	}
	if c.VoxelAmount != nil {
		u.VoxelAmount = *c.VoxelAmount
	}
	if c.Resolution[0] > 0 {
		u.Resolution[0] = c.Resolution[0]
	}
	if c.Resolution[1] > 0 {
		u.Resolution[1] = c.Resolution[1]
	}
	if c.BackgroundColor != nil {
		u.BackgroundColor = *c.BackgroundColor
	}
	if c.FloorColor != nil {
		u.FloorColor = *c.FloorColor
	}
	if c.ObjectColor != nil {
		u.ObjectColor = *c.ObjectColor
	}
	if c.LightPosition != nil {
		u.LightPosition = *c.LightPosition
	}
	if c.SunIntensity != nil {
		u.SunIntensity = *c.SunIntensity
	}
	u.Smoothing = c.Smoothing
	if c.AmbientOcclusion != nil {
		u.AmbientOcclusion = *c.AmbientOcclusion
	}
	return u
}

// Build fills unset fields with the application defaults.
func (c CameraCfg) Build() Camera {
	cam := Camera{Position: mgl32.Vec3{0, 0, 2}, Zoom: Zoom}
	if c.Position != nil {
		cam.Position = *c.Position
	}
	if c.LookAt != nil {
		cam.LookAt = *c.LookAt
	}
	if c.Zoom != 0 {
		cam.Zoom = c.Zoom
	}
	return cam
}

// Grid returns the configured voxel grid.
func (c *Config) Grid() *VoxelGrid {
	if c.Voxels == nil {
		return DefaultGrid()
	}
	return NewVoxelGrid(c.Voxels...)
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseConfig(data, path)
}

func parseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	// Defaults / validation
	if cfg.PNGOut == "" {
		cfg.PNGOut = PNGOut
	}
	if cfg.GIFOut == "" {
		cfg.GIFOut = GIFOut
	}
	if cfg.RAWOut == "" {
		cfg.RAWOut = RAWOut
	}
	if cfg.GIFFrames <= 0 {
		cfg.GIFFrames = GIFFrames
	}
	if cfg.GIFDelay <= 0 {
		cfg.GIFDelay = GIFDelay
	}
	if cfg.OrbitStepDeg == 0 {
		cfg.OrbitStepDeg = OrbitStepDeg
	}
	if cfg.CoverageProbes <= 0 {
		cfg.CoverageProbes = CoverageProbes
	}
	grid := cfg.Grid()
	u := cfg.Uniforms.Build(grid.Len())
	if err := u.Validate(grid, cfg.Camera.Build()); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	DebugLog("Loaded config from %s: resolution=%dx%d, steps=%d, voxels=%d/%d", path, u.Resolution[0], u.Resolution[1], u.MaxSteps, u.VoxelAmount, grid.Len())
	return &cfg, nil
}
