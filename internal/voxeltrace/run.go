package voxeltrace

import (
	"context"
	"fmt"
	"time"
)

func Run(ctx context.Context, cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	grid := cfg.Grid()
	u := cfg.Uniforms.Build(grid.Len())
	cam := cfg.Camera.Build()

	t, err := NewTracer(u, cam, grid)
	if err != nil {
		return err
	}

	cov, err := estimateCoverage(ctx, t, cfg.CoverageProbes)
	if err != nil {
		return err
	}
	DebugLog("Estimated coverage: %.4f (%d probes)", cov, cfg.CoverageProbes)
	if cov == 0 && u.VoxelAmount > 0 {
		fmt.Printf("[WARN] no voxel visible from camera at %v looking at %v\n", cam.Position, cam.LookAt)
	}
	resetMarchLog()

	frame := NewFrame(u.Width(), u.Height())
	start := time.Now()
	if err := t.Render(ctx, frame); err != nil {
		return err
	}
	DebugLog("Frame: %dx%d, time: %s", frame.Width, frame.Height, time.Since(start))

	if Debug {
		marchStats()
	}

	if PNG {
		if err := SavePNG(frame, cfg.PNGOut); err != nil {
			return err
		}
	}
	if RAW {
		if err := SaveRawRGBA(frame, cfg.RAWOut); err != nil {
			return err
		}
	}
	if GIF {
		if err := SaveOrbitGIF(ctx, u, cam, grid, cfg.GIFFrames, cfg.OrbitStepDeg, cfg.GIFDelay, cfg.GIFOut); err != nil {
			return err
		}
		DebugLog("Saved orbit GIF: %s", cfg.GIFOut)
	}
	return nil
}
