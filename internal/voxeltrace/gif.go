package voxeltrace

import (
	"context"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
	"path/filepath"

	"github.com/chewxy/math32"
)

// SaveOrbitGIF renders n frames while orbiting the camera around its
// LookAt point by stepDeg degrees per frame and writes them as a looping
// GIF. With Debug set the march log holds only the last frame's rays.
// delay is in 100ths of a second (e.g., 5 => 20 fps). The frame clock
// in u advances by delay/100 seconds per frame.
func SaveOrbitGIF(ctx context.Context, u Uniforms, cam Camera, grid *VoxelGrid, n int, stepDeg float32, delay int, path string) error {
	if n <= 0 {
		return fmt.Errorf("gif needs at least one frame, got %d", n)
	}
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, n),
		Delay:     make([]int, 0, n),
		LoopCount: 0,
	}
	step := stepDeg * math32.Pi / 180
	dt := float32(delay) / 100

	for k := 0; k < n; k++ {
		if k%max(1, n/100) == 0 { // ~1% steps
			percent := float64(k+1) * 100 / float64(n)
			fmt.Printf("[GIF] %.2f%%\n", percent)
		}
		if Debug {
			// keep only the current frame's rays
			resetMarchLog()
		}
		frame, err := RenderFrame(ctx, u, cam.Orbit(step*float32(k)), grid)
		if err != nil {
			return err
		}
		rgba := frame.NRGBA()

		// Quantize to paletted for GIF
		pimg := image.NewPaletted(rgba.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), rgba, image.Point{})

		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, delay)
		u.Advance(dt)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, out)
}
