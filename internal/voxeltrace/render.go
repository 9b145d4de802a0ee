package voxeltrace

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/sync/errgroup"
)

// Frame is a float RGBA image, row-major, y down.
type Frame struct {
	Width, Height int
	Pix           []mgl32.Vec4
}

// NewFrame allocates a zeroed w*h frame.
func NewFrame(w, h int) *Frame {
	if w < 0 || h < 0 {
		w, h = 0, 0
	}
	return &Frame{Width: w, Height: h, Pix: make([]mgl32.Vec4, w*h)}
}

func (f *Frame) At(x, y int) mgl32.Vec4 { return f.Pix[y*f.Width+x] }

func (f *Frame) Set(x, y int, c mgl32.Vec4) { f.Pix[y*f.Width+x] = c }

// NRGBA converts the frame to 8-bit unorm, clamping every channel to [0,1].
func (f *Frame) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		rowOff := y * img.Stride
		for x := 0; x < f.Width; x++ {
			c := f.Pix[y*f.Width+x]
			p := rowOff + x*4
			img.Pix[p+0] = toUnorm8(c[0])
			img.Pix[p+1] = toUnorm8(c[1])
			img.Pix[p+2] = toUnorm8(c[2])
			img.Pix[p+3] = toUnorm8(c[3])
		}
	}
	return img
}

// Render writes every pixel of frame exactly once. Rows are traced in
// parallel; the result does not depend on scheduling. If ctx is cancelled
// no further rows are started, ctx.Err() is returned and the frame
// contents must be discarded.
func (t *Tracer) Render(ctx context.Context, frame *Frame) error {
	w, h := t.Uniforms.Width(), t.Uniforms.Height()
	if frame == nil {
		return fmt.Errorf("%w: nil frame", ErrPrecondition)
	}
	if frame.Width != w || frame.Height != h || len(frame.Pix) != w*h {
		return fmt.Errorf("%w: frame is %dx%d (%d px), resolution is %dx%d", ErrPrecondition, frame.Width, frame.Height, len(frame.Pix), w, h)
	}

	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var rows int64
	nextPrint := int64(1)
	if h >= 100 {
		nextPrint = int64(h / 100) // ~1%
	}

	for y := 0; y < h; y++ {
		if gctx.Err() != nil {
			break
		}
		row := y
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			off := row * w
			for x := 0; x < w; x++ {
				frame.Pix[off+x] = t.Pixel(x, row)
			}
			if Progress {
				if done := atomic.AddInt64(&rows, 1); done%nextPrint == 0 {
					fmt.Printf("[PROGRESS] %.2f%%\n", float64(done)*100/float64(h))
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// RenderFrame validates the inputs, allocates a frame matching the
// resolution and renders it.
func RenderFrame(ctx context.Context, u Uniforms, cam Camera, grid *VoxelGrid) (*Frame, error) {
	t, err := NewTracer(u, cam, grid)
	if err != nil {
		return nil, err
	}
	frame := NewFrame(u.Width(), u.Height())
	start := time.Now()
	if err := t.Render(ctx, frame); err != nil {
		return nil, err
	}
	DebugLog("Frame %d rendered in %.3f ms", u.Frames, float64(time.Since(start).Microseconds())/1000)
	return frame, nil
}
