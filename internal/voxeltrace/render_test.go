package voxeltrace

import (
	"context"
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRenderSingleVoxelScenario(t *testing.T) {
	u, cam, grid := singleVoxelSetup(64)
	frame, err := RenderFrame(context.Background(), u, cam, grid)
	if err != nil {
		t.Fatal(err)
	}
	if frame.Width != 64 || frame.Height != 64 || len(frame.Pix) != 64*64 {
		t.Fatalf("frame size wrong: %dx%d (%d)", frame.Width, frame.Height, len(frame.Pix))
	}

	c := frame.At(32, 32)
	if c[0] < 1 || c[1] != 0 || c[2] != 0 || c[3] != 1 {
		t.Fatalf("centre pixel must be lit red with diffuse >= 1, got %v", c)
	}
	for _, p := range [][2]int{{0, 0}, {63, 0}, {0, 63}, {63, 63}} {
		if got := frame.At(p[0], p[1]); got != u.BackgroundColor {
			t.Fatalf("corner %v must be background %v, got %v", p, u.BackgroundColor, got)
		}
	}

	img := frame.NRGBA()
	if px := img.NRGBAAt(32, 32); px.R != 255 || px.G != 0 || px.B != 0 || px.A != 255 {
		t.Fatalf("centre pixel in 8-bit: %+v", px)
	}
}

func TestRenderMatchesPerPixel(t *testing.T) {
	grid := DefaultGrid()
	u := DefaultUniforms(grid.Len())
	u.Resolution = [2]uint32{40, 30}
	cam := Camera{Position: mgl32.Vec3{0.5, 0.6, 2}, LookAt: mgl32.Vec3{0, 0.2, 0}, Zoom: 1.2}
	tr := mustTracer(t, u, cam, grid)

	a := NewFrame(40, 30)
	b := NewFrame(40, 30)
	if err := tr.Render(context.Background(), a); err != nil {
		t.Fatal(err)
	}
	if err := tr.Render(context.Background(), b); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			want := tr.Pixel(x, y)
			if a.At(x, y) != want || b.At(x, y) != want {
				t.Fatalf("pixel (%d,%d): %v / %v, want %v", x, y, a.At(x, y), b.At(x, y), want)
			}
		}
	}
}

func TestRenderFrameMismatch(t *testing.T) {
	u, cam, grid := singleVoxelSetup(16)
	tr := mustTracer(t, u, cam, grid)
	if err := tr.Render(context.Background(), NewFrame(16, 8)); !errors.Is(err, ErrPrecondition) {
		t.Fatalf("expected ErrPrecondition, got %v", err)
	}
	if err := tr.Render(context.Background(), nil); !errors.Is(err, ErrPrecondition) {
		t.Fatalf("expected ErrPrecondition for nil frame, got %v", err)
	}
}

func TestRenderCancelled(t *testing.T) {
	u, cam, grid := singleVoxelSetup(16)
	tr := mustTracer(t, u, cam, grid)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := tr.Render(ctx, NewFrame(16, 16)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRenderFrameRejectsBadInputs(t *testing.T) {
	u, cam, grid := singleVoxelSetup(16)
	u.VoxelAmount = 2
	if _, err := RenderFrame(context.Background(), u, cam, grid); !errors.Is(err, ErrPrecondition) {
		t.Fatalf("expected ErrPrecondition, got %v", err)
	}
}

func TestFrameNRGBAClamps(t *testing.T) {
	f := NewFrame(2, 1)
	f.Set(0, 0, mgl32.Vec4{1.7, -0.2, 0.5, 1})
	f.Set(1, 0, mgl32.Vec4{0, 1, 0, 0})
	img := f.NRGBA()
	if px := img.NRGBAAt(0, 0); px.R != 255 || px.G != 0 || px.B != 128 || px.A != 255 {
		t.Fatalf("clamp wrong: %+v", px)
	}
	if px := img.NRGBAAt(1, 0); px.G != 255 || px.A != 0 {
		t.Fatalf("conversion wrong: %+v", px)
	}
}
