package voxeltrace

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
)

// SavePNG writes the frame as an 8-bit RGBA PNG.
// Channels are clamped to [0,1]; shaded colours above 1 saturate.
func SavePNG(frame *Frame, path string) error {
	if frame == nil || frame.Width == 0 || frame.Height == 0 {
		return fmt.Errorf("empty frame, nothing to save to %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(f, frame.NRGBA()); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("[PNG]  saved %dx%d frame to %s\n", frame.Width, frame.Height, path)
	return nil
}
