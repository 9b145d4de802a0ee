package voxeltrace

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/klauspost/compress/zstd"
)

// SaveRawRGBA dumps the float frame: width and height as int32, then
// Width*Height RGBA float32 values, all little-endian. Paths ending in
// ".zst" are zstd-compressed.
func SaveRawRGBA(frame *Frame, path string) error {
	if frame == nil {
		return fmt.Errorf("nil frame")
	}
	exp := frame.Width * frame.Height
	if len(frame.Pix) != exp {
		return fmt.Errorf("Pix length mismatch: got %d, expected %d (Width*Height)", len(frame.Pix), exp)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := writeRawRGBA(f, frame, strings.HasSuffix(path, ".zst")); err != nil {
		return err
	}
	fmt.Printf("[RAW]  saved %dx%d frame to %s\n", frame.Width, frame.Height, path)
	return f.Sync()
}

// writeRawRGBA encodes frame into dst, through a zstd stream when compress
// is set. The encoder is closed on every path.
func writeRawRGBA(dst io.Writer, frame *Frame, compress bool) error {
	if compress {
		enc, err := zstd.NewWriter(dst, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
		if err != nil {
			return err
		}
		closed := false
		defer func() {
			if !closed {
				enc.Close()
			}
		}()
		if err := writeRawPayload(enc, frame); err != nil {
			return err
		}
		closed = true
		return enc.Close()
	}
	return writeRawPayload(dst, frame)
}

func writeRawPayload(dst io.Writer, frame *Frame) error {
	w := bufio.NewWriter(dst)
	if err := binary.Write(w, binary.LittleEndian, int32(frame.Width)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(frame.Height)); err != nil {
		return err
	}
	if len(frame.Pix) > 0 {
		if err := binary.Write(w, binary.LittleEndian, frame.Pix); err != nil {
			return err
		}
	}
	return w.Flush()
}

// LoadRawRGBA reads a frame written by SaveRawRGBA.
func LoadRawRGBA(path string) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var src io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		src = dec
	}
	r := bufio.NewReader(src)

	var w, h int32
	if err := binary.Read(r, binary.LittleEndian, &w); err != nil {
		return nil, fmt.Errorf("read width: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("read height: %w", err)
	}
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("negative dimensions: %dx%d", w, h)
	}
	frame := &Frame{Width: int(w), Height: int(h), Pix: make([]mgl32.Vec4, int(w)*int(h))}
	if len(frame.Pix) > 0 {
		if err := binary.Read(r, binary.LittleEndian, frame.Pix); err != nil {
			return nil, fmt.Errorf("read pixels: %w", err)
		}
	}
	return frame, nil
}
