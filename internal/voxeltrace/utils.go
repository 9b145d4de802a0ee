package voxeltrace

import "github.com/chewxy/math32"

func isFinite32(x float32) bool { return !math32.IsInf(x, 0) && !math32.IsNaN(x) }

// clamp01 clamps x to [0,1]; NaN maps to 0.
func clamp01(x float32) float32 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// toUnorm8 maps a linear channel to an 8-bit unorm value.
func toUnorm8(x float32) uint8 {
	return uint8(clamp01(x)*255 + 0.5)
}
