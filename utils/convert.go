// SPDX-License-Identifier: EPL-2.0

package utils

const (
	maxInt32  = 2147483647.0
	fullInt32 = 2147483648.0
)

func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// Float32ToInt32 clamps x to [-1, 1] and scales it to the full int32 range.
func Float32ToInt32(x float32) int32 {
	v := float64(x)
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}

	return int32(v * maxInt32)
}

// PCMToInt32 left-aligns a signed PCM sample of bitDepth bits in an int32,
// so 16-bit 0x7fff becomes 0x7fff0000. Depths above 32 are truncated.
func PCMToInt32(v int, bitDepth int) int32 {
	switch {
	case bitDepth <= 0 || bitDepth >= 32:
		return int32(v)
	default:
		return int32(v) << (32 - bitDepth)
	}
}

// Int32ToFloat64 maps a full range int32 sample to [-1, 1).
func Int32ToFloat64(v int32) float64 {
	return float64(v) / fullInt32
}
