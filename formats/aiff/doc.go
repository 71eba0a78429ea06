// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
//
// # Supported Formats
//
// Currently supported:
//   - Uncompressed AIFF
//   - PCM 8, 16, 24 and 32-bit
//   - Any channel count and sample rate
//
// AIFF-C (compressed) files are not supported.
//
// # Decoding AIFF Files
//
//	file, _ := os.Open("loop.aif")
//	source, err := aiff.Decoder{}.Decode(file)
//
// The whole sound chunk is read into an audio.MemorySource. Samples are
// left-aligned in int32, so a 24-bit sample s becomes s<<8. Big-endian byte
// order is handled by go-audio.
//
// # Error Handling
//
//   - ErrNotAiffFile: the input is not a valid AIFF file
//   - ErrUnsupportedBitDepth: sample size other than 8, 16, 24 or 32 bits
//   - ErrUnsupportedAiffLayout: no usable format information
package aiff
