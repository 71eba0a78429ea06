// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis files.
//
// # Decoding Vorbis Files
//
//	file, _ := os.Open("audio.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
//
//	buf := make([]int32, 512*source.Channels())
//	n, err := source.ReadFrames(buf, 512)
//
// The source decodes on demand. Seek maps to the reader's SetPosition, which
// needs the underlying file to be seekable and open for the lifetime of the
// source.
//
// # Output Format
//
//   - Channels: as encoded, interleaved [L0, R0, L1, R1, ...] for stereo
//   - Samples: float32 values in [-1, 1] scaled to the full int32 range
//   - Sample rate: as encoded
//
// A partial frame at the very end of a stream is dropped.
package vorbis
