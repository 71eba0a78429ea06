// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
//
// # Decoding MP3 Files
//
//	file, _ := os.Open("audio.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//
//	buf := make([]int32, 512*source.Channels())
//	n, err := source.ReadFrames(buf, 512)
//
// Unlike the WAV and AIFF decoders, the MP3 source is not held in memory.
// Frames are decoded on demand and Seek repositions the underlying decoder,
// so the file must stay open until the source is closed.
//
// # Output Format
//
//   - Channels: always 2, mono streams are duplicated by go-mp3
//   - Samples: 16-bit values left-aligned in int32
//   - Sample rate: as encoded in the stream
//
// The frame count comes from go-mp3's length estimate, which needs a
// seekable reader; non-seekable input fails with ErrUnknownLength.
package mp3
