// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// It uses the github.com/go-audio/wav library for RIFF parsing.
//
// # Supported Formats
//
// Currently supported:
//   - PCM 8, 16, 24 and 32-bit (format tag 1 or WAVE_FORMAT_EXTENSIBLE)
//   - Any channel count
//   - Any sample rate
//
// # Decoding WAV Files
//
// The decoder reads the whole data chunk up front, so looping never goes
// back to the file:
//
//	file, _ := os.Open("test.wav")
//	source, err := wav.Decoder{}.Decode(file)
//
//	buf := make([]int32, 512*source.Channels())
//	n, err := source.ReadFrames(buf, 512)
//
// Samples come out left-aligned in int32: a 16-bit sample s becomes s<<16.
// 8-bit WAV data is unsigned and is re-centred around zero first.
//
// # Writing WAV Files
//
// Encode writes PCM samples of any supported depth; EncodeInt16 covers the
// common case:
//
//	file, _ := os.Create("tone.wav")
//	err := wav.EncodeInt16(file, 44100, 2, samples)
//
// The writer must be seekable so the RIFF sizes can be patched on close.
package wav
