// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Encode writes interleaved PCM samples as a WAV file. samples hold values
// in the native range of bitDepth (e.g. int16 range for 16-bit).
// w must be seekable so the RIFF sizes can be patched on close.
func Encode(w io.WriteSeeker, sampleRate, channels, bitDepth int, samples []int) error {
	if sampleRate <= 0 || channels <= 0 {
		return ErrInvalidEncodeParams
	}

	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, channels, formatPCM)

	buf := &goaudio.IntBuffer{
		Data: samples,
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		_ = enc.Close()
		return fmt.Errorf("writing PCM data: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// EncodeInt16 is a shortcut for the common 16-bit case.
func EncodeInt16(w io.WriteSeeker, sampleRate, channels int, samples []int16) error {
	ints := make([]int, len(samples))
	for i, s := range samples {
		ints[i] = int(s)
	}
	return Encode(w, sampleRate, channels, 16, ints)
}
