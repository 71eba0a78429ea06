// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/loopplay/audio"
	"github.com/ik5/loopplay/utils"
)

const (
	formatPCM        = 1
	formatExtensible = 0xfffe
)

// wavReader is an interface for wav.Decoder to allow testing
type wavReader interface {
	IsValidFile() bool
	FullPCMBuffer() (*goaudio.IntBuffer, error)
}

type Decoder struct{}

// Decode reads the whole PCM chunk of a WAV file. The returned source
// seeks in memory, so the loop point never touches the file again.
func (Decoder) Decode(r io.ReadSeeker) (audio.Source, error) {
	dec := wav.NewDecoder(r)
	return decode(dec, func() header {
		return header{
			format:     dec.WavAudioFormat,
			bitDepth:   int(dec.BitDepth),
			channels:   int(dec.NumChans),
			sampleRate: int(dec.SampleRate),
		}
	})
}

type header struct {
	format     uint16
	bitDepth   int
	channels   int
	sampleRate int
}

func decode(dec wavReader, info func() header) (audio.Source, error) {
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	h := info()
	if h.format != formatPCM && h.format != formatExtensible {
		return nil, fmt.Errorf("%w: format tag %#x", ErrUnsupportedWavFormat, h.format)
	}

	switch h.bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, h.bitDepth)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading PCM data: %w", err)
	}

	return fromIntBuffer(buf, h)
}

// fromIntBuffer converts go-audio samples to left-aligned int32. 8-bit WAV
// is unsigned and is re-centred first.
func fromIntBuffer(buf *goaudio.IntBuffer, h header) (*audio.MemorySource, error) {
	channels := h.channels
	sampleRate := h.sampleRate
	if buf.Format != nil {
		channels = buf.Format.NumChannels
		sampleRate = buf.Format.SampleRate
	}

	data := make([]int32, len(buf.Data))
	for i, v := range buf.Data {
		if h.bitDepth == 8 {
			v -= 128
		}
		data[i] = utils.PCMToInt32(v, h.bitDepth)
	}

	src, err := audio.NewMemorySource(sampleRate, channels, data)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return src, nil
}
