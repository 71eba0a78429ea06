// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/loopplay/audio"
	"github.com/ik5/loopplay/utils"
)

// samples per PCMBuffer call while loading
const chunkSamples = 8192

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type Decoder struct{}

// Decode reads every sound frame of an AIFF file into memory.
func (Decoder) Decode(r io.ReadSeeker) (audio.Source, error) {
	dec := aiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	// Read file info
	dec.ReadInfo()

	return load(dec, int(dec.BitDepth))
}

func load(dec aiffReader, bitDepth int) (*audio.MemorySource, error) {
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	chunk := &goaudio.IntBuffer{
		Data:   make([]int, chunkSamples-chunkSamples%format.NumChannels),
		Format: format,
	}

	var data []int32
	for {
		n, err := dec.PCMBuffer(chunk)
		for _, v := range chunk.Data[:n] {
			// AIFF PCM is signed at every depth
			data = append(data, utils.PCMToInt32(v, bitDepth))
		}

		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		if n == 0 || err == io.EOF {
			break
		}
	}

	src, err := audio.NewMemorySource(format.SampleRate, format.NumChannels, data)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return src, nil
}
