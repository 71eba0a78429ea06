// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/loopplay/audio"
	"github.com/ik5/loopplay/utils"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Length() int64
	SetPosition(pos int64) error
	// Read returns the number of interleaved values decoded, not frames.
	Read([]float32) (int, error)
}

// readChunk is the size in values of the scratch buffer decoded samples pass
// through. Larger requests are served in several decoder reads.
const readChunk = 4096

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	frames     int64
	pos        int64     // decoder cursor in frames, -1 when unknown
	frameBuf   []float32 // buffer for reading frames from decoder
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Frames() int64   { return s.frames }
func (s *source) Close() error    { return nil }

func (s *source) Seek(frame int64) error {
	if frame < 0 || frame > s.frames {
		return fmt.Errorf("%w: frame %d of %d", audio.ErrSeekOutOfRange, frame, s.frames)
	}

	// SetPosition bisects the file and re-decodes a packet; skip no-op seeks
	if frame == s.pos {
		return nil
	}

	if err := s.dec.SetPosition(frame); err != nil {
		s.pos = -1
		return fmt.Errorf("%w", err)
	}
	s.pos = frame
	return nil
}

func (s *source) ReadFrames(dst []int32, frames int) (int, error) {
	want := frames * s.channels
	if len(dst) < want {
		return 0, audio.ErrInvalidDstSize
	}

	var (
		got int
		err error
	)
	for got < want && err == nil {
		chunk := min(want-got, len(s.frameBuf))
		var n int
		n, err = s.dec.Read(s.frameBuf[:chunk])
		for i, v := range s.frameBuf[:n] {
			dst[got+i] = utils.Float32ToInt32(v)
		}
		got += n
		if n == 0 && err == nil {
			err = io.ErrNoProgress
		}
	}

	// a trailing partial frame is dropped
	framesRead := got / s.channels

	if s.pos >= 0 {
		s.pos += int64(framesRead)
	}
	if got%s.channels != 0 || (err != nil && !errors.Is(err, io.EOF)) {
		// the decoder cursor is not on a frame boundary we know of
		s.pos = -1
	}

	switch {
	case framesRead == frames:
		return framesRead, nil
	case errors.Is(err, io.EOF):
		return framesRead, io.EOF
	default:
		return framesRead, fmt.Errorf("%w", err)
	}
}

type Decoder struct{}

// Decode reads the Ogg headers from r. The reader must be seekable so the
// stream length is known and the loop point can be reached with SetPosition.
func (Decoder) Decode(r io.ReadSeeker) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return newSource(dec)
}

func newSource(dec oggReader) (*source, error) {
	if dec.Channels() <= 0 {
		return nil, audio.ErrInvalidChannels
	}

	length := dec.Length()
	if length < 0 {
		return nil, ErrUnknownLength
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		frames:     length,
		frameBuf:   make([]float32, readChunk),
	}, nil
}
