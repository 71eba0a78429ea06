// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/loopplay/audio"
)

// go-mp3 always emits interleaved 16-bit little-endian stereo.
const (
	channels      = 2
	bytesPerFrame = channels * 2

	// readChunk is the scratch buffer size in bytes. Larger requests are
	// served in several decoder reads.
	readChunk = 8192
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	io.ReadSeeker
	SampleRate() int
	Length() int64
}

// source streams from the decoder and seeks it directly, so the file is
// never decoded in full.
type source struct {
	dec        mp3Reader
	sampleRate int
	frames     int64
	pos        int64 // decoder cursor in frames
	buf        []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Frames() int64   { return s.frames }
func (s *source) Close() error    { return nil }

func (s *source) Seek(frame int64) error {
	if frame < 0 || frame > s.frames {
		return fmt.Errorf("%w: frame %d of %d", audio.ErrSeekOutOfRange, frame, s.frames)
	}

	// go-mp3 re-decodes from the nearest MPEG frame on seek; skip no-op seeks
	if frame == s.pos {
		return nil
	}

	if _, err := s.dec.Seek(frame*bytesPerFrame, io.SeekStart); err != nil {
		return fmt.Errorf("%w", err)
	}
	s.pos = frame
	return nil
}

func (s *source) ReadFrames(dst []int32, frames int) (int, error) {
	if len(dst) < frames*channels {
		return 0, audio.ErrInvalidDstSize
	}

	var (
		got int // frames
		n   int // bytes in the last chunk
		err error
	)
	for got < frames && err == nil {
		chunk := min(frames-got, len(s.buf)/bytesPerFrame)
		n, err = io.ReadFull(s.dec, s.buf[:chunk*bytesPerFrame])

		// Convert bytes to samples
		// Each sample is 2 bytes (int16 little-endian), left-aligned in int32
		out := dst[got*channels:]
		for i := range n / bytesPerFrame * channels {
			low := uint16(s.buf[2*i])
			high := uint16(s.buf[2*i+1])
			out[i] = int32(int16(low|(high<<8))) << 16
		}
		got += n / bytesPerFrame
	}

	if s.pos >= 0 {
		s.pos += int64(got)
	}
	if n%bytesPerFrame != 0 {
		// the decoder cursor sits inside a frame; force the next Seek
		s.pos = -1
	}

	switch {
	case err == nil:
		return got, nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return got, io.EOF
	default:
		return got, fmt.Errorf("%w", err)
	}
}

type Decoder struct{}

// Decode needs a seekable reader: the loop point is reached by seeking the
// decoder, and the length is only known for seekable input.
func (Decoder) Decode(r io.ReadSeeker) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return newSource(dec)
}

func newSource(dec mp3Reader) (*source, error) {
	length := dec.Length()
	if length < 0 {
		return nil, ErrUnknownLength
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		frames:     length / bytesPerFrame,
		buf:        make([]byte, readChunk),
	}, nil
}
