// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"sync/atomic"
)

// Status tells the sink whether to keep pulling frames.
type Status int

const (
	Continue Status = iota
	Stop
)

func (s Status) String() string {
	switch s {
	case Continue:
		return "continue"
	case Stop:
		return "stop"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Filler is the contract an output sink invokes from its callback context.
// dst holds at least frames*channels interleaved samples.
type Filler interface {
	Fill(dst []int32, frames int) (Status, error)
}

// Streamer fills output buffers from a Source, looping back to the first
// frame whenever the end of the source is reached.
//
// Fill must only be called by one goroutine at a time. Position, Loops,
// Interrupt and Err are safe to use from any goroutine.
type Streamer struct {
	src         Source
	totalFrames int64
	channels    int
	sampleRate  int

	position  atomic.Int64
	loops     atomic.Int64
	interrupt atomic.Bool
	fault     atomic.Pointer[error]
}

// NewStreamer wraps src. Sources with no frames are rejected: filling from
// them could never make progress.
func NewStreamer(src Source) (*Streamer, error) {
	if src.Channels() <= 0 {
		return nil, ErrInvalidChannels
	}

	frames := src.Frames()
	if frames <= 0 {
		return nil, ErrEmptySource
	}

	return &Streamer{
		src:         src,
		totalFrames: frames,
		channels:    src.Channels(),
		sampleRate:  src.SampleRate(),
	}, nil
}

func (s *Streamer) SampleRate() int { return s.sampleRate }
func (s *Streamer) Channels() int   { return s.channels }
func (s *Streamer) Frames() int64   { return s.totalFrames }

// Position is the next frame Fill reads, in [0, Frames()).
func (s *Streamer) Position() int64 { return s.position.Load() }

// Loops counts how many times playback wrapped to the first frame.
func (s *Streamer) Loops() int64 { return s.loops.Load() }

// Interrupt asks Fill to stop at its next iteration boundary. The rest of
// that buffer is silence and every later call returns Stop.
func (s *Streamer) Interrupt() { s.interrupt.Store(true) }

// Err returns the fault that stopped the streamer, if any.
func (s *Streamer) Err() error {
	if p := s.fault.Load(); p != nil {
		return *p
	}
	return nil
}

// Fill writes exactly frames frames of looping audio into dst.
func (s *Streamer) Fill(dst []int32, frames int) (Status, error) {
	if frames <= 0 {
		return Continue, nil
	}

	if len(dst) < frames*s.channels {
		return Stop, ErrInvalidDstSize
	}

	if p := s.fault.Load(); p != nil {
		clear(dst[:frames*s.channels])
		return Stop, *p
	}

	out := dst
	needed := frames
	for needed > 0 {
		if s.interrupt.Load() {
			clear(out[:needed*s.channels])
			return Stop, nil
		}

		pos := s.position.Load()
		if err := s.src.Seek(pos); err != nil {
			return s.fail(out[:needed*s.channels], fmt.Errorf("%w: seek to frame %d: %w", ErrStreamIO, pos, err))
		}

		remaining := s.totalFrames - pos

		var want int
		var next int64
		if int64(needed) > remaining {
			want = int(remaining)
			next = 0
		} else {
			want = needed
			next = (pos + int64(needed)) % s.totalFrames
		}

		n, err := s.src.ReadFrames(out[:want*s.channels], want)
		if n != want {
			if err == nil {
				err = io.ErrUnexpectedEOF
			}
			return s.fail(out[:needed*s.channels],
				fmt.Errorf("%w: read %d of %d frames at frame %d: %w", ErrStreamIO, n, want, pos, err))
		}

		s.position.Store(next)
		if next == 0 {
			s.loops.Add(1)
		}

		out = out[want*s.channels:]
		needed -= want
	}

	return Continue, nil
}

func (s *Streamer) fail(unfilled []int32, err error) (Status, error) {
	clear(unfilled)
	s.fault.Store(&err)
	return Stop, err
}
