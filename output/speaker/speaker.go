// SPDX-License-Identifier: EPL-2.0

package speaker

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/ik5/loopplay/audio"
	"github.com/ik5/loopplay/output"
)

// ErrRateMismatch is returned when a stream asks for a sample rate other than
// the one the speaker was first initialized with.
var ErrRateMismatch = errors.New("speaker already initialized at another sample rate")

// device wraps the process-wide beep speaker. The speaker can only be
// initialized once, so the first stream fixes its sample rate.
type device struct {
	init  func(sr beep.SampleRate, bufferSize int) error
	play  func(s beep.Streamer)
	clear func()

	mu   sync.Mutex
	rate beep.SampleRate
}

var spk = &device{
	init:  speaker.Init,
	play:  func(s beep.Streamer) { speaker.Play(s) },
	clear: speaker.Clear,
}

func (d *device) ensureInit(rate beep.SampleRate, bufferSize int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.rate == 0 {
		if err := d.init(rate, bufferSize); err != nil {
			return fmt.Errorf("init speaker: %w", err)
		}
		d.rate = rate
		return nil
	}

	if d.rate != rate {
		return fmt.Errorf("%w: %d Hz, want %d Hz", ErrRateMismatch, d.rate, rate)
	}
	return nil
}

// Stream plays frames through the beep speaker. Frames are converted to
// beep's stereo float pairs: mono is duplicated to both sides and more than
// two channels are folded down.
type Stream struct {
	dev      *device
	pump     *output.Pump
	channels int
	buf      []int32

	mu      sync.Mutex
	playing bool
	closed  bool
}

var _ output.Stream = (*Stream)(nil)

// Open initializes the speaker on first use and returns a stopped stream. It
// is an output.Opener. Params.Device and Params.Latency are ignored; the
// speaker always uses the system default output.
func Open(p output.Params, f audio.Filler) (output.Stream, error) {
	return open(spk, p, f)
}

func open(dev *device, p output.Params, f audio.Filler) (*Stream, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrSinkOpen, err)
	}

	rate := beep.SampleRate(p.SampleRate)
	frames := p.BufferFrames(rate.N(time.Second / 10))
	if err := dev.ensureInit(rate, frames); err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrSinkOpen, err)
	}

	return &Stream{
		dev:      dev,
		pump:     output.NewPump(f, p.Channels),
		channels: p.Channels,
		buf:      make([]int32, frames*p.Channels),
	}, nil
}

// Stream implements beep.Streamer. It never drains: after the filler stops
// it keeps producing silence until the stream is stopped.
func (s *Stream) Stream(samples [][2]float64) (int, bool) {
	chunk := len(s.buf) / s.channels
	for off := 0; off < len(samples); off += chunk {
		k := min(chunk, len(samples)-off)
		frames := s.buf[:k*s.channels]
		s.pump.Fill(frames)
		toStereo(samples[off:off+k], frames, s.channels)
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (s *Stream) Err() error { return nil }

func (s *Stream) Done() <-chan error { return s.pump.Done() }

func (s *Stream) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return output.ErrStreamClosed
	}
	if !s.playing {
		s.dev.play(s)
		s.playing = true
	}
	return nil
}

// Stop removes the stream from the speaker mixer. beep holds the speaker
// lock while streaming, so the filler is not running once Stop returns.
func (s *Stream) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.playing {
		s.dev.clear()
		s.playing = false
	}
	return nil
}

// Close stops the stream. The speaker itself stays initialized for the life
// of the process.
func (s *Stream) Close() error {
	if err := s.Stop(); err != nil {
		return err
	}

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}
