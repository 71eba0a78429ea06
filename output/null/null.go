// SPDX-License-Identifier: EPL-2.0

package null

import (
	"fmt"
	"sync"
	"time"

	"github.com/ik5/loopplay/audio"
	"github.com/ik5/loopplay/output"
)

// DefaultFramesPerBuffer is used when Params.FramesPerBuffer is 0.
const DefaultFramesPerBuffer = 1024

// Stream pulls one buffer from the filler every buffer period and discards
// it. It paces like a real device without needing one.
type Stream struct {
	pump   *output.Pump
	buf    []int32
	period time.Duration

	mu     sync.Mutex
	quit   chan struct{}
	wg     sync.WaitGroup
	closed bool
}

var _ output.Stream = (*Stream)(nil)

// Open returns a stopped stream. It is an output.Opener; Params.Device and
// Params.Latency are ignored.
func Open(p output.Params, f audio.Filler) (output.Stream, error) {
	return open(p, f)
}

func open(p output.Params, f audio.Filler) (*Stream, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrSinkOpen, err)
	}

	frames := p.BufferFrames(DefaultFramesPerBuffer)
	period := time.Duration(frames) * time.Second / time.Duration(p.SampleRate)

	return &Stream{
		pump:   output.NewPump(f, p.Channels),
		buf:    make([]int32, frames*p.Channels),
		period: max(period, time.Microsecond),
	}, nil
}

// Period is the interval between two pulls.
func (s *Stream) Period() time.Duration { return s.period }

// Frames counts the frames pulled from the filler so far.
func (s *Stream) Frames() int64 { return s.pump.Frames() }

func (s *Stream) Done() <-chan error { return s.pump.Done() }

func (s *Stream) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return output.ErrStreamClosed
	}
	if s.quit != nil {
		return nil
	}

	s.quit = make(chan struct{})
	s.wg.Add(1)
	go s.run(s.quit)
	return nil
}

func (s *Stream) run(quit <-chan struct{}) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.period)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			s.pump.Fill(s.buf)
		}
	}
}

// Stop waits for an in-flight pull to finish.
func (s *Stream) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quit == nil {
		return nil
	}
	close(s.quit)
	s.quit = nil
	s.wg.Wait()
	return nil
}

func (s *Stream) Close() error {
	if err := s.Stop(); err != nil {
		return err
	}

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}
