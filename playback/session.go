// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ik5/loopplay/audio"
	"github.com/ik5/loopplay/output"
)

// Session owns an open audio file, its decoded source and the looping
// streamer over it.
type Session struct {
	path     string
	file     io.Closer
	src      audio.Source
	streamer *audio.Streamer
	log      logrus.FieldLogger

	ran       atomic.Bool
	closed    atomic.Bool
	closeOnce sync.Once
	closeErr  error
}

type Option func(*Session)

// WithLogger sets the session logger. The default discards everything.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Open opens path, decodes it with the decoder registered for its extension
// and prepares a streamer starting at frame 0. Every failure wraps
// audio.ErrSourceOpen and releases whatever was already acquired.
func Open(path string, reg *audio.Registry, opts ...Option) (*Session, error) {
	s := &Session{path: path, log: discardLogger()}
	for _, opt := range opts {
		opt(s)
	}

	dec, err := reg.Lookup(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", audio.ErrSourceOpen, path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrSourceOpen, err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s: %w", audio.ErrSourceOpen, path, err)
	}

	st, err := audio.NewStreamer(src)
	if err != nil {
		_ = src.Close()
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s: %w", audio.ErrSourceOpen, path, err)
	}

	s.file = f
	s.src = src
	s.streamer = st

	s.log.WithFields(logrus.Fields{
		"file":        path,
		"sample_rate": src.SampleRate(),
		"channels":    src.Channels(),
		"frames":      src.Frames(),
		"length":      s.Length(),
	}).Info("opened source")

	return s, nil
}

func (s *Session) Path() string { return s.path }

// Streamer is the looping filler handed to the sink.
func (s *Session) Streamer() *audio.Streamer { return s.streamer }

// Length is the play time of one pass over the source.
func (s *Session) Length() time.Duration {
	return time.Duration(s.src.Frames()) * time.Second / time.Duration(s.src.SampleRate())
}

// Run plays the source in a loop through a stream opened with open. It
// returns after d elapses (d <= 0 waits for ctx alone), when ctx is done, or
// when the stream reports a stop. The stream is always stopped and closed
// before Run returns. A read fault is returned as an audio.ErrStreamIO
// error; cancellation is not an error.
//
// The channel count and sample rate in p are taken from the source.
func (s *Session) Run(ctx context.Context, open output.Opener, p output.Params, d time.Duration) error {
	if s.closed.Load() {
		return ErrSessionClosed
	}
	if !s.ran.CompareAndSwap(false, true) {
		return ErrSessionUsed
	}

	p.Channels = s.src.Channels()
	p.SampleRate = s.src.SampleRate()

	stream, err := open(p, s.streamer)
	if err != nil {
		if !errors.Is(err, audio.ErrSinkOpen) {
			err = fmt.Errorf("%w: %w", audio.ErrSinkOpen, err)
		}
		return err
	}

	if err := stream.Start(); err != nil {
		_ = stream.Close()
		return fmt.Errorf("%w: start: %w", audio.ErrSinkOpen, err)
	}

	log := s.log.WithField("file", s.path)
	log.WithFields(logrus.Fields{
		"device":   p.Device,
		"latency":  p.Latency,
		"duration": d,
	}).Info("playback started")

	var timeout <-chan time.Time
	if d > 0 {
		timer := time.NewTimer(d)
		defer timer.Stop()
		timeout = timer.C
	}

	var runErr error
	select {
	case <-timeout:
		log.Debug("duration elapsed")
	case <-ctx.Done():
		log.Debug("cancelled")
	case runErr = <-stream.Done():
		log.Debug("stream stopped")
	}

	s.streamer.Interrupt()
	stopErr := stream.Stop()
	closeErr := stream.Close()

	// a fault may latch while the timer fires
	if runErr == nil {
		runErr = s.streamer.Err()
	}

	log.WithFields(logrus.Fields{
		"loops":    s.streamer.Loops(),
		"position": s.streamer.Position(),
	}).Info("playback stopped")

	switch {
	case runErr != nil:
		if stopErr != nil || closeErr != nil {
			log.WithError(errors.Join(stopErr, closeErr)).Warn("stream shutdown failed")
		}
		return runErr
	case stopErr != nil:
		return fmt.Errorf("stop stream: %w", stopErr)
	case closeErr != nil:
		return fmt.Errorf("close stream: %w", closeErr)
	}
	return nil
}

// Close releases the source and then the file. Call it only after Run has
// returned; it is safe to call more than once.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.closed.Store(true)

		var errs []error
		if err := s.src.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close source: %w", err))
		}
		if err := s.file.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close file: %w", err))
		}
		s.closeErr = errors.Join(errs...)
	})
	return s.closeErr
}
