// SPDX-License-Identifier: EPL-2.0

package output

import (
	"fmt"
	"strings"

	"github.com/ik5/loopplay/audio"
)

// Latency selects the device's suggested output latency.
type Latency string

const (
	LatencyHigh Latency = "high"
	LatencyLow  Latency = "low"
)

// ParseLatency accepts "high" or "low" in any case. An empty string is
// LatencyHigh.
func ParseLatency(s string) (Latency, error) {
	switch Latency(strings.ToLower(strings.TrimSpace(s))) {
	case "", LatencyHigh:
		return LatencyHigh, nil
	case LatencyLow:
		return LatencyLow, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidLatency, s)
	}
}

// Params describes the stream a sink should open.
type Params struct {
	// Device is a device name; empty selects the default output device.
	Device     string
	Channels   int
	SampleRate int
	Latency    Latency
	// FramesPerBuffer is the number of frames per callback; 0 lets the sink
	// choose.
	FramesPerBuffer int
}

// Validate reports the first invalid field.
func (p Params) Validate() error {
	switch {
	case p.Channels <= 0:
		return fmt.Errorf("%w: channels %d", ErrInvalidParams, p.Channels)
	case p.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidParams, p.SampleRate)
	case p.FramesPerBuffer < 0:
		return fmt.Errorf("%w: frames per buffer %d", ErrInvalidParams, p.FramesPerBuffer)
	}

	if _, err := ParseLatency(string(p.Latency)); err != nil {
		return err
	}
	return nil
}

// BufferFrames returns FramesPerBuffer, or def when it is unset.
func (p Params) BufferFrames(def int) int {
	if p.FramesPerBuffer > 0 {
		return p.FramesPerBuffer
	}
	return def
}

// Stream is an open output stream pulling frames from a Filler.
type Stream interface {
	Start() error
	// Stop halts the callbacks. After Stop returns the filler is no longer
	// called.
	Stop() error
	Close() error
	// Done receives once when the filler returns audio.Stop: nil for an
	// interrupt, the fault otherwise.
	Done() <-chan error
}

// Opener opens a stream on some sink. Failures wrap audio.ErrSinkOpen.
type Opener func(p Params, f audio.Filler) (Stream, error)
