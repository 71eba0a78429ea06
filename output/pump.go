// SPDX-License-Identifier: EPL-2.0

package output

import (
	"sync/atomic"

	"github.com/ik5/loopplay/audio"
)

// Pump drives a Filler from a sink callback. Once the filler returns
// audio.Stop the pump only writes silence, and the stop is reported on Done
// exactly once.
//
// Pump is what every sink's callback calls; it does not allocate.
type Pump struct {
	filler   audio.Filler
	channels int
	done     chan error
	stopped  atomic.Bool
	frames   atomic.Int64
}

func NewPump(f audio.Filler, channels int) *Pump {
	return &Pump{
		filler:   f,
		channels: channels,
		done:     make(chan error, 1),
	}
}

// Fill writes len(out)/channels frames into out. A trailing partial frame is
// zeroed.
func (p *Pump) Fill(out []int32) {
	if p.stopped.Load() {
		clear(out)
		return
	}

	frames := len(out) / p.channels
	if tail := out[frames*p.channels:]; len(tail) > 0 {
		clear(tail)
	}
	if frames == 0 {
		return
	}

	status, err := p.filler.Fill(out, frames)
	p.frames.Add(int64(frames))
	if status == audio.Continue {
		return
	}

	if p.stopped.CompareAndSwap(false, true) {
		select {
		case p.done <- err:
		default:
		}
	}
}

func (p *Pump) Channels() int { return p.channels }

// Done receives the filler's error once it stops.
func (p *Pump) Done() <-chan error { return p.done }

// Stopped reports whether the filler has returned audio.Stop.
func (p *Pump) Stopped() bool { return p.stopped.Load() }

// Frames counts frames handed to the sink, silence after a stop excluded.
func (p *Pump) Frames() int64 { return p.frames.Load() }
