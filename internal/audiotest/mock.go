// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
	"math"
)

var ErrInjected = errors.New("injected read fault")

// MockSource is a test helper that serves generated frames with full seek
// support. It implements the audio.Source interface (without importing it
// to avoid cycles).
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int64
	offset      int64
	waveform    func(frame int64, channel int) int32

	// ShortReadAt makes the read starting at that frame return one frame
	// fewer than asked. -1 disables it.
	ShortReadAt int64
	// FailSeek makes every Seek fail.
	FailSeek bool

	Seeks  int
	Reads  int
	Closed bool
}

// NewMockSource creates a new mock audio source.
// waveform generates a sample value given the frame index and channel.
func NewMockSource(sampleRate, channels int, totalFrames int64, waveform func(frame int64, channel int) int32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
		ShortReadAt: -1,
	}
}

// NewRampSource creates a source whose sample value encodes its position:
// frame*channels + channel. Handy for checking exact output order.
func NewRampSource(sampleRate, channels int, totalFrames int64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int64, channel int) int32 {
		return int32(frame)*int32(channels) + int32(channel)
	})
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels int, totalFrames int64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int64, int) int32 {
		return 0
	})
}

// NewSineSource creates a mock source that generates a full scale sine wave.
func NewSineSource(sampleRate, channels int, totalFrames int64, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int64, channel int) int32 {
		t := float64(frame) / float64(sampleRate)
		return int32(math.Sin(2*math.Pi*frequency*t) * math.MaxInt32)
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Frames() int64   { return m.totalFrames }
func (m *MockSource) Offset() int64   { return m.offset }

func (m *MockSource) Close() error {
	m.Closed = true
	return nil
}

func (m *MockSource) Seek(frame int64) error {
	m.Seeks++
	if m.FailSeek {
		return ErrInjected
	}
	if frame < 0 || frame > m.totalFrames {
		return io.ErrUnexpectedEOF
	}
	m.offset = frame
	return nil
}

func (m *MockSource) ReadFrames(dst []int32, frames int) (int, error) {
	m.Reads++
	if m.offset >= m.totalFrames {
		return 0, io.EOF
	}

	framesToWrite := int(min(int64(frames), m.totalFrames-m.offset))
	if m.ShortReadAt >= 0 && m.offset == m.ShortReadAt && framesToWrite > 0 {
		framesToWrite--
	}

	for frame := range framesToWrite {
		idx := m.offset + int64(frame)
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(idx, ch)
		}
	}

	m.offset += int64(framesToWrite)

	if framesToWrite < frames {
		return framesToWrite, io.EOF
	}
	return framesToWrite, nil
}
