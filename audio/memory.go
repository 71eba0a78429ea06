// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// MemorySource is a Source over interleaved int32 samples held in memory.
// Decoders for formats that must be read whole (WAV, AIFF) return one.
type MemorySource struct {
	sampleRate int
	channels   int
	data       []int32
	frames     int64
	offset     int64 // in frames

	closer io.Closer
}

// NewMemorySource wraps data. A trailing partial frame is ignored.
func NewMemorySource(sampleRate, channels int, data []int32) (*MemorySource, error) {
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}

	return &MemorySource{
		sampleRate: sampleRate,
		channels:   channels,
		data:       data,
		frames:     int64(len(data) / channels),
	}, nil
}

// WithCloser attaches c, closed together with the source.
func (m *MemorySource) WithCloser(c io.Closer) *MemorySource {
	m.closer = c
	return m
}

func (m *MemorySource) SampleRate() int { return m.sampleRate }
func (m *MemorySource) Channels() int   { return m.channels }
func (m *MemorySource) Frames() int64   { return m.frames }

func (m *MemorySource) Seek(frame int64) error {
	if frame < 0 || frame > m.frames {
		return fmt.Errorf("%w: frame %d of %d", ErrSeekOutOfRange, frame, m.frames)
	}
	m.offset = frame
	return nil
}

func (m *MemorySource) ReadFrames(dst []int32, frames int) (int, error) {
	if len(dst) < frames*m.channels {
		return 0, ErrInvalidDstSize
	}

	if m.offset >= m.frames {
		return 0, io.EOF
	}

	n := int(min(int64(frames), m.frames-m.offset))
	start := m.offset * int64(m.channels)
	copy(dst[:n*m.channels], m.data[start:start+int64(n*m.channels)])
	m.offset += int64(n)

	if n < frames {
		return n, io.EOF
	}
	return n, nil
}

func (m *MemorySource) Close() error {
	if m.closer == nil {
		return nil
	}

	err := m.closer.Close()
	m.closer = nil
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
