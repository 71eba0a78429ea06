// SPDX-License-Identifier: EPL-2.0

package speaker

import (
	"errors"
	"testing"

	"github.com/gopxl/beep/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/loopplay/audio"
	"github.com/ik5/loopplay/output"
)

type fakeSpeaker struct {
	inits   int
	initErr error
	bufSize int
	playing []beep.Streamer
	clears  int
}

func (f *fakeSpeaker) device() *device {
	return &device{
		init: func(_ beep.SampleRate, bufferSize int) error {
			f.inits++
			f.bufSize = bufferSize
			return f.initErr
		},
		play:  func(s beep.Streamer) { f.playing = append(f.playing, s) },
		clear: func() { f.clears++; f.playing = nil },
	}
}

func newStreamer(t *testing.T, channels int, samples []int32) *audio.Streamer {
	t.Helper()

	src, err := audio.NewMemorySource(8000, channels, samples)
	require.NoError(t, err)
	st, err := audio.NewStreamer(src)
	require.NoError(t, err)
	return st
}

func TestOpen_InitOnce(t *testing.T) {
	t.Parallel()

	fs := &fakeSpeaker{}
	dev := fs.device()
	p := output.Params{Channels: 1, SampleRate: 8000}

	_, err := open(dev, p, newStreamer(t, 1, []int32{1}))
	require.NoError(t, err)
	_, err = open(dev, p, newStreamer(t, 1, []int32{1}))
	require.NoError(t, err)

	assert.Equal(t, 1, fs.inits)
	assert.Equal(t, 800, fs.bufSize, "default buffer is 100ms")

	p.SampleRate = 44100
	_, err = open(dev, p, newStreamer(t, 1, []int32{1}))
	require.ErrorIs(t, err, audio.ErrSinkOpen)
	require.ErrorIs(t, err, ErrRateMismatch)
}

func TestOpen_Failures(t *testing.T) {
	t.Parallel()

	fs := &fakeSpeaker{initErr: errors.New("no audio device")}
	dev := fs.device()
	_, err := open(dev, output.Params{Channels: 2, SampleRate: 44100}, newStreamer(t, 1, []int32{1}))
	require.ErrorIs(t, err, audio.ErrSinkOpen)

	// a failed init may be retried
	fs.initErr = nil
	_, err = open(dev, output.Params{Channels: 2, SampleRate: 44100, FramesPerBuffer: 512}, newStreamer(t, 1, []int32{1}))
	require.NoError(t, err)
	assert.Equal(t, 2, fs.inits)
	assert.Equal(t, 512, fs.bufSize)

	_, err = open(dev, output.Params{SampleRate: 44100}, newStreamer(t, 1, []int32{1}))
	require.ErrorIs(t, err, output.ErrInvalidParams)
}

func TestStream_Lifecycle(t *testing.T) {
	t.Parallel()

	fs := &fakeSpeaker{}
	s, err := open(fs.device(), output.Params{Channels: 1, SampleRate: 8000}, newStreamer(t, 1, []int32{1}))
	require.NoError(t, err)

	require.NoError(t, s.Start())
	require.NoError(t, s.Start())
	require.Len(t, fs.playing, 1)
	assert.Same(t, s, fs.playing[0])

	require.NoError(t, s.Close())
	require.NoError(t, s.Stop())
	assert.Equal(t, 1, fs.clears)
	assert.ErrorIs(t, s.Start(), output.ErrStreamClosed)
}

func TestStream_LoopsAndSignals(t *testing.T) {
	t.Parallel()

	const half = 1 << 30

	fs := &fakeSpeaker{}
	st := newStreamer(t, 2, []int32{half, -half, 0, 0})
	s, err := open(fs.device(), output.Params{Channels: 2, SampleRate: 8000, FramesPerBuffer: 3}, st)
	require.NoError(t, err)

	// larger than the internal buffer, so it is filled in chunks
	samples := make([][2]float64, 5)
	n, ok := s.Stream(samples)
	require.True(t, ok)
	require.Equal(t, 5, n)

	want := [][2]float64{{0.5, -0.5}, {0, 0}, {0.5, -0.5}, {0, 0}, {0.5, -0.5}}
	assert.Equal(t, want, samples)
	assert.Equal(t, int64(1), st.Position())

	st.Interrupt()
	n, ok = s.Stream(samples)
	assert.Equal(t, 5, n)
	assert.True(t, ok, "stream keeps playing silence until stopped")
	assert.Equal(t, make([][2]float64, 5), samples)

	select {
	case err := <-s.Done():
		assert.NoError(t, err)
	default:
		t.Fatal("Done() not signalled after interrupt")
	}
	assert.NoError(t, s.Err())
}

func TestToStereo(t *testing.T) {
	t.Parallel()

	const (
		half    = 1 << 30
		quarter = 1 << 29
	)

	tests := []struct {
		name     string
		channels int
		src      []int32
		want     [][2]float64
	}{
		{
			name:     "mono duplicated",
			channels: 1,
			src:      []int32{half, -half},
			want:     [][2]float64{{0.5, 0.5}, {-0.5, -0.5}},
		},
		{
			name:     "stereo passed through",
			channels: 2,
			src:      []int32{half, quarter, 0, -half},
			want:     [][2]float64{{0.5, 0.25}, {0, -0.5}},
		},
		{
			name:     "three channels folded",
			channels: 3,
			src:      []int32{half, quarter, 0},
			want:     [][2]float64{{0.25, 0.25}},
		},
		{
			name:     "quad folded",
			channels: 4,
			src:      []int32{half, half, 0, -half},
			want:     [][2]float64{{0.25, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dst := make([][2]float64, len(tt.want))
			toStereo(dst, tt.src, tt.channels)
			assert.Equal(t, tt.want, dst)
		})
	}
}

func BenchmarkToStereo(b *testing.B) {
	src := make([]int32, 2*1024)
	dst := make([][2]float64, 1024)

	b.ReportAllocs()

	for b.Loop() {
		toStereo(dst, src, 2)
	}
}
