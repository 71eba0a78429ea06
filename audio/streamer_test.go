// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"

	"github.com/ik5/loopplay/internal/audiotest"
)

func newRampStreamer(t *testing.T, channels int, totalFrames int64) (*Streamer, *audiotest.MockSource) {
	t.Helper()

	src := audiotest.NewRampSource(8000, channels, totalFrames)
	s, err := NewStreamer(src)
	if err != nil {
		t.Fatalf("NewStreamer() error = %v", err)
	}
	return s, src
}

func TestNewStreamer_EmptySource(t *testing.T) {
	t.Parallel()

	_, err := NewStreamer(audiotest.NewSilentSource(8000, 1, 0))
	if !errors.Is(err, ErrEmptySource) {
		t.Errorf("NewStreamer() error = %v, want ErrEmptySource", err)
	}
}

func TestNewStreamer_InvalidChannels(t *testing.T) {
	t.Parallel()

	_, err := NewStreamer(audiotest.NewSilentSource(8000, 0, 10))
	if !errors.Is(err, ErrInvalidChannels) {
		t.Errorf("NewStreamer() error = %v, want ErrInvalidChannels", err)
	}
}

func TestStreamer_Metadata(t *testing.T) {
	t.Parallel()

	s, _ := newRampStreamer(t, 2, 100)

	if s.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", s.SampleRate())
	}
	if s.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", s.Channels())
	}
	if s.Frames() != 100 {
		t.Errorf("Frames() = %d, want 100", s.Frames())
	}
	if s.Position() != 0 {
		t.Errorf("Position() = %d, want 0", s.Position())
	}
}

// 10 frames, 15 requested: the whole file then its first five frames.
func TestStreamer_FillWrapsMidRequest(t *testing.T) {
	t.Parallel()

	s, _ := newRampStreamer(t, 1, 10)

	dst := make([]int32, 15)
	status, err := s.Fill(dst, 15)
	if err != nil || status != Continue {
		t.Fatalf("Fill() = %v, %v; want Continue, nil", status, err)
	}

	want := []int32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 0, 1, 2, 3, 4}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}

	if s.Position() != 5 {
		t.Errorf("Position() = %d, want 5", s.Position())
	}
	if s.Loops() != 1 {
		t.Errorf("Loops() = %d, want 1", s.Loops())
	}
}

func TestStreamer_FillWholeFileRepeatedly(t *testing.T) {
	t.Parallel()

	s, _ := newRampStreamer(t, 1, 10)

	var first []int32
	for call := range 3 {
		dst := make([]int32, 10)
		status, err := s.Fill(dst, 10)
		if err != nil || status != Continue {
			t.Fatalf("call %d: Fill() = %v, %v", call, status, err)
		}

		if s.Position() != 0 {
			t.Errorf("call %d: Position() = %d, want 0", call, s.Position())
		}

		if first == nil {
			first = dst
			continue
		}
		for i := range dst {
			if dst[i] != first[i] {
				t.Errorf("call %d: dst[%d] = %d, want %d", call, i, dst[i], first[i])
			}
		}
	}

	for i := range first {
		if first[i] != int32(i) {
			t.Errorf("first[%d] = %d, want %d", i, first[i], i)
		}
	}
}

func TestStreamer_FillFromLastFrame(t *testing.T) {
	t.Parallel()

	s, _ := newRampStreamer(t, 1, 10)

	// move the cursor to the last frame
	dst := make([]int32, 9)
	if _, err := s.Fill(dst, 9); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	if s.Position() != 9 {
		t.Fatalf("Position() = %d, want 9", s.Position())
	}

	dst = make([]int32, 4)
	status, err := s.Fill(dst, 4)
	if err != nil || status != Continue {
		t.Fatalf("Fill() = %v, %v; want Continue, nil", status, err)
	}

	want := []int32{9, 0, 1, 2}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
	if s.Position() != 3 {
		t.Errorf("Position() = %d, want 3", s.Position())
	}
}

// Every fill yields exactly the requested frames, continuing the looped
// sequence, within ceil(frames/total)+1 reads.
func TestStreamer_FillLoopsForAnyLength(t *testing.T) {
	t.Parallel()

	for total := int64(1); total <= 7; total++ {
		for frames := 1; frames <= 20; frames++ {
			s, src := newRampStreamer(t, 2, total)

			var played int64
			for call := range 3 {
				readsBefore := src.Reads
				dst := make([]int32, frames*2+2)
				dst[frames*2] = -1
				dst[frames*2+1] = -1

				status, err := s.Fill(dst, frames)
				if err != nil || status != Continue {
					t.Fatalf("total=%d frames=%d call=%d: Fill() = %v, %v", total, frames, call, status, err)
				}

				for f := range frames {
					srcFrame := (played + int64(f)) % total
					for ch := range 2 {
						want := int32(srcFrame)*2 + int32(ch)
						if got := dst[f*2+ch]; got != want {
							t.Fatalf("total=%d frames=%d call=%d: dst[%d] = %d, want %d",
								total, frames, call, f*2+ch, got, want)
						}
					}
				}

				if dst[frames*2] != -1 || dst[frames*2+1] != -1 {
					t.Fatalf("total=%d frames=%d: Fill() wrote past the requested frames", total, frames)
				}

				reads := src.Reads - readsBefore
				maxReads := (frames+int(total)-1)/int(total) + 1
				if reads > maxReads {
					t.Errorf("total=%d frames=%d: %d reads, want at most %d", total, frames, reads, maxReads)
				}

				played += int64(frames)
				if got, want := s.Position(), played%total; got != want {
					t.Fatalf("total=%d frames=%d: Position() = %d, want %d", total, frames, got, want)
				}
				if s.Position() >= total {
					t.Fatalf("Position() = %d escaped [0, %d)", s.Position(), total)
				}
			}
		}
	}
}

func TestStreamer_ShortReadIsFatal(t *testing.T) {
	t.Parallel()

	s, src := newRampStreamer(t, 1, 10)
	src.ShortReadAt = 0

	dst := []int32{7, 7, 7, 7}
	status, err := s.Fill(dst, 4)
	if status != Stop {
		t.Errorf("Fill() status = %v, want Stop", status)
	}
	if !errors.Is(err, ErrStreamIO) {
		t.Fatalf("Fill() error = %v, want ErrStreamIO", err)
	}

	for i, v := range dst {
		if v != 0 {
			t.Errorf("dst[%d] = %d, want silence after fault", i, v)
		}
	}

	if !errors.Is(s.Err(), ErrStreamIO) {
		t.Errorf("Err() = %v, want ErrStreamIO", s.Err())
	}

	// the fault is latched: no further reads reach the source
	reads := src.Reads
	status, err = s.Fill(dst, 4)
	if status != Stop || !errors.Is(err, ErrStreamIO) {
		t.Errorf("Fill() after fault = %v, %v; want Stop, ErrStreamIO", status, err)
	}
	if src.Reads != reads {
		t.Errorf("source read %d more times after fault", src.Reads-reads)
	}
}

func TestStreamer_SeekFailureIsFatal(t *testing.T) {
	t.Parallel()

	s, src := newRampStreamer(t, 1, 10)
	src.FailSeek = true

	status, err := s.Fill(make([]int32, 4), 4)
	if status != Stop {
		t.Errorf("Fill() status = %v, want Stop", status)
	}
	if !errors.Is(err, ErrStreamIO) || !errors.Is(err, audiotest.ErrInjected) {
		t.Errorf("Fill() error = %v, want ErrStreamIO wrapping the seek error", err)
	}
}

func TestStreamer_Interrupt(t *testing.T) {
	t.Parallel()

	s, _ := newRampStreamer(t, 1, 10)

	dst := make([]int32, 4)
	if status, _ := s.Fill(dst, 4); status != Continue {
		t.Fatalf("Fill() status = %v, want Continue", status)
	}

	s.Interrupt()

	dst = []int32{5, 5, 5, 5}
	status, err := s.Fill(dst, 4)
	if status != Stop || err != nil {
		t.Errorf("Fill() after Interrupt = %v, %v; want Stop, nil", status, err)
	}
	for i, v := range dst {
		if v != 0 {
			t.Errorf("dst[%d] = %d, want silence", i, v)
		}
	}
	if s.Position() != 4 {
		t.Errorf("Position() = %d, want 4 (unchanged)", s.Position())
	}
}

func TestStreamer_InvalidRequests(t *testing.T) {
	t.Parallel()

	s, src := newRampStreamer(t, 2, 10)

	status, err := s.Fill(nil, 0)
	if status != Continue || err != nil {
		t.Errorf("Fill(nil, 0) = %v, %v; want Continue, nil", status, err)
	}

	status, err = s.Fill(make([]int32, 5), 3)
	if status != Stop || !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("Fill() with short dst = %v, %v; want Stop, ErrInvalidDstSize", status, err)
	}

	if src.Reads != 0 {
		t.Errorf("source read %d times, want 0", src.Reads)
	}
}

func TestStreamer_FillDoesNotAllocate(t *testing.T) {
	data := make([]int32, 2*441)
	src, _ := NewMemorySource(44100, 2, data)
	s, _ := NewStreamer(src)
	dst := make([]int32, 2*512)

	allocs := testing.AllocsPerRun(100, func() {
		_, _ = s.Fill(dst, 512)
	})
	if allocs != 0 {
		t.Errorf("Fill() allocated %.1f times per call, want 0", allocs)
	}
}

func TestStatus_String(t *testing.T) {
	t.Parallel()

	if Continue.String() != "continue" || Stop.String() != "stop" {
		t.Errorf("String() = %q, %q", Continue.String(), Stop.String())
	}
	if Status(9).String() != "Status(9)" {
		t.Errorf("String() = %q, want Status(9)", Status(9).String())
	}
}

func BenchmarkStreamer_Fill(b *testing.B) {
	src, _ := NewMemorySource(44100, 2, make([]int32, 2*44100))
	s, _ := NewStreamer(src)
	dst := make([]int32, 2*1024)

	b.ReportAllocs()

	for b.Loop() {
		_, _ = s.Fill(dst, 1024)
	}
}
