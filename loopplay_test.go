// SPDX-License-Identifier: EPL-2.0

package loopplay

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ik5/loopplay/audio"
	"github.com/ik5/loopplay/formats/wav"
	"github.com/ik5/loopplay/output"
	"github.com/ik5/loopplay/output/null"
)

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()

	want := []string{"aif", "aiff", "mp3", "oga", "ogg", "wav", "wave"}
	got := reg.Formats()
	if len(got) != len(want) {
		t.Fatalf("Formats() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Formats()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	for _, path := range []string{"a.WAV", "b.aif", "c.mp3", "d.ogg"} {
		if _, err := reg.Lookup(path); err != nil {
			t.Errorf("Lookup(%q) error = %v", path, err)
		}
	}
}

func TestPlay(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "test.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := wav.EncodeInt16(f, 8000, 2, make([]int16, 2*100)); err != nil {
		t.Fatalf("EncodeInt16() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	err = Play(context.Background(), path, null.Open, output.Params{FramesPerBuffer: 80}, 30*time.Millisecond, nil)
	if err != nil {
		t.Errorf("Play() error = %v", err)
	}
}

func TestPlay_MissingFile(t *testing.T) {
	t.Parallel()

	err := Play(context.Background(), filepath.Join(t.TempDir(), "nope.wav"), null.Open, output.Params{}, 0, nil)
	if err == nil {
		t.Fatal("Play() error = nil, want error")
	}
	if !errors.Is(err, audio.ErrSourceOpen) {
		t.Errorf("Play() error = %v, want ErrSourceOpen", err)
	}
}
