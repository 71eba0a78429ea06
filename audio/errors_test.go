// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"testing"
)

func allErrors() map[string]error {
	return map[string]error{
		"ErrSourceOpen":      ErrSourceOpen,
		"ErrSinkOpen":        ErrSinkOpen,
		"ErrStreamIO":        ErrStreamIO,
		"ErrEmptySource":     ErrEmptySource,
		"ErrInvalidDstSize":  ErrInvalidDstSize,
		"ErrSeekOutOfRange":  ErrSeekOutOfRange,
		"ErrUnknownFormat":   ErrUnknownFormat,
		"ErrInvalidChannels": ErrInvalidChannels,
	}
}

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{ErrSourceOpen, "source open failed"},
		{ErrSinkOpen, "sink open failed"},
		{ErrStreamIO, "stream I/O fault"},
		{ErrEmptySource, "source has no frames"},
		{ErrInvalidDstSize, "dst too small for requested frames"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
		}
	}
}

func TestErrors_UniqueMessages(t *testing.T) {
	t.Parallel()

	messages := make(map[string]string)
	for name, err := range allErrors() {
		msg := err.Error()
		if existing, found := messages[msg]; found {
			t.Errorf("%s has same message as %s: %q", name, existing, msg)
		}
		messages[msg] = name
	}
}

func TestErrors_KindAndCauseWrapping(t *testing.T) {
	t.Parallel()

	// A fault carries its kind and its cause at the same time.
	err := fmt.Errorf("%w: %w", ErrSourceOpen, ErrEmptySource)

	if !errors.Is(err, ErrSourceOpen) {
		t.Error("errors.Is(err, ErrSourceOpen) = false, want true")
	}
	if !errors.Is(err, ErrEmptySource) {
		t.Error("errors.Is(err, ErrEmptySource) = false, want true")
	}
	if errors.Is(err, ErrSinkOpen) {
		t.Error("errors.Is(err, ErrSinkOpen) = true, want false")
	}
}

func TestErrors_Comparison(t *testing.T) {
	t.Parallel()

	for name, err := range allErrors() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if !errors.Is(err, err) {
				t.Errorf("errors.Is(%s, %s) = false, want true", name, name)
			}

			otherErr := errors.New("some other error")
			if errors.Is(otherErr, err) {
				t.Errorf("errors.Is(otherErr, %s) = true, want false", name)
			}
		})
	}
}
