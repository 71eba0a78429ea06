// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrSourceOpen wraps every failure to open, decode or validate an input file.
	ErrSourceOpen = errors.New("source open failed")
	// ErrSinkOpen wraps every failure to negotiate an output stream.
	ErrSinkOpen = errors.New("sink open failed")
	// ErrStreamIO marks a short or failed read from the source during playback.
	ErrStreamIO = errors.New("stream I/O fault")

	ErrEmptySource     = errors.New("source has no frames")
	ErrInvalidDstSize  = errors.New("dst too small for requested frames")
	ErrSeekOutOfRange  = errors.New("seek out of range")
	ErrUnknownFormat   = errors.New("unknown audio format")
	ErrInvalidChannels = errors.New("channel count must be positive")
)
