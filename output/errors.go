// SPDX-License-Identifier: EPL-2.0

package output

import "errors"

var (
	ErrInvalidParams  = errors.New("invalid output parameters")
	ErrInvalidLatency = errors.New("latency must be high or low")
	ErrUnknownSink    = errors.New("unknown output sink")
	ErrNoDevice       = errors.New("output device not found")
	ErrStreamClosed   = errors.New("output stream closed")
)
