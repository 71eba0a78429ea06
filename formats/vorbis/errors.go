// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrUnknownLength is returned when the stream length cannot be determined.
var ErrUnknownLength = errors.New("vorbis stream length unknown")
