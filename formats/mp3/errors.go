// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrUnknownLength is returned when the decoder cannot tell how many frames
// the stream holds, which happens for non-seekable input.
var ErrUnknownLength = errors.New("mp3 stream length unknown")
