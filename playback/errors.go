// SPDX-License-Identifier: EPL-2.0

package playback

import "errors"

var (
	ErrSessionUsed   = errors.New("session already ran")
	ErrSessionClosed = errors.New("session closed")
)
