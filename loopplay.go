// SPDX-License-Identifier: EPL-2.0

package loopplay

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ik5/loopplay/audio"
	"github.com/ik5/loopplay/formats/aiff"
	"github.com/ik5/loopplay/formats/mp3"
	"github.com/ik5/loopplay/formats/vorbis"
	"github.com/ik5/loopplay/formats/wav"
	"github.com/ik5/loopplay/output"
	"github.com/ik5/loopplay/playback"
)

// NewRegistry returns a registry with every built-in decoder.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})

	return reg
}

// Play opens path, loops it through a stream from open for d (0 waits for
// ctx), and releases everything before returning.
func Play(ctx context.Context, path string, open output.Opener, p output.Params, d time.Duration, log logrus.FieldLogger) (err error) {
	s, err := playback.Open(path, NewRegistry(), playback.WithLogger(log))
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, s.Close())
	}()

	return s.Run(ctx, open, p, d)
}
