// SPDX-License-Identifier: EPL-2.0

// Package playback ties a decoded file to an output sink.
//
// A Session is opened from a path and a decoder registry, run once against
// an output.Opener for a fixed duration or until its context ends, and then
// closed:
//
//	s, err := playback.Open("test.wav", loopplay.NewRegistry())
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	err = s.Run(ctx, portaudio.Open, output.Params{}, 2*time.Second)
//
// Errors from Open wrap audio.ErrSourceOpen, sink failures in Run wrap
// audio.ErrSinkOpen and read faults during playback wrap audio.ErrStreamIO.
package playback
