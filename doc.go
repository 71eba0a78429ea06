// SPDX-License-Identifier: EPL-2.0

// Package loopplay plays an audio file in a loop through an audio output.
//
// The player decodes a file into an audio.Source, wraps it in an
// audio.Streamer that wraps back to the first frame whenever the end is
// reached, and hands the streamer to an output sink that pulls frames from
// its own callback.
//
// # Supported Formats
//
// NewRegistry registers a decoder for every supported extension:
//   - WAV (PCM 8, 16, 24 and 32-bit) via formats/wav
//   - AIFF (PCM 8, 16, 24 and 32-bit) via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// # Quick Start
//
// Play loops a file for a fixed time:
//
//	err := loopplay.Play(ctx, "test.wav", portaudio.Open, output.Params{}, 2*time.Second)
//
// For control over logging or the session lifetime, use the playback
// package directly:
//
//	s, err := playback.Open("test.wav", loopplay.NewRegistry(),
//	    playback.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	err = s.Run(ctx, speaker.Open, output.Params{}, 0)
//
// # Looping Without a Sink
//
// Any code can drive the streamer itself; Fill always writes exactly the
// number of frames asked for:
//
//	st, _ := audio.NewStreamer(src)
//	buf := make([]int32, 512*src.Channels())
//	status, err := st.Fill(buf, 512)
//
// See the individual subpackages for more detailed documentation.
package loopplay
