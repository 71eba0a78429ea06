// SPDX-License-Identifier: EPL-2.0

// Package audio provides the core of looping playback.
//
// This package contains the building blocks every other package plugs into:
//   - Source interface for seekable decoded audio
//   - Streamer, which fills output buffers and loops at end of file
//   - Filler, the contract output sinks call from their audio callback
//   - MemorySource for audio decoded up front
//   - Format registry for decoder registration
//
// # Source Interface
//
// A Source is frame addressable:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    Frames() int64
//	    Seek(frame int64) error
//	    ReadFrames(dst []int32, frames int) (int, error)
//	    Close() error
//	}
//
// Samples are interleaved int32 scaled to the full range, whatever the bit
// depth of the file they came from.
//
// # Streaming
//
// The Streamer owns the playback position:
//
//	s, err := audio.NewStreamer(src)
//	buf := make([]int32, 512*s.Channels())
//	status, err := s.Fill(buf, 512)
//
// Each Fill seeks to the position, reads up to the end of the source and,
// when the request is not yet satisfied, continues from frame zero. Every
// iteration reads at least one frame, so a Fill completes in at most
// ceil(frames/Frames())+1 reads. NewStreamer rejects empty sources for
// that reason.
//
// Fill does not lock or allocate. Position, Loops and Interrupt use atomics
// and may be called from the controlling goroutine while a sink is running.
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.Lookup("test.wav")
//
// # Error Handling
//
// Three sentinel errors classify failures:
//   - ErrSourceOpen: the input could not be opened, decoded or was empty
//   - ErrSinkOpen: no output stream could be negotiated
//   - ErrStreamIO: a seek or read failed during playback
//
// A fault inside Fill is not retried. Fill returns Stop with the error,
// writes silence and keeps returning Stop until the sink is shut down.
package audio
