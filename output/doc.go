// SPDX-License-Identifier: EPL-2.0

// Package output defines the contract between a frame Filler and an audio
// output sink.
//
// A sink is opened through an Opener with Params describing the stream. The
// sink calls the filler from its own callback context, one call at a time.
// When the filler returns audio.Stop the sink writes silence until it is
// stopped and reports the result once on Done.
//
// Sinks live in subpackages:
//   - output/portaudio plays through PortAudio
//   - output/speaker plays through the beep speaker
//   - output/null consumes frames on a timer without any device
//
// Pump implements the shared callback behaviour, so a sink only needs to
// move frames between Pump.Fill and its device.
package output
