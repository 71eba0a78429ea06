// SPDX-License-Identifier: EPL-2.0

// Package config loads player settings from TOML files and command-line
// flags.
//
// Files are read from $XDG_CONFIG_HOME/loopplay/config.toml and then
// ./loopplay.toml; keys in a later file override earlier ones. Flags set on
// the command line override both:
//
//	file = "test.wav"
//	duration = "2s"        # 0 loops until interrupted
//	sink = "portaudio"     # portaudio, speaker or null
//	device = ""            # default output device
//	latency = "high"       # high or low
//	frames_per_buffer = 0  # 0 lets the sink choose
//	log_level = "info"
package config
