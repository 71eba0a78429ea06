// SPDX-License-Identifier: EPL-2.0

package config

import (
	"github.com/spf13/pflag"
)

// Flag names shared by the flag set and the config keys they override.
const (
	FlagDuration        = "duration"
	FlagSink            = "sink"
	FlagDevice          = "device"
	FlagLatency         = "latency"
	FlagFramesPerBuffer = "frames-per-buffer"
	FlagLogLevel        = "log-level"
)

// BindFlags registers the overridable settings on fs with the defaults
// shown in help output.
func BindFlags(fs *pflag.FlagSet) {
	def := Default()

	fs.DurationP(FlagDuration, "d", def.Duration, "how long to play; 0 loops until interrupted")
	fs.StringP(FlagSink, "s", def.Sink, "output sink: portaudio, speaker or null")
	fs.String(FlagDevice, def.Device, "output device name (default device if empty)")
	fs.String(FlagLatency, def.Latency, "suggested output latency: high or low")
	fs.Int(FlagFramesPerBuffer, def.FramesPerBuffer, "frames per sink callback, 0 lets the sink choose")
	fs.String(FlagLogLevel, def.LogLevel, "log level: trace, debug, info, warn, error")
}

// ApplyFlags copies every flag the user set explicitly over c. The first
// positional argument, if any, replaces the file.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}

		switch f.Name {
		case FlagDuration:
			c.Duration, err = fs.GetDuration(f.Name)
		case FlagSink:
			c.Sink, err = fs.GetString(f.Name)
		case FlagDevice:
			c.Device, err = fs.GetString(f.Name)
		case FlagLatency:
			c.Latency, err = fs.GetString(f.Name)
		case FlagFramesPerBuffer:
			c.FramesPerBuffer, err = fs.GetInt(f.Name)
		case FlagLogLevel:
			c.LogLevel, err = fs.GetString(f.Name)
		}
	})
	if err != nil {
		return err
	}

	if fs.NArg() > 0 {
		c.File = expandPath(fs.Arg(0))
	}
	return nil
}
