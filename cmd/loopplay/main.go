// SPDX-License-Identifier: EPL-2.0

// Command loopplay plays an audio file in a loop.
//
//	loopplay [flags] [file]
//
// Without arguments it plays test.wav on the default output device for two
// seconds. Settings are read from $XDG_CONFIG_HOME/loopplay/config.toml and
// ./loopplay.toml before flags are applied.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/ik5/loopplay"
	"github.com/ik5/loopplay/config"
	"github.com/ik5/loopplay/output"
	"github.com/ik5/loopplay/output/null"
	"github.com/ik5/loopplay/output/portaudio"
	"github.com/ik5/loopplay/output/speaker"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func newSinks() *output.Registry {
	sinks := output.NewRegistry()
	sinks.Register("portaudio", portaudio.Open)
	sinks.Register("speaker", speaker.Open)
	sinks.Register("null", null.Open)
	return sinks
}

func newLogger(w io.Writer, level logrus.Level) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("loopplay", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: loopplay [flags] [file]")
		fs.PrintDefaults()
	}

	config.BindFlags(fs)
	cfgFile := fs.StringP("config", "c", "", "extra TOML config file, read last")
	tone := fs.Float64("tone", 0, "write a sine wave of this frequency (Hz) to the file and exit")
	fs.Lookup("tone").NoOptDefVal = "440"
	list := fs.Bool("list-devices", false, "list PortAudio output devices and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 1
	}

	paths := config.Paths()
	if *cfgFile != "" {
		paths = append(paths, *cfgFile)
	}

	cfg, err := config.LoadFiles(paths...)
	if err == nil {
		err = cfg.ApplyFlags(fs)
	}
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintln(stderr, "loopplay:", err)
		return 1
	}

	log := newLogger(stderr, cfg.Level())

	switch {
	case *list:
		err = listDevices(stdout)
	case *tone > 0:
		err = writeTone(cfg.File, *tone, cfg.Duration)
		if err == nil {
			log.WithField("file", cfg.File).Info("tone written")
		}
	default:
		err = play(cfg, log)
	}

	if err != nil {
		log.WithError(err).Error("loopplay failed")
		return 1
	}
	return 0
}

func play(cfg *config.Config, log logrus.FieldLogger) error {
	open, err := newSinks().Get(cfg.Sink)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return loopplay.Play(ctx, cfg.File, open, cfg.Params(), cfg.Duration, log.WithField("sink", cfg.Sink))
}

func listDevices(w io.Writer) error {
	devs, err := portaudio.ListDevices()
	if err != nil {
		return err
	}

	for _, d := range devs {
		mark := " "
		if d.Default {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %-40s %-12s %2d ch  %6.0f Hz  low %v  high %v\n",
			mark, d.Name, d.HostAPI, d.MaxOutputChannels, d.DefaultSampleRate, d.LowLatency, d.HighLatency)
	}
	return nil
}
