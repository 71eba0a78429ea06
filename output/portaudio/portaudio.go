// SPDX-License-Identifier: EPL-2.0

package portaudio

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/ik5/loopplay/audio"
	"github.com/ik5/loopplay/output"
)

// paStream is the part of *portaudio.Stream the sink drives.
type paStream interface {
	Start() error
	Stop() error
	Close() error
}

// backend groups the library calls so tests can run without a device.
type backend struct {
	initialize    func() error
	terminate     func() error
	devices       func() ([]*portaudio.DeviceInfo, error)
	defaultOutput func() (*portaudio.DeviceInfo, error)
	openStream    func(p portaudio.StreamParameters, cb func(out []int32)) (paStream, error)
}

var pa = backend{
	initialize:    portaudio.Initialize,
	terminate:     portaudio.Terminate,
	devices:       portaudio.Devices,
	defaultOutput: portaudio.DefaultOutputDevice,
	openStream: func(p portaudio.StreamParameters, cb func(out []int32)) (paStream, error) {
		s, err := portaudio.OpenStream(p, cb)
		if err != nil {
			return nil, err
		}
		return s, nil
	},
}

// Stream plays frames through a PortAudio output stream with interleaved
// int32 samples.
type Stream struct {
	be     backend
	pump   *output.Pump
	stream paStream
	device string

	mu      sync.Mutex
	started bool
	closed  bool
}

var _ output.Stream = (*Stream)(nil)

// Open initializes PortAudio and opens an output stream on the device named
// in p, or the default output device. It is an output.Opener.
func Open(p output.Params, f audio.Filler) (output.Stream, error) {
	return open(pa, p, f)
}

func open(be backend, p output.Params, f audio.Filler) (*Stream, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrSinkOpen, err)
	}

	if err := be.initialize(); err != nil {
		return nil, fmt.Errorf("%w: initialize: %w", audio.ErrSinkOpen, err)
	}

	dev, err := findDevice(be, p.Device)
	if err != nil {
		_ = be.terminate()
		return nil, fmt.Errorf("%w: %w", audio.ErrSinkOpen, err)
	}

	params := streamParameters(dev, p)
	s := &Stream{
		be:     be,
		pump:   output.NewPump(f, p.Channels),
		device: dev.Name,
	}

	s.stream, err = be.openStream(params, s.pump.Fill)
	if err != nil {
		_ = be.terminate()
		return nil, fmt.Errorf("%w: open stream on %q: %w", audio.ErrSinkOpen, dev.Name, err)
	}

	return s, nil
}

func streamParameters(dev *portaudio.DeviceInfo, p output.Params) portaudio.StreamParameters {
	params := portaudio.HighLatencyParameters(nil, dev)
	if p.Latency == output.LatencyLow {
		params = portaudio.LowLatencyParameters(nil, dev)
	}

	params.Output.Channels = p.Channels
	params.SampleRate = float64(p.SampleRate)
	// 0 leaves the callback size to PortAudio, which may vary it per call
	params.FramesPerBuffer = p.BufferFrames(portaudio.FramesPerBufferUnspecified)
	return params
}

func findDevice(be backend, name string) (*portaudio.DeviceInfo, error) {
	if name == "" {
		dev, err := be.defaultOutput()
		if err != nil {
			return nil, fmt.Errorf("%w: default: %w", output.ErrNoDevice, err)
		}
		return dev, nil
	}

	devices, err := be.devices()
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}

	for _, dev := range devices {
		if dev.Name == name && dev.MaxOutputChannels > 0 {
			return dev, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", output.ErrNoDevice, name)
}

// Device is the name of the device the stream was opened on.
func (s *Stream) Device() string { return s.device }

func (s *Stream) Done() <-chan error { return s.pump.Done() }

func (s *Stream) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return output.ErrStreamClosed
	}
	if s.started {
		return nil
	}

	if err := s.stream.Start(); err != nil {
		return fmt.Errorf("start stream: %w", err)
	}
	s.started = true
	return nil
}

func (s *Stream) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil
	}
	s.started = false

	if err := s.stream.Stop(); err != nil {
		return fmt.Errorf("stop stream: %w", err)
	}
	return nil
}

// Close stops the stream if needed, closes it and terminates PortAudio. A
// failing step does not skip the ones after it.
func (s *Stream) Close() error {
	stopErr := s.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return stopErr
	}
	s.closed = true

	var closeErr, termErr error
	if err := s.stream.Close(); err != nil {
		closeErr = fmt.Errorf("close stream: %w", err)
	}
	if err := s.be.terminate(); err != nil {
		termErr = fmt.Errorf("terminate: %w", err)
	}
	return errors.Join(stopErr, closeErr, termErr)
}
