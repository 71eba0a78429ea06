// SPDX-License-Identifier: EPL-2.0

package portaudio

import (
	"fmt"
	"time"
)

// Device describes an output-capable PortAudio device.
type Device struct {
	Name              string
	HostAPI           string
	MaxOutputChannels int
	DefaultSampleRate float64
	LowLatency        time.Duration
	HighLatency       time.Duration
	Default           bool
}

// ListDevices returns the devices that can play audio.
func ListDevices() ([]Device, error) {
	return listDevices(pa)
}

func listDevices(be backend) ([]Device, error) {
	if err := be.initialize(); err != nil {
		return nil, fmt.Errorf("initialize: %w", err)
	}
	defer func() { _ = be.terminate() }()

	all, err := be.devices()
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}

	var defName string
	if def, err := be.defaultOutput(); err == nil && def != nil {
		defName = def.Name
	}

	out := make([]Device, 0, len(all))
	for _, d := range all {
		if d.MaxOutputChannels <= 0 {
			continue
		}

		dev := Device{
			Name:              d.Name,
			MaxOutputChannels: d.MaxOutputChannels,
			DefaultSampleRate: d.DefaultSampleRate,
			LowLatency:        d.DefaultLowOutputLatency,
			HighLatency:       d.DefaultHighOutputLatency,
			Default:           d.Name == defName,
		}
		if d.HostApi != nil {
			dev.HostAPI = d.HostApi.Name
		}
		out = append(out, dev)
	}
	return out, nil
}
