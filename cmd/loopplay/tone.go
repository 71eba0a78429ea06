// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/ik5/loopplay/formats/wav"
	"github.com/ik5/loopplay/utils"
)

const (
	toneRate      = 44100
	toneAmplitude = 0.5
)

// writeTone writes a mono 16-bit sine wave to path. The length is rounded to
// whole periods so the file loops without a click. d <= 0 writes two
// seconds.
func writeTone(path string, freq float64, d time.Duration) error {
	if d <= 0 {
		d = 2 * time.Second
	}

	samples := sine(freq, toneRate, d)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := wav.EncodeInt16(f, toneRate, 1, samples); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func sine(freq float64, rate int, d time.Duration) []int16 {
	periods := max(math.Round(d.Seconds()*freq), 1)
	frames := int(math.Round(periods * float64(rate) / freq))

	out := make([]int16, frames)
	for i := range out {
		v := math.Sin(2 * math.Pi * freq * float64(i) / float64(rate))
		out[i] = utils.Float32ToInt16(float32(v * toneAmplitude))
	}
	return out
}
