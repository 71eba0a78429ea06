// SPDX-License-Identifier: EPL-2.0

package speaker

import "github.com/ik5/loopplay/utils"

// toStereo converts len(dst) interleaved frames from src into float pairs.
// With more than two channels, even channels are averaged into the left side
// and odd channels into the right.
func toStereo(dst [][2]float64, src []int32, channels int) {
	switch channels {
	case 1:
		for f := range dst {
			v := utils.Int32ToFloat64(src[f])
			dst[f] = [2]float64{v, v}
		}
	case 2:
		for f := range dst {
			idx := f << 1 // f * 2
			dst[f] = [2]float64{
				utils.Int32ToFloat64(src[idx]),
				utils.Int32ToFloat64(src[idx+1]),
			}
		}
	default:
		invLeft := 1 / float64((channels+1)/2)
		invRight := 1 / float64(channels/2)
		for f := range dst {
			var left, right float64
			base := f * channels
			for c := range channels {
				if c&1 == 0 {
					left += utils.Int32ToFloat64(src[base+c])
				} else {
					right += utils.Int32ToFloat64(src[base+c])
				}
			}
			dst[f] = [2]float64{left * invLeft, right * invRight}
		}
	}
}
