package device

import (
	"fmt"
	"math"

	"github.com/ik5/audplay/utils"
)

// Defaults for the prepare stage. The padding fraction and the headroom
// divisor are empirical: some backends under-report consumed frames and
// truncate the tail without the extra silence, and normalizing to half
// of full scale keeps rounding and backend buffering away from clipping.
const (
	DefaultHeadroom = 2.0
	DefaultPadding  = 0.1
)

// Params are the tunables of the prepare stage.
type Params struct {
	// Headroom multiplies the peak before normalization divides by it;
	// 2 leaves the output at half of full scale. Values <= 0 fall back
	// to DefaultHeadroom.
	Headroom float64
	// Padding is the fraction of extra silent frames appended after the
	// signal. Negative values pad nothing.
	Padding float64
}

// DefaultParams returns the tuning playback uses unless told otherwise.
func DefaultParams() Params {
	return Params{Headroom: DefaultHeadroom, Padding: DefaultPadding}
}

func (p Params) sanitized() Params {
	if p.Headroom <= 0 {
		p.Headroom = DefaultHeadroom
	}
	if p.Padding < 0 {
		p.Padding = 0
	}

	return p
}

// Prepare transforms a mono buffer into device-ready PCM: the mean is
// subtracted, the result is normalized to 1/Headroom of full scale,
// quantized to signed 16-bit and padded with trailing silence. The
// input is never mutated. An empty buffer yields an empty result.
func Prepare(samples []float64, p Params) []int16 {
	if len(samples) == 0 {
		return nil
	}

	work := make([]float64, len(samples))
	copy(work, samples)

	return finish(work, 1, p)
}

// PrepareFrames is Prepare for multi-channel audio. Each row of frames
// is one frame, one sample per channel; rows must all have the same
// non-zero width. It returns interleaved PCM and the channel count.
func PrepareFrames(frames [][]float64, p Params) ([]int16, int, error) {
	if len(frames) == 0 {
		return nil, 0, nil
	}

	channels := len(frames[0])
	if channels == 0 {
		return nil, 0, fmt.Errorf("%w", ErrInvalidShape)
	}

	work := make([]float64, len(frames)*channels)
	for i, frame := range frames {
		if len(frame) != channels {
			return nil, 0, fmt.Errorf("%w", ErrInvalidShape)
		}
		copy(work[i*channels:], frame)
	}

	return finish(work, channels, p), channels, nil
}

// finish centers, normalizes, quantizes and pads interleaved samples.
// It owns work and mutates it in place.
func finish(work []float64, channels int, p Params) []int16 {
	p = p.sanitized()
	nFrames := len(work) / channels

	// Remove the per-channel DC offset.
	for ch := 0; ch < channels; ch++ {
		sum := 0.0
		for i := ch; i < len(work); i += channels {
			sum += work[i]
		}
		mean := sum / float64(nFrames)
		for i := ch; i < len(work); i += channels {
			work[i] -= mean
		}
	}

	maxAbs := 0.0
	for _, v := range work {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}

	// Silence stays silence; dividing by zero would not.
	if maxAbs > 0 {
		scale := 1.0 / (p.Headroom * maxAbs)
		for i := range work {
			work[i] *= scale
		}
	}

	padFrames := int(math.Round(p.Padding * float64(nFrames)))
	out := make([]int16, len(work)+padFrames*channels)
	for i, v := range work {
		out[i] = utils.Float64ToInt16(v)
	}

	return out
}
