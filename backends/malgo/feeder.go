// SPDX-License-Identifier: EPL-2.0

package malgo

import "encoding/binary"

// feeder hands interleaved samples to a device data callback as
// little-endian bytes, zero filling once the buffer runs out.
type feeder struct {
	pcm      []int16
	channels int
	pos      int
}

func newFeeder(pcm []int16, channels int) *feeder {
	return &feeder{pcm: pcm, channels: channels}
}

// fill copies up to frameCount frames into out and reports whether the
// buffer is exhausted.
func (f *feeder) fill(out []byte, frameCount int) bool {
	samples := frameCount * f.channels
	if n := len(out) / 2; samples > n {
		samples = n
	}

	for i := 0; i < samples; i++ {
		var s int16
		if f.pos < len(f.pcm) {
			s = f.pcm[f.pos]
			f.pos++
		}
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}

	return f.pos >= len(f.pcm)
}
