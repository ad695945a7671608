// SPDX-License-Identifier: EPL-2.0

package portaudio

// feeder hands interleaved samples to the stream callback, zero
// filling once the buffer runs out.
type feeder struct {
	pcm []int16
	pos int
}

// fill copies into out and reports whether the buffer is exhausted.
func (f *feeder) fill(out []int16) bool {
	n := copy(out, f.pcm[f.pos:])
	f.pos += n

	for i := n; i < len(out); i++ {
		out[i] = 0
	}

	return f.pos >= len(f.pcm)
}
