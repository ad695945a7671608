// SPDX-License-Identifier: EPL-2.0

package audiotest

import "math"

// Write records one Write call observed by a MockDriver.
type Write struct {
	PCM      []int16
	Rate     float64
	Channels int
}

// MockDriver is a test double for the playback driver contract.
// It implements the device.Driver interface (without importing it to
// avoid cycles), records every write and fails on demand.
type MockDriver struct {
	Tag      string // reported by Name; "mock" when empty
	WriteErr error  // returned by Write when set (the write is still recorded)
	CloseErr error  // returned by Close when set

	Writes []Write
	Closes int
}

func (m *MockDriver) Name() string {
	if m.Tag == "" {
		return "mock"
	}
	return m.Tag
}

func (m *MockDriver) Write(pcm []int16, rate float64, channels int) error {
	cp := make([]int16, len(pcm))
	copy(cp, pcm)
	m.Writes = append(m.Writes, Write{PCM: cp, Rate: rate, Channels: channels})

	return m.WriteErr
}

func (m *MockDriver) Close() error {
	m.Closes++
	return m.CloseErr
}

// Mono builds a flat buffer from a waveform function.
func Mono(totalSamples int, waveform func(sample int) float64) []float64 {
	buf := make([]float64, totalSamples)
	for i := range buf {
		buf[i] = waveform(i)
	}
	return buf
}

// Frames builds a frames-by-channels buffer from a waveform function.
func Frames(totalSamples, channels int, waveform func(sample, channel int) float64) [][]float64 {
	frames := make([][]float64, totalSamples)
	for i := range frames {
		frame := make([]float64, channels)
		for ch := range frame {
			frame[ch] = waveform(i, ch)
		}
		frames[i] = frame
	}
	return frames
}

// SineMono builds a sine wave buffer.
func SineMono(rate, frequency float64, totalSamples int) []float64 {
	return Mono(totalSamples, func(sample int) float64 {
		return math.Sin(2 * math.Pi * frequency * float64(sample) / rate)
	})
}

// ConstantMono builds a buffer with a constant value.
func ConstantMono(totalSamples int, value float64) []float64 {
	return Mono(totalSamples, func(int) float64 { return value })
}
