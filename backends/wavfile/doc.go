// SPDX-License-Identifier: EPL-2.0

// Package wavfile provides a backend that renders playback to a WAV
// file instead of a device.
//
// This package uses github.com/go-audio/wav for encoding. It is aimed
// at tests, debugging and headless batch rendering: point a session at
// it and every playback call appends to the file.
//
//	reg := device.NewRegistry()
//	reg.Register(wavfile.Backend("render.wav"))
//
//	s := audplay.New(
//	    audplay.WithRegistry(reg),
//	    audplay.WithOrder(wavfile.Name),
//	)
//	defer s.Close()
//
// The first write fixes the file's sample rate and channel count;
// later writes must match. The WAV header is finalized by Close, so a
// file is not valid until the driver has been closed.
//
// The backend is intentionally not part of the default probe order.
package wavfile
