// SPDX-License-Identifier: EPL-2.0

// Package oto provides playback through the ebitengine/oto library.
//
// oto talks to the platform's native audio API directly (ALSA on
// Linux, WASAPI on Windows, Core Audio on macOS, WebAudio on js) and
// needs no cgo on most targets, making it a broad cross-platform
// fallback when no sound server is reachable.
//
// # The Context Constraint
//
// The library allows exactly one audio context per process, created
// with a fixed sample rate and channel count and never torn down. The
// driver therefore creates the context lazily on the first write and
// locks it to that write's format; a later write with a different
// format fails rather than resample behind the caller's back.
//
// # Probing
//
// Creating the context just to probe would burn the one shot the
// process has, possibly at the wrong sample rate. Available therefore
// only checks that the operating system has an oto implementation at
// all; a host with no audio device surfaces the failure at first
// write.
package oto
