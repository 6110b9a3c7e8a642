// Package engine implements the phasor recurrences behind the chirp generator.
//
// A FlyingPhasor rotates a unit complex number by a fixed angle per sample.
// A ChirpingPhasor drives its own phasor with the output of an inner
// FlyingPhasor, so the per-sample rotation itself rotates and the
// instantaneous angular velocity grows linearly with the sample index.
//
// Neither type is safe for concurrent use. Each instance is meant to be owned
// by a single producer.
package engine

import (
	"math/cmplx"
)

// FlyingPhasor produces unit magnitude samples advancing by a fixed angle per
// sample. The first sample is exactly the configured starting value; the
// rotation only applies to the samples after it.
type FlyingPhasor struct {
	phasor complex128
	rate   complex128
	count  uint64
	norm   cadence
}

// NewFlyingPhasor creates a phasor starting at angle phi and rotating by
// radiansPerSample on every sample.
func NewFlyingPhasor(radiansPerSample, phi float64, opts ...Option) *FlyingPhasor {
	o := newOptions(opts...)
	f := &FlyingPhasor{norm: newCadence(o.normalizeInterval, rateNormalizeParity)}
	f.Reset(radiansPerSample, phi)
	return f
}

// Reset restarts the phasor as if freshly constructed with the given
// parameters. The normalization cadence is kept.
func (f *FlyingPhasor) Reset(radiansPerSample, phi float64) {
	f.phasor = cmplx.Rect(1, phi)
	f.rate = cmplx.Rect(1, radiansPerSample)
	f.count = 0
}

// Sample returns the current value and advances by one rotation.
func (f *FlyingPhasor) Sample() complex128 {
	s := f.phasor
	f.advance()
	return s
}

// Samples writes n consecutive samples into dst. dst must hold at least n elements.
func (f *FlyingPhasor) Samples(dst []complex128, n int) {
	dst = dst[:n]
	for i := range dst {
		dst[i] = f.phasor
		f.advance()
	}
}

// Peek returns the value the next Sample call will return, without consuming it.
func (f *FlyingPhasor) Peek() complex128 {
	return f.phasor
}

// SampleCount returns the number of samples produced since construction or the last Reset.
func (f *FlyingPhasor) SampleCount() uint64 {
	return f.count
}

// RadiansPerSample returns the configured fixed rotation.
func (f *FlyingPhasor) RadiansPerSample() float64 {
	return cmplx.Phase(f.rate)
}

func (f *FlyingPhasor) advance() {
	f.phasor *= f.rate
	if f.norm.due(f.count) {
		f.phasor = normalize(f.phasor)
	}
	f.count++
}
