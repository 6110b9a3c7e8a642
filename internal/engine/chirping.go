package engine

import (
	"math/cmplx"
)

// ChirpingPhasor generates exp(j·θ(s)) with
//
//	θ(s) = phi + omegaZero·s + accel·s²/2
//
// using one complex multiply per sample instead of a cos/sin pair.
//
// The inner rate generator does not hold the instantaneous angular velocity
// of a sample. Its next value is the average angular velocity between the
// next two samples to be emitted, which is exactly the rotation that carries
// the phasor from one to the other. For constant acceleration that average is
// omega(n) + accel/2, so the rate generator starts at omegaZero + accel/2 and
// rotates by accel per sample.
type ChirpingPhasor struct {
	rate       FlyingPhasor
	phasor     complex128
	accelOver2 float64
	count      uint64
	norm       cadence

	// scratch holds chirp samples for Mix.
	scratch []complex128
}

// NewChirpingPhasor creates a chirp generator.
//
// accel is in radians per sample², omegaZero is the instantaneous angular
// velocity of sample 0 in radians per sample, and phi is the phase of sample 0.
// Zero for all three gives a constant phasor at 1+0i.
func NewChirpingPhasor(accel, omegaZero, phi float64, opts ...Option) *ChirpingPhasor {
	o := newOptions(opts...)
	c := &ChirpingPhasor{
		rate: FlyingPhasor{norm: newCadence(o.normalizeInterval, rateNormalizeParity)},
		norm: newCadence(o.normalizeInterval, chirpNormalizeParity),
	}
	c.Reset(accel, omegaZero, phi)
	return c
}

// Reset reinitializes every piece of state, including the sample counter, to
// what NewChirpingPhasor would produce for the same parameters.
func (c *ChirpingPhasor) Reset(accel, omegaZero, phi float64) {
	c.phasor = cmplx.Rect(1, phi)
	c.accelOver2 = accel / halfDivisor
	c.rate.Reset(accel, omegaZero+c.accelOver2)
	c.count = 0
}

// Sample returns the next chirp sample and advances the state by one sample.
func (c *ChirpingPhasor) Sample() complex128 {
	s := c.phasor
	c.advance()
	return s
}

// Samples writes n consecutive samples into dst. It is equivalent to n calls
// to Sample. dst must hold at least n elements.
func (c *ChirpingPhasor) Samples(dst []complex128, n int) {
	dst = dst[:n]
	for i := range dst {
		dst[i] = c.phasor
		c.advance()
	}
}

// Fill writes len(dst) consecutive samples into dst.
func (c *ChirpingPhasor) Fill(dst []complex128) {
	c.Samples(dst, len(dst))
}

// SampleCount returns the number of samples emitted since construction or the last Reset.
func (c *ChirpingPhasor) SampleCount() uint64 {
	return c.count
}

// Peek returns the sample the next Sample or Samples call emits first.
func (c *ChirpingPhasor) Peek() complex128 {
	return c.phasor
}

// OmegaBar returns the average angular velocity, in radians per sample,
// between the next two samples to be emitted. The result lies in (-π, π].
func (c *ChirpingPhasor) OmegaBar() float64 {
	return cmplx.Phase(c.rate.Peek())
}

// OmegaN returns the instantaneous angular velocity of the next sample to be emitted.
func (c *ChirpingPhasor) OmegaN() float64 {
	return c.OmegaBar() - c.accelOver2
}

// Accel returns the acceleration currently in effect, in radians per sample².
func (c *ChirpingPhasor) Accel() float64 {
	return c.accelOver2 * halfDivisor
}

// ModifyAccel changes the acceleration without disturbing the sample already
// latched for output. The rate generator already holds the rotation to the
// sample after it, so the new acceleration shapes the trajectory from two
// samples out. Callers can watch OmegaN and cap or reverse the acceleration
// before the angular velocity passes ±π radians per sample.
func (c *ChirpingPhasor) ModifyAccel(newAccel float64) {
	omegaN := c.OmegaBar() - c.accelOver2
	c.accelOver2 = newAccel / halfDivisor
	c.rate.Reset(newAccel, omegaN+c.accelOver2)
}

func (c *ChirpingPhasor) advance() {
	c.phasor *= c.rate.Sample()
	if c.norm.due(c.count) {
		c.phasor = normalize(c.phasor)
	}
	c.count++
}
