// Package mathutil provides angle arithmetic and window functions used to
// configure and analyze chirp generators.
package mathutil

import (
	"math"
)

// WrapAngle maps an angle in radians onto (-π, π].
func WrapAngle(theta float64) float64 {
	if theta > -math.Pi && theta <= math.Pi {
		return theta
	}
	w := math.Mod(theta+math.Pi, twoPi)
	if w <= 0 {
		w += twoPi
	}
	return w - math.Pi
}

// DeltaAngle returns the signed angular distance from one phase to another,
// wrapped onto (-π, π].
func DeltaAngle(from, to float64) float64 {
	return WrapAngle(to - from)
}

// InTolerance reports whether value lies within tolerance of expected.
func InTolerance(value, expected, tolerance float64) bool {
	return math.Abs(value-expected) <= tolerance
}

// HzToRadiansPerSample converts a frequency in Hz to angular velocity in
// radians per sample at the given sample rate.
func HzToRadiansPerSample(freq, sampleRate float64) float64 {
	return twoPi * freq / sampleRate
}

// RadiansPerSampleToHz converts angular velocity in radians per sample to Hz.
func RadiansPerSampleToHz(omega, sampleRate float64) float64 {
	return omega * sampleRate / twoPi
}

// SweepAccel returns the constant acceleration, in radians per sample², that
// moves the instantaneous angular velocity from omegaStart at sample 0 to
// omegaEnd at sample numSamples-1. numSamples must be at least 2.
func SweepAccel(omegaStart, omegaEnd float64, numSamples int) float64 {
	return (omegaEnd - omegaStart) / float64(numSamples-1)
}

// Phase returns the closed-form chirp phase at sample s:
// phi + omegaZero·s + accel·s²/2. The result is not wrapped.
func Phase(accel, omegaZero, phi float64, s float64) float64 {
	return phi + omegaZero*s + accel*s*s/halfDivisor
}
