// Package testutil provides reusable test helper functions for chirp generator tests.
package testutil

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-chirp-phasor/internal/mathutil"
)

// Default tolerances for various test scenarios.
const (
	PhaseTolerance     = 1e-12
	MagnitudeTolerance = 1e-12
)

// AssertUnitMagnitude verifies that every sample lies within tolerance of the unit circle.
func AssertUnitMagnitude(t *testing.T, samples []complex128, tolerance float64) bool {
	t.Helper()
	for i, s := range samples {
		mag := cmplx.Abs(s)
		if math.Abs(mag-1) > tolerance {
			return assert.Fail(t, "magnitude drift",
				"|s[%d]| = %.17g deviates from 1 by %e (tolerance %e)", i, mag, mag-1, tolerance)
		}
	}
	return true
}

// AssertPhaseNear verifies that two angles agree modulo 2π.
func AssertPhaseNear(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	return assert.InDelta(t, 0, mathutil.DeltaAngle(expected, actual), tolerance, msgAndArgs...)
}

// AssertNoNaNOrInf verifies that no component of any sample is NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, samples []complex128) bool {
	t.Helper()
	for i, s := range samples {
		if cmplx.IsNaN(s) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if cmplx.IsInf(s) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			"value %g is outside range [%g, %g]", value, minVal, maxVal)
	}
	return true
}

// ClosedFormChirp returns n samples of exp(j·(phi + omegaZero·s + accel·s²/2))
// evaluated directly with cos/sin, the reference the recurrence replaces.
func ClosedFormChirp(accel, omegaZero, phi float64, n int) []complex128 {
	out := make([]complex128, n)
	for s := range out {
		out[s] = cmplx.Rect(1, mathutil.Phase(accel, omegaZero, phi, float64(s)))
	}
	return out
}
