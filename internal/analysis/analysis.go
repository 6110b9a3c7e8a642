// Package analysis measures the purity of generated chirps.
//
// Phase purity is judged from the acceleration recovered between successive
// samples, magnitude purity from how far each sample strays from the unit
// circle. Both reduce to the same summary statistics.
package analysis

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/tphakala/go-chirp-phasor/internal/mathutil"
)

// Stats summarizes a series of measurements.
type Stats struct {
	// Count is the number of measurements.
	Count int

	// Mean is the arithmetic mean.
	Mean float64

	// Variance is the unbiased sample variance. NaN below two measurements.
	Variance float64

	// MaxNegDev is the most negative deviation from Mean.
	MaxNegDev float64

	// MaxPosDev is the most positive deviation from Mean.
	MaxPosDev float64
}

// PeakAbsDev returns the largest absolute deviation from the mean.
func (s Stats) PeakAbsDev() float64 {
	return math.Max(-s.MaxNegDev, s.MaxPosDev)
}

// SNR returns the signal to noise ratio in dB of a unit amplitude sinusoid
// whose noise power is Variance.
func (s Stats) SNR() float64 {
	return decibelScale * math.Log10(sinePower/s.Variance)
}

// Summarize computes Stats over values. values is not modified.
func Summarize(values []float64) Stats {
	st := Stats{
		Count:     len(values),
		Mean:      math.NaN(),
		Variance:  math.NaN(),
		MaxNegDev: math.NaN(),
		MaxPosDev: math.NaN(),
	}
	switch len(values) {
	case 0:
		return st
	case 1:
		st.Mean = values[0]
		st.MaxNegDev, st.MaxPosDev = 0, 0
		return st
	}

	st.Mean, st.Variance = stat.MeanVariance(values, nil)
	st.MaxNegDev = floats.Min(values) - st.Mean
	st.MaxPosDev = floats.Max(values) - st.Mean
	return st
}

// PhaseAcceleration recovers the angular acceleration at every sample of a
// chirp that started with angular velocity omegaZero.
//
// The phase difference between two samples is the average of their
// instantaneous velocities, so each velocity follows from the previous one:
// ω(n) = 2·Δθ(n) − ω(n−1). The acceleration is then (ω(n) − ω₀)/n. Sample 0
// has no predecessor and contributes accel itself.
func PhaseAcceleration(samples []complex128, accel, omegaZero float64) Stats {
	return Summarize(AccelerationSeries(samples, accel, omegaZero))
}

// AccelerationSeries returns the per-sample acceleration estimates used by
// PhaseAcceleration.
func AccelerationSeries(samples []complex128, accel, omegaZero float64) []float64 {
	if len(samples) == 0 {
		return nil
	}

	out := make([]float64, len(samples))
	out[0] = accel

	prevOmega := omegaZero
	prevPhase := cmplx.Phase(samples[0])
	for n := 1; n < len(samples); n++ {
		phase := cmplx.Phase(samples[n])
		omegaBar := mathutil.DeltaAngle(prevPhase, phase)
		omega := 2*omegaBar - prevOmega

		out[n] = (omega - omegaZero) / float64(n)

		prevOmega = omega
		prevPhase = phase
	}
	return out
}

// Magnitude returns statistics of |s| over samples.
func Magnitude(samples []complex128) Stats {
	mags := make([]float64, len(samples))
	for i, s := range samples {
		mags[i] = cmplx.Abs(s)
	}
	return Summarize(mags)
}

// Report bundles the purity measurements of one epoch.
type Report struct {
	Accel     Stats
	Magnitude Stats
}

// Analyze runs both purity measurements over samples.
func Analyze(samples []complex128, accel, omegaZero float64) Report {
	return Report{
		Accel:     PhaseAcceleration(samples, accel, omegaZero),
		Magnitude: Magnitude(samples),
	}
}
