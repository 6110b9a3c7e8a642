package chirp

import (
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/tphakala/go-chirp-phasor/internal/engine"
	"github.com/tphakala/go-chirp-phasor/internal/mathutil"
	"github.com/tphakala/go-chirp-phasor/internal/simdops"
)

// NewChirp creates a generator with the default normalization interval.
// All-zero arguments give a constant 1+0i.
func NewChirp(accel, omegaZero, phi float64) *Generator {
	return &Generator{
		engine: engine.NewChirpingPhasor(accel, omegaZero, phi),
		config: Config{Accel: accel, OmegaZero: omegaZero, Phi: phi},
	}
}

// NewSweep creates a generator whose instantaneous angular velocity moves
// linearly from omegaStart at sample 0 to omegaEnd at sample numSamples-1.
// Both endpoints must lie within [-π, π] radians per sample.
func NewSweep(omegaStart, omegaEnd float64, numSamples int) (*Generator, error) {
	if numSamples < minSweepSamples {
		return nil, fmt.Errorf("%w: need at least %d samples, got %d", ErrInvalidSweep, minSweepSamples, numSamples)
	}
	if !isFinite(omegaStart) || !isFinite(omegaEnd) {
		return nil, fmt.Errorf("%w: endpoints must be finite", ErrInvalidSweep)
	}
	if math.Abs(omegaStart) > math.Pi || math.Abs(omegaEnd) > math.Pi {
		return nil, fmt.Errorf("%w: endpoints must be within ±π radians per sample", ErrInvalidSweep)
	}

	return New(&Config{
		Accel:     mathutil.SweepAccel(omegaStart, omegaEnd, numSamples),
		OmegaZero: omegaStart,
	})
}

// NewSweepHz creates a generator sweeping from f0 to f1 Hz over duration
// seconds at the given sample rate.
func NewSweepHz(f0, f1, sampleRate, duration float64) (*Generator, error) {
	if sampleRate <= 0 || !isFinite(sampleRate) {
		return nil, fmt.Errorf("%w: sample rate must be positive", ErrInvalidSweep)
	}
	if duration <= 0 || !isFinite(duration) {
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidSweep)
	}
	nyquist := sampleRate / halfDivisor
	if math.Abs(f0) > nyquist || math.Abs(f1) > nyquist {
		return nil, fmt.Errorf("%w: frequencies must not exceed Nyquist (%g Hz)", ErrInvalidSweep, nyquist)
	}

	numSamples := int(math.Round(duration * sampleRate))
	return NewSweep(
		mathutil.HzToRadiansPerSample(f0, sampleRate),
		mathutil.HzToRadiansPerSample(f1, sampleRate),
		numSamples,
	)
}

// Generate is a one-shot helper returning numSamples samples for config.
func Generate(config *Config, numSamples int) ([]complex128, error) {
	if numSamples < 0 {
		return nil, fmt.Errorf("%w: sample count must not be negative", ErrInvalidConfig)
	}
	g, err := New(config)
	if err != nil {
		return nil, err
	}
	out := make([]complex128, numSamples)
	g.Fill(out)
	return out, nil
}

// GenerateBank generates numSamples samples for each configuration.
// Each chirp owns its generator, so the bank is produced concurrently with at
// most GOMAXPROCS goroutines when parallel is true.
func GenerateBank(configs []Config, numSamples int, parallel bool) ([][]complex128, error) {
	out := make([][]complex128, len(configs))

	if !parallel || len(configs) < minParallelChirps {
		for i := range configs {
			samples, err := Generate(&configs[i], numSamples)
			if err != nil {
				return nil, fmt.Errorf("chirp %d: %w", i, err)
			}
			out[i] = samples
		}
		return out, nil
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range configs {
		g.Go(func() error {
			samples, err := Generate(&configs[i], numSamples)
			if err != nil {
				return fmt.Errorf("chirp %d: %w", i, err)
			}
			out[i] = samples
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Split separates complex samples into in-phase and quadrature slices.
// re and im must hold at least len(src) elements.
func Split(re, im []float64, src []complex128) {
	for i, s := range src {
		re[i] = real(s)
		im[i] = imag(s)
	}
}

// ToFloat32 writes src as interleaved float32 I/Q pairs into dst and returns
// the filled prefix. dst is grown if it holds fewer than 2*len(src) elements.
func ToFloat32(dst []float32, src []complex128) []float32 {
	return simdops.NewInterleaver[float32]().Interleave(dst, src)
}
