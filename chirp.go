package chirp

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-chirp-phasor/internal/engine"
)

// Config holds chirp generator configuration.
type Config struct {
	// Accel is the angular acceleration in radians per sample².
	// Zero gives a steady tone, negative values sweep downwards.
	Accel float64

	// OmegaZero is the instantaneous angular velocity of the first sample in
	// radians per sample (2π·f/fs).
	OmegaZero float64

	// Phi is the phase of the first sample in radians.
	Phi float64

	// NormalizeInterval is how often, in samples, the unit magnitude
	// correction runs. Set to 0 to use the default of every second sample.
	NormalizeInterval uint64
}

// Common errors returned by the chirp package.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid chirp configuration")

	// ErrInvalidSweep indicates sweep endpoints that cannot be realized.
	ErrInvalidSweep = errors.New("invalid sweep")
)

// Validate checks if the configuration is valid.
// The generator itself accepts any real numbers; only non-finite values are rejected.
func (c *Config) Validate() error {
	if !isFinite(c.Accel) {
		return fmt.Errorf("%w: acceleration must be finite", ErrInvalidConfig)
	}
	if !isFinite(c.OmegaZero) {
		return fmt.Errorf("%w: starting angular velocity must be finite", ErrInvalidConfig)
	}
	if !isFinite(c.Phi) {
		return fmt.Errorf("%w: starting phase must be finite", ErrInvalidConfig)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Generator produces a linear chirp as a stream of unit magnitude complex
// samples. It is not safe for concurrent use; give each goroutine its own
// Generator or guard it with a mutex.
type Generator struct {
	engine *engine.ChirpingPhasor
	config Config
}

// New creates a chirp generator with the specified configuration.
func New(config *Config) (*Generator, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var opts []engine.Option
	if config.NormalizeInterval > 0 {
		opts = append(opts, engine.WithNormalizeInterval(config.NormalizeInterval))
	}

	return &Generator{
		engine: engine.NewChirpingPhasor(config.Accel, config.OmegaZero, config.Phi, opts...),
		config: *config,
	}, nil
}

// Sample returns the next sample and advances the generator by one sample.
func (g *Generator) Sample() complex128 {
	return g.engine.Sample()
}

// Samples writes count consecutive samples into dst.
// dst must hold at least count elements.
func (g *Generator) Samples(dst []complex128, count int) {
	g.engine.Samples(dst, count)
}

// Fill writes len(dst) consecutive samples into dst.
func (g *Generator) Fill(dst []complex128) {
	g.engine.Fill(dst)
}

// Mix multiplies src by the next len(src) samples into dst.
func (g *Generator) Mix(dst, src []complex128) {
	g.engine.Mix(dst, src)
}

// SampleCount returns the number of samples produced since construction or the last Reset.
func (g *Generator) SampleCount() uint64 {
	return g.engine.SampleCount()
}

// Peek returns the next sample without consuming it.
func (g *Generator) Peek() complex128 {
	return g.engine.Peek()
}

// OmegaBar returns the average angular velocity between the next two samples.
func (g *Generator) OmegaBar() float64 {
	return g.engine.OmegaBar()
}

// OmegaN returns the instantaneous angular velocity of the next sample.
func (g *Generator) OmegaN() float64 {
	return g.engine.OmegaN()
}

// Accel returns the acceleration currently in effect.
func (g *Generator) Accel() float64 {
	return g.engine.Accel()
}

// ModifyAccel changes the acceleration. The next sample is unaffected; the
// one after it is the first to follow the new trajectory.
func (g *Generator) ModifyAccel(accel float64) {
	g.engine.ModifyAccel(accel)
}

// Reset restarts the generator with new parameters, as if newly constructed.
// The normalization interval is kept.
func (g *Generator) Reset(accel, omegaZero, phi float64) {
	g.config.Accel, g.config.OmegaZero, g.config.Phi = accel, omegaZero, phi
	g.engine.Reset(accel, omegaZero, phi)
}

// Config returns the parameters the generator was last constructed or reset with.
func (g *Generator) Config() Config {
	return g.config
}
