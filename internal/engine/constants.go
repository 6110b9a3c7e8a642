package engine

// Normalization constants
const (
	// DefaultNormalizeInterval is the default re-normalization cadence in samples.
	// Every second sample keeps |phasor|² within a few ulps of 1.
	DefaultNormalizeInterval = 2

	// Parity offsets within the normalization interval. The chirp engine and its
	// rate generator correct on alternate samples.
	chirpNormalizeParity = 1
	rateNormalizeParity  = 0

	// First order Taylor expansion of 1/sqrt(x) around x = 1:
	// 1/sqrt(x) ≈ 1 - (x - 1)/2
	taylorHalf = 0.5
)

// Mix constants
const (
	// mixBlockSize bounds the scratch buffer used by Mix so long inputs are
	// processed in cache-sized blocks.
	mixBlockSize = 4096
)

// halfDivisor converts an acceleration into the half-step term used by the
// average angular velocity convention.
const halfDivisor = 2.0
