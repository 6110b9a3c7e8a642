package analysis

// Purity constants
const (
	// sinePower is the mean power of a unit amplitude real sinusoid.
	sinePower = 0.5

	decibelScale = 10.0
)

// DefaultWindowAttenuation is the Kaiser sidelobe attenuation in dB applied
// by SpectralPeak before the transform.
const DefaultWindowAttenuation = 90.0
