package analysis

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-chirp-phasor/internal/mathutil"
)

// Spectrum computes magnitude spectra of complex segments.
// It caches the FFT plan and window for one segment length.
type Spectrum struct {
	fft    *fourier.CmplxFFT
	window []float64
	buf    []complex128
	coeffs []complex128
	mags   []float64
}

// NewSpectrum creates a spectrum analyzer for segments of n samples windowed
// with a Kaiser window of the given sidelobe attenuation. attenuation <= 0
// disables windowing.
func NewSpectrum(n int, attenuation float64) *Spectrum {
	s := &Spectrum{
		fft:  fourier.NewCmplxFFT(n),
		buf:  make([]complex128, n),
		mags: make([]float64, n),
	}
	if attenuation > 0 {
		s.window = mathutil.KaiserWindow(n, mathutil.KaiserBeta(attenuation))
	}
	return s
}

// Len returns the segment length.
func (s *Spectrum) Len() int {
	return len(s.buf)
}

// Magnitudes returns |X(k)| for segment, which must hold Len samples.
// The returned slice is reused by the next call.
func (s *Spectrum) Magnitudes(segment []complex128) []float64 {
	copy(s.buf, segment[:len(s.buf)])
	if s.window != nil {
		for i, w := range s.window {
			s.buf[i] *= complex(w, 0)
		}
	}
	s.coeffs = s.fft.Coefficients(s.coeffs, s.buf)
	for i, c := range s.coeffs {
		s.mags[i] = cmplx.Abs(c)
	}
	return s.mags
}

// Peak returns the angular frequency in radians per sample, within (-π, π],
// of the strongest bin of segment.
func (s *Spectrum) Peak(segment []complex128) float64 {
	mags := s.Magnitudes(segment)
	k := floats.MaxIdx(mags)
	return mathutil.WrapAngle(2 * math.Pi * float64(k) / float64(len(mags)))
}

// SpectralPeak returns the dominant angular frequency of samples in radians
// per sample. It returns NaN for an empty input.
func SpectralPeak(samples []complex128) float64 {
	if len(samples) == 0 {
		return math.NaN()
	}
	return NewSpectrum(len(samples), DefaultWindowAttenuation).Peak(samples)
}
