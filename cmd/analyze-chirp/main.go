// Command analyze-chirp generates one epoch of a chirp and reports its phase
// and magnitude purity.
//
// Usage:
//
//	analyze-chirp
//	analyze-chirp -n 65536 -accel 4.8e-5 -interval 8
//	analyze-chirp -segments 16 -check
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mdobak/go-xerrors"

	chirp "github.com/tphakala/go-chirp-phasor"
	"github.com/tphakala/go-chirp-phasor/internal/analysis"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error("analyze-chirp failed", slog.Any("error", xerrors.New(err)))
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("analyze-chirp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	accel := fs.Float64("accel", defaultAccel, "Acceleration in radians per sample²")
	omegaZero := fs.Float64("omegaZero", 0, "Initial angular velocity in radians per sample")
	phi := fs.Float64("phi", 0, "Phase of the first sample in radians")
	n := fs.Int("n", defaultEpochSamples, "Samples in the analyzed epoch")
	interval := fs.Uint64("interval", 0, "Normalization interval in samples (0 = default)")
	segments := fs.Int("segments", defaultSegments, "Segments for the spectral velocity track (0 disables)")
	check := fs.Bool("check", false, "Fail when purity is outside the expected limits")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *n < minEpochSamples {
		return fmt.Errorf("epoch must hold at least %d samples, got %d", minEpochSamples, *n)
	}

	cfg := &chirp.Config{Accel: *accel, OmegaZero: *omegaZero, Phi: *phi, NormalizeInterval: *interval}
	samples, err := chirp.Generate(cfg, *n)
	if err != nil {
		return err
	}

	report := analysis.Analyze(samples, *accel, *omegaZero)
	printReport(stdout, cfg, len(samples), report)

	if *segments > 0 {
		if err := printVelocityTrack(stdout, samples, cfg, *segments); err != nil {
			return err
		}
	}

	if *check {
		return checkReport(report, *accel)
	}
	return nil
}

func printReport(w io.Writer, cfg *chirp.Config, n int, r analysis.Report) {
	_, _ = fmt.Fprintln(w, "=== Chirp Purity ===")
	_, _ = fmt.Fprintf(w, "  Samples: %s\n", humanize.Comma(int64(n)))
	_, _ = fmt.Fprintf(w, "  Accel: %.17g rad/sample², OmegaZero: %.17g rad/sample, Phi: %.17g rad\n",
		cfg.Accel, cfg.OmegaZero, cfg.Phi)

	a := r.Accel
	_, _ = fmt.Fprintf(w, "\nMean Acceleration (radsPerSample^2): %.17g, Variance: %g\n", a.Mean, a.Variance)
	_, _ = fmt.Fprintf(w, "Acceleration Noise: maxNegDev: %g, maxPosDev: %g, maxAbsDev: %g\n",
		a.MaxNegDev, a.MaxPosDev, a.PeakAbsDev())

	m := r.Magnitude
	_, _ = fmt.Fprintf(w, "\nMean Magnitude: %.17g, Variance: %g, SNR: %.1f dB\n", m.Mean, m.Variance, m.SNR())
	_, _ = fmt.Fprintf(w, "Magnitude Noise: maxNegDev: %g, maxPosDev: %g, maxAbsDev: %g\n",
		m.MaxNegDev, m.MaxPosDev, m.PeakAbsDev())
}

// printVelocityTrack compares the spectral peak of each segment with the
// velocity the chirp should have at the segment midpoint.
func printVelocityTrack(w io.Writer, samples []complex128, cfg *chirp.Config, segments int) error {
	segLen := len(samples) / segments
	if segLen < minSegmentSamples {
		return fmt.Errorf("%d segments leave fewer than %d samples each", segments, minSegmentSamples)
	}

	spectrum := analysis.NewSpectrum(segLen, analysis.DefaultWindowAttenuation)
	_, _ = fmt.Fprintf(w, "\nSpectral velocity track (%d segments of %s samples):\n", segments, humanize.Comma(int64(segLen)))
	_, _ = fmt.Fprintf(w, "  %8s %14s %14s\n", "segment", "expected", "peak")
	for s := range segments {
		seg := samples[s*segLen : (s+1)*segLen]
		mid := float64(s*segLen) + float64(segLen-1)/2
		expected := cfg.OmegaZero + cfg.Accel*mid
		_, _ = fmt.Fprintf(w, "  %8d %14.6f %14.6f\n", s, expected, spectrum.Peak(seg))
	}
	return nil
}

func checkReport(r analysis.Report, accel float64) error {
	var errs []error
	if diff := r.Accel.Mean - accel; diff > maxMeanAccelError || diff < -maxMeanAccelError {
		errs = append(errs, fmt.Errorf("mean acceleration %.17g differs from %.17g", r.Accel.Mean, accel))
	}
	if r.Accel.Variance > maxAccelVariance {
		errs = append(errs, fmt.Errorf("acceleration variance %g exceeds %g", r.Accel.Variance, maxAccelVariance))
	}
	if r.Accel.PeakAbsDev() > maxAccelPeakDev {
		errs = append(errs, fmt.Errorf("acceleration peak deviation %g exceeds %g", r.Accel.PeakAbsDev(), maxAccelPeakDev))
	}
	if r.Magnitude.PeakAbsDev() > maxMagnitudePeakDev {
		errs = append(errs, fmt.Errorf("magnitude peak deviation %g exceeds %g", r.Magnitude.PeakAbsDev(), maxMagnitudePeakDev))
	}
	return errors.Join(errs...)
}
