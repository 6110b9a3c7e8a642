// Package chirp generates linear chirps as complex phasor sequences in pure Go.
//
// A linear chirp has a phase that grows quadratically with the sample index:
//
//	θ(s) = φ + ω₀·s + α·s²/2
//
// Evaluating cos(θ) + j·sin(θ) directly costs two transcendental calls per
// sample and loses precision as θ grows. This package instead keeps a unit
// magnitude phasor and rotates it once per sample with a complex multiply. The
// rotation comes from a second phasor which itself rotates by α each sample,
// so the angular velocity advances linearly. A cheap scalar correction every
// second sample holds both phasors on the unit circle.
//
// # Quick Start
//
//	g := chirp.NewChirp(math.Pi/16384, 0, 0)
//	buf := make([]complex128, 4096)
//	g.Fill(buf)
//
// For configuration with validation:
//
//	g, err := chirp.New(&chirp.Config{
//	    Accel:     math.Pi / 16384,
//	    OmegaZero: 0,
//	    Phi:       0,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// To sweep between two frequencies:
//
//	g, err := chirp.NewSweepHz(100, 20000, 48000, 2.0)
//
// # Angular Velocity
//
// [Generator.OmegaN] reports the instantaneous angular velocity of the next
// sample and [Generator.OmegaBar] the average angular velocity between the
// next two samples; they differ by half the acceleration. Above π radians per
// sample the perceived frequency folds back. [Generator.ModifyAccel] changes
// the acceleration without disturbing the sample already due out, so callers
// can watch OmegaN and cap or reverse the sweep before it folds.
//
// # Thread Safety
//
// A [Generator] is not safe for concurrent use. [GenerateBank] produces many
// chirps concurrently by giving each its own generator.
package chirp
