package engine

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-chirp-phasor/internal/mathutil"
	"github.com/tphakala/go-chirp-phasor/internal/testutil"
)

// =============================================================================
// Construction Tests
// =============================================================================

// TestChirpingPhasor_Default verifies the zero-parameter generator is pure DC.
func TestChirpingPhasor_Default(t *testing.T) {
	c := NewChirpingPhasor(0, 0, 0)
	assert.Equal(t, uint64(0), c.SampleCount())

	buf := make([]complex128, 2)
	c.Samples(buf, 2)
	assert.Equal(t, uint64(2), c.SampleCount())

	for i, s := range buf {
		assert.InDelta(t, 0.0, cmplx.Phase(s), 1e-12, "sample %d phase", i)
		assert.InDelta(t, 1.0, cmplx.Abs(s), 1e-12, "sample %d magnitude", i)
	}
	assert.InDelta(t, 0.0, c.OmegaBar(), 0)
	assert.InDelta(t, 0.0, c.OmegaN(), 0)
	assert.InDelta(t, 0.0, c.Accel(), 0)
}

// TestChirpingPhasor_InitialPhase verifies sample 0 carries exactly the
// configured phase regardless of acceleration and starting velocity.
func TestChirpingPhasor_InitialPhase(t *testing.T) {
	tests := []struct {
		name      string
		accel     float64
		omegaZero float64
		phi       float64
	}{
		{"Phase only", 0, 0, 1.0},
		{"Negative phase", 0, 0, -2.5},
		{"With acceleration", math.Pi / 1024, 0, math.Pi / 256},
		{"With velocity", 0, math.Pi / 3, 0.75},
		{"Everything", -math.Pi / 64, math.Pi / 2, -math.Pi / 7},
		{"Phase at pi", math.Pi / 4096, 0.1, math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChirpingPhasor(tt.accel, tt.omegaZero, tt.phi)
			s := c.Sample()
			testutil.AssertPhaseNear(t, tt.phi, cmplx.Phase(s), 1e-15)
			assert.InDelta(t, 1.0, cmplx.Abs(s), 1e-15)
		})
	}
}

// =============================================================================
// Phase Law Tests
// =============================================================================

// TestChirpingPhasor_QuadraticPhaseLaw verifies the angular displacement from
// sample 0 to sample k is omegaZero·k + accel·k²/2 for the first few samples.
func TestChirpingPhasor_QuadraticPhaseLaw(t *testing.T) {
	tests := []struct {
		name      string
		accel     float64
		omegaZero float64
		phi       float64
	}{
		{"Accel only", math.Pi / 4096, 0, 0},
		{"Large accel", math.Pi / 4, 0, 0},
		{"Velocity only", 0, math.Pi / 512, 0},
		{"Accel and velocity", math.Pi / 1024, math.Pi / 512, math.Pi / 256},
		{"Negative accel", -math.Pi / 128, math.Pi / 8, 1.0},
		{"Negative velocity", math.Pi / 64, -math.Pi / 16, -0.5},
	}

	const numSamples = 5

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChirpingPhasor(tt.accel, tt.omegaZero, tt.phi)
			buf := make([]complex128, numSamples)
			c.Samples(buf, numSamples)

			theta0 := cmplx.Phase(buf[0])
			for k := 1; k < numSamples; k++ {
				fk := float64(k)
				expected := tt.omegaZero*fk + 0.5*tt.accel*fk*fk
				got := mathutil.DeltaAngle(theta0, cmplx.Phase(buf[k]))
				testutil.AssertPhaseNear(t, expected, got, 1e-12, "sample %d", k)
			}
		})
	}
}

// TestChirpingPhasor_Scenario checks the documented π/4096 walkthrough.
func TestChirpingPhasor_Scenario(t *testing.T) {
	const accel = math.Pi / 4096

	t.Run("Starting at rest", func(t *testing.T) {
		c := NewChirpingPhasor(accel, 0, 0)

		s0 := c.Sample()
		assert.InDelta(t, 0.0, cmplx.Phase(s0), 1e-15)
		assert.InDelta(t, 1.0, cmplx.Abs(s0), 1e-15)

		s1 := c.Sample()
		assert.InDelta(t, accel/2, cmplx.Phase(s1), 1e-12)

		s2 := c.Sample()
		assert.InDelta(t, 0.5*accel*4, cmplx.Phase(s2), 1e-10)
	})

	t.Run("Starting at omegaZero equal to accel", func(t *testing.T) {
		c := NewChirpingPhasor(accel, accel, 0)
		c.Sample()
		c.Sample()
		s2 := c.Sample()
		assert.InDelta(t, 2*accel+0.5*accel*4, cmplx.Phase(s2), 1e-10)
	})
}

// TestChirpingPhasor_MatchesClosedForm compares a full epoch against direct
// cos/sin evaluation of the quadratic phase.
func TestChirpingPhasor_MatchesClosedForm(t *testing.T) {
	const (
		numSamples = 8192
		accel      = math.Pi / numSamples
		omegaZero  = 0.01
		phi        = 0.25
	)

	c := NewChirpingPhasor(accel, omegaZero, phi)
	got := make([]complex128, numSamples)
	c.Fill(got)
	want := testutil.ClosedFormChirp(accel, omegaZero, phi, numSamples)

	var maxErr float64
	for i := range got {
		maxErr = math.Max(maxErr, cmplx.Abs(got[i]-want[i]))
	}
	assert.Less(t, maxErr, 1e-8, "recurrence drifted from closed form")
	t.Logf("max |recurrence - closed form| over %d samples: %e", numSamples, maxErr)
}

// TestChirpingPhasor_OmegaProgression verifies OmegaN advances by accel per
// sample and OmegaBar sits half a step ahead of it.
func TestChirpingPhasor_OmegaProgression(t *testing.T) {
	const (
		accel     = math.Pi / 2048
		omegaZero = -math.Pi / 8
	)

	c := NewChirpingPhasor(accel, omegaZero, 0)
	for n := range 512 {
		expectedOmegaN := omegaZero + float64(n)*accel
		require.InDelta(t, expectedOmegaN, c.OmegaN(), 1e-12, "omegaN at sample %d", n)
		require.InDelta(t, c.OmegaBar()-accel/2, c.OmegaN(), 0, "omegaN/omegaBar relation at %d", n)
		c.Sample()
	}
}

// =============================================================================
// Magnitude Tests
// =============================================================================

// TestChirpingPhasor_MagnitudeInvariant verifies the periodic correction keeps
// every sample on the unit circle over long runs.
func TestChirpingPhasor_MagnitudeInvariant(t *testing.T) {
	tests := []struct {
		name      string
		accel     float64
		omegaZero float64
		phi       float64
		opts      []Option
	}{
		{"Slow chirp", math.Pi / 65536, 0, 0, nil},
		{"Fast chirp", math.Pi / 1024, 0.3, 1.1, nil},
		{"Down chirp", -math.Pi / 8192, math.Pi / 2, -0.4, nil},
		{"Pure tone", 0, math.Pi / 3, 0, nil},
		{"Every sample", math.Pi / 4096, 0, 0, []Option{WithNormalizeInterval(1)}},
		{"Every eighth sample", math.Pi / 4096, 0, 0, []Option{WithNormalizeInterval(8)}},
		{"Every third sample", math.Pi / 4096, 0.2, 0, []Option{WithNormalizeInterval(3)}},
	}

	const numSamples = 100_000

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChirpingPhasor(tt.accel, tt.omegaZero, tt.phi, tt.opts...)
			buf := make([]complex128, numSamples)
			c.Fill(buf)
			testutil.AssertNoNaNOrInf(t, buf)
			testutil.AssertUnitMagnitude(t, buf, testutil.MagnitudeTolerance)
		})
	}
}

// =============================================================================
// Acceleration Change Tests
// =============================================================================

// TestChirpingPhasor_ModifyAccel verifies that changing acceleration leaves
// the latched sample untouched and bends the trajectory from there on.
func TestChirpingPhasor_ModifyAccel(t *testing.T) {
	const (
		accel    = math.Pi / 4096
		newAccel = -math.Pi / 2048
		warmup   = 100
	)

	reference := NewChirpingPhasor(accel, 0, 0)
	modified := NewChirpingPhasor(accel, 0, 0)
	scratch := make([]complex128, warmup)
	reference.Samples(scratch, warmup)
	modified.Samples(scratch, warmup)

	omegaN := modified.OmegaN()
	modified.ModifyAccel(newAccel)

	// Velocity of the latched sample is continuous across the change.
	assert.InDelta(t, omegaN, modified.OmegaN(), 1e-15)
	assert.InDelta(t, newAccel, modified.Accel(), 0)
	assert.InDelta(t, modified.OmegaBar()-newAccel/2, modified.OmegaN(), 0)

	// The very next sample is identical to the unmodified trajectory.
	assert.Equal(t, reference.Peek(), modified.Peek())
	latched := modified.Sample()
	assert.Equal(t, reference.Sample(), latched)
	assert.Equal(t, reference.SampleCount(), modified.SampleCount())

	// The following step uses the average velocity under the new acceleration.
	next := modified.Sample()
	step := mathutil.DeltaAngle(cmplx.Phase(latched), cmplx.Phase(next))
	assert.InDelta(t, omegaN+newAccel/2, step, 1e-12)

	// And the unmodified one kept the old acceleration.
	refNext := reference.Sample()
	refStep := mathutil.DeltaAngle(cmplx.Phase(latched), cmplx.Phase(refNext))
	assert.InDelta(t, omegaN+accel/2, refStep, 1e-12)

	// From here on the phase follows the new quadratic law.
	base := cmplx.Phase(latched)
	for k := 2; k <= 4; k++ {
		fk := float64(k)
		expected := omegaN*fk + newAccel*fk*fk/2
		got := mathutil.DeltaAngle(base, cmplx.Phase(modified.Sample()))
		testutil.AssertPhaseNear(t, expected, got, 1e-12, "k=%d after ModifyAccel", k)
	}
}

// TestChirpingPhasor_ModifyAccelToZero verifies a chirp can be frozen into a
// steady tone at its current instantaneous velocity.
func TestChirpingPhasor_ModifyAccelToZero(t *testing.T) {
	c := NewChirpingPhasor(math.Pi/1024, 0, 0)
	scratch := make([]complex128, 200)
	c.Fill(scratch)

	omegaN := c.OmegaN()
	c.ModifyAccel(0)
	assert.InDelta(t, omegaN, c.OmegaBar(), 1e-15, "with no acceleration average and instantaneous velocity coincide")

	prev := cmplx.Phase(c.Sample())
	for i := range 1000 {
		cur := cmplx.Phase(c.Sample())
		require.InDelta(t, omegaN, mathutil.DeltaAngle(prev, cur), 1e-11, "step %d", i)
		prev = cur
	}
}

// TestChirpingPhasor_RolloverGuard drives a chirp back and forth between
// ±0.9π by reversing acceleration, the monitoring pattern ModifyAccel exists for.
func TestChirpingPhasor_RolloverGuard(t *testing.T) {
	const (
		accel = math.Pi / 256
		limit = 0.9 * math.Pi
	)

	c := NewChirpingPhasor(accel, 0, 0)
	prev := c.Sample()
	reversals := 0

	for i := range 5000 {
		omegaN := c.OmegaN()
		if (omegaN >= limit && c.Accel() > 0) || (omegaN <= -limit && c.Accel() < 0) {
			c.ModifyAccel(-c.Accel())
			reversals++
		}
		require.Less(t, math.Abs(c.OmegaN()), math.Pi, "omegaN rolled over at %d", i)

		cur := c.Sample()
		step := mathutil.DeltaAngle(cmplx.Phase(prev), cmplx.Phase(cur))
		require.Less(t, math.Abs(step), limit+2*accel, "step %d too large", i)
		require.InDelta(t, 1.0, cmplx.Abs(cur), testutil.MagnitudeTolerance)
		prev = cur
	}

	assert.GreaterOrEqual(t, reversals, 2, "guard should have reversed the sweep")
}

// =============================================================================
// Reset / Peek / Bulk Tests
// =============================================================================

// TestChirpingPhasor_Reset verifies Reset reproduces a freshly constructed generator.
func TestChirpingPhasor_Reset(t *testing.T) {
	const (
		accel     = math.Pi / 1024
		omegaZero = math.Pi / 512
		phi       = math.Pi / 256
		n         = 1000
	)

	c := NewChirpingPhasor(math.Pi/100, 0.3, -1)
	scratch := make([]complex128, 777)
	c.Fill(scratch)
	c.ModifyAccel(-math.Pi / 50)
	c.Fill(scratch[:13])

	c.Reset(accel, omegaZero, phi)
	assert.Equal(t, uint64(0), c.SampleCount())
	assert.InDelta(t, accel, c.Accel(), 0)

	fresh := NewChirpingPhasor(accel, omegaZero, phi)
	got := make([]complex128, n)
	want := make([]complex128, n)
	c.Fill(got)
	fresh.Fill(want)
	assert.Equal(t, want, got, "reset generator should match a fresh one exactly")

	// Second sample advanced by omegaZero plus half the acceleration.
	testutil.AssertPhaseNear(t, phi+omegaZero+accel/2, cmplx.Phase(got[1]), 1e-12)
}

// TestChirpingPhasor_Peek verifies Peek is idempotent and predicts the next sample.
func TestChirpingPhasor_Peek(t *testing.T) {
	c := NewChirpingPhasor(math.Pi/1024, math.Pi/512, math.Pi/256)
	scratch := make([]complex128, 37)
	c.Fill(scratch)

	count := c.SampleCount()
	omegaBar := c.OmegaBar()
	p1 := c.Peek()
	p2 := c.Peek()
	assert.Equal(t, p1, p2)
	assert.Equal(t, count, c.SampleCount(), "Peek must not consume")
	assert.InDelta(t, omegaBar, c.OmegaBar(), 0, "Peek must not advance the rate generator")

	assert.Equal(t, p1, c.Sample())

	// Peek also predicts the first element of a bulk fill.
	p3 := c.Peek()
	c.Fill(scratch[:1])
	assert.Equal(t, p3, scratch[0])
}

// TestChirpingPhasor_SingleMatchesBulk verifies Samples equals repeated Sample calls.
func TestChirpingPhasor_SingleMatchesBulk(t *testing.T) {
	const n = 4099

	single := NewChirpingPhasor(math.Pi/8192, 0.1, 0.2)
	bulk := NewChirpingPhasor(math.Pi/8192, 0.1, 0.2)

	want := make([]complex128, n)
	for i := range want {
		want[i] = single.Sample()
	}

	got := make([]complex128, n+10)
	bulk.Samples(got[:500], 500)
	bulk.Samples(got[500:], n-500)

	assert.Equal(t, want, got[:n])
	assert.Equal(t, single.SampleCount(), bulk.SampleCount())
	for _, v := range got[n:] {
		assert.Equal(t, complex128(0), v, "Samples wrote past the requested count")
	}
}

// TestChirpingPhasor_ZeroCount verifies a zero-length request is a no-op.
func TestChirpingPhasor_ZeroCount(t *testing.T) {
	c := NewChirpingPhasor(math.Pi/8192, 0, 0)
	peek := c.Peek()
	c.Samples(nil, 0)
	c.Fill(nil)
	assert.Equal(t, uint64(0), c.SampleCount())
	assert.Equal(t, peek, c.Peek())
}

// TestChirpingPhasor_ShortBuffer documents that an undersized buffer is a
// caller error that surfaces as a bounds panic before any state changes.
func TestChirpingPhasor_ShortBuffer(t *testing.T) {
	c := NewChirpingPhasor(math.Pi/8192, 0, 0)
	assert.Panics(t, func() {
		c.Samples(make([]complex128, 2), 3)
	})
	assert.Equal(t, uint64(0), c.SampleCount())
}
