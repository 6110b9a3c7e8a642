package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBesselI0 tests BesselI0 against known values.
func TestBesselI0(t *testing.T) {
	tests := []struct {
		name      string
		x         float64
		expected  float64
		tolerance float64
	}{
		{"Zero", 0.0, 1.0, 1e-15},
		{"Small positive", 0.5, 1.063483344, 1e-6},
		{"One", 1.0, 1.266065848, 1e-6},
		{"Three", 3.0, 4.880792565, 1e-6},
		{"Boundary 3.75", 3.75, 9.118945994, 1e-6},
		{"Five", 5.0, 27.23987183, 1e-6},
		{"Ten", 10.0, 2815.716628, 1e-6},
		{"Negative one", -1.0, 1.266065848, 1e-6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BesselI0(tt.x)
			assert.LessOrEqual(t, math.Abs(got-tt.expected)/tt.expected, tt.tolerance,
				"BesselI0(%v) = %v, want %v", tt.x, got, tt.expected)
		})
	}
}

func TestKaiserBeta(t *testing.T) {
	assert.InDelta(t, 0.0, KaiserBeta(10), 0, "weak attenuation needs no taper")
	assert.InDelta(t, 0.1102*(100-8.7), KaiserBeta(100), 1e-12)

	prev := KaiserBeta(21)
	for att := 25.0; att <= 150; att += 5 {
		beta := KaiserBeta(att)
		assert.Greater(t, beta, prev, "β should grow with attenuation (att=%v)", att)
		prev = beta
	}
}

func TestKaiserWindow(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, KaiserWindow(0, 8))
	})

	t.Run("Single", func(t *testing.T) {
		assert.Equal(t, []float64{1}, KaiserWindow(1, 8))
	})

	t.Run("Shape", func(t *testing.T) {
		w := KaiserWindow(65, KaiserBeta(120))
		require.Len(t, w, 65)
		for i := range 32 {
			assert.InDelta(t, w[i], w[64-i], 1e-12, "window not symmetric at %d", i)
		}
		assert.InDelta(t, 1.0, w[32], 1e-12, "center tap should be 1")
		for i := 1; i <= 32; i++ {
			assert.LessOrEqual(t, w[i-1], w[i], "window should rise towards center at %d", i)
		}
		assert.Less(t, w[0], 1e-3, "edges should be strongly tapered for high β")
	})

	t.Run("Rectangular", func(t *testing.T) {
		for _, v := range KaiserWindow(16, 0) {
			assert.InDelta(t, 1.0, v, 1e-15)
		}
	})
}
