package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor(t *testing.T) {
	assert.Same(t, Float32Ops(), For[float32]())
	assert.Same(t, Float64Ops(), For[float64]())

	ops := For[float64]()
	a := []float64{1, 2, 3, 4, 5}
	assert.InDelta(t, 15.0, ops.Sum(a), 0)

	dst := make([]float64, len(a))
	ops.Scale(dst, a, 0.5)
	assert.Equal(t, []float64{0.5, 1, 1.5, 2, 2.5}, dst)
}

func TestSplit(t *testing.T) {
	src := []complex128{1 + 2i, -0.5 - 0.25i}
	re := make([]float32, 4)
	im := make([]float32, 4)
	Split(re, im, src)
	assert.Equal(t, []float32{1, -0.5, 0, 0}, re)
	assert.Equal(t, []float32{2, -0.25, 0, 0}, im)
}

func TestInterleaver(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"Empty", 0},
		{"Single", 1},
		{"Odd", 17},
		{"Block", 4096},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := make([]complex128, tt.n)
			for i := range src {
				src[i] = complex(float64(i), -float64(i)-0.5)
			}

			v := NewInterleaver[float64]()
			got := v.Interleave(nil, src)
			require.Len(t, got, 2*tt.n)
			for i, s := range src {
				assert.InDelta(t, real(s), got[2*i], 0)
				assert.InDelta(t, imag(s), got[2*i+1], 0)
			}

			// Reuse with a larger destination keeps the prefix semantics.
			buf := make([]float64, 4*tt.n+2)
			got = v.Interleave(buf, src)
			assert.Len(t, got, 2*tt.n)
		})
	}
}
