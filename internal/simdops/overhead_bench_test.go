package simdops

import (
	"testing"

	"github.com/tphakala/simd/f64"
)

// BenchmarkDirectInterleave measures direct SIMD call overhead.
func BenchmarkDirectInterleave(b *testing.B) {
	re := make([]float64, 4096)
	im := make([]float64, 4096)
	dst := make([]float64, 8192)

	b.ReportAllocs()
	for b.Loop() {
		f64.Interleave2(dst, re, im)
	}
}

// BenchmarkIndirectInterleave measures the indirect call through Ops.
func BenchmarkIndirectInterleave(b *testing.B) {
	ops := For[float64]()
	re := make([]float64, 4096)
	im := make([]float64, 4096)
	dst := make([]float64, 8192)

	b.ReportAllocs()
	for b.Loop() {
		ops.Interleave2(dst, re, im)
	}
}

func BenchmarkInterleaver(b *testing.B) {
	src := make([]complex128, 4096)
	for i := range src {
		src[i] = complex(float64(i), -float64(i))
	}
	v := NewInterleaver[float32]()
	dst := make([]float32, 2*len(src))

	b.ReportAllocs()
	for b.Loop() {
		dst = v.Interleave(dst, src)
	}
}
