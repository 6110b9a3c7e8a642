// Package simdops provides generic SIMD operations for float32 and float64 types.
// The stream writers use it to serialize complex samples at either precision
// from one code path.
package simdops

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops provides SIMD-accelerated operations for type F.
type Ops[F Float] struct {
	// Interleave2 interleaves two slices: dst[0]=a[0], dst[1]=b[0], dst[2]=a[1], ...
	Interleave2 func(dst, a, b []F)

	// Sum returns the sum of all elements.
	Sum func(a []F) F

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []F, s F)
}

var (
	ops32 = Ops[float32]{
		Interleave2: f32.Interleave2,
		Sum:         f32.Sum,
		Scale:       f32.Scale,
	}
	ops64 = Ops[float64]{
		Interleave2: f64.Interleave2,
		Sum:         f64.Sum,
		Scale:       f64.Scale,
	}
)

// For returns the Ops instance for type F.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}

// Float32Ops returns the float32 SIMD operations.
func Float32Ops() *Ops[float32] {
	return &ops32
}

// Float64Ops returns the float64 SIMD operations.
func Float64Ops() *Ops[float64] {
	return &ops64
}

// Split copies the real and imaginary parts of src into re and im,
// converting to F. re and im must hold at least len(src) elements.
func Split[F Float](re, im []F, src []complex128) {
	re = re[:len(src)]
	im = im[:len(src)]
	for i, s := range src {
		re[i] = F(real(s))
		im[i] = F(imag(s))
	}
}

// Interleaver converts complex samples to interleaved I/Q pairs of type F.
// Its scratch buffers grow on demand and are reused between calls.
type Interleaver[F Float] struct {
	ops *Ops[F]
	re  []F
	im  []F
}

// NewInterleaver creates an interleaver for type F.
func NewInterleaver[F Float]() *Interleaver[F] {
	return &Interleaver[F]{ops: For[F]()}
}

// Interleave writes re0, im0, re1, im1, ... for src into dst and returns the
// filled prefix. dst is grown if it holds fewer than 2*len(src) elements.
func (v *Interleaver[F]) Interleave(dst []F, src []complex128) []F {
	n := len(src)
	if cap(v.re) < n {
		v.re = make([]F, n)
		v.im = make([]F, n)
	}
	re, im := v.re[:n], v.im[:n]
	Split(re, im, src)

	if cap(dst) < 2*n {
		dst = make([]F, 2*n)
	}
	dst = dst[:2*n]
	v.ops.Interleave2(dst, re, im)
	return dst
}
