package engine

// Option customizes a phasor generator at construction time.
type Option func(*options)

type options struct {
	normalizeInterval uint64
}

func newOptions(opts ...Option) options {
	o := options{normalizeInterval: DefaultNormalizeInterval}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithNormalizeInterval sets how often (in samples) the unit magnitude
// correction is applied. An interval of 1 corrects every sample.
// Panics on 0, which would never correct.
func WithNormalizeInterval(n uint64) Option {
	if n == 0 {
		panic("engine: WithNormalizeInterval(0)")
	}
	return func(o *options) {
		o.normalizeInterval = n
	}
}

// cadence decides on which sample counts the correction runs.
// Power of two intervals use a mask instead of a modulo.
type cadence struct {
	interval uint64
	offset   uint64
	mask     uint64
	pow2     bool
}

func newCadence(interval, parity uint64) cadence {
	c := cadence{
		interval: interval,
		offset:   parity % interval,
	}
	if interval&(interval-1) == 0 {
		c.pow2 = true
		c.mask = interval - 1
	}
	return c
}

func (c cadence) due(count uint64) bool {
	if c.pow2 {
		return count&c.mask == c.offset
	}
	return count%c.interval == c.offset
}

// normalize pulls z back towards the unit circle.
// A true correction divides by sqrt(re²+im²). Near magnitude 1 the first
// order Taylor approximation of 1/sqrt(x) around 1 is 1 - (x-1)/2, which is a
// real scalar, so the correction never rotates z.
func normalize(z complex128) complex128 {
	re, im := real(z), imag(z)
	d := 1.0 - (re*re+im*im-1.0)*taylorHalf
	return complex(re*d, im*d)
}
