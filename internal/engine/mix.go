package engine

import (
	"github.com/tphakala/simd/c128"
)

// Mix multiplies src element-wise by the next len(src) chirp samples and
// stores the products in dst. Mixing with a negative acceleration chirp
// removes a positive one (dechirp). dst must hold at least len(src) elements
// and may alias src.
func (c *ChirpingPhasor) Mix(dst, src []complex128) {
	if len(src) == 0 {
		return
	}
	if c.scratch == nil {
		c.scratch = make([]complex128, min(len(src), mixBlockSize))
	}

	for off := 0; off < len(src); {
		n := min(len(src)-off, len(c.scratch))
		buf := c.scratch[:n]
		c.Samples(buf, n)
		c128.Mul(dst[off:off+n], src[off:off+n], buf)
		off += n
	}
}
