package stream

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/tphakala/go-chirp-phasor/internal/simdops"
)

// encoder serializes consecutive chunks of samples. x is the absolute index
// of the first sample in the chunk.
type encoder interface {
	encode(x uint64, samples []complex128) error
	close() error
}

func newEncoder(w io.Writer, format Format, cfg Config) (encoder, error) {
	switch format {
	case FormatText32:
		return newTextEncoder(w, text32Precision, cfg.IncludeX), nil
	case FormatText64:
		return newTextEncoder(w, text64Precision, cfg.IncludeX), nil
	case FormatBin32:
		return newBinaryEncoder(w, cfg.IncludeX, appendFloat32, appendIndex32), nil
	case FormatBin64:
		return newBinaryEncoder(w, cfg.IncludeX, appendFloat64, appendIndex64), nil
	case FormatWAV:
		ws, ok := w.(io.WriteSeeker)
		if !ok {
			return nil, fmt.Errorf("%w: wav output must be seekable", ErrInvalidFormat)
		}
		return newWAVEncoder(ws, cfg.SampleRate), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, format)
	}
}

// textEncoder writes "[x ]re im\n" lines in %e notation.
type textEncoder struct {
	w         *bufio.Writer
	precision int
	includeX  bool
	line      []byte
}

func newTextEncoder(w io.Writer, precision int, includeX bool) *textEncoder {
	return &textEncoder{
		w:         bufio.NewWriterSize(w, writeBufferSize),
		precision: precision,
		includeX:  includeX,
	}
}

func (e *textEncoder) encode(x uint64, samples []complex128) error {
	for i, s := range samples {
		line := e.line[:0]
		if e.includeX {
			line = strconv.AppendUint(line, x+uint64(i), 10)
			line = append(line, ' ')
		}
		line = strconv.AppendFloat(line, real(s), 'e', e.precision, 64)
		line = append(line, ' ')
		line = strconv.AppendFloat(line, imag(s), 'e', e.precision, 64)
		line = append(line, '\n')
		e.line = line

		if _, err := e.w.Write(line); err != nil {
			return err
		}
	}
	return e.w.Flush()
}

func (e *textEncoder) close() error {
	return e.w.Flush()
}

// binaryEncoder writes little-endian records of an optional index followed
// by the I/Q pair at precision F.
type binaryEncoder[F simdops.Float] struct {
	w           io.Writer
	includeX    bool
	interleaver *simdops.Interleaver[F]
	iq          []F
	buf         []byte
	appendFloat func([]byte, F) []byte
	appendIndex func([]byte, uint64) []byte
}

func newBinaryEncoder[F simdops.Float](
	w io.Writer,
	includeX bool,
	appendFloat func([]byte, F) []byte,
	appendIndex func([]byte, uint64) []byte,
) *binaryEncoder[F] {
	return &binaryEncoder[F]{
		w:           w,
		includeX:    includeX,
		interleaver: simdops.NewInterleaver[F](),
		appendFloat: appendFloat,
		appendIndex: appendIndex,
	}
}

func (e *binaryEncoder[F]) encode(x uint64, samples []complex128) error {
	e.iq = e.interleaver.Interleave(e.iq, samples)

	buf := e.buf[:0]
	for i := range samples {
		if e.includeX {
			buf = e.appendIndex(buf, x+uint64(i))
		}
		buf = e.appendFloat(buf, e.iq[2*i])
		buf = e.appendFloat(buf, e.iq[2*i+1])
	}
	e.buf = buf

	_, err := e.w.Write(buf)
	return err
}

func (e *binaryEncoder[F]) close() error {
	return nil
}

func appendFloat32(b []byte, v float32) []byte {
	return binary.LittleEndian.AppendUint32(b, math.Float32bits(v))
}

func appendFloat64(b []byte, v float64) []byte {
	return binary.LittleEndian.AppendUint64(b, math.Float64bits(v))
}

// appendIndex32 truncates the index to 32 bits as the b32 layout requires.
func appendIndex32(b []byte, x uint64) []byte {
	return binary.LittleEndian.AppendUint32(b, uint32(x))
}

func appendIndex64(b []byte, x uint64) []byte {
	return binary.LittleEndian.AppendUint64(b, x)
}

// wavEncoder writes I and Q as the two channels of a 32-bit PCM WAV file.
type wavEncoder struct {
	enc         *wav.Encoder
	interleaver *simdops.Interleaver[float64]
	ops         *simdops.Ops[float64]
	iq          []float64
	intBuf      *audio.IntBuffer
}

func newWAVEncoder(ws io.WriteSeeker, sampleRate int) *wavEncoder {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	return &wavEncoder{
		enc:         wav.NewEncoder(ws, sampleRate, wavBitDepth, wavChannels, wavPCMFormat),
		interleaver: simdops.NewInterleaver[float64](),
		ops:         simdops.Float64Ops(),
		intBuf: &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: wavChannels, SampleRate: sampleRate},
			SourceBitDepth: wavBitDepth,
		},
	}
}

func (e *wavEncoder) encode(_ uint64, samples []complex128) error {
	e.iq = e.interleaver.Interleave(e.iq, samples)
	e.ops.Scale(e.iq, e.iq, wavFullScale)

	if cap(e.intBuf.Data) < len(e.iq) {
		e.intBuf.Data = make([]int, len(e.iq))
	}
	data := e.intBuf.Data[:len(e.iq)]
	for i, v := range e.iq {
		data[i] = clampPCM(math.Round(v))
	}
	e.intBuf.Data = data

	return e.enc.Write(e.intBuf)
}

func (e *wavEncoder) close() error {
	return e.enc.Close()
}

func clampPCM(v float64) int {
	switch {
	case v > wavMaxSample:
		return wavMaxSample
	case v < wavMinSample:
		return wavMinSample
	default:
		return int(v)
	}
}
