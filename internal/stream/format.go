package stream

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFormat indicates an unrecognized stream format name.
var ErrInvalidFormat = errors.New("invalid stream format")

// Format selects the serialization of streamed samples.
type Format int

const (
	// FormatInvalid is the zero Format.
	FormatInvalid Format = iota

	// FormatText32 writes one sample per line with 9 significant decimals.
	FormatText32

	// FormatText64 writes one sample per line with 17 significant decimals.
	FormatText64

	// FormatBin32 writes little-endian float32 I/Q pairs, each optionally
	// preceded by a uint32 sample index.
	FormatBin32

	// FormatBin64 writes little-endian float64 I/Q pairs, each optionally
	// preceded by a uint64 sample index.
	FormatBin64

	// FormatWAV writes a 2-channel 32-bit PCM WAV file with I on the left
	// channel and Q on the right.
	FormatWAV
)

var formatNames = map[Format]string{
	FormatText32: "t32",
	FormatText64: "t64",
	FormatBin32:  "b32",
	FormatBin64:  "b64",
	FormatWAV:    "wav",
}

// ParseFormat maps a format name to a Format. Names are case-insensitive.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	return FormatInvalid, fmt.Errorf("%w: %q (want t32, t64, b32, b64 or wav)", ErrInvalidFormat, name)
}

// String returns the format name.
func (f Format) String() string {
	if n, ok := formatNames[f]; ok {
		return n
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// IsText reports whether the format is human readable.
func (f Format) IsText() bool {
	return f == FormatText32 || f == FormatText64
}

// RecordSize returns the bytes written per sample for binary formats, or 0
// for text formats.
func (f Format) RecordSize(includeX bool) int {
	switch f {
	case FormatBin32:
		if includeX {
			return bytesPerUint32 + 2*bytesPerFloat32
		}
		return 2 * bytesPerFloat32
	case FormatBin64:
		if includeX {
			return bytesPerUint64 + 2*bytesPerFloat64
		}
		return 2 * bytesPerFloat64
	case FormatWAV:
		return wavChannels * wavBitDepth / bitsPerByte
	default:
		return 0
	}
}
