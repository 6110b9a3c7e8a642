package stream

// Stream defaults
const (
	// DefaultChunkSize is the number of samples generated per chunk.
	DefaultChunkSize = 4096

	// DefaultNumChunks is the number of chunks written when unspecified.
	DefaultNumChunks = 1

	// DefaultSampleRate is recorded in WAV headers. It has no effect on the
	// generated samples, which are defined in radians per sample.
	DefaultSampleRate = 48000
)

// Text precision in digits after the decimal point of %e.
const (
	text32Precision = 9
	text64Precision = 17
)

// Binary layout constants
const (
	bytesPerUint32  = 4
	bytesPerUint64  = 8
	bytesPerFloat32 = 4
	bytesPerFloat64 = 8
	bitsPerByte     = 8
)

// WAV constants
const (
	wavChannels     = 2
	wavBitDepth     = 32
	wavPCMFormat    = 1
	wavFullScale    = 2147483647.0
	wavMinSample    = -2147483648
	wavMaxSample    = 2147483647
	writeBufferSize = 64 * 1024
)
