// Package stream writes chirp samples to an output in fixed-size chunks.
//
// Generation and output are separated by chunk: every chunk is generated, so
// skipped chunks keep the generator and the sample index in step, but only
// chunks after the skipped ones are written.
package stream

import (
	"context"
	"fmt"
	"io"
	"math"
)

// Source produces consecutive samples. *chirp.Generator satisfies it.
type Source interface {
	Fill(dst []complex128)
}

// Config controls chunking and record layout.
type Config struct {
	// ChunkSize is the number of samples per chunk. Zero produces nothing.
	ChunkSize int

	// NumChunks is the number of chunks to write after skipping. Zero runs
	// until the context is cancelled or the chunk counter saturates.
	NumChunks uint64

	// SkipChunks is the number of chunks generated but not written first.
	SkipChunks uint64

	// IncludeX prefixes every record with its sample index. Ignored by WAV.
	IncludeX bool

	// SampleRate is recorded in WAV headers.
	SampleRate int
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		ChunkSize:  DefaultChunkSize,
		NumChunks:  DefaultNumChunks,
		SampleRate: DefaultSampleRate,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.ChunkSize < 0 {
		return fmt.Errorf("chunk size must not be negative, got %d", c.ChunkSize)
	}
	if c.SampleRate < 0 {
		return fmt.Errorf("sample rate must not be negative, got %d", c.SampleRate)
	}
	return nil
}

// Summary reports what a Stream call did.
type Summary struct {
	// Chunks is the number of chunks written.
	Chunks uint64

	// Skipped is the number of chunks generated but not written.
	Skipped uint64

	// Samples is the number of samples written.
	Samples uint64

	// Bytes is the number of sample bytes written for binary and WAV formats,
	// excluding any header. It is 0 for text formats.
	Bytes uint64
}

// Stream generates chunks from src and writes them to w in the given format.
// FormatWAV requires w to implement io.Seeker so the header can be finalized.
// Cancelling ctx stops the stream between chunks; the output written so far
// is closed properly and ctx.Err() is returned.
func Stream(ctx context.Context, w io.Writer, format Format, src Source, cfg Config) (Summary, error) {
	var sum Summary
	if err := cfg.Validate(); err != nil {
		return sum, err
	}

	enc, err := newEncoder(w, format, cfg)
	if err != nil {
		return sum, err
	}

	runErr := run(ctx, enc, src, cfg, &sum)
	if err := enc.close(); err != nil && runErr == nil {
		runErr = fmt.Errorf("failed to finalize %v output: %w", format, err)
	}
	sum.Bytes = sum.Samples * uint64(format.RecordSize(cfg.IncludeX))
	return sum, runErr
}

func run(ctx context.Context, enc encoder, src Source, cfg Config, sum *Summary) error {
	if cfg.ChunkSize == 0 {
		return nil
	}

	total := cfg.NumChunks
	if total == 0 || total > math.MaxUint64-cfg.SkipChunks {
		total = math.MaxUint64 - cfg.SkipChunks
	}
	total += cfg.SkipChunks

	chunkSize := uint64(cfg.ChunkSize)
	buf := make([]complex128, cfg.ChunkSize)
	var x uint64

	for chunk := uint64(0); chunk != total; chunk++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		src.Fill(buf)

		if sum.Skipped != cfg.SkipChunks {
			sum.Skipped++
			x += chunkSize
			continue
		}

		if err := enc.encode(x, buf); err != nil {
			return fmt.Errorf("failed to write chunk %d: %w", chunk, err)
		}
		x += chunkSize
		sum.Chunks++
		sum.Samples += chunkSize
	}
	return nil
}
