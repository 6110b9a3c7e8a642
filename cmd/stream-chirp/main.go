// Command stream-chirp writes the samples of a linear chirp to stdout or a
// file for plotting and analysis.
//
// Usage:
//
//	stream-chirp -numChunks 4 -includeX > chirp.txt
//	stream-chirp -accel 1e-5 -omegaZero 0.1 -streamFormat b64 -o chirp.bin
//	stream-chirp -streamFormat wav -numChunks 64 -o chirp.wav
//	stream-chirp -numChunks 0 -streamFormat b32 | consumer   # run until interrupted
//
// Exit status is 1 for command line errors, 3 for an unknown stream format
// and 4 for output errors.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mdobak/go-xerrors"
	"github.com/tphakala/simd/cpu"

	chirp "github.com/tphakala/go-chirp-phasor"
	"github.com/tphakala/go-chirp-phasor/internal/stream"
)

// exitError carries the process exit status for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func withCode(code int, err error) error {
	return &exitError{code: code, err: err}
}

// exitCode maps an error returned by run to a process exit status.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitParseError
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	if errors.Is(err, flag.ErrHelp) {
		os.Exit(exitOK)
	}
	if err != nil {
		slog.Error("stream-chirp failed", slog.Any("error", xerrors.New(err)))
	}
	os.Exit(exitCode(err))
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return withCode(exitParseError, err)
	}

	logger := newLogger(stderr, opts.verbose)
	slog.SetDefault(logger)

	format, err := stream.ParseFormat(opts.streamFormat)
	if err != nil {
		return withCode(exitInvalidFormat, err)
	}
	if format == stream.FormatWAV && opts.output == "" {
		return withCode(exitParseError, errors.New("wav output requires -o"))
	}

	gen, err := chirp.New(&chirp.Config{
		Accel:     opts.accel,
		OmegaZero: opts.omegaZero,
		Phi:       opts.phi,
	})
	if err != nil {
		return withCode(exitParseError, err)
	}

	logger.Debug("starting stream",
		slog.Float64("accel", opts.accel),
		slog.Float64("omegaZero", opts.omegaZero),
		slog.Float64("phi", opts.phi),
		slog.Int("chunkSize", opts.chunkSize),
		slog.Uint64("numChunks", opts.numChunks),
		slog.Uint64("skipChunks", opts.skipChunks),
		slog.String("format", format.String()),
		slog.String("simd", cpu.Info()))

	out := stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return withCode(exitIOError, fmt.Errorf("failed to create output file: %w", err))
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	start := time.Now()
	sum, err := stream.Stream(ctx, out, format, gen, opts.streamConfig())
	switch {
	case errors.Is(err, context.Canceled):
		logger.Debug("stream interrupted")
	case errors.Is(err, stream.ErrInvalidFormat):
		return withCode(exitInvalidFormat, err)
	case err != nil:
		return withCode(exitIOError, err)
	}

	if f, ok := out.(*os.File); ok && opts.output != "" {
		if err := f.Close(); err != nil {
			return withCode(exitIOError, fmt.Errorf("failed to close output file: %w", err))
		}
	}

	logger.Debug("stream complete",
		slog.String("chunks", humanize.Comma(int64(sum.Chunks))),
		slog.String("skipped", humanize.Comma(int64(sum.Skipped))),
		slog.String("samples", humanize.Comma(int64(sum.Samples))),
		slog.String("size", humanize.Bytes(sum.Bytes)),
		slog.Duration("elapsed", time.Since(start)))

	return nil
}
