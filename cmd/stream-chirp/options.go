package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/tphakala/go-chirp-phasor/internal/stream"
)

// options holds the parsed command line.
type options struct {
	accel        float64
	omegaZero    float64
	phi          float64
	chunkSize    int
	numChunks    uint64
	skipChunks   uint64
	streamFormat string
	includeX     bool
	output       string
	sampleRate   int
	envFile      string
	verbose      bool
}

// envBinding ties an environment variable to the flag it defaults.
type envBinding struct {
	env  string
	flag string
}

var envBindings = []envBinding{
	{envAccel, "accel"},
	{envOmegaZero, "omegaZero"},
	{envPhi, "phi"},
	{envChunkSize, "chunkSize"},
	{envStreamFormat, "streamFormat"},
}

func newFlagSet(opts *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("stream-chirp", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.Float64Var(&opts.accel, "accel", defaultAccel, "Acceleration in radians per sample²")
	fs.Float64Var(&opts.omegaZero, "omegaZero", 0, "Initial angular velocity in radians per sample (2π·f/fs)")
	fs.Float64Var(&opts.phi, "phi", 0, "Phase of the first sample in radians")
	fs.IntVar(&opts.chunkSize, "chunkSize", stream.DefaultChunkSize, "Samples per chunk; 0 produces nothing")
	fs.Uint64Var(&opts.numChunks, "numChunks", stream.DefaultNumChunks, "Chunks to output; 0 runs until interrupted")
	fs.Uint64Var(&opts.skipChunks, "skipChunks", 0, "Chunks to generate but not output first")
	fs.StringVar(&opts.streamFormat, "streamFormat", defaultStreamFormat, "Output format: t32, t64, b32, b64, wav")
	fs.BoolVar(&opts.includeX, "includeX", false, "Prefix every sample with its index")
	fs.StringVar(&opts.output, "o", "", "Output file (default stdout; required for wav)")
	fs.IntVar(&opts.sampleRate, "sampleRate", stream.DefaultSampleRate, "Sample rate recorded in WAV headers")
	fs.StringVar(&opts.envFile, "env", "", "Dotenv file supplying CHIRP_* defaults")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose output")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: stream-chirp [options]\n\nOptions:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(stderr, "\nEnvironment:\n  %s, %s, %s, %s, %s\n",
			envAccel, envOmegaZero, envPhi, envChunkSize, envStreamFormat)
		_, _ = fmt.Fprintf(stderr, "\nExamples:\n")
		_, _ = fmt.Fprintf(stderr, "  stream-chirp -numChunks 4 -includeX > chirp.txt\n")
		_, _ = fmt.Fprintf(stderr, "  stream-chirp -streamFormat wav -numChunks 64 -o chirp.wav\n")
	}
	return fs
}

// parseOptions parses args. Flags not given explicitly take their value from
// the environment, after loading the optional dotenv file. Variables already
// present in the process environment win over the file.
func parseOptions(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := newFlagSet(opts, stderr)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if opts.envFile != "" {
		if err := godotenv.Load(opts.envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", opts.envFile, err)
		}
	}

	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	for _, b := range envBindings {
		if explicit[b.flag] {
			continue
		}
		value, ok := os.LookupEnv(b.env)
		if !ok || value == "" {
			continue
		}
		if err := fs.Set(b.flag, value); err != nil {
			return nil, fmt.Errorf("invalid %s=%q: %w", b.env, value, err)
		}
	}

	return opts, nil
}

// streamConfig converts the options to a stream configuration.
func (o *options) streamConfig() stream.Config {
	return stream.Config{
		ChunkSize:  o.chunkSize,
		NumChunks:  o.numChunks,
		SkipChunks: o.skipChunks,
		IncludeX:   o.includeX,
		SampleRate: o.sampleRate,
	}
}
