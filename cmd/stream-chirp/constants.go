package main

import "math"

// Default command-line flag values
const (
	defaultAccel        = math.Pi / 16384 // radians per sample²
	defaultStreamFormat = "t64"
)

// Environment variables consulted for flags not given on the command line.
const (
	envAccel        = "CHIRP_ACCEL"
	envOmegaZero    = "CHIRP_OMEGA_ZERO"
	envPhi          = "CHIRP_PHI"
	envChunkSize    = "CHIRP_CHUNK_SIZE"
	envStreamFormat = "CHIRP_STREAM_FORMAT"
)

// Exit codes
const (
	exitOK            = 0
	exitParseError    = 1
	exitInvalidFormat = 3
	exitIOError       = 4
)
