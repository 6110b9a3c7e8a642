package chirp

// Sweep constants
const (
	// minSweepSamples is the shortest sweep that defines an acceleration.
	minSweepSamples = 2

	halfDivisor = 2.0
)

// minParallelChirps is the bank size below which goroutines cost more than they save.
const minParallelChirps = 2
