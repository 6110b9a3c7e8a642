package main

import "math"

const (
	defaultEpochSamples = 8192
	defaultAccel        = math.Pi / defaultEpochSamples
	defaultSegments     = 8

	minEpochSamples   = 2
	minSegmentSamples = 16
)

// Purity limits applied by -check.
const (
	maxMeanAccelError   = 1e-10
	maxAccelVariance    = 2e-24
	maxAccelPeakDev     = 1e-11
	maxMagnitudePeakDev = 1e-15
)
