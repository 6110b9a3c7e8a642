package main

import (
	"bytes"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chirp "github.com/tphakala/go-chirp-phasor"
	"github.com/tphakala/go-chirp-phasor/internal/analysis"
)

func analysisOf(t *testing.T, accel float64, n int) analysis.Report {
	t.Helper()
	samples, err := chirp.Generate(&chirp.Config{Accel: accel}, n)
	require.NoError(t, err)
	return analysis.Analyze(samples, accel, 0)
}

func TestRun_Default(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-check"}, &stdout, &stderr))

	out := stdout.String()
	assert.Contains(t, out, "Samples: 8,192")
	assert.Contains(t, out, "Mean Acceleration")
	assert.Contains(t, out, "Mean Magnitude")
	assert.Contains(t, out, "Spectral velocity track (8 segments of 1,024 samples)")
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"Short epoch", []string{"-n", "1"}},
		{"Too many segments", []string{"-n", "64", "-segments", "16"}},
		{"Non-finite", []string{"-phi", "Inf"}},
		{"Unknown flag", []string{"-bogus"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args, &bytes.Buffer{}, &bytes.Buffer{})
			require.Error(t, err)
		})
	}

	require.ErrorIs(t, run([]string{"-h"}, &bytes.Buffer{}, &bytes.Buffer{}), flag.ErrHelp)
}

func TestCheckReport_Fails(t *testing.T) {
	require.NoError(t, checkReport(analysisOf(t, 1e-3, 1024), 1e-3))

	// Checking against the wrong acceleration must trip the mean limit.
	err := checkReport(analysisOf(t, 1e-3, 1024), 2e-3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mean acceleration")
}
