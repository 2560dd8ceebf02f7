package main

import (
	"bytes"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGrad_SquareSum(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runGrad(&out, []string{"-expr", "square", "-x", "3", "-sum"}))

	assert.Contains(t, out.String(), "f(x=3, y=-1.5) = 9")
	assert.Contains(t, out.String(), "df/dx = 6 (central difference")
	assert.Contains(t, out.String(), "sum accumulation: matches central difference")
}

// Overwrite keeps only one of the two x*x contributions, so the printed
// derivative is half the numeric one and the comparison must say so.
func TestRunGrad_SquareOverwriteDiffers(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runGrad(&out, []string{"-expr", "square", "-x", "3"}))

	assert.Contains(t, out.String(), "df/dx = 3 (central difference 6")
	assert.Contains(t, out.String(), "overwrite accumulation: differs from central difference")
	assert.NotContains(t, out.String(), "matches")
}

func TestRunGrad_AllExpressionsSum(t *testing.T) {
	for name := range expressions {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, runGrad(&out, []string{"-expr", name, "-sum"}))
			assert.Contains(t, out.String(), "sum accumulation: matches central difference")
		})
	}
}

func TestRunGrad_Help(t *testing.T) {
	var out bytes.Buffer
	err := runGrad(&out, []string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.Empty(t, out.String())
}

func TestRunGrad_UnknownExpression(t *testing.T) {
	var out bytes.Buffer
	err := runGrad(&out, []string{"-expr", "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown expression "nope"`)
}

func TestUsage(t *testing.T) {
	var out bytes.Buffer
	usage(&out)
	assert.Contains(t, out.String(), "version")
	assert.Contains(t, out.String(), "grad")
}
