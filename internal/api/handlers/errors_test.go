package handlers

import (
	"errors"
	"testing"

	"github.com/Conceptual-Machines/songbook-api/internal/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQueryValues(t *testing.T) {
	mode, err := parseMode("")
	require.NoError(t, err)
	assert.Equal(t, theory.ModeMajor, mode)

	mode, err = parseMode("MINOR")
	require.NoError(t, err)
	assert.Equal(t, theory.ModeMinor, mode)

	_, err = parseMode("mixolydian")
	assert.True(t, errors.Is(err, ErrInvalidMode))

	category, err := parseCategory("tritonesub")
	require.NoError(t, err)
	assert.Equal(t, theory.CategoryTritoneSub, category)

	_, err = parseCategory("")
	assert.True(t, errors.Is(err, ErrInvalidCategory))

	_, err = parsePreset("ninth")
	assert.True(t, errors.Is(err, ErrInvalidPreset))
}

func TestCheckSymbolCount(t *testing.T) {
	assert.NoError(t, checkSymbolCount(maxSymbolsPerRequest))
	assert.ErrorIs(t, checkSymbolCount(maxSymbolsPerRequest+1), ErrTooManySymbols)
}

func TestFormatUptime(t *testing.T) {
	assert.Equal(t, "1.50s", formatUptime(1500_000_000))
	assert.Equal(t, "2m3.00s", formatUptime(123_000_000_000))
	assert.Equal(t, "1h0m1.00s", formatUptime(3601_000_000_000))
}
