package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/Conceptual-Machines/songbook-api/internal/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestNormalizeCommand(t *testing.T) {
	out, err := run(t, "normalize", "Cmaj7", "D-7", "Em7b5")
	require.NoError(t, err)
	assert.Equal(t, "C△7\nDm7\nEm7(b5)\n", out)
}

func TestNormalizeRequiresArgs(t *testing.T) {
	_, err := run(t, "normalize")
	assert.Error(t, err)
}

func TestTransposeCommand(t *testing.T) {
	out, err := run(t, "transpose", "--interval=-3", "C", "Am7/G", "|")
	require.NoError(t, err)
	assert.Equal(t, "A F#m7/E |\n", out)

	out, err = run(t, "transpose", "--from", "G", "--to", "A", "G", "Em", "C", "D7")
	require.NoError(t, err)
	assert.Equal(t, "A F#m D E7\n", out)
}

func TestTransposeNeedsAShift(t *testing.T) {
	_, err := run(t, "transpose", "C")
	assert.ErrorIs(t, err, errNoShift)

	_, err = run(t, "transpose", "--from", "C", "D")
	assert.ErrorIs(t, err, errNoShift)
}

func TestIntervalCommand(t *testing.T) {
	out, err := run(t, "interval", "Bb", "C")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	_, err = run(t, "interval", "C")
	assert.Error(t, err)
}

func TestSuggestText(t *testing.T) {
	out, err := run(t, "suggest", "--tonic", "A", "--mode", "minor", "--category", "twoFiveOne")
	require.NoError(t, err)
	assert.Equal(t, "Bm7(b5) E7 Am7\n", out)

	out, err = run(t, "suggest", "-t", "C")
	require.NoError(t, err)
	assert.Contains(t, out, "C major (triad)")
	assert.Contains(t, out, "diatonic:         C Dm Em F G Am Bdim")
	assert.Contains(t, out, "tritoneSub:       Db7")
}

func TestSuggestJSON(t *testing.T) {
	out, err := run(t, "suggest", "-t", "C", "-p", "seventh", "-f", "json")
	require.NoError(t, err)

	var got theory.Suggestions
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, theory.GenerateAll("C", theory.ModeMajor, theory.PresetSeventh), got)
}

func TestSuggestYAML(t *testing.T) {
	out, err := run(t, "suggest", "-t", "F", "-c", "subdominantMinor", "-f", "yaml")
	require.NoError(t, err)

	var got map[string][]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"Bbm7", "Gm7(b5)", "Db△7", "Eb7"}, got["subdominantMinor"])

	out, err = run(t, "suggest", "-t", "G", "-f", "yaml")
	require.NoError(t, err)
	var all theory.Suggestions
	require.NoError(t, yaml.Unmarshal([]byte(out), &all))
	assert.Equal(t, []string{"Gsus4", "Gsus2", "Dsus4", "Dsus2"}, all.Suspended)
}

func TestSuggestRejectsBadValues(t *testing.T) {
	for _, args := range [][]string{
		{"suggest", "--mode", "dorian"},
		{"suggest", "--preset", "ninth"},
		{"suggest", "--category", "borrowed"},
		{"suggest", "--format", "xml"},
	} {
		_, err := run(t, args...)
		assert.Error(t, err, "%v", args)
	}
}
