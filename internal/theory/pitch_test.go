package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRoot(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"C", "C"},
		{"c", "C"},
		{"C#", "C#"},
		{"f#", "F#"},
		{"Db", "C#"},
		{"db", "C#"},
		{"Eb", "D#"},
		{"Gb", "F#"},
		{"Ab", "G#"},
		{"Bb", "A#"},
		{"Cb", "B"},
		{"Fb", "E"},
		{"E#", "F"},
		{"B#", "C"},
		{"x", "X"},
		{"DB", "DB"},
		{"F##", "F##"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeRoot(tt.input))
		})
	}
}

func TestPitchClassOf(t *testing.T) {
	for i, name := range Semitones {
		assert.Equal(t, PitchClass(i), PitchClassOf(name), name)
	}

	assert.Equal(t, PitchClass(1), PitchClassOf("Db"))
	assert.Equal(t, PitchClass(10), PitchClassOf("bb"))
	assert.Equal(t, PitchClass(5), PitchClassOf("E#"))
	assert.Equal(t, PitchClass(11), PitchClassOf("Cb"))

	for _, junk := range []string{"X", "H", "", "C##", "F##", "N.C.", "\xff"} {
		assert.Equal(t, NoPitch, PitchClassOf(junk), "input %q", junk)
	}
}

func TestPitchClassArithmetic(t *testing.T) {
	assert.Equal(t, "D", PitchClass(0).Add(2).Name())
	assert.Equal(t, "B", PitchClass(0).Add(-1).Name())
	assert.Equal(t, "C", PitchClass(11).Add(1).Name())
	assert.Equal(t, "G", PitchClass(7).Add(120).Name())
	assert.True(t, PitchClass(11).Valid())
	assert.False(t, NoPitch.Valid())
}

func TestKeySpelling(t *testing.T) {
	scale, ok := KeySpelling("C#")
	require.True(t, ok)
	assert.Equal(t, []string{"C#", "D#", "E#", "F#", "G#", "A#", "B#"}, scale)

	scale, ok = KeySpelling("gb")
	require.True(t, ok)
	assert.Equal(t, []string{"Gb", "Ab", "Bb", "Cb", "Db", "Eb", "F"}, scale)

	_, ok = KeySpelling("Cb")
	assert.False(t, ok, "Cb major has no table")

	_, ok = KeySpelling("X")
	assert.False(t, ok)
}

func TestKeySpellingTablesUseEveryLetterOnce(t *testing.T) {
	for tonic := range majorScales {
		scale, ok := KeySpelling(tonic)
		require.True(t, ok)
		require.Len(t, scale, 7)
		assert.Equal(t, tonic, scale[0])

		letters := map[byte]bool{}
		for _, note := range scale {
			letters[note[0]] = true
		}
		assert.Len(t, letters, 7, "scale %s repeats a letter: %v", tonic, scale)
	}
}

func TestSpellingTablesMatchScaleSteps(t *testing.T) {
	// Double sharps have no pitch class and are skipped.
	check := func(t *testing.T, tonic string, scale []string, steps [7]int) {
		t.Helper()
		root := PitchClassOf(tonic)
		for i, note := range scale {
			pc := PitchClassOf(note)
			if pc == NoPitch {
				continue
			}
			assert.Equal(t, root.Add(steps[i]), pc, "%s degree %d (%s)", tonic, i+1, note)
		}
	}

	for tonic := range majorScales {
		major, _ := KeySpelling(tonic)
		check(t, tonic, major, majorSteps)

		minor, ok := ParallelMinorSpelling(tonic)
		require.True(t, ok, tonic)
		assert.Equal(t, tonic, minor[0])
		check(t, tonic, minor, minorSteps)

		natural, ok := NaturalMinorSpelling(tonic)
		require.True(t, ok, tonic)
		check(t, tonic, natural, minorSteps)
	}
}

func TestKeySpellingReturnsCopy(t *testing.T) {
	scale, ok := KeySpelling("C")
	require.True(t, ok)
	scale[0] = "Z"

	again, _ := KeySpelling("C")
	assert.Equal(t, "C", again[0])
}

func TestNaturalMinorSpelling(t *testing.T) {
	tests := []struct {
		tonic    string
		expected []string
	}{
		{"A", []string{"A", "B", "C", "D", "E", "F", "G"}},
		{"C#", []string{"C#", "D#", "E", "F#", "G#", "A", "B"}},
		{"D#", []string{"D#", "E#", "F#", "G#", "A#", "B", "C#"}},
		{"A#", []string{"A#", "B#", "C#", "D#", "E#", "F#", "G#"}},
		{"Eb", []string{"Eb", "F", "Gb", "Ab", "Bb", "Cb", "Db"}},
		{"G", []string{"G", "A", "Bb", "C", "D", "Eb", "F"}},
	}

	for _, tt := range tests {
		t.Run(tt.tonic, func(t *testing.T) {
			scale, ok := NaturalMinorSpelling(tt.tonic)
			require.True(t, ok)
			assert.Equal(t, tt.expected, scale)
		})
	}

	_, ok := NaturalMinorSpelling("Cb")
	assert.False(t, ok)
}

func TestRelativeMajorCoversEveryTonic(t *testing.T) {
	for tonic := range majorScales {
		major, ok := RelativeMajor(tonic)
		require.True(t, ok, tonic)
		_, ok = KeySpelling(major)
		assert.True(t, ok, "relative major %s of %s has no table", major, tonic)
		assert.Equal(t, ReduceInterval(3), ComputeInterval(tonic, major), tonic)
	}
}

func TestFlatSpelling(t *testing.T) {
	assert.Equal(t, "Db", FlatSpelling("C#"))
	assert.Equal(t, "Bb", FlatSpelling("A#"))
	assert.Equal(t, "E", FlatSpelling("E"))
	assert.Equal(t, "Cb", FlatSpelling("Cb"))
}
