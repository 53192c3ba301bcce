package theory

import (
	"unicode"
	"unicode/utf8"
)

// PitchClass is the canonical sharp-spelled semitone index (C=0 ... B=11)
type PitchClass int

// NoPitch is returned by PitchClassOf for names it does not recognize
const NoPitch PitchClass = -1

const semitonesPerOctave = 12

// Semitones is the canonical 12-tone table, always sharp-spelled
var Semitones = [semitonesPerOctave]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// flatToSharp maps the enharmonic spellings NormalizeRoot folds onto the sharp table
var flatToSharp = map[string]string{
	"Db": "C#",
	"Eb": "D#",
	"Gb": "F#",
	"Ab": "G#",
	"Bb": "A#",
	"Cb": "B",
	"Fb": "E",
	"E#": "F",
	"B#": "C",
}

// sharpToFlat is used where a flat spelling is preferred (tritone substitutes)
var sharpToFlat = map[string]string{
	"C#": "Db",
	"D#": "Eb",
	"F#": "Gb",
	"G#": "Ab",
	"A#": "Bb",
}

// majorScales spells every major key without repeating a letter name.
// Keys: the 12 naturals/sharps plus the common flat tonics.
var majorScales = map[string][7]string{
	"C":  {"C", "D", "E", "F", "G", "A", "B"},
	"C#": {"C#", "D#", "E#", "F#", "G#", "A#", "B#"},
	"Db": {"Db", "Eb", "F", "Gb", "Ab", "Bb", "C"},
	"D":  {"D", "E", "F#", "G", "A", "B", "C#"},
	"D#": {"D#", "E#", "F##", "G#", "A#", "B#", "C##"},
	"Eb": {"Eb", "F", "G", "Ab", "Bb", "C", "D"},
	"E":  {"E", "F#", "G#", "A", "B", "C#", "D#"},
	"F":  {"F", "G", "A", "Bb", "C", "D", "E"},
	"F#": {"F#", "G#", "A#", "B", "C#", "D#", "E#"},
	"Gb": {"Gb", "Ab", "Bb", "Cb", "Db", "Eb", "F"},
	"G":  {"G", "A", "B", "C", "D", "E", "F#"},
	"G#": {"G#", "A#", "B#", "C#", "D#", "E#", "F##"},
	"Ab": {"Ab", "Bb", "C", "Db", "Eb", "F", "G"},
	"A":  {"A", "B", "C#", "D", "E", "F#", "G#"},
	"A#": {"A#", "B#", "C##", "D#", "E#", "F##", "G##"},
	"Bb": {"Bb", "C", "D", "Eb", "F", "G", "A"},
	"B":  {"B", "C#", "D#", "E", "F#", "G#", "A#"},
}

// parallelMinorScales gives the minor scale sharing a major key's tonic.
// Only used to borrow subdominant-minor chords into major keys. Db and Gb
// minor use sharp-side enharmonics (E, A, B / A, D, E) instead of Fb, Bbb, Ebb.
var parallelMinorScales = map[string][7]string{
	"C":  {"C", "D", "Eb", "F", "G", "Ab", "Bb"},
	"C#": {"C#", "D#", "E", "F#", "G#", "A", "B"},
	"Db": {"Db", "Eb", "E", "Gb", "Ab", "A", "B"},
	"D":  {"D", "E", "F", "G", "A", "Bb", "C"},
	"D#": {"D#", "E#", "F#", "G#", "A#", "B", "C#"},
	"Eb": {"Eb", "F", "Gb", "Ab", "Bb", "Cb", "Db"},
	"E":  {"E", "F#", "G", "A", "B", "C", "D"},
	"F":  {"F", "G", "Ab", "Bb", "C", "Db", "Eb"},
	"F#": {"F#", "G#", "A", "B", "C#", "D", "E"},
	"Gb": {"Gb", "Ab", "A", "Cb", "Db", "D", "E"},
	"G":  {"G", "A", "Bb", "C", "D", "Eb", "F"},
	"G#": {"G#", "A#", "B", "C#", "D#", "E", "F#"},
	"Ab": {"Ab", "Bb", "Cb", "Db", "Eb", "Fb", "Gb"},
	"A":  {"A", "B", "C", "D", "E", "F", "G"},
	"A#": {"A#", "B#", "C#", "D#", "E#", "F#", "G#"},
	"Bb": {"Bb", "C", "Db", "Eb", "F", "Gb", "Ab"},
	"B":  {"B", "C#", "D", "E", "F#", "G", "A"},
}

// relativeMajors maps a minor tonic to the major key whose table spells it.
// Db, Gb and Ab minor borrow the enharmonic sharp-side relative (E, A, B)
// because Fb, Bbb and Cb major have no table.
var relativeMajors = map[string]string{
	"A":  "C",
	"A#": "C#",
	"Bb": "Db",
	"B":  "D",
	"C":  "Eb",
	"C#": "E",
	"Db": "E",
	"D":  "F",
	"D#": "F#",
	"Eb": "Gb",
	"E":  "G",
	"F":  "Ab",
	"F#": "A",
	"Gb": "A",
	"G":  "Bb",
	"G#": "B",
	"Ab": "B",
}

// relativeMinorDegree is the index of the relative minor's tonic in a major scale
const relativeMinorDegree = 5

// spellingKey uppercases the letter of a note name and leaves the accidental as typed
func spellingKey(note string) string {
	if note == "" {
		return note
	}
	first, size := utf8.DecodeRuneInString(note)
	if first == utf8.RuneError {
		return note
	}
	return string(unicode.ToUpper(first)) + note[size:]
}

// NormalizeRoot uppercases the letter and folds the flat (and E#/B#) spellings
// onto the sharp table. Unknown input is returned letter-uppercased, unchanged.
func NormalizeRoot(note string) string {
	up := spellingKey(note)
	if sharp, ok := flatToSharp[up]; ok {
		return sharp
	}
	return up
}

// PitchClassOf returns the semitone index of a note name, or NoPitch
func PitchClassOf(note string) PitchClass {
	normalized := NormalizeRoot(note)
	for i, name := range Semitones {
		if name == normalized {
			return PitchClass(i)
		}
	}
	return NoPitch
}

// Name returns the sharp spelling of a pitch class
func (p PitchClass) Name() string {
	return Semitones[wrap(int(p))]
}

// Add shifts the pitch class by n semitones, wrapping around the octave
func (p PitchClass) Add(n int) PitchClass {
	return PitchClass(wrap(int(p) + n))
}

// Valid reports whether p is inside the 12-tone range
func (p PitchClass) Valid() bool {
	return p >= 0 && p < semitonesPerOctave
}

// KeySpelling returns the diatonic major scale for a tonic, spelled without
// repeated letters. The second result is false when the tonic has no table.
func KeySpelling(tonic string) ([]string, bool) {
	scale, ok := majorScales[spellingKey(tonic)]
	if !ok {
		return nil, false
	}
	return scale[:], true
}

// ParallelMinorSpelling returns the minor scale sharing a major tonic
func ParallelMinorSpelling(majorTonic string) ([]string, bool) {
	scale, ok := parallelMinorScales[spellingKey(majorTonic)]
	if !ok {
		return nil, false
	}
	return scale[:], true
}

// RelativeMajor returns the major key whose spelling table spells minorTonic
func RelativeMajor(minorTonic string) (string, bool) {
	major, ok := relativeMajors[spellingKey(minorTonic)]
	return major, ok
}

// NaturalMinorSpelling derives a natural minor scale by rotating the relative
// major's table to start at its 6th degree, so both stay letter-consistent.
func NaturalMinorSpelling(minorTonic string) ([]string, bool) {
	major, ok := RelativeMajor(minorTonic)
	if !ok {
		return nil, false
	}
	scale, ok := KeySpelling(major)
	if !ok {
		return nil, false
	}
	rotated := make([]string, 0, len(scale))
	rotated = append(rotated, scale[relativeMinorDegree:]...)
	rotated = append(rotated, scale[:relativeMinorDegree]...)
	return rotated, true
}

// FlatSpelling swaps a sharp name for its flat enharmonic; other names pass through
func FlatSpelling(note string) string {
	if flat, ok := sharpToFlat[note]; ok {
		return flat
	}
	return note
}

func wrap(n int) int {
	return ((n % semitonesPerOctave) + semitonesPerOctave) % semitonesPerOctave
}
