package theory

import "strings"

// Mode is the tonality a suggestion list is built for
type Mode string

const (
	ModeMajor Mode = "major"
	ModeMinor Mode = "minor"
)

// ParseMode accepts "major" or "minor" in any case
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeMajor:
		return ModeMajor, true
	case ModeMinor:
		return ModeMinor, true
	}
	return ModeMajor, false
}

// Category selects which family of chords to suggest
type Category string

const (
	CategoryDiatonic         Category = "diatonic"
	CategorySecondary        Category = "secondary"
	CategorySubdominantMinor Category = "subdominantMinor"
	CategoryTritoneSub       Category = "tritoneSub"
	CategoryTwoFiveOne       Category = "twoFiveOne"
	CategorySuspended        Category = "suspended"
)

var categories = []Category{
	CategoryDiatonic,
	CategorySecondary,
	CategorySubdominantMinor,
	CategoryTwoFiveOne,
	CategoryTritoneSub,
	CategorySuspended,
}

// Categories lists every category in suggestion-panel order
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory matches a category name case-insensitively
func ParseCategory(s string) (Category, bool) {
	want := strings.TrimSpace(s)
	for _, c := range categories {
		if strings.EqualFold(string(c), want) {
			return c, true
		}
	}
	return "", false
}

// Preset picks triads or seventh chords for the diatonic list
type Preset string

const (
	PresetTriad   Preset = "triad"
	PresetSeventh Preset = "seventh"
)

// ParsePreset accepts "triad" or "seventh"; empty means triad
func ParsePreset(s string) (Preset, bool) {
	switch Preset(strings.ToLower(strings.TrimSpace(s))) {
	case "", PresetTriad:
		return PresetTriad, true
	case PresetSeventh:
		return PresetSeventh, true
	}
	return PresetTriad, false
}

// Quality patterns indexed by scale degree (0 = tonic)
var (
	majorTriads   = [7]string{"", "m", "m", "", "", "m", "dim"}
	minorTriads   = [7]string{"m", "dim", "", "m", "m", "", ""}
	majorSevenths = [7]string{"△7", "m7", "m7", "△7", "7", "m7", "m7(b5)"}
	minorSevenths = [7]string{"m7", "m7(b5)", "△7", "m7", "m7", "△7", "7"}
)

// Semitone steps used when a tonic has no spelling table
var (
	majorSteps = [7]int{0, 2, 4, 5, 7, 9, 11}
	minorSteps = [7]int{0, 2, 3, 5, 7, 8, 10}
)

// Targets (semitones above the tonic) that receive a secondary dominant
var (
	majorSecondaryTargets = []int{2, 4, 5, 7, 9} // ii, iii, IV, V, vi
	minorSecondaryTargets = []int{0, 5, 7, 3, 8} // i, iv, v, bIII, bVI
)

const (
	dominantSeventh = "7"
	fifthAbove      = 7
	halfStep        = 1
)

// borrowedChord is one subdominant-minor chord: a minor-scale degree, its
// quality, and the semitone offset used when there is no spelling table.
type borrowedChord struct {
	degree   int
	quality  string
	fallback int
}

var subdominantMinorChords = []borrowedChord{
	{degree: 3, quality: "m7", fallback: 5},     // IVm7
	{degree: 1, quality: "m7(b5)", fallback: 2}, // IIm7(b5)
	{degree: 5, quality: "△7", fallback: 8},     // bVI△7
	{degree: 6, quality: "7", fallback: 10},     // bVII7
}

// Suggestions holds every category list for one tonic and mode
type Suggestions struct {
	Tonic            string   `json:"tonic" yaml:"tonic"`
	Mode             Mode     `json:"mode" yaml:"mode"`
	Preset           Preset   `json:"preset" yaml:"preset"`
	Diatonic         []string `json:"diatonic" yaml:"diatonic"`
	Secondary        []string `json:"secondary" yaml:"secondary"`
	SubdominantMinor []string `json:"subdominantMinor" yaml:"subdominantMinor"`
	TwoFiveOne       []string `json:"twoFiveOne" yaml:"twoFiveOne"`
	TritoneSub       []string `json:"tritoneSub" yaml:"tritoneSub"`
	Suspended        []string `json:"suspended" yaml:"suspended"`
}

// key is the resolved tonic a generator works from
type key struct {
	tonic string
	pc    PitchClass
	mode  Mode
	// scale is the letter-consistent spelling, nil when the tonic has no table
	scale []string
}

func resolveKey(tonic string, mode Mode) (key, bool) {
	pc := PitchClassOf(tonic)
	if pc == NoPitch {
		return key{}, false
	}
	k := key{tonic: spellingKey(tonic), pc: pc, mode: mode}
	if mode == ModeMinor {
		k.scale, _ = NaturalMinorSpelling(tonic)
	} else {
		k.scale, _ = KeySpelling(tonic)
	}
	return k, true
}

// degree returns the spelled note of a scale degree, stepping semitones
// from the tonic when no table exists
func (k key) degree(i int) string {
	if k.scale != nil {
		return k.scale[i]
	}
	steps := majorSteps
	if k.mode == ModeMinor {
		steps = minorSteps
	}
	return k.pc.Add(steps[i]).Name()
}

// Generate returns the suggestions of one category using triads for the
// diatonic list. An unknown tonic or category yields an empty list.
func Generate(tonic string, mode Mode, category Category) []string {
	return GenerateWithPreset(tonic, mode, category, PresetTriad)
}

// GenerateWithPreset is Generate with an explicit diatonic preset
func GenerateWithPreset(tonic string, mode Mode, category Category, preset Preset) []string {
	k, ok := resolveKey(tonic, mode)
	if !ok {
		return []string{}
	}

	var chords []string
	switch category {
	case CategoryDiatonic:
		chords = diatonic(k, preset)
	case CategorySecondary:
		chords = secondaryDominants(k)
	case CategorySubdominantMinor:
		chords = subdominantMinor(k)
	case CategoryTritoneSub:
		chords = tritoneSubstitute(k)
	case CategoryTwoFiveOne:
		chords = twoFiveOne(k)
	case CategorySuspended:
		chords = suspended(k)
	default:
		return []string{}
	}
	return dedupe(chords)
}

// GenerateAll builds every category list at once
func GenerateAll(tonic string, mode Mode, preset Preset) Suggestions {
	return Suggestions{
		Tonic:            tonic,
		Mode:             mode,
		Preset:           preset,
		Diatonic:         GenerateWithPreset(tonic, mode, CategoryDiatonic, preset),
		Secondary:        GenerateWithPreset(tonic, mode, CategorySecondary, preset),
		SubdominantMinor: GenerateWithPreset(tonic, mode, CategorySubdominantMinor, preset),
		TwoFiveOne:       GenerateWithPreset(tonic, mode, CategoryTwoFiveOne, preset),
		TritoneSub:       GenerateWithPreset(tonic, mode, CategoryTritoneSub, preset),
		Suspended:        GenerateWithPreset(tonic, mode, CategorySuspended, preset),
	}
}

// Get returns the list for a category from a Suggestions value
func (s Suggestions) Get(category Category) []string {
	switch category {
	case CategoryDiatonic:
		return s.Diatonic
	case CategorySecondary:
		return s.Secondary
	case CategorySubdominantMinor:
		return s.SubdominantMinor
	case CategoryTwoFiveOne:
		return s.TwoFiveOne
	case CategoryTritoneSub:
		return s.TritoneSub
	case CategorySuspended:
		return s.Suspended
	}
	return nil
}

func diatonic(k key, preset Preset) []string {
	qualities := majorTriads
	switch {
	case k.mode == ModeMinor && preset == PresetSeventh:
		qualities = minorSevenths
	case k.mode == ModeMinor:
		qualities = minorTriads
	case preset == PresetSeventh:
		qualities = majorSevenths
	}

	chords := make([]string, 0, len(qualities))
	for i, quality := range qualities {
		chords = append(chords, k.degree(i)+quality)
	}
	return chords
}

func secondaryDominants(k key) []string {
	targets := majorSecondaryTargets
	if k.mode == ModeMinor {
		targets = minorSecondaryTargets
	}

	chords := make([]string, 0, len(targets))
	for _, target := range targets {
		chords = append(chords, k.pc.Add(target+fifthAbove).Name()+dominantSeventh)
	}
	return chords
}

func subdominantMinor(k key) []string {
	// Major keys borrow from the parallel minor; minor keys use their own scale.
	scale := k.scale
	if k.mode != ModeMinor {
		scale, _ = ParallelMinorSpelling(k.tonic)
	}

	chords := make([]string, 0, len(subdominantMinorChords))
	for _, c := range subdominantMinorChords {
		root := k.pc.Add(c.fallback).Name()
		if scale != nil {
			root = scale[c.degree]
		}
		chords = append(chords, root+c.quality)
	}
	return chords
}

// tritoneSubstitute is the flat-spelled dominant a half step above the tonic,
// the substitute for the home V7.
func tritoneSubstitute(k key) []string {
	return []string{FlatSpelling(k.pc.Add(halfStep).Name()) + dominantSeventh}
}

func twoFiveOne(k key) []string {
	if k.mode == ModeMinor {
		return []string{k.degree(1) + "m7(b5)", k.degree(4) + dominantSeventh, k.degree(0) + "m7"}
	}
	return []string{k.degree(1) + "m7", k.degree(4) + dominantSeventh, k.degree(0) + "△7"}
}

func suspended(k key) []string {
	tonic, fifth := k.degree(0), k.degree(4)
	return []string{tonic + "sus4", tonic + "sus2", fifth + "sus4", fifth + "sus2"}
}

// dedupe keeps the first occurrence of each name in order
func dedupe(chords []string) []string {
	seen := make(map[string]bool, len(chords))
	out := make([]string, 0, len(chords))
	for _, c := range chords {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
