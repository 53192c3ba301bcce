package theory

import (
	"regexp"
	"strings"
)

// chordBasePattern splits the part before the slash into root and quality
var chordBasePattern = regexp.MustCompile(`^([A-Ga-g][#b]?)(.*)$`)

// ChordSymbol is a chord name split into its parts.
// Bass is empty when the chord has no slash bass.
type ChordSymbol struct {
	Root    string `json:"root"`
	Quality string `json:"quality"`
	Bass    string `json:"bass,omitempty"`
}

// HasBass reports whether the chord carries a slash bass
func (c ChordSymbol) HasBass() bool {
	return c.Bass != ""
}

// Recognized reports whether the root is a known note name
func (c ChordSymbol) Recognized() bool {
	return PitchClassOf(c.Root) != NoPitch
}

// String reassembles the chord name (e.g., "Am7", "C/E")
func (c ChordSymbol) String() string {
	name := c.Root + c.Quality
	if c.HasBass() {
		name += "/" + c.Bass
	}
	return name
}

// Parse splits a chord symbol into root, quality and bass.
//
// The quality is opaque: it is trimmed but otherwise kept verbatim so it can be
// carried through transposition. Text that does not start with a note letter is
// passed through whole as the root with an empty quality.
func Parse(symbol string) ChordSymbol {
	base, bass, hasSlash := strings.Cut(symbol, "/")
	// Only the first slash section is the bass; anything after another slash is dropped
	bass, _, _ = strings.Cut(bass, "/")
	bass = strings.TrimSpace(bass)

	match := chordBasePattern.FindStringSubmatch(base)
	if match == nil {
		return ChordSymbol{Root: symbol, Bass: bass}
	}

	parsed := ChordSymbol{
		Root:    NormalizeRoot(match[1]),
		Quality: strings.TrimSpace(match[2]),
	}
	if hasSlash && bass != "" {
		parsed.Bass = NormalizeRoot(bass)
	}
	return parsed
}
