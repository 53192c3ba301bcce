package models

import "github.com/Conceptual-Machines/songbook-api/internal/theory"

// ChordListRequest carries the chord names to normalize or parse
type ChordListRequest struct {
	Symbols []string `json:"symbols" binding:"required"`
}

// NormalizedChord pairs an input symbol with its canonical spelling
type NormalizedChord struct {
	Input      string `json:"input"`
	Normalized string `json:"normalized"`
}

// NormalizeResponse is returned by the normalize endpoint
type NormalizeResponse struct {
	Results []NormalizedChord `json:"results"`
}

// ParsedChord is a chord symbol split into root, quality and bass
type ParsedChord struct {
	Input string `json:"input"`
	theory.ChordSymbol
}

// ParseResponse is returned by the parse endpoint
type ParseResponse struct {
	Results []ParsedChord `json:"results"`
}

// TransposeRequest shifts chords either by an explicit interval or by the
// distance between two keys. FromKey/ToKey win when both are given.
type TransposeRequest struct {
	Symbols  []string `json:"symbols" binding:"required"`
	Interval *int     `json:"interval,omitempty"`
	FromKey  string   `json:"from_key,omitempty"`
	ToKey    string   `json:"to_key,omitempty"`
}

// TransposedChord pairs an input symbol with its transposed form
type TransposedChord struct {
	Input      string `json:"input"`
	Transposed string `json:"transposed"`
}

// TransposeResponse is returned by the transpose endpoint
type TransposeResponse struct {
	Interval theory.Interval   `json:"interval"`
	Results  []TransposedChord `json:"results"`
}

// IntervalResponse reports the upward semitone distance between two keys
type IntervalResponse struct {
	From     string          `json:"from"`
	To       string          `json:"to"`
	Interval theory.Interval `json:"interval"`
}

// SuggestionResponse holds one category list
type SuggestionResponse struct {
	Tonic    string          `json:"tonic"`
	Mode     theory.Mode     `json:"mode"`
	Category theory.Category `json:"category"`
	Preset   theory.Preset   `json:"preset"`
	Chords   []string        `json:"chords"`
}
