package models

import "github.com/Conceptual-Machines/songbook-api/internal/theory"

// SheetTransposeRequest is sent when the key of a lead sheet changes.
// Chords are the placed chord chips in sheet order, bar separators included.
type SheetTransposeRequest struct {
	FromKey      string   `json:"from_key" binding:"required"`
	ToKey        string   `json:"to_key" binding:"required"`
	Chords       []string `json:"chords"`
	TransposeAll bool     `json:"transpose_all"`
	Normalize    bool     `json:"normalize"`
}

// SheetTransposeResponse returns the chords in the same order as the request
type SheetTransposeResponse struct {
	FromKey    string          `json:"from_key"`
	ToKey      string          `json:"to_key"`
	Interval   theory.Interval `json:"interval"`
	Transposed bool            `json:"transposed"`
	Chords     []string        `json:"chords"`
}

// BarSeparators are placed on a sheet like chords but never transposed
var BarSeparators = map[string]bool{
	"|": true,
	"｜": true,
}

// IsBarSeparator reports whether a placed chip is a bar line
func IsBarSeparator(chip string) bool {
	return BarSeparators[chip]
}
