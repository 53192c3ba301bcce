package handlers

const (
	// Request limits
	maxSymbolsPerRequest = 1024 // Chords accepted by one normalize/parse/transpose call
	maxSheetChords       = 4096 // Placed chords accepted by one sheet transpose

	// Operation names reported to logs and metrics
	opNormalize      = "normalize"
	opParse          = "parse"
	opTranspose      = "transpose"
	opInterval       = "interval"
	opSuggest        = "suggest"
	opSheetTranspose = "sheet_transpose"
)
