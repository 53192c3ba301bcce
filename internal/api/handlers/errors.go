package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Conceptual-Machines/songbook-api/internal/theory"
	"github.com/gin-gonic/gin"
)

var (
	ErrInvalidMode     = errors.New("invalid mode")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidPreset   = errors.New("invalid preset")
	ErrTooManySymbols  = errors.New("too many symbols")
)

// badRequest records err on the context for request logging and replies 400
func badRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func parseMode(s string) (theory.Mode, error) {
	if s == "" {
		return theory.ModeMajor, nil
	}
	mode, ok := theory.ParseMode(s)
	if !ok {
		return "", fmt.Errorf("%w: %q (want major or minor)", ErrInvalidMode, s)
	}
	return mode, nil
}

func parseCategory(s string) (theory.Category, error) {
	category, ok := theory.ParseCategory(s)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return category, nil
}

func parsePreset(s string) (theory.Preset, error) {
	preset, ok := theory.ParsePreset(s)
	if !ok {
		return "", fmt.Errorf("%w: %q (want triad or seventh)", ErrInvalidPreset, s)
	}
	return preset, nil
}

func checkSymbolCount(n int) error {
	if n > maxSymbolsPerRequest {
		return fmt.Errorf("%w: %d (max %d)", ErrTooManySymbols, n, maxSymbolsPerRequest)
	}
	return nil
}
