package handlers

import (
	"net/http"
	"time"

	"github.com/Conceptual-Machines/songbook-api/internal/models"
	"github.com/gin-gonic/gin"
)

// Suggestions fills the suggestion panel for a tonic. Without a category
// every list is returned at once.
func (h *ChordHandler) Suggestions(c *gin.Context) {
	tonic := c.Query("tonic")

	mode, err := parseMode(c.Query("mode"))
	if err != nil {
		badRequest(c, err)
		return
	}
	preset, err := parsePreset(c.Query("preset"))
	if err != nil {
		badRequest(c, err)
		return
	}

	start := time.Now()
	raw, ok := c.GetQuery("category")
	if !ok || raw == "" {
		all := h.svc.SuggestAll(tonic, mode, preset)
		h.record(c, opSuggest, len(all.Diatonic), start)
		c.JSON(http.StatusOK, all)
		return
	}

	category, err := parseCategory(raw)
	if err != nil {
		badRequest(c, err)
		return
	}

	chords := h.svc.Suggest(tonic, mode, category, preset)
	h.record(c, opSuggest, len(chords), start)

	c.JSON(http.StatusOK, models.SuggestionResponse{
		Tonic:    tonic,
		Mode:     mode,
		Category: category,
		Preset:   preset,
		Chords:   chords,
	})
}
