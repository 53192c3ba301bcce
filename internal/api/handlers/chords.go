package handlers

import (
	"net/http"
	"time"

	"github.com/Conceptual-Machines/songbook-api/internal/logger"
	"github.com/Conceptual-Machines/songbook-api/internal/metrics"
	"github.com/Conceptual-Machines/songbook-api/internal/models"
	"github.com/Conceptual-Machines/songbook-api/internal/services"
	"github.com/Conceptual-Machines/songbook-api/internal/theory"
	"github.com/gin-gonic/gin"
)

type ChordHandler struct {
	svc     *services.ChordService
	sentry  *metrics.SentryMetrics
	metrics *metrics.Client
}

// NewChordHandler serves the chord, key and sheet endpoints. cw may be nil.
func NewChordHandler(svc *services.ChordService, cw *metrics.Client) *ChordHandler {
	return &ChordHandler{
		svc:     svc,
		sentry:  metrics.NewSentryMetrics(),
		metrics: cw,
	}
}

// record logs one engine operation and publishes its metrics
func (h *ChordHandler) record(c *gin.Context, operation string, items int, start time.Time) {
	duration := time.Since(start)
	logger.LogChordOperation(c.Request.Context(), operation, items, duration, logger.WithContext(c))
	h.sentry.RecordChordOperation(c.Request.Context(), operation, items, duration)
	h.metrics.RecordChordOperation(operation, items)
}

// Normalize rewrites every symbol to its canonical spelling
func (h *ChordHandler) Normalize(c *gin.Context) {
	var req models.ChordListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := checkSymbolCount(len(req.Symbols)); err != nil {
		badRequest(c, err)
		return
	}

	start := time.Now()
	resp := models.NormalizeResponse{Results: make([]models.NormalizedChord, 0, len(req.Symbols))}
	for _, symbol := range req.Symbols {
		resp.Results = append(resp.Results, models.NormalizedChord{
			Input:      symbol,
			Normalized: h.svc.Normalize(symbol),
		})
	}
	h.record(c, opNormalize, len(req.Symbols), start)

	c.JSON(http.StatusOK, resp)
}

// Parse splits every symbol into root, quality and bass
func (h *ChordHandler) Parse(c *gin.Context) {
	var req models.ChordListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := checkSymbolCount(len(req.Symbols)); err != nil {
		badRequest(c, err)
		return
	}

	start := time.Now()
	resp := models.ParseResponse{Results: make([]models.ParsedChord, 0, len(req.Symbols))}
	for _, symbol := range req.Symbols {
		resp.Results = append(resp.Results, models.ParsedChord{
			Input:       symbol,
			ChordSymbol: h.svc.Parse(symbol),
		})
	}
	h.record(c, opParse, len(req.Symbols), start)

	c.JSON(http.StatusOK, resp)
}

// Transpose shifts every symbol by an interval or by the distance between two keys
func (h *ChordHandler) Transpose(c *gin.Context) {
	var req models.TransposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := checkSymbolCount(len(req.Symbols)); err != nil {
		badRequest(c, err)
		return
	}

	start := time.Now()
	var interval int
	switch {
	case req.FromKey != "" || req.ToKey != "":
		interval = int(h.svc.Interval(req.FromKey, req.ToKey))
	case req.Interval != nil:
		interval = *req.Interval
	}

	resp := models.TransposeResponse{
		Interval: theory.ReduceInterval(interval),
		Results:  make([]models.TransposedChord, 0, len(req.Symbols)),
	}
	for _, symbol := range req.Symbols {
		resp.Results = append(resp.Results, models.TransposedChord{
			Input:      symbol,
			Transposed: h.svc.Transpose(symbol, interval),
		})
	}
	h.record(c, opTranspose, len(req.Symbols), start)

	c.JSON(http.StatusOK, resp)
}

// Interval reports the upward semitone distance between two keys
func (h *ChordHandler) Interval(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")

	start := time.Now()
	interval := h.svc.Interval(from, to)
	h.record(c, opInterval, 1, start)

	c.JSON(http.StatusOK, models.IntervalResponse{From: from, To: to, Interval: interval})
}

// TransposeSheet moves the placed chords of a lead sheet to a new key
func (h *ChordHandler) TransposeSheet(c *gin.Context) {
	var req models.SheetTransposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if len(req.Chords) > maxSheetChords {
		badRequest(c, ErrTooManySymbols)
		return
	}

	start := time.Now()
	resp := h.svc.TransposeSheet(req)
	h.record(c, opSheetTranspose, len(req.Chords), start)

	c.JSON(http.StatusOK, resp)
}
