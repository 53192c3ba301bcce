package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
)

const (
	// HTTP status code threshold for considering a request successful
	successStatusCodeThreshold = http.StatusBadRequest
)

// SentryMetrics handles custom metrics for Sentry
type SentryMetrics struct {
	enabled bool
}

// NewSentryMetrics creates a new Sentry metrics client
func NewSentryMetrics() *SentryMetrics {
	return &SentryMetrics{
		enabled: true, // Always enabled if Sentry is configured
	}
}

// RecordAPIRequest records API request metrics
func (m *SentryMetrics) RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "api.request")
	defer span.Finish()

	span.SetTag("endpoint", endpoint)
	span.SetTag("status_code", fmt.Sprintf("%d", statusCode))
	span.SetTag("success", fmt.Sprintf("%t", statusCode < successStatusCodeThreshold))

	span.SetData("duration_ms", duration.Milliseconds())
	span.SetData("endpoint", endpoint)
	span.SetData("status_code", statusCode)

	switch {
	case statusCode < successStatusCodeThreshold:
		span.Status = sentry.SpanStatusOK
	case statusCode < http.StatusInternalServerError:
		span.Status = sentry.SpanStatusInvalidArgument
	default:
		span.Status = sentry.SpanStatusInternalError
	}

	span.Description = fmt.Sprintf("API Request: %s", endpoint)
}

// RecordChordOperation records one engine call (normalize, transpose, suggest...)
// and how many chords it touched
func (m *SentryMetrics) RecordChordOperation(ctx context.Context, operation string, items int, duration time.Duration) {
	if !m.enabled {
		return
	}

	// Tag the enclosing request transaction so operations are searchable
	if transaction := sentry.TransactionFromContext(ctx); transaction != nil {
		transaction.SetTag("chord.operation", operation)
		transaction.SetData("chord.items", items)
	}

	span := sentry.StartSpan(ctx, "chord.operation")
	defer span.Finish()

	span.SetTag("operation", operation)
	span.SetData("items", items)
	span.SetData("duration_ms", duration.Milliseconds())

	span.Status = sentry.SpanStatusOK
	span.Description = fmt.Sprintf("Chord Operation: %s", operation)
}

// RecordCacheStats attaches cache counters to the current scope
func (m *SentryMetrics) RecordCacheStats(hits, misses uint64, entries int) {
	if !m.enabled {
		return
	}

	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetContext("chord_cache", map[string]interface{}{
			"hits":    hits,
			"misses":  misses,
			"entries": entries,
		})
	})
}
