package resume

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the parser.
var metrics struct {
	ParseRequests      atomic.Int64
	SectionsDetected   atomic.Int64
	ExtractorCalls     atomic.Int64
	ExtractorErrors    atomic.Int64
	ExtractorUnusable  atomic.Int64
	RegexFallbacks     atomic.Int64
	EntriesDropped     atomic.Int64
	SummariesCollapsed atomic.Int64
}

// GetMetrics returns a snapshot of all counters.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"parse_requests":      metrics.ParseRequests.Load(),
		"sections_detected":   metrics.SectionsDetected.Load(),
		"extractor_calls":     metrics.ExtractorCalls.Load(),
		"extractor_errors":    metrics.ExtractorErrors.Load(),
		"extractor_unusable":  metrics.ExtractorUnusable.Load(),
		"regex_fallbacks":     metrics.RegexFallbacks.Load(),
		"entries_dropped":     metrics.EntriesDropped.Load(),
		"summaries_collapsed": metrics.SummariesCollapsed.Load(),
	}
}

// FormatMetrics returns counters as a simple text format for the server's
// metrics endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"parse_requests", "sections_detected",
		"extractor_calls", "extractor_errors", "extractor_unusable",
		"regex_fallbacks", "entries_dropped", "summaries_collapsed",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

func incrParseRequests()      { metrics.ParseRequests.Add(1) }
func incrSectionsDetected(n int64) { metrics.SectionsDetected.Add(n) }
func incrExtractorCalls()     { metrics.ExtractorCalls.Add(1) }
func incrExtractorErrors()    { metrics.ExtractorErrors.Add(1) }
func incrExtractorUnusable()  { metrics.ExtractorUnusable.Add(1) }
func incrRegexFallbacks()     { metrics.RegexFallbacks.Add(1) }
func incrEntriesDropped()     { metrics.EntriesDropped.Add(1) }
func incrSummariesCollapsed() { metrics.SummariesCollapsed.Add(1) }

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > 5*time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
