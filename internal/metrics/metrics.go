// Package metrics exposes the process-wide Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP handler latency by route and status class.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "emorec",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "status"})

	// ProviderCalls counts outbound collaborator calls by provider and outcome.
	ProviderCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "emorec",
		Subsystem: "provider",
		Name:      "calls_total",
		Help:      "Outbound provider calls.",
	}, []string{"provider", "outcome"})

	// PlaylistFallbacks counts requests served from a fallback candidate set
	// instead of the live retrieval provider.
	PlaylistFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "emorec",
		Subsystem: "playlist",
		Name:      "fallbacks_total",
		Help:      "Playlist requests served from fallback candidates.",
	}, []string{"source"})

	// LyricsEnrichment counts per-track lyrics fetch outcomes during re-rank.
	LyricsEnrichment = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "emorec",
		Subsystem: "lyrics",
		Name:      "enrichment_total",
		Help:      "Lyrics fetch outcomes during playlist re-ranking.",
	}, []string{"outcome"})
)
