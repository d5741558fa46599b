// Package rest is the HTTP boundary: a thin chi router over the playlist
// pipeline and the emotion engine. All domain decisions live in the core;
// handlers only decode, validate shape, call and encode.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/treble-labs/emorec/internal/core/emotion"
	"github.com/treble-labs/emorec/internal/core/ports"
	"github.com/treble-labs/emorec/internal/core/services"
)

// Handler manages the HTTP interface for the service.
type Handler struct {
	generator *services.Generator
	emotions  *emotion.Engine
	source    ports.TrackSource
	lyrics    *services.Enricher
	store     ports.TrackStore
	log       zerolog.Logger
}

// NewHandler wires the HTTP adapter. source, lyrics and store may be nil;
// the health endpoint reports them as unavailable.
func NewHandler(
	generator *services.Generator,
	emotions *emotion.Engine,
	source ports.TrackSource,
	lyrics *services.Enricher,
	store ports.TrackStore,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		generator: generator,
		emotions:  emotions,
		source:    source,
		lyrics:    lyrics,
		store:     store,
		log:       log.With().Str("component", "rest").Logger(),
	}
}

// Routes builds the router with the middleware stack applied.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(chimiddleware.RealIP)
	r.Use(h.logRequests)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", h.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/playlist", h.CreatePlaylist)
		r.Get("/emotions", h.ListEmotions)
		r.Get("/emotions/{name}/related", h.RelatedEmotions)
		r.Post("/emotions/analyze", h.AnalyzeEmotions)
		r.Post("/collage/params", h.CollageParams)
	})

	return r
}
