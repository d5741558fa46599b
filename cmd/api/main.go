package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/treble-labs/emorec/internal/adapters/genius"
	"github.com/treble-labs/emorec/internal/adapters/ollama"
	"github.com/treble-labs/emorec/internal/adapters/rest"
	"github.com/treble-labs/emorec/internal/adapters/spotify"
	"github.com/treble-labs/emorec/internal/adapters/sqlite"
	"github.com/treble-labs/emorec/internal/config"
	"github.com/treble-labs/emorec/internal/core/emotion"
	"github.com/treble-labs/emorec/internal/core/ports"
	"github.com/treble-labs/emorec/internal/core/query"
	"github.com/treble-labs/emorec/internal/core/services"
	"github.com/treble-labs/emorec/internal/logging"
	"github.com/treble-labs/emorec/internal/worker"
)

func main() {
	// .env is a local development convenience; absence is fine
	_ = godotenv.Load()

	cfg, err := config.Load("")
	if err != nil {
		bootLog := logging.New("info", false)
		bootLog.Fatal().Err(err).Msg("configuration failed")
	}
	log := logging.New(cfg.Log.Level, cfg.Log.Pretty)

	ctx := context.Background()

	// The embedder is the one required collaborator: the emotion vocabulary
	// is encoded at startup, so a dead backend fails fast here.
	embedder := ollama.NewClient(cfg.Ollama.URL, cfg.Ollama.Model)
	engine, err := emotion.NewEngine(ctx, embedder, 0, log)
	if err != nil {
		log.Fatal().Err(err).Str("url", cfg.Ollama.URL).Msg("emotion engine init failed")
	}

	spotifyClient := spotify.NewClient(spotify.Config{
		ClientID:     cfg.Spotify.ClientID,
		ClientSecret: cfg.Spotify.ClientSecret,
		MaxRetries:   cfg.Spotify.MaxRetries,
		BaseBackoff:  cfg.Spotify.BaseBackoff,
	}, log)
	if !spotifyClient.Available() {
		log.Warn().Msg("spotify credentials missing, retrieval degrades to local store")
	}

	synth, err := query.NewSynthesizer(ctx, embedder, spotifyClient, log)
	if err != nil {
		log.Fatal().Err(err).Msg("query synthesizer init failed")
	}
	if synth.LoadGenreCorpus(ctx) {
		log.Info().Msg("provider genre corpus loaded")
	}

	geniusClient := genius.NewClient(genius.Config{
		AccessToken: cfg.Genius.AccessToken,
		Timeout:     cfg.Genius.Timeout,
	}, log)
	enricher := services.NewEnricher(geniusClient, cfg.Lyrics.FilterThreshold, log)

	var store ports.TrackStore
	if cfg.Store.Path != "" {
		adapter, err := sqlite.NewAdapter(cfg.Store.Path)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("track store init failed")
		}
		defer adapter.Close()
		store = adapter
	}

	fanout := worker.Options{
		MaxInFlight:  cfg.Worker.MaxInFlight,
		ItemTimeout:  cfg.Worker.ItemTimeout,
		BatchTimeout: cfg.Worker.BatchTimeout,
	}
	generator := services.NewGenerator(embedder, engine, synth, spotifyClient, store, enricher, log)
	generator.SetFanout(fanout)
	enricher.SetFanout(fanout)

	handler := rest.NewHandler(generator, engine, spotifyClient, enricher, store, log)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("api listening")
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
	case <-sigCtx.Done():
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown error")
		}
	}
}
