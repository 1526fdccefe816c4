package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"campaign-widget-service/internal/api"
	"campaign-widget-service/internal/config"
	"campaign-widget-service/internal/platform"
	"campaign-widget-service/internal/storage"
	"campaign-widget-service/internal/track"
)

func Run(cfg config.Config) {
	rootCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Telemetry sink: postgres when configured, structured log otherwise
	var recorder track.Recorder = track.LogRecorder{}
	if cfg.EventStoreEnabled() {
		store, err := storage.New(rootCtx, cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("init event store")
		}
		defer store.Close()
		recorder = store
		log.Info().Str("host", cfg.Postgres.Host).Msg("tracking events persisted to postgres")
	} else {
		log.Info().Msg("no event store configured; tracking events are log-only")
	}

	// Backend recommendation client
	backend := platform.NewClient(cfg.Platform.APIURL, cfg.PlatformTimeout())

	// HTTP
	h := api.NewHandler(backend, recorder, cfg.Platform.APIURL, cfg.Server.BaseURL, cfg.Widget.CacheTTLSeconds, cfg.Widget.CampaignTimeoutMS)
	r := api.Router(h, cfg)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Server goroutine
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Str("platform_api", cfg.Platform.APIURL).Msg("widget service starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server crashed")
		}
	}()

	// Wait for signal
	waitForSignal()
	log.Info().Msg("shutdown...")

	// Graceful shutdown
	shCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shCancel()
	cancel()
	_ = srv.Shutdown(shCtx)
}

func waitForSignal() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
}
