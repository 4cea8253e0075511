package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"horrorgen/internal/catalog"
	"horrorgen/internal/http/handlers"
	"horrorgen/internal/http/httpapi"
	"horrorgen/internal/infra"
	"horrorgen/internal/providers/media"
	"horrorgen/internal/providers/story"
)

func main() {
	// Optional env files; .env.local wins because godotenv never overrides.
	for _, f := range []string{".env.local", ".env"} {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			panic(err)
		}
	}

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	cat := catalog.Default()
	producer := story.NewCatalogProducer(cat)
	app, err := handlers.NewApp(cfg, logger, cat, producer, media.NewDataURLEncoder(), registry)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build app")
	}

	server := infra.NewHTTPServer(cfg, httpapi.NewRouter(app))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().
			Str("addr", server.Addr()).
			Str("story_provider", producer.Name()).
			Int("stories", cat.Len()).
			Msg("API listening")
		return server.Start()
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("server exited with error")
		os.Exit(1)
	}
	logger.Info().Msg("server stopped")
}
