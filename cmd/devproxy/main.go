package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-dev-proxy/internal/adapter"
	"github.com/MKhiriev/go-dev-proxy/internal/config"
	"github.com/MKhiriev/go-dev-proxy/internal/envfile"
	httpHandler "github.com/MKhiriev/go-dev-proxy/internal/handler/http"
	"github.com/MKhiriev/go-dev-proxy/internal/logger"
	"github.com/MKhiriev/go-dev-proxy/internal/proxy"
	"github.com/MKhiriev/go-dev-proxy/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("devproxy")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	source := server.NewEnvRuleSource(cfg.App.EnvDir, cfg.App.Mode, envfile.ProcessEnv)
	rules, err := source.Rules()
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving proxy rules")
	}

	build := func(rules proxy.RuleSet) (http.Handler, error) {
		h, err := httpHandler.NewHandler(rules, *cfg, log)
		if err != nil {
			return nil, err
		}
		return h.Init(), nil
	}

	router, err := build(rules)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(router, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if !cfg.Adapter.SkipProbe {
		prober := adapter.NewUpstreamProber(cfg.Adapter.ProbeTimeout)
		server.ProbeUpstreams(ctx, prober, rules, log)
	}

	if cfg.App.WatchEnv {
		reloader := server.NewReloader(source, build, srv, log)
		watcher := envfile.NewWatcher(cfg.App.EnvDir, cfg.App.Mode, reloader.OnEnvChange, log)
		go func() {
			if err := watcher.Run(ctx); err != nil {
				log.Error().Err(err).Msg("env watcher stopped, reload on .env change is disabled")
			}
		}()
	}

	log.Info().
		Str("mode", cfg.App.Mode).
		Str("address", cfg.Server.HTTPAddress).
		Msg("dev proxy starting")

	if err := srv.RunServer(ctx); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
