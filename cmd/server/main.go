package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"nutriplan-go/internal/config"
	"nutriplan-go/internal/constants"
	"nutriplan-go/internal/logging"
	"nutriplan-go/internal/monitoring/tracing"
	"nutriplan-go/internal/nutrition"
	srv "nutriplan-go/internal/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	debug := flag.Bool("debug", false, "Enable debug mode")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	if *debug {
		cfg.Security.Debug = true
	}
	if err := logging.Setup(cfg); err != nil {
		log.WithError(err).Fatal("failed to configure logging")
	}
	defer logging.Close()

	traceShutdown, err := tracing.Init(context.Background())
	if err != nil {
		log.WithError(err).Warn("failed to initialize tracing")
	}
	if traceShutdown != nil {
		defer func() {
			if err := traceShutdown(context.Background()); err != nil {
				log.WithError(err).Warn("failed to shutdown tracing")
			}
		}()
	}

	log.WithFields(log.Fields{
		"config":  *configPath,
		"version": constants.GetFullVersion(),
		"model":   cfg.Upstream.Model,
	}).Info("starting nutriplan-go")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	exec, err := buildExecutor(ctx, cfg, os.Environ)
	if err != nil {
		log.WithError(err).Fatal("failed to load credentials")
	}

	engine := srv.BuildEngine(cfg, srv.Dependencies{
		Generator: nutrition.NewService(exec, cfg.Upstream),
		PoolSize:  exec.Size,
	})
	httpSrv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: constants.ServerReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("listening on :%s", cfg.Server.Port)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		log.WithError(err).Error("http server failed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ServerShutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("graceful shutdown incomplete")
	}
	log.Info("server stopped")
}
