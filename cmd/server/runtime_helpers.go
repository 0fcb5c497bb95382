package main

import (
	"context"

	log "github.com/sirupsen/logrus"

	"nutriplan-go/internal/config"
	"nutriplan-go/internal/credential"
	"nutriplan-go/internal/upstream"
	"nutriplan-go/internal/upstream/gemini"
)

// credentialSources lists configured keys first, then GEMINI_API_KEY* variables.
// The order defines the rotation order.
func credentialSources(cfg *config.Config, environ func() []string) []credential.CredentialSource {
	var sources []credential.CredentialSource
	if len(cfg.Credentials.APIKeys) > 0 {
		sources = append(sources, credential.NewStaticSource("config", cfg.Credentials.APIKeys))
	}
	if cfg.Credentials.AutoLoadEnvCreds {
		sources = append(sources, credential.NewEnvSource().WithEnviron(environ))
	}
	return sources
}

// buildExecutor wires pool, client factory and executor explicitly; there is
// no package-level client.
func buildExecutor(ctx context.Context, cfg *config.Config, environ func() []string) (*upstream.Executor[*gemini.Client], error) {
	pool, err := credential.LoadPool(ctx, credentialSources(cfg, environ)...)
	if err != nil {
		return nil, err
	}
	if pool.Len() == 0 {
		log.Warn("no Gemini API keys configured; generation endpoints will return 503")
	}
	return upstream.NewExecutor[*gemini.Client](pool, gemini.NewFactory(cfg.Upstream), upstream.WithName("gemini.generateContent")), nil
}
