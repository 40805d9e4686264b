package cmd

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/hh-scorer/internal/embedding"
	"github.com/spigell/hh-scorer/internal/engine"
	"github.com/spigell/hh-scorer/internal/metrics"
	"github.com/spigell/hh-scorer/internal/secrets"
	"github.com/spigell/hh-scorer/internal/taxonomy"
)

// newService wires the scoring engine from config. The returned function
// releases the embedding backend.
func newService(ctx context.Context, config *Config, logger *zap.Logger) (*engine.Service, func(), error) {
	tax, err := taxonomy.LoadFile(config.Taxonomy)
	if err != nil {
		return nil, nil, fmt.Errorf("loading taxonomy: %w", err)
	}

	logger.Debug("taxonomy loaded",
		zap.String("version", tax.Version()),
		zap.Strings("profiles", tax.ProfileNames()),
	)

	m := metrics.New()
	opts := engine.Options{
		Taxonomy:      tax,
		Logger:        logger,
		Workers:       config.Workers,
		Metrics:       m,
		DisabledRules: config.DisabledRules,
	}

	cleanup := func() {}

	provider, err := newEmbeddingProvider(ctx, config.Embedding)
	switch {
	case err != nil:
		logger.Warn("skipping semantic skill matching", zap.Error(err))
	case provider == nil:
		logger.Info("semantic skill matching disabled by config")
	default:
		cache := embedding.NewCache(provider, config.Embedding.CacheSize, m)
		opts.Embedder = cache
		cleanup = func() {
			if err := cache.Close(); err != nil {
				logger.Warn("closing embedding provider", zap.Error(err))
			}
		}
		logger.Info("semantic skill matching enabled", zap.String("provider", provider.Name()))
	}

	return engine.New(opts), cleanup, nil
}

func newEmbeddingProvider(ctx context.Context, cfg *EmbeddingConfig) (embedding.Provider, error) {
	if cfg == nil {
		cfg = &EmbeddingConfig{}
	}

	ec := embedding.Config{
		Provider:  cfg.Provider,
		Model:     cfg.Model,
		Dimension: cfg.Dimension,
		CacheDir:  cfg.CacheDir,
	}

	if strings.EqualFold(strings.TrimSpace(cfg.Provider), "gemini") {
		apiKey, err := secrets.Load(secrets.Source{
			Name: "gemini api key",
			File: cfg.APIKeyFile,
			Env:  "GEMINI_API_KEY",
		})
		if err != nil {
			return nil, fmt.Errorf("%w (set embedding.api-key-file, HH_SCORER_GEMINI_API_KEY_FILE or GEMINI_API_KEY)", err)
		}
		ec.APIKey = apiKey
	}

	return embedding.NewProvider(ctx, ec)
}
