package embedding

import (
	"context"
	"fmt"
	"strings"
)

// Config selects and configures an embedding provider.
type Config struct {
	// Provider is one of "hashing" (default), "gemini", "fastembed" or "none".
	Provider  string `mapstructure:"provider"`
	Model     string `mapstructure:"model"`
	Dimension int    `mapstructure:"dimension"`
	CacheDir  string `mapstructure:"cache-dir"`
	// APIKey is resolved by the caller from the secrets loader.
	APIKey string `mapstructure:"-"`
}

// NewProvider builds the provider named in cfg. "none" yields a nil provider,
// which disables semantic matching.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	switch name := strings.ToLower(strings.TrimSpace(cfg.Provider)); name {
	case "", "hashing":
		return NewHashingProvider(cfg.Dimension), nil
	case "gemini":
		p, err := NewGeminiProvider(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "fastembed":
		p, err := NewFastEmbedProvider(cfg.Model, cfg.CacheDir)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrInvalidConfig, cfg.Provider)
	}
}
