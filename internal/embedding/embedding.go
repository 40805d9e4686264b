// Package embedding provides skill-name embeddings via multiple providers and
// a bounded memoization cache shared by concurrent evaluations.
package embedding

import (
	"context"
	"errors"
	"math"
)

var (
	// ErrEmptyInput is returned when the text to embed is empty.
	ErrEmptyInput = errors.New("empty input")
	// ErrInvalidConfig is returned for unsupported provider configuration.
	ErrInvalidConfig = errors.New("invalid embedding config")
	// ErrEmbeddingFailed wraps backend failures.
	ErrEmbeddingFailed = errors.New("embedding failed")
	// ErrProviderUnavailable is returned when a provider cannot be used in this build or environment.
	ErrProviderUnavailable = errors.New("embedding provider unavailable")
)

// Provider turns a short text into a dense vector.
type Provider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Name() string
	Close() error
}

// Cosine returns the cosine similarity of two vectors, or 0 when they cannot be compared.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, na, nb float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
