//go:build !cgo

package embedding

import (
	"context"
	"fmt"
)

// FastEmbedProvider is unavailable in builds without cgo.
type FastEmbedProvider struct{}

// NewFastEmbedProvider always fails without cgo.
func NewFastEmbedProvider(_, _ string) (*FastEmbedProvider, error) {
	return nil, fmt.Errorf("%w: fastembed requires a cgo build", ErrProviderUnavailable)
}

// Embed implements Provider.
func (p *FastEmbedProvider) Embed(_ context.Context, _ string) ([]float32, error) {
	return nil, fmt.Errorf("%w: fastembed requires a cgo build", ErrProviderUnavailable)
}

// Name implements Provider.
func (p *FastEmbedProvider) Name() string { return "fastembed" }

// Close implements Provider.
func (p *FastEmbedProvider) Close() error { return nil }
