package embedding

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"
)

const defaultHashingDimension = 256

// HashingProvider embeds text as L2-normalised counts of hashed character
// trigrams. It needs no model files or network access and is deterministic.
type HashingProvider struct {
	dimension int
}

// NewHashingProvider creates a hashing provider. A non-positive dimension selects the default.
func NewHashingProvider(dimension int) *HashingProvider {
	if dimension <= 0 {
		dimension = defaultHashingDimension
	}
	return &HashingProvider{dimension: dimension}
}

// Embed implements Provider.
func (p *HashingProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text = strings.ToLower(strings.Join(strings.Fields(text), " "))
	if text == "" {
		return nil, fmt.Errorf("%w: text cannot be empty", ErrEmptyInput)
	}

	vec := make([]float64, p.dimension)
	padded := []rune(" " + text + " ")
	for i := 0; i+3 <= len(padded); i++ {
		h := fnv.New32a()
		_, _ = h.Write([]byte(string(padded[i : i+3])))
		vec[h.Sum32()%uint32(p.dimension)]++
	}

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)

	out := make([]float32, p.dimension)
	for i, v := range vec {
		out[i] = float32(v / norm)
	}
	return out, nil
}

// Name implements Provider.
func (p *HashingProvider) Name() string { return "hashing" }

// Close implements Provider.
func (p *HashingProvider) Close() error { return nil }
