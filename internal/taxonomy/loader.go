package taxonomy

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables overriding configuration keys.
// Nested keys are separated by a double underscore:
//
//	HH_SCORER_TAXONOMY_MATCHING__SEMANTIC_SIMILARITY_THRESHOLD=0.8 -> matching.semantic_similarity_threshold
const EnvPrefix = "HH_SCORER_TAXONOMY_"

const maxConfigSize = 1024 * 1024

//go:embed default.yaml
var defaultConfig []byte

// Default returns the taxonomy built from the embedded configuration only.
func Default() (*Taxonomy, error) {
	return load(nil, false)
}

// Load overlays the supplied YAML and environment overrides on top of the
// embedded defaults, validates the result and builds an immutable taxonomy.
func Load(content []byte) (*Taxonomy, error) {
	return load(content, true)
}

// LoadFile reads a YAML override file. An empty path loads defaults plus environment.
func LoadFile(path string) (*Taxonomy, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Load(nil)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat taxonomy file: %w", err)
	}
	if info.Size() > maxConfigSize {
		return nil, fmt.Errorf("%w: file %s exceeds %d bytes", ErrInvalidConfig, path, maxConfigSize)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy file: %w", err)
	}

	return Load(content)
}

func load(content []byte, withEnv bool) (*Taxonomy, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultConfig), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load embedded taxonomy: %w", err)
	}

	if len(content) > 0 {
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: parse: %v", ErrInvalidConfig, err)
		}
	}

	if withEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, fmt.Errorf("load taxonomy environment: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("%w: unmarshal: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return New(&cfg), nil
}

func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(s), "__", ".")
}
