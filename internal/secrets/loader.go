// Package secrets resolves credentials for external backends such as the
// Gemini embedding API.
package secrets

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNotConfigured is returned when no source yields a non-empty secret.
var ErrNotConfigured = errors.New("secret is not configured")

// Source lists the places a secret may come from, in order of precedence:
// File, then the Env variable, then the inline Value.
type Source struct {
	// Name gives context in error messages, e.g. "gemini api key".
	Name  string
	File  string
	Env   string
	Value string
}

// Load returns the trimmed secret from the first source that is set.
// A file that is configured but unreadable or empty is an error rather than
// a reason to fall through to the next source.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "secret"
	}

	if file := strings.TrimSpace(src.File); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		secret := strings.TrimSpace(string(data))
		if secret == "" {
			return "", fmt.Errorf("%s file %q is empty", name, file)
		}
		return secret, nil
	}

	if env := strings.TrimSpace(src.Env); env != "" {
		if secret := strings.TrimSpace(os.Getenv(env)); secret != "" {
			return secret, nil
		}
	}

	if secret := strings.TrimSpace(src.Value); secret != "" {
		return secret, nil
	}

	return "", fmt.Errorf("%s: %w", name, ErrNotConfigured)
}
