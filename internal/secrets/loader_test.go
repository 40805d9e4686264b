package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	keyFile := filepath.Join(dir, "key")
	require.NoError(t, os.WriteFile(keyFile, []byte("  from-file\n"), 0o600))

	t.Setenv("HH_SCORER_TEST_KEY", "from-env")

	tests := []struct {
		name string
		src  Source
		want string
	}{
		{name: "file wins", src: Source{File: keyFile, Env: "HH_SCORER_TEST_KEY", Value: "inline"}, want: "from-file"},
		{name: "env before inline", src: Source{Env: "HH_SCORER_TEST_KEY", Value: "inline"}, want: "from-env"},
		{name: "unset env falls through", src: Source{Env: "HH_SCORER_TEST_UNSET", Value: " inline "}, want: "inline"},
	}
	for _, tt := range tests {
		got, err := Load(tt.src)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	empty := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(empty, []byte("\n"), 0o600))

	_, err := Load(Source{Name: "gemini api key"})
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Contains(t, err.Error(), "gemini api key")

	_, err = Load(Source{File: empty, Value: "inline"})
	assert.ErrorContains(t, err, "is empty")

	_, err = Load(Source{File: filepath.Join(dir, "missing")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
