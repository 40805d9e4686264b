package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadRecord(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	r, err := loadRecord(write(t, dir, "job.json", `{"id": 42, "title": "Storekeeper", "min_experience_years": 2}`))
	require.NoError(t, err)
	assert.Equal(t, "42", r.ID())
	assert.Equal(t, "Storekeeper", r["title"])

	r, err = loadRecord(write(t, dir, "job.yaml", "id: job-7\ntitle: Driver\nrequired_skills:\n  - Forklift\n"))
	require.NoError(t, err)
	assert.Equal(t, "job-7", r.ID())
	assert.Equal(t, []any{"Forklift"}, r["required_skills"])

	_, err = loadRecord(write(t, dir, "two.json", `[{"id": "a"}, {"id": "b"}]`))
	assert.Error(t, err)

	_, err = loadRecord(write(t, dir, "job.txt", "title: nope"))
	assert.ErrorIs(t, err, errUnsupportedFormat)
}

func TestLoadRecordsFromDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write(t, dir, "a.json", `[{"id": "c1"}, {"id": "c2"}]`)
	write(t, dir, "b.yaml", "candidates:\n  - id: c3\n  - id: c4\n")
	write(t, dir, "c.yml", "id: c5\nemail: c5@example.com\n")
	write(t, dir, "notes.md", "ignored")

	records, err := loadRecords(dir)
	require.NoError(t, err)

	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID())
	}
	assert.Equal(t, []string{"c1", "c2", "c3", "c4", "c5"}, ids)

	_, err = loadRecords(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestToRecordsRejectsScalars(t *testing.T) {
	t.Parallel()

	_, err := toRecords([]any{map[string]any{"id": "x"}, "oops"})
	assert.ErrorIs(t, err, errUnsupportedFormat)

	_, err = toRecords("oops")
	assert.ErrorIs(t, err, errUnsupportedFormat)
}
