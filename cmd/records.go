package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kyaml "github.com/knadh/koanf/parsers/yaml"

	"github.com/spigell/hh-scorer/internal/model"
)

var errUnsupportedFormat = errors.New("unsupported record format")

// loadRecord reads a single candidate or job document.
func loadRecord(path string) (model.Record, error) {
	records, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	if len(records) != 1 {
		return nil, fmt.Errorf("%s: expected a single record, got %d", path, len(records))
	}
	return records[0], nil
}

// loadRecords reads candidates from a file or from every JSON/YAML file of a directory.
func loadRecords(path string) ([]model.Record, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return loadFile(path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	var records []model.Record
	for _, e := range entries {
		if e.IsDir() || !supported(e.Name()) {
			continue
		}
		r, err := loadFile(filepath.Join(path, e.Name()))
		if err != nil {
			return nil, err
		}
		records = append(records, r...)
	}
	return records, nil
}

func supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// loadFile accepts one object, a list of objects, or an object with a
// "candidates" list.
func loadFile(path string) ([]model.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	case ".yaml", ".yml":
		m, err := kyaml.Parser().Unmarshal(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		doc = m
	default:
		return nil, fmt.Errorf("%w: %s", errUnsupportedFormat, path)
	}

	records, err := toRecords(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

func toRecords(doc any) ([]model.Record, error) {
	switch v := doc.(type) {
	case map[string]any:
		if list, ok := v["candidates"].([]any); ok {
			return toRecords(list)
		}
		return []model.Record{v}, nil
	case []any:
		out := make([]model.Record, 0, len(v))
		for i, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: item %d is not an object", errUnsupportedFormat, i)
			}
			out = append(out, m)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: expected an object or a list of objects", errUnsupportedFormat)
	}
}
