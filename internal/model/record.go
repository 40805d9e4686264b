package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// ErrInvalidRecord is returned when a raw record cannot be decoded into a typed structure.
var ErrInvalidRecord = errors.New("invalid record")

// Record is a loosely typed key/value document as supplied by callers (parsed JSON or YAML).
type Record map[string]any

// ID returns the "id" value of the record rendered as a string.
func (r Record) ID() string {
	if r == nil {
		return ""
	}
	v, ok := r["id"]
	if !ok || v == nil {
		return ""
	}
	switch id := v.(type) {
	case string:
		return strings.TrimSpace(id)
	case float64:
		return fmt.Sprintf("%.0f", id)
	default:
		return fmt.Sprint(id)
	}
}

// Decode converts the record into out using weakly typed mapstructure decoding.
// Numeric strings are accepted for numeric fields, comma separated strings for
// string lists and bare strings for certifications.
func Decode(r Record, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			commaSeparatedHook,
			certificationHook,
			emptyStringToNilHook,
		),
	})
	if err != nil {
		return fmt.Errorf("create decoder: %w", err)
	}

	if err := dec.Decode(map[string]any(r)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	return nil
}

// DecodeCandidate decodes a raw candidate record.
func DecodeCandidate(r Record) (*Candidate, error) {
	var c Candidate
	if err := Decode(r, &c); err != nil {
		return nil, fmt.Errorf("candidate: %w", err)
	}
	if c.ID == "" {
		c.ID = r.ID()
	}
	return &c, nil
}

// DecodeJob decodes a raw job record.
func DecodeJob(r Record) (*Job, error) {
	var j Job
	if err := Decode(r, &j); err != nil {
		return nil, fmt.Errorf("job: %w", err)
	}
	if j.ID == "" {
		j.ID = r.ID()
	}
	return &j, nil
}

var (
	stringSliceType   = reflect.TypeOf([]string{})
	certificationType = reflect.TypeOf(Certification{})
)

func emptyStringToNilHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Ptr {
		return data, nil
	}
	if strings.TrimSpace(data.(string)) == "" {
		return nil, nil
	}
	return data, nil
}

func commaSeparatedHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != stringSliceType {
		return data, nil
	}
	return SplitList(data.(string)), nil
}

func certificationHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != certificationType {
		return data, nil
	}
	return map[string]any{"name": strings.TrimSpace(data.(string))}, nil
}

// SplitList splits a comma separated string, trimming entries and skipping empty ones.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
