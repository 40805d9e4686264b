package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  candidate  ", Value: "  c-1  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != "candidate" || fields[0].String != "c-1" {
		t.Fatalf("unexpected candidate field: %+v", fields[0])
	}

	if empty := StringFields(); len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	WithFields(zap.New(core), zap.String("stage", "growth")).Info("stage finished")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["stage"]; got != "growth" {
		t.Fatalf("expected stage to be growth, got %q", got)
	}

	// a nil logger must not panic
	WithFields(nil, zap.String("stage", "insights")).Info("another log")
}

func TestWithCommonFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	WithCommonFields(zap.New(core), "cand-7", "job-3").Info("evaluated")
	WithCommonFields(zap.New(core), "", "job-3").Info("evaluated")

	entries := observed.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx[FieldCandidate] != "cand-7" || ctx[FieldJob] != "job-3" {
		t.Fatalf("unexpected fields: %v", ctx)
	}

	if _, ok := entries[1].ContextMap()[FieldCandidate]; ok {
		t.Fatalf("empty candidate id should be dropped")
	}

	if WithCommonFields(nil, "c", "j") == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}
}

func TestStage(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)

	zap.New(core).Debug("stage completed", Stage("insights"))

	if got := observed.All()[0].ContextMap()[FieldStage]; got != "insights" {
		t.Fatalf("expected stage insights, got %v", got)
	}
}
