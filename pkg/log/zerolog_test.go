package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestZerologAdapter_Fields(t *testing.T) {
	var buf bytes.Buffer
	z := NewZerologAdapterWithLogger(zerolog.New(&buf))

	z.Info("generated",
		String("state", "QuotaMet"),
		Int("accepted", 2),
		Float64("gc_min", 0.4),
		Bool("partial", false),
		Strings("outputs", []string{"a.csv", "b.fasta"}),
		Err(errors.New("boom")),
	)

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal log line: %v (%s)", err, buf.String())
	}
	if got["message"] != "generated" {
		t.Errorf("message = %v, want generated", got["message"])
	}
	if got["state"] != "QuotaMet" {
		t.Errorf("state = %v", got["state"])
	}
	if got["accepted"] != float64(2) {
		t.Errorf("accepted = %v", got["accepted"])
	}
	if got["error"] != "boom" {
		t.Errorf("error = %v", got["error"])
	}
	outs, ok := got["outputs"].([]interface{})
	if !ok || len(outs) != 2 {
		t.Errorf("outputs = %v", got["outputs"])
	}
}

func TestZerologAdapter_Level(t *testing.T) {
	var buf bytes.Buffer
	z := NewZerologAdapterWithLogger(zerolog.New(&buf).Level(zerolog.WarnLevel))

	z.Debug("hidden")
	z.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}
	z.Warn("shown")
	if buf.Len() == 0 {
		t.Fatal("expected warn output")
	}
}

func TestNoopLogger(t *testing.T) {
	var l Logger = NewNoopLogger()
	l.Debug("x")
	l.Info("x", Int("n", 1))
	l.Warn("x")
	l.Error("x", Err(errors.New("e")))
}
