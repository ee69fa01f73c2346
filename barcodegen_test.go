package barcodegen

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestGenerate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NPrimers = 3
	cfg.MinEditDistance = 2

	res, err := Generate(cfg, nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(res.Pairs) > cfg.NPrimers {
		t.Errorf("got %d pairs, want at most %d", len(res.Pairs), cfg.NPrimers)
	}
	if res.Attempts > cfg.Attempts {
		t.Errorf("Attempts = %d, want at most %d", res.Attempts, cfg.Attempts)
	}
	for _, p := range res.Pairs {
		if p.Reverse.Len() != p.Forward.Len()-3 {
			t.Errorf("reverse %q not derived from forward %q", p.Reverse, p.Forward)
		}
	}
}

func TestGenerate_MissingQuota(t *testing.T) {
	_, err := Generate(DefaultConfig(), nil)
	if !errors.Is(err, ErrMissingQuota) {
		t.Errorf("Generate() error = %v, want ErrMissingQuota", err)
	}
}

func TestRun(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NPrimers = 2
	cfg.OutDir = t.TempDir()
	cfg.TimestampOutDir = false
	cfg.FilenameIDT = "idt.csv"

	report, err := Run(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.OutDir != cfg.OutDir {
		t.Errorf("OutDir = %v, want %v", report.OutDir, cfg.OutDir)
	}
	if _, err := os.Stat(filepath.Join(cfg.OutDir, "idt.csv")); err != nil {
		t.Errorf("idt.csv not written: %v", err)
	}
}
