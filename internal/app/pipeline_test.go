package app

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bft-labs/barcodegen/internal/domain"
)

func fixedClock() time.Time {
	return time.Date(2024, 10, 19, 14, 32, 0, 0, time.UTC)
}

func testConfig(t *testing.T) Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.NPrimers = 2
	cfg.Attempts = 50
	cfg.Seed = 1
	cfg.OutDir = filepath.Join(t.TempDir(), "out")
	cfg.FilenameIDT = "idt.csv"
	cfg.FilenameFailed = "failed.csv"
	cfg.FilenameFASTA = "primers.fasta"
	cfg.FilenamePlate = "plate.csv"
	return cfg
}

func writeProvided(t *testing.T, rows string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "barcodes.csv")
	if err := os.WriteFile(path, []byte("name,barcode\n"+rows), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid", func(c *Config) {}, nil},
		{"missing n_primers", func(c *Config) { c.NPrimers = 0 }, domain.ErrMissingQuota},
		{"zero barcode length", func(c *Config) { c.BarcodeLength = 0 }, domain.ErrInvalidConfig},
		{"negative attempts", func(c *Config) { c.Attempts = -1 }, domain.ErrInvalidConfig},
		{"gc min above max", func(c *Config) { c.GCMin, c.GCMax = 0.7, 0.3 }, domain.ErrInvalidConfig},
		{"gc max above one", func(c *Config) { c.GCMax = 1.2 }, domain.ErrInvalidConfig},
		{"negative distance", func(c *Config) { c.MinEditDistance = -1 }, domain.ErrInvalidConfig},
		{"unknown transform", func(c *Config) { c.ReverseTransform = "mirror" }, domain.ErrInvalidConfig},
		{"too many plate rows", func(c *Config) { c.FilenamePlate = "p.csv"; c.PlateRows = 27 }, domain.ErrInvalidConfig},
		{"plate rows ignored without plate output", func(c *Config) { c.PlateRows = 0 }, nil},
		{"negative keep runs", func(c *Config) { c.KeepRuns = -1 }, domain.ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.NPrimers = 4
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPipeline_Run(t *testing.T) {
	cfg := testConfig(t)
	p := NewPipeline(cfg, nil, WithClock(fixedClock), WithRunID(func() string { return "run-1" }))

	report, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	wantDir := filepath.Join(cfg.OutDir, "241019_1432")
	if report.OutDir != wantDir {
		t.Errorf("OutDir = %s, want %s", report.OutDir, wantDir)
	}
	for _, name := range []string{"idt.csv", "failed.csv", "primers.fasta", "plate.csv", "run.json"} {
		if _, err := os.Stat(filepath.Join(wantDir, name)); err != nil {
			t.Errorf("missing output %s: %v", name, err)
		}
	}
	if len(report.Outputs) != 4 {
		t.Errorf("outputs = %v", report.Outputs)
	}

	data, err := os.ReadFile(filepath.Join(wantDir, "run.json"))
	if err != nil {
		t.Fatal(err)
	}
	var m domain.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if m.RunID != "run-1" || m.Accepted != 2 || !m.Complete || m.State != "QuotaMet" {
		t.Errorf("manifest = %+v", m)
	}
	if m.Digest != Digest(report.Result) {
		t.Errorf("manifest digest %s != %s", m.Digest, Digest(report.Result))
	}
}

func TestPipeline_ProvidedBarcodes(t *testing.T) {
	cfg := testConfig(t)
	cfg.TimestampOutDir = false
	cfg.Manifest = false
	cfg.MinEditDistance = 3
	cfg.ProvidedPath = writeProvided(t, "a,ACGTACGTAC\nb,ACGTACGTAA\nc,TGCATGCATG\n")

	report, err := NewPipeline(cfg, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	res := report.Result
	if len(res.Pairs) != 2 {
		t.Fatalf("pairs = %v", res.Pairs)
	}
	if res.Pairs[0].Forward != "ACGTACGTAC" || res.Pairs[1].Forward != "TGCATGCATG" {
		t.Errorf("pairs = %v", res.Pairs)
	}
	if len(res.Failures) != 1 || res.Failures[0].Barcode != "ACGTACGTAA" {
		t.Errorf("failures = %v", res.Failures)
	}
	if report.OutDir != cfg.OutDir {
		t.Errorf("OutDir = %s, want %s", report.OutDir, cfg.OutDir)
	}
	if _, err := os.Stat(filepath.Join(cfg.OutDir, "run.json")); !os.IsNotExist(err) {
		t.Error("manifest written although disabled")
	}
}

func TestPipeline_MissingProvidedFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.ProvidedPath = filepath.Join(t.TempDir(), "nope.csv")
	if _, err := NewPipeline(cfg, nil).Run(context.Background()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want ErrNotExist", err)
	}
}

func TestPipeline_InvalidConfigFailsFast(t *testing.T) {
	cfg := testConfig(t)
	cfg.NPrimers = 0
	_, err := NewPipeline(cfg, nil).Run(context.Background())
	if !errors.Is(err, domain.ErrMissingQuota) {
		t.Fatalf("err = %v, want ErrMissingQuota", err)
	}
	if _, statErr := os.Stat(cfg.OutDir); !os.IsNotExist(statErr) {
		t.Error("output dir created for invalid config")
	}
}

func TestPipeline_Shortfall(t *testing.T) {
	cfg := testConfig(t)
	cfg.LegacySeedReuse = true

	report, err := NewPipeline(cfg, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("shortfall without fail_on_shortfall returned %v", err)
	}
	if report.Result.Shortfall() != 1 {
		t.Errorf("shortfall = %d, want 1", report.Result.Shortfall())
	}

	cfg.FailOnShortfall = true
	cfg.OutDir = filepath.Join(t.TempDir(), "strict")
	report, err = NewPipeline(cfg, nil).Run(context.Background())
	if !errors.Is(err, domain.ErrQuotaShortfall) {
		t.Fatalf("err = %v, want ErrQuotaShortfall", err)
	}
	if len(report.Outputs) == 0 {
		t.Error("outputs not written before shortfall error")
	}
}

func TestPipeline_PlateCapacity(t *testing.T) {
	cfg := testConfig(t)
	cfg.PlateRows, cfg.PlateCols = 1, 3
	_, err := NewPipeline(cfg, nil).Run(context.Background())
	if !errors.Is(err, domain.ErrPlateCapacity) {
		t.Errorf("err = %v, want ErrPlateCapacity", err)
	}
}

func TestPipeline_KeepRuns(t *testing.T) {
	cfg := testConfig(t)
	cfg.KeepRuns = 2

	clock := fixedClock()
	var dirs []string
	for i := 0; i < 3; i++ {
		now := clock.Add(time.Duration(i) * time.Minute)
		report, err := NewPipeline(cfg, nil, WithClock(func() time.Time { return now })).Run(context.Background())
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		dirs = append(dirs, report.OutDir)
	}

	if _, err := os.Stat(dirs[0]); !os.IsNotExist(err) {
		t.Errorf("oldest run %s should be removed, stat err = %v", dirs[0], err)
	}
	for _, dir := range dirs[1:] {
		if _, err := os.Stat(dir); err != nil {
			t.Errorf("run %s should be kept: %v", dir, err)
		}
	}
}
