package cliconfig

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/bft-labs/barcodegen/internal/source"
)

func TestApplyFileConfig(t *testing.T) {
	zero := 0
	half := 0.5
	falseVal := false

	tests := []struct {
		name    string
		fc      FileConfig
		changed map[string]bool
		baseDir string
		check   func(t *testing.T, cfg Config)
	}{
		{
			name: "applies file values",
			fc: FileConfig{
				NPrimers:        24,
				RandomSeed:      int64(9),
				NAttempts:       &zero,
				GCMin:           &half,
				MinEditDistance: &zero,
				TimestampOutdir: &falseVal,
				AvoidSeqs:       []string{"GAATTC"},
				FilenameIDT:     "idt.csv",
			},
			changed: map[string]bool{},
			check: func(t *testing.T, cfg Config) {
				if cfg.NPrimers != 24 {
					t.Errorf("NPrimers = %v, want 24", cfg.NPrimers)
				}
				if cfg.Seed != 9 {
					t.Errorf("Seed = %v, want 9", cfg.Seed)
				}
				if cfg.Attempts != 0 {
					t.Errorf("Attempts = %v, want 0", cfg.Attempts)
				}
				if cfg.GCMin != 0.5 {
					t.Errorf("GCMin = %v, want 0.5", cfg.GCMin)
				}
				if cfg.MinEditDistance != 0 {
					t.Errorf("MinEditDistance = %v, want 0", cfg.MinEditDistance)
				}
				if cfg.TimestampOutDir {
					t.Error("TimestampOutDir = true, want false")
				}
				if cfg.FilenameIDT != "idt.csv" {
					t.Errorf("FilenameIDT = %v, want idt.csv", cfg.FilenameIDT)
				}
			},
		},
		{
			name: "keeps defaults for unset values",
			fc:   FileConfig{NPrimers: 2},
			check: func(t *testing.T, cfg Config) {
				if cfg.Attempts != 1000 {
					t.Errorf("Attempts = %v, want 1000", cfg.Attempts)
				}
				if cfg.GCMax != 1 {
					t.Errorf("GCMax = %v, want 1", cfg.GCMax)
				}
				if cfg.Seed != source.DefaultSeed {
					t.Errorf("Seed = %v, want %v", cfg.Seed, source.DefaultSeed)
				}
			},
		},
		{
			name:    "respects changed flags",
			fc:      FileConfig{NPrimers: 24, Scale: "1um"},
			changed: map[string]bool{"n-primers": true},
			check: func(t *testing.T, cfg Config) {
				if cfg.NPrimers != 0 {
					t.Errorf("NPrimers = %v, want 0 (flag wins)", cfg.NPrimers)
				}
				if cfg.Scale != "1um" {
					t.Errorf("Scale = %v, want 1um", cfg.Scale)
				}
			},
		},
		{
			name: "resolves relative paths against base dir",
			fc: FileConfig{
				UseBarcodesFrom: "barcodes.csv",
				Outdir:          "/abs/out",
			},
			baseDir: "/etc/barcodegen",
			check: func(t *testing.T, cfg Config) {
				if want := filepath.Join("/etc/barcodegen", "barcodes.csv"); cfg.ProvidedPath != want {
					t.Errorf("ProvidedPath = %v, want %v", cfg.ProvidedPath, want)
				}
				if cfg.OutDir != "/abs/out" {
					t.Errorf("OutDir = %v, want /abs/out", cfg.OutDir)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			if err := ApplyFileConfig(&cfg, tt.fc, tt.changed, tt.baseDir); err != nil {
				t.Fatalf("ApplyFileConfig() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "yaml",
			file: "config.yaml",
			content: `
n_primers: 24
random_seed: 42
gc_min: 0.4
avoid_seqs: [GAATTC, GGATCC]
legacy_seed_reuse: true
`,
		},
		{
			name: "toml",
			file: "config.toml",
			content: `
n_primers = 24
random_seed = 42
gc_min = 0.4
avoid_seqs = ["GAATTC", "GGATCC"]
legacy_seed_reuse = true
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to create test config file: %v", err)
			}

			fc, err := LoadFileConfig(configPath)
			if err != nil {
				t.Fatalf("LoadFileConfig() error = %v", err)
			}

			if fc.NPrimers != 24 {
				t.Errorf("NPrimers = %v, want 24", fc.NPrimers)
			}
			if fc.GCMin == nil || *fc.GCMin != 0.4 {
				t.Errorf("GCMin = %v, want 0.4", fc.GCMin)
			}
			if len(fc.AvoidSeqs) != 2 {
				t.Errorf("AvoidSeqs = %v, want 2 entries", fc.AvoidSeqs)
			}
			if fc.LegacySeedReuse == nil || !*fc.LegacySeedReuse {
				t.Errorf("LegacySeedReuse = %v, want true", fc.LegacySeedReuse)
			}

			cfg := DefaultConfig()
			cfg.Seed = 0
			if err := ApplyFileConfig(&cfg, fc, map[string]bool{}, ""); err != nil {
				t.Fatalf("ApplyFileConfig() error = %v", err)
			}
			if cfg.Seed != 42 {
				t.Errorf("Seed = %v, want 42", cfg.Seed)
			}
		})
	}
}

func TestLoadFileConfig_InvalidFile(t *testing.T) {
	_, err := LoadFileConfig("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("LoadFileConfig() expected error for nonexistent file")
	}
}

func TestLoadFileConfig_Invalid(t *testing.T) {
	tests := []struct {
		file    string
		content string
	}{
		{"invalid.toml", "n_primers = 4\nthis is not valid toml\n"},
		{"invalid.yaml", "n_primers: [unclosed\n"},
		{"wrongtype.yaml", "n_primers: many\n"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to create test config file: %v", err)
			}
			if _, err := LoadFileConfig(configPath); err == nil {
				t.Error("LoadFileConfig() expected error")
			}
		})
	}
}

func TestDefaultConfigPath(t *testing.T) {
	if path := DefaultConfigPath(); path != "config.yaml" {
		t.Errorf("DefaultConfigPath() = %v, want config.yaml", path)
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existingFile := filepath.Join(tmpDir, "exists.txt")

	if err := os.WriteFile(existingFile, []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if !FileExists(existingFile) {
		t.Error("FileExists() = false, want true for existing file")
	}

	if FileExists(filepath.Join(tmpDir, "nonexistent.txt")) {
		t.Error("FileExists() = true, want false for nonexistent file")
	}
}

func TestToFileConfig_RoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NPrimers = 12
	cfg.Seed = 1234
	cfg.Attempts = 0
	cfg.GCMin = 0.35
	cfg.AvoidSeqs = []string{"GAATTC"}
	cfg.TimestampOutDir = false
	cfg.LogLevel = "debug"

	out, err := yaml.Marshal(ToFileConfig(cfg))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	path := filepath.Join(t.TempDir(), "resolved.yaml")
	if err := os.WriteFile(path, out, 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}
	got := DefaultConfig()
	if err := ApplyFileConfig(&got, fc, map[string]bool{}, ""); err != nil {
		t.Fatalf("ApplyFileConfig() error = %v", err)
	}

	if got.NPrimers != 12 || got.Seed != 1234 || got.Attempts != 0 {
		t.Errorf("got NPrimers=%d Seed=%d Attempts=%d, want 12 1234 0", got.NPrimers, got.Seed, got.Attempts)
	}
	if got.GCMin != 0.35 {
		t.Errorf("GCMin = %v, want 0.35", got.GCMin)
	}
	if len(got.AvoidSeqs) != 1 || got.AvoidSeqs[0] != "GAATTC" {
		t.Errorf("AvoidSeqs = %v", got.AvoidSeqs)
	}
	if got.TimestampOutDir {
		t.Error("TimestampOutDir = true, want false")
	}
	if got.LogLevel != "debug" {
		t.Errorf("LogLevel = %v, want debug", got.LogLevel)
	}
}
