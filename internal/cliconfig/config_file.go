package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileConfig mirrors Config using the snake_case keys of the config file.
// Pointers distinguish "unset" from zero where zero is a valid setting.
type FileConfig struct {
	NPrimers        int         `toml:"n_primers" yaml:"n_primers"`
	BarcodeLength   int         `toml:"barcode_length" yaml:"barcode_length"`
	RandomSeed      interface{} `toml:"random_seed" yaml:"random_seed"`
	NAttempts       *int        `toml:"n_attempts" yaml:"n_attempts"`
	UseBarcodesFrom string      `toml:"use_barcodes_from" yaml:"use_barcodes_from"`
	GCMin           *float64    `toml:"gc_min" yaml:"gc_min"`
	GCMax           *float64    `toml:"gc_max" yaml:"gc_max"`
	MinEditDistance *int        `toml:"min_edit_distance" yaml:"min_edit_distance"`

	ReverseTransform string `toml:"reverse_transform" yaml:"reverse_transform"`
	ReverseTrim      *int   `toml:"reverse_trim" yaml:"reverse_trim"`
	LegacySeedReuse  *bool  `toml:"legacy_seed_reuse" yaml:"legacy_seed_reuse"`

	EnforceExtraChecks     *bool    `toml:"enforce_extra_checks" yaml:"enforce_extra_checks"`
	HomopolymerMax         int      `toml:"homopolymer_max" yaml:"homopolymer_max"`
	JunctionHomopolymerMax int      `toml:"junction_homopolymer_max" yaml:"junction_homopolymer_max"`
	MaxHeteroStretch       int      `toml:"max_hetero_stretch" yaml:"max_hetero_stretch"`
	AvoidSeqs              []string `toml:"avoid_seqs" yaml:"avoid_seqs"`
	AvoidAtJunctionSeqs    []string `toml:"avoid_at_junction_seqs" yaml:"avoid_at_junction_seqs"`

	FlankingSeqFwd        string `toml:"flanking_seq_fwd" yaml:"flanking_seq_fwd"`
	FlankingSeqRev        string `toml:"flanking_seq_rev" yaml:"flanking_seq_rev"`
	TemplateBindingSeqFwd string `toml:"template_binding_seq_fwd" yaml:"template_binding_seq_fwd"`
	TemplateBindingSeqRev string `toml:"template_binding_seq_rev" yaml:"template_binding_seq_rev"`

	Outdir          string `toml:"outdir" yaml:"outdir"`
	TimestampOutdir *bool  `toml:"timestamp_outdir" yaml:"timestamp_outdir"`
	FilenameIDT     string `toml:"filename_idt" yaml:"filename_idt"`
	FilenameFailed  string `toml:"filename_failed" yaml:"filename_failed"`
	FilenameFASTA   string `toml:"filename_fasta" yaml:"filename_fasta"`
	FilenamePlate   string `toml:"filename_plate" yaml:"filename_plate"`
	PlateRows       int    `toml:"plate_rows" yaml:"plate_rows"`
	PlateCols       int    `toml:"plate_cols" yaml:"plate_cols"`
	PlateSplit      *bool  `toml:"plate_split" yaml:"plate_split"`
	Scale           string `toml:"scale" yaml:"scale"`
	Purification    string `toml:"purification" yaml:"purification"`
	Manifest        *bool  `toml:"manifest" yaml:"manifest"`
	FailOnShortfall *bool  `toml:"fail_on_shortfall" yaml:"fail_on_shortfall"`
	KeepRuns        int    `toml:"keep_runs" yaml:"keep_runs"`

	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// LoadFileConfig reads and parses a config file. Files ending in .toml are
// parsed as TOML; everything else as YAML.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(b, &fc)
	default:
		err = yaml.Unmarshal(b, &fc)
	}
	if err != nil {
		return fc, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}

// DefaultConfigPath returns the config file read when none is given.
func DefaultConfigPath() string {
	return DefaultConfigFile
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
// Relative use_barcodes_from paths are resolved against baseDir.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool, baseDir string) error {
	s := newConfigSetter(changed)

	s.setInt("n-primers", fc.NPrimers, &cfg.NPrimers)
	s.setInt("barcode-length", fc.BarcodeLength, &cfg.BarcodeLength)
	if fc.RandomSeed != nil {
		s.setSeed("seed", fmt.Sprint(fc.RandomSeed), &cfg.Seed)
	}
	s.setIntPtr("attempts", fc.NAttempts, &cfg.Attempts)
	s.setString("barcodes-from", rootify(fc.UseBarcodesFrom, baseDir), &cfg.ProvidedPath)
	s.setFloatPtr("gc-min", fc.GCMin, &cfg.GCMin)
	s.setFloatPtr("gc-max", fc.GCMax, &cfg.GCMax)
	s.setIntPtr("min-edit-distance", fc.MinEditDistance, &cfg.MinEditDistance)

	s.setString("reverse-transform", fc.ReverseTransform, &cfg.ReverseTransform)
	s.setIntPtr("reverse-trim", fc.ReverseTrim, &cfg.ReverseTrim)
	s.setBool("legacy-seed-reuse", fc.LegacySeedReuse, &cfg.LegacySeedReuse)

	s.setBool("enforce-extra-checks", fc.EnforceExtraChecks, &cfg.EnforceExtraChecks)
	s.setInt("homopolymer-max", fc.HomopolymerMax, &cfg.HomopolymerMax)
	s.setInt("junction-homopolymer-max", fc.JunctionHomopolymerMax, &cfg.JunctionHomopolymerMax)
	s.setInt("max-hetero-stretch", fc.MaxHeteroStretch, &cfg.MaxHeteroStretch)
	s.setStrings("avoid-seq", fc.AvoidSeqs, &cfg.AvoidSeqs)
	s.setStrings("avoid-junction-seq", fc.AvoidAtJunctionSeqs, &cfg.AvoidAtJunctionSeqs)

	s.setString("flanking-fwd", fc.FlankingSeqFwd, &cfg.FlankingFwd)
	s.setString("flanking-rev", fc.FlankingSeqRev, &cfg.FlankingRev)
	s.setString("template-fwd", fc.TemplateBindingSeqFwd, &cfg.TemplateFwd)
	s.setString("template-rev", fc.TemplateBindingSeqRev, &cfg.TemplateRev)

	s.setString("outdir", rootify(fc.Outdir, baseDir), &cfg.OutDir)
	s.setBool("timestamp-outdir", fc.TimestampOutdir, &cfg.TimestampOutDir)
	s.setString("idt", fc.FilenameIDT, &cfg.FilenameIDT)
	s.setString("failed", fc.FilenameFailed, &cfg.FilenameFailed)
	s.setString("fasta", fc.FilenameFASTA, &cfg.FilenameFASTA)
	s.setString("plate", fc.FilenamePlate, &cfg.FilenamePlate)
	s.setInt("plate-rows", fc.PlateRows, &cfg.PlateRows)
	s.setInt("plate-cols", fc.PlateCols, &cfg.PlateCols)
	s.setBool("plate-split", fc.PlateSplit, &cfg.PlateSplit)
	s.setString("scale", fc.Scale, &cfg.Scale)
	s.setString("purification", fc.Purification, &cfg.Purification)
	s.setBool("manifest", fc.Manifest, &cfg.Manifest)
	s.setBool("fail-on-shortfall", fc.FailOnShortfall, &cfg.FailOnShortfall)
	s.setInt("keep-runs", fc.KeepRuns, &cfg.KeepRuns)

	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	return nil
}

// ToFileConfig renders cfg with the keys of the config file, so that a
// resolved configuration can be saved and loaded again.
func ToFileConfig(cfg Config) FileConfig {
	attempts := cfg.Attempts
	gcMin, gcMax := cfg.GCMin, cfg.GCMax
	minDist := cfg.MinEditDistance
	trim := cfg.ReverseTrim
	legacy := cfg.LegacySeedReuse
	extra := cfg.EnforceExtraChecks
	timestamp := cfg.TimestampOutDir
	split := cfg.PlateSplit
	manifest := cfg.Manifest
	strict := cfg.FailOnShortfall

	return FileConfig{
		NPrimers:        cfg.NPrimers,
		BarcodeLength:   cfg.BarcodeLength,
		RandomSeed:      cfg.Seed,
		NAttempts:       &attempts,
		UseBarcodesFrom: cfg.ProvidedPath,
		GCMin:           &gcMin,
		GCMax:           &gcMax,
		MinEditDistance: &minDist,

		ReverseTransform: cfg.ReverseTransform,
		ReverseTrim:      &trim,
		LegacySeedReuse:  &legacy,

		EnforceExtraChecks:     &extra,
		HomopolymerMax:         cfg.HomopolymerMax,
		JunctionHomopolymerMax: cfg.JunctionHomopolymerMax,
		MaxHeteroStretch:       cfg.MaxHeteroStretch,
		AvoidSeqs:              cfg.AvoidSeqs,
		AvoidAtJunctionSeqs:    cfg.AvoidAtJunctionSeqs,

		FlankingSeqFwd:        cfg.FlankingFwd,
		FlankingSeqRev:        cfg.FlankingRev,
		TemplateBindingSeqFwd: cfg.TemplateFwd,
		TemplateBindingSeqRev: cfg.TemplateRev,

		Outdir:          cfg.OutDir,
		TimestampOutdir: &timestamp,
		FilenameIDT:     cfg.FilenameIDT,
		FilenameFailed:  cfg.FilenameFailed,
		FilenameFASTA:   cfg.FilenameFASTA,
		FilenamePlate:   cfg.FilenamePlate,
		PlateRows:       cfg.PlateRows,
		PlateCols:       cfg.PlateCols,
		PlateSplit:      &split,
		Scale:           cfg.Scale,
		Purification:    cfg.Purification,
		Manifest:        &manifest,
		FailOnShortfall: &strict,
		KeepRuns:        cfg.KeepRuns,

		LogLevel: cfg.LogLevel,
	}
}

// rootify returns path unchanged if it is empty or absolute,
// otherwise it joins baseDir and path.
func rootify(path, baseDir string) string {
	if path == "" || baseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
