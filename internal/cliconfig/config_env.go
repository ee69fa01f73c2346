package cliconfig

import (
	"os"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable barcodegen reads.
const EnvPrefix = "BARCODEGEN_"

// LoadEnvFile loads KEY=VALUE pairs from a .env file into the process
// environment. Variables that are already set are not overridden.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	return godotenv.Load(path)
}

// ApplyEnvConfig applies configuration from environment variables (BARCODEGEN_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)
	env := func(key string) string { return os.Getenv(EnvPrefix + key) }

	if err := s.setIntFromString("n-primers", env("N_PRIMERS"), &cfg.NPrimers); err != nil {
		return err
	}
	if err := s.setIntFromString("barcode-length", env("BARCODE_LENGTH"), &cfg.BarcodeLength); err != nil {
		return err
	}
	s.setSeed("seed", env("RANDOM_SEED"), &cfg.Seed)
	if err := s.setIntFromString("attempts", env("N_ATTEMPTS"), &cfg.Attempts); err != nil {
		return err
	}
	s.setString("barcodes-from", env("USE_BARCODES_FROM"), &cfg.ProvidedPath)
	if err := s.setFloatFromString("gc-min", env("GC_MIN"), &cfg.GCMin); err != nil {
		return err
	}
	if err := s.setFloatFromString("gc-max", env("GC_MAX"), &cfg.GCMax); err != nil {
		return err
	}
	if err := s.setIntFromString("min-edit-distance", env("MIN_EDIT_DISTANCE"), &cfg.MinEditDistance); err != nil {
		return err
	}

	s.setString("reverse-transform", env("REVERSE_TRANSFORM"), &cfg.ReverseTransform)
	if err := s.setIntFromString("reverse-trim", env("REVERSE_TRIM"), &cfg.ReverseTrim); err != nil {
		return err
	}
	s.setBoolFromString("legacy-seed-reuse", env("LEGACY_SEED_REUSE"), &cfg.LegacySeedReuse)

	s.setBoolFromString("enforce-extra-checks", env("ENFORCE_EXTRA_CHECKS"), &cfg.EnforceExtraChecks)
	if err := s.setIntFromString("homopolymer-max", env("HOMOPOLYMER_MAX"), &cfg.HomopolymerMax); err != nil {
		return err
	}
	if err := s.setIntFromString("junction-homopolymer-max", env("JUNCTION_HOMOPOLYMER_MAX"), &cfg.JunctionHomopolymerMax); err != nil {
		return err
	}
	if err := s.setIntFromString("max-hetero-stretch", env("MAX_HETERO_STRETCH"), &cfg.MaxHeteroStretch); err != nil {
		return err
	}
	s.setStringsFromString("avoid-seq", env("AVOID_SEQS"), &cfg.AvoidSeqs)
	s.setStringsFromString("avoid-junction-seq", env("AVOID_AT_JUNCTION_SEQS"), &cfg.AvoidAtJunctionSeqs)

	s.setString("flanking-fwd", env("FLANKING_SEQ_FWD"), &cfg.FlankingFwd)
	s.setString("flanking-rev", env("FLANKING_SEQ_REV"), &cfg.FlankingRev)
	s.setString("template-fwd", env("TEMPLATE_BINDING_SEQ_FWD"), &cfg.TemplateFwd)
	s.setString("template-rev", env("TEMPLATE_BINDING_SEQ_REV"), &cfg.TemplateRev)

	s.setString("outdir", env("OUTDIR"), &cfg.OutDir)
	s.setBoolFromString("timestamp-outdir", env("TIMESTAMP_OUTDIR"), &cfg.TimestampOutDir)
	s.setString("idt", env("FILENAME_IDT"), &cfg.FilenameIDT)
	s.setString("failed", env("FILENAME_FAILED"), &cfg.FilenameFailed)
	s.setString("fasta", env("FILENAME_FASTA"), &cfg.FilenameFASTA)
	s.setString("plate", env("FILENAME_PLATE"), &cfg.FilenamePlate)
	if err := s.setIntFromString("plate-rows", env("PLATE_ROWS"), &cfg.PlateRows); err != nil {
		return err
	}
	if err := s.setIntFromString("plate-cols", env("PLATE_COLS"), &cfg.PlateCols); err != nil {
		return err
	}
	s.setBoolFromString("plate-split", env("PLATE_SPLIT"), &cfg.PlateSplit)
	s.setString("scale", env("SCALE"), &cfg.Scale)
	s.setString("purification", env("PURIFICATION"), &cfg.Purification)
	s.setBoolFromString("manifest", env("MANIFEST"), &cfg.Manifest)
	s.setBoolFromString("fail-on-shortfall", env("FAIL_ON_SHORTFALL"), &cfg.FailOnShortfall)
	if err := s.setIntFromString("keep-runs", env("KEEP_RUNS"), &cfg.KeepRuns); err != nil {
		return err
	}

	s.setString("log-level", env("LOG_LEVEL"), &cfg.LogLevel)

	return nil
}
