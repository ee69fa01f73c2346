package app

import (
	"fmt"

	"github.com/bft-labs/barcodegen/internal/domain"
	"github.com/bft-labs/barcodegen/internal/pairing"
	"github.com/bft-labs/barcodegen/internal/source"
)

// Config holds the options of one generation run and its outputs.
type Config struct {
	// Generation
	NPrimers        int
	BarcodeLength   int
	Seed            int64
	Attempts        int
	ProvidedPath    string
	GCMin           float64
	GCMax           float64
	MinEditDistance int

	// Pairing
	ReverseTransform string
	ReverseTrim      int
	LegacySeedReuse  bool

	// Optional checkers, enforced only with EnforceExtraChecks. Zero limits are off.
	EnforceExtraChecks     bool
	HomopolymerMax         int
	JunctionHomopolymerMax int
	MaxHeteroStretch       int
	AvoidSeqs              []string
	AvoidAtJunctionSeqs    []string

	// Primer assembly
	FlankingFwd string
	FlankingRev string
	TemplateFwd string
	TemplateRev string

	// Outputs
	OutDir          string
	TimestampOutDir bool
	FilenameIDT     string
	FilenameFailed  string
	FilenameFASTA   string
	FilenamePlate   string
	PlateRows       int
	PlateCols       int
	PlateSplit      bool
	Scale           string
	Purification    string
	Manifest        bool
	FailOnShortfall bool

	// KeepRuns retains only the newest timestamped run directories. Zero keeps all.
	KeepRuns int
}

// DefaultConfig returns a Config with default values. NPrimers has no
// default and must be set.
func DefaultConfig() Config {
	return Config{
		BarcodeLength:    10,
		Seed:             source.DefaultSeed,
		Attempts:         1000,
		GCMin:            0,
		GCMax:            1,
		MinEditDistance:  1,
		ReverseTransform: pairing.Trim,
		ReverseTrim:      pairing.DefaultTrim,
		OutDir:           "../output",
		TimestampOutDir:  true,
		PlateRows:        8,
		PlateCols:        12,
		Scale:            "25nm",
		Purification:     "STD",
		Manifest:         true,
	}
}

// Validate checks the configuration for errors. All errors wrap
// domain.ErrInvalidConfig; a missing quota also wraps domain.ErrMissingQuota.
func (c *Config) Validate() error {
	if c.NPrimers <= 0 {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, domain.ErrMissingQuota)
	}
	if c.BarcodeLength <= 0 {
		return invalid("barcode_length must be positive, got %d", c.BarcodeLength)
	}
	if c.Attempts < 0 {
		return invalid("n_attempts must not be negative, got %d", c.Attempts)
	}
	if c.GCMin < 0 || c.GCMax > 1 || c.GCMin > c.GCMax {
		return invalid("gc bounds must satisfy 0 <= gc_min <= gc_max <= 1, got %g-%g", c.GCMin, c.GCMax)
	}
	if c.MinEditDistance < 0 {
		return invalid("min_edit_distance must not be negative, got %d", c.MinEditDistance)
	}
	if _, err := pairing.ByName(c.ReverseTransform, c.ReverseTrim); err != nil {
		return invalid("%v", err)
	}
	if c.HomopolymerMax < 0 || c.JunctionHomopolymerMax < 0 || c.MaxHeteroStretch < 0 {
		return invalid("homopolymer and stretch limits must not be negative")
	}
	if c.KeepRuns < 0 {
		return invalid("keep_runs must not be negative, got %d", c.KeepRuns)
	}
	if c.FilenamePlate != "" {
		if c.PlateRows < 1 || c.PlateRows > 26 {
			return invalid("plate_rows must be between 1 and 26, got %d", c.PlateRows)
		}
		if c.PlateCols < 1 {
			return invalid("plate_cols must be positive, got %d", c.PlateCols)
		}
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, fmt.Sprintf(format, args...))
}
