// Package barcodegen generates DNA barcode primer pairs under GC content and
// edit distance constraints and writes ordering sheets for them.
//
// Example usage:
//
//	cfg := barcodegen.DefaultConfig()
//	cfg.NPrimers = 24
//	cfg.GCMin, cfg.GCMax = 0.4, 0.6
//	cfg.MinEditDistance = 3
//	report, err := barcodegen.Run(context.Background(), cfg, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.OutDir, report.Result.Outcome())
package barcodegen

import (
	"context"

	"github.com/bft-labs/barcodegen/internal/app"
	"github.com/bft-labs/barcodegen/internal/domain"
	"github.com/bft-labs/barcodegen/pkg/log"
)

// Config holds the options of a generation run.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = app.Config

// Result is the outcome of the generation loop.
type Result = domain.Result

// Report describes a completed run: the result, its manifest and the files written.
type Report = app.Report

// Pair is an accepted forward and reverse barcode.
type Pair = domain.Pair

// Errors returned by Run and Generate.
var (
	ErrInvalidConfig        = domain.ErrInvalidConfig
	ErrMissingQuota         = domain.ErrMissingQuota
	ErrQuotaShortfall       = domain.ErrQuotaShortfall
	ErrPlateCapacity        = domain.ErrPlateCapacity
	ErrMalformedBarcodeFile = domain.ErrMalformedBarcodeFile
)

// DefaultConfig returns a Config with sensible default values.
// NPrimers must be set before calling Run.
func DefaultConfig() Config {
	return app.DefaultConfig()
}

// Run generates barcode pairs and writes the configured outputs.
// A nil logger discards log output.
func Run(ctx context.Context, cfg Config, logger log.Logger) (Report, error) {
	return app.NewPipeline(cfg, logger).Run(ctx)
}

// Generate runs the generation loop only, without writing anything.
func Generate(cfg Config, logger log.Logger) (Result, error) {
	return app.NewPipeline(cfg, logger).Generate()
}
