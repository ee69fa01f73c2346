package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/bft-labs/barcodegen/internal/adapters/fs"
	"github.com/bft-labs/barcodegen/internal/adapters/output"
	"github.com/bft-labs/barcodegen/internal/checks"
	"github.com/bft-labs/barcodegen/internal/domain"
	"github.com/bft-labs/barcodegen/internal/pairing"
	"github.com/bft-labs/barcodegen/internal/ports"
	"github.com/bft-labs/barcodegen/internal/source"
	"github.com/bft-labs/barcodegen/pkg/log"
	"github.com/bft-labs/barcodegen/plugins/runcleanup"
)

// Report is what a pipeline run produced.
type Report struct {
	Result   domain.Result
	Manifest domain.Manifest
	OutDir   string
	Outputs  []string
}

// Pipeline loads provided barcodes, runs the generator and writes outputs.
type Pipeline struct {
	cfg    Config
	logger log.Logger
	now    func() time.Time
	runID  func() string
}

// PipelineOption configures optional behavior of a Pipeline.
type PipelineOption func(*Pipeline)

// WithClock overrides the clock used for timestamped output directories.
func WithClock(now func() time.Time) PipelineOption {
	return func(p *Pipeline) { p.now = now }
}

// WithRunID overrides the run id generator.
func WithRunID(f func() string) PipelineOption {
	return func(p *Pipeline) { p.runID = f }
}

// NewPipeline creates a pipeline for cfg.
func NewPipeline(cfg Config, logger log.Logger, opts ...PipelineOption) *Pipeline {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	p := &Pipeline{
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
		runID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Generate validates the config, loads provided barcodes and runs the
// generation loop without writing anything.
func (p *Pipeline) Generate() (domain.Result, error) {
	if err := p.cfg.Validate(); err != nil {
		return domain.Result{}, err
	}

	var provided []domain.Barcode
	if p.cfg.ProvidedPath != "" {
		var err error
		provided, err = source.LoadProvided(p.cfg.ProvidedPath)
		if err != nil {
			return domain.Result{}, err
		}
		p.logger.Info("loaded provided barcodes",
			log.Int("count", len(provided)),
			log.String("path", p.cfg.ProvidedPath),
		)
	} else {
		p.logger.Info("no barcode file provided, generating barcodes randomly")
	}

	transform, err := pairing.ByName(p.cfg.ReverseTransform, p.cfg.ReverseTrim)
	if err != nil {
		return domain.Result{}, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}

	if p.cfg.LegacySeedReuse {
		p.logger.Warn("legacy seed reuse enabled: every random candidate in this run is identical")
	}
	src := source.New(provided, source.NewRandom(p.cfg.BarcodeLength, p.cfg.Seed, p.cfg.LegacySeedReuse))
	checkers := checks.Build(p.checkOptions())

	gen, err := NewGenerator(p.cfg.NPrimers, p.cfg.Attempts, src, checkers, transform, p.logger)
	if err != nil {
		return domain.Result{}, err
	}

	p.logger.Info("generating primer pairs",
		log.Int("n_primers", p.cfg.NPrimers),
		log.Int("barcode_length", p.cfg.BarcodeLength),
		log.Int("n_attempts", p.cfg.Attempts),
		log.Strings("checks", checks.Names(checkers)),
	)
	res := gen.Generate()
	p.logger.Info("generation finished",
		log.String("state", res.State.String()),
		log.Int("accepted", len(res.Pairs)),
		log.Int("failed", len(res.Failures)),
		log.Int("attempts", res.Attempts),
	)
	if out := res.Outcome(); !out.Complete {
		p.logger.Warn("quota not met", log.String("reason", out.Reason), log.Int("shortfall", res.Shortfall()))
	}
	return res, nil
}

// Run generates barcodes and writes every configured output. With
// FailOnShortfall set, a partial result still writes outputs and then
// returns an error wrapping domain.ErrQuotaShortfall.
func (p *Pipeline) Run(ctx context.Context) (Report, error) {
	started := p.now()

	res, err := p.Generate()
	if err != nil {
		return Report{}, err
	}
	report := Report{Result: res}

	dir, err := output.PrepareDir(p.cfg.OutDir, p.cfg.TimestampOutDir, started)
	if err != nil {
		return report, err
	}
	report.OutDir = dir

	for _, w := range p.writers(dir) {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		paths, err := w.Write(ctx, res)
		report.Outputs = append(report.Outputs, paths...)
		if err != nil {
			return report, fmt.Errorf("%s output: %w", w.Name(), err)
		}
		for _, path := range paths {
			p.logger.Info("wrote output", log.String("writer", w.Name()), log.String("path", path))
		}
	}

	report.Manifest = p.manifest(started, res, report.Outputs)
	if p.cfg.Manifest {
		path, err := fs.NewManifestFile(dir).Save(ctx, report.Manifest)
		if err != nil {
			return report, fmt.Errorf("save manifest: %w", err)
		}
		p.logger.Info("wrote manifest", log.String("path", path), log.String("digest", report.Manifest.Digest))
	}

	if p.cfg.KeepRuns > 0 && p.cfg.TimestampOutDir && p.cfg.Manifest {
		cleaner := runcleanup.New(runcleanup.Config{Keep: p.cfg.KeepRuns}, p.logger)
		if _, err := cleaner.Prune(ctx, p.cfg.OutDir, dir); err != nil {
			p.logger.Warn("run cleanup failed", log.Err(err))
		}
	}

	if p.cfg.FailOnShortfall && res.Shortfall() > 0 {
		return report, fmt.Errorf("%w: %s", domain.ErrQuotaShortfall, res.Outcome().Reason)
	}
	return report, nil
}

func (p *Pipeline) checkOptions() checks.Options {
	return checks.Options{
		GCMin:                  p.cfg.GCMin,
		GCMax:                  p.cfg.GCMax,
		MinDistance:            p.cfg.MinEditDistance,
		Extra:                  p.cfg.EnforceExtraChecks,
		HomopolymerMax:         p.cfg.HomopolymerMax,
		MaxHeteroStretch:       p.cfg.MaxHeteroStretch,
		AvoidSeqs:              p.cfg.AvoidSeqs,
		AvoidAtJunctionSeqs:    p.cfg.AvoidAtJunctionSeqs,
		JunctionHomopolymerMax: p.cfg.JunctionHomopolymerMax,
		FlankFwd:               p.cfg.FlankingFwd,
		TemplateFwd:            p.cfg.TemplateFwd,
	}
}

// writers returns the writers for every configured filename, in a fixed order.
func (p *Pipeline) writers(dir string) []ports.ResultWriter {
	asm := output.Assembly{
		FlankingFwd: p.cfg.FlankingFwd,
		FlankingRev: p.cfg.FlankingRev,
		TemplateFwd: p.cfg.TemplateFwd,
		TemplateRev: p.cfg.TemplateRev,
	}
	var ws []ports.ResultWriter
	if p.cfg.FilenameIDT != "" {
		ws = append(ws, output.IDTWriter{
			Path:         filepath.Join(dir, p.cfg.FilenameIDT),
			Scale:        p.cfg.Scale,
			Purification: p.cfg.Purification,
			Assembly:     asm,
		})
	}
	if p.cfg.FilenameFailed != "" {
		ws = append(ws, output.FailuresWriter{Path: filepath.Join(dir, p.cfg.FilenameFailed)})
	}
	if p.cfg.FilenameFASTA != "" {
		ws = append(ws, output.FASTAWriter{Path: filepath.Join(dir, p.cfg.FilenameFASTA), Assembly: asm})
	}
	if p.cfg.FilenamePlate != "" {
		ws = append(ws, output.PlateWriter{
			Path:         filepath.Join(dir, p.cfg.FilenamePlate),
			Rows:         p.cfg.PlateRows,
			Cols:         p.cfg.PlateCols,
			Split:        p.cfg.PlateSplit,
			Scale:        p.cfg.Scale,
			Purification: p.cfg.Purification,
			Assembly:     asm,
		})
	}
	return ws
}

func (p *Pipeline) manifest(started time.Time, res domain.Result, outputs []string) domain.Manifest {
	out := res.Outcome()
	return domain.Manifest{
		RunID:            p.runID(),
		StartedAt:        started.UTC(),
		State:            res.State.String(),
		Complete:         out.Complete,
		Reason:           out.Reason,
		Quota:            res.Quota,
		Attempts:         res.Attempts,
		Accepted:         len(res.Pairs),
		Failed:           len(res.Failures),
		Seed:             p.cfg.Seed,
		LegacySeedReuse:  p.cfg.LegacySeedReuse,
		ReverseTransform: p.cfg.ReverseTransform,
		Digest:           Digest(res),
		Outputs:          outputs,
	}
}
