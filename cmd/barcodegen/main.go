package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/bft-labs/barcodegen"
	"github.com/bft-labs/barcodegen/internal/cliconfig"
	"github.com/bft-labs/barcodegen/pkg/log"
	"github.com/bft-labs/barcodegen/plugins/configwatcher"
)

const longHelp = `Generate DNA barcode primer pairs that satisfy GC content and
edit distance constraints, then write ordering sheets for them.

Candidates come from a CSV of provided barcodes (use_barcodes_from), in file
order, then from a seeded random generator once the list runs out. Each accepted forward barcode is paired with a
reverse barcode derived from it (by default, the forward with its last three
bases trimmed).

Options are read from the config file, then BARCODEGEN_* environment
variables, then flags; later sources win.`

var exampleUsage = strings.TrimSpace(`
  barcodegen config.yaml
  barcodegen --n-primers 24 --gc-min 0.4 --gc-max 0.6 --min-edit-distance 3
  barcodegen config.toml --watch
  barcodegen validate config.yaml
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// newRootCommand builds the barcodegen command tree with its own config and
// flag set.
func newRootCommand() *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var seed string

	// resolve layers the config file and environment under the parsed flags.
	resolve := func(cmd *cobra.Command, args []string) (cliconfig.Config, error) {
		changed := map[string]bool{}
		cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

		out := cfg
		if err := cliconfig.LoadEnvFile(cfg.EnvFile); err != nil {
			return out, fmt.Errorf("load env file: %w", err)
		}

		cfgFile := configPath(args)
		if cliconfig.FileExists(cfgFile) {
			fc, err := cliconfig.LoadFileConfig(cfgFile)
			if err != nil {
				return out, fmt.Errorf("load config: %w", err)
			}
			if err := cliconfig.ApplyFileConfig(&out, fc, changed, filepath.Dir(cfgFile)); err != nil {
				return out, err
			}
		} else if len(args) > 0 {
			return out, fmt.Errorf("config file %s not found", cfgFile)
		}

		if err := cliconfig.ApplyEnvConfig(&out, changed); err != nil {
			return out, err
		}
		if changed["seed"] {
			out.SetSeed(seed)
		}
		if err := out.Validate(); err != nil {
			return out, err
		}
		if err := cliconfig.SetLogLevel(out.LogLevel); err != nil {
			return out, err
		}
		return out, nil
	}

	root := &cobra.Command{
		Use:     "barcodegen [config-path]",
		Short:   "Generate constrained DNA barcode primer pairs",
		Long:    longHelp,
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			runOnce := func(ctx context.Context) error {
				rc, err := resolve(cmd, args)
				if err != nil {
					return err
				}
				lg := cliconfig.Logger()
				report, err := barcodegen.Run(ctx, rc.Config, log.NewZerologAdapterWithLogger(lg))
				if err != nil {
					return err
				}
				lg.Info().
					Str("outdir", report.OutDir).
					Int("pairs", len(report.Result.Pairs)).
					Str("state", report.Result.State.String()).
					Msg("run finished")
				return nil
			}

			if err := runOnce(ctx); err != nil {
				if !cfg.Watch || errors.Is(err, barcodegen.ErrInvalidConfig) {
					return err
				}
				lg := cliconfig.Logger()
				lg.Error().Err(err).Msg("run failed")
			}
			if !cfg.Watch {
				return nil
			}

			rc, err := resolve(cmd, args)
			if err != nil {
				return err
			}
			watcher := configwatcher.New(configwatcher.DefaultConfig(),
				configwatcher.WithLogger(log.NewZerologAdapterWithLogger(cliconfig.Logger())),
			)
			if err := watcher.Start(ctx, []string{configPath(args), rc.ProvidedPath}, runOnce); err != nil {
				return fmt.Errorf("start watcher: %w", err)
			}

			<-ctx.Done()
			lg := cliconfig.Logger()
			lg.Info().Msg("received signal, stopping...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			return watcher.Shutdown(shutdownCtx)
		},
	}

	validate := &cobra.Command{
		Use:   "validate [config-path]",
		Short: "Resolve and check the configuration without generating",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := resolve(cmd, args)
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(cliconfig.ToFileConfig(rc))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	root.AddCommand(validate)

	// Flags
	f := root.PersistentFlags()
	f.IntVar(&cfg.NPrimers, "n-primers", cfg.NPrimers, "number of barcode pairs to generate (required)")
	f.IntVar(&cfg.BarcodeLength, "barcode-length", cfg.BarcodeLength, "length of random barcodes")
	f.StringVar(&seed, "seed", "", "random seed; integers are used as is, other text is hashed (default 42)")
	f.IntVar(&cfg.Attempts, "attempts", cfg.Attempts, "maximum number of candidates to examine")
	f.StringVar(&cfg.ProvidedPath, "barcodes-from", cfg.ProvidedPath, "CSV of provided barcodes (second column), used in order before random generation")
	f.Float64Var(&cfg.GCMin, "gc-min", cfg.GCMin, "minimum GC fraction")
	f.Float64Var(&cfg.GCMax, "gc-max", cfg.GCMax, "maximum GC fraction")
	f.IntVar(&cfg.MinEditDistance, "min-edit-distance", cfg.MinEditDistance, "minimum Hamming distance to accepted barcodes")

	f.StringVar(&cfg.ReverseTransform, "reverse-transform", cfg.ReverseTransform, "reverse barcode derivation: trim, identity or revcomp")
	f.IntVar(&cfg.ReverseTrim, "reverse-trim", cfg.ReverseTrim, "bases trimmed from the forward barcode by the trim transform")
	f.BoolVar(&cfg.LegacySeedReuse, "legacy-seed-reuse", cfg.LegacySeedReuse, "reseed the generator before every draw (reproduces old output)")

	f.BoolVar(&cfg.EnforceExtraChecks, "enforce-extra-checks", cfg.EnforceExtraChecks, "enable homopolymer, motif and junction checks")
	f.IntVar(&cfg.HomopolymerMax, "homopolymer-max", cfg.HomopolymerMax, "longest allowed single-base run (0 = off)")
	f.IntVar(&cfg.JunctionHomopolymerMax, "junction-homopolymer-max", cfg.JunctionHomopolymerMax, "longest allowed run across primer junctions (0 = off)")
	f.IntVar(&cfg.MaxHeteroStretch, "max-hetero-stretch", cfg.MaxHeteroStretch, "longest allowed stretch where each base differs from the previous one (0 = off)")
	f.StringSliceVar(&cfg.AvoidSeqs, "avoid-seq", cfg.AvoidSeqs, "motif barcodes must not contain (repeatable)")
	f.StringSliceVar(&cfg.AvoidAtJunctionSeqs, "avoid-junction-seq", cfg.AvoidAtJunctionSeqs, "motif that must not span primer junctions (repeatable)")

	f.StringVar(&cfg.FlankingFwd, "flanking-fwd", cfg.FlankingFwd, "5' flanking sequence of forward primers")
	f.StringVar(&cfg.FlankingRev, "flanking-rev", cfg.FlankingRev, "5' flanking sequence of reverse primers")
	f.StringVar(&cfg.TemplateFwd, "template-fwd", cfg.TemplateFwd, "template binding sequence of forward primers")
	f.StringVar(&cfg.TemplateRev, "template-rev", cfg.TemplateRev, "template binding sequence of reverse primers")

	f.StringVar(&cfg.OutDir, "outdir", cfg.OutDir, "output directory")
	f.BoolVar(&cfg.TimestampOutDir, "timestamp-outdir", cfg.TimestampOutDir, "write into a YYMMDD_HHMM subdirectory of outdir")
	f.StringVar(&cfg.FilenameIDT, "idt", cfg.FilenameIDT, "IDT order sheet file name")
	f.StringVar(&cfg.FilenameFailed, "failed", cfg.FilenameFailed, "rejected candidates file name")
	f.StringVar(&cfg.FilenameFASTA, "fasta", cfg.FilenameFASTA, "primer FASTA file name")
	f.StringVar(&cfg.FilenamePlate, "plate", cfg.FilenamePlate, "plate order sheet file name")
	f.IntVar(&cfg.PlateRows, "plate-rows", cfg.PlateRows, "plate rows")
	f.IntVar(&cfg.PlateCols, "plate-cols", cfg.PlateCols, "plate columns")
	f.BoolVar(&cfg.PlateSplit, "plate-split", cfg.PlateSplit, "spill over-capacity primers onto further plates")
	f.StringVar(&cfg.Scale, "scale", cfg.Scale, "synthesis scale")
	f.StringVar(&cfg.Purification, "purification", cfg.Purification, "purification")
	f.BoolVar(&cfg.Manifest, "manifest", cfg.Manifest, "write run.json next to the outputs")
	f.BoolVar(&cfg.FailOnShortfall, "fail-on-shortfall", cfg.FailOnShortfall, "exit non-zero when fewer pairs than requested are accepted")

	f.IntVar(&cfg.KeepRuns, "keep-runs", cfg.KeepRuns, "keep only the newest N timestamped run directories (0 = keep all)")

	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	f.StringVar(&cfg.EnvFile, "env-file", cfg.EnvFile, "load BARCODEGEN_* variables from a .env file")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "rerun when the config or barcode file changes")

	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		lg := cliconfig.Logger()
		lg.Error().Err(err).Msg("barcodegen")
		os.Exit(1)
	}
}

func configPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cliconfig.DefaultConfigPath()
}
