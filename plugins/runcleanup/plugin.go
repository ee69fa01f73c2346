// Package runcleanup removes old timestamped run directories so that
// repeated runs (for example in watch mode) do not grow the output
// directory without bound.
package runcleanup

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	fsadapter "github.com/bft-labs/barcodegen/internal/adapters/fs"
	"github.com/bft-labs/barcodegen/internal/adapters/output"
	"github.com/bft-labs/barcodegen/pkg/log"
)

// Plugin implements run directory cleanup.
// Only directories named like a run timestamp that hold a run manifest are
// ever considered, so unrelated content under the output directory is safe.
type Plugin struct {
	keep   int
	logger log.Logger
}

// Config holds configuration options for run cleanup.
type Config struct {
	// Keep is the number of most recent run directories to retain.
	// Zero disables cleanup.
	Keep int
}

// New creates a cleanup plugin. A nil logger discards log output.
func New(cfg Config, logger log.Logger) *Plugin {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Plugin{keep: cfg.Keep, logger: logger}
}

// Name returns the plugin identifier.
func (p *Plugin) Name() string {
	return "runcleanup"
}

// runDir is one completed run under the output directory.
type runDir struct {
	name string
	path string
	size int64
}

// Prune removes the oldest run directories under base until at most Keep
// remain. The protected directory is never removed and counts toward Keep.
// It returns the removed paths.
func (p *Plugin) Prune(ctx context.Context, base, protected string) ([]string, error) {
	if p.keep <= 0 {
		return nil, nil
	}

	runs, err := orderedRuns(base)
	if err != nil {
		return nil, err
	}
	if len(runs) <= p.keep {
		return nil, nil
	}

	protected = filepath.Clean(protected)
	excess := len(runs) - p.keep
	var removed []string
	var freed int64
	for _, run := range runs {
		if excess == 0 {
			break
		}
		if ctx.Err() != nil {
			return removed, ctx.Err()
		}
		if filepath.Clean(run.path) == protected {
			continue
		}
		if err := os.RemoveAll(run.path); err != nil {
			p.logger.Error("run cleanup: remove failed", log.String("path", run.path), log.Err(err))
			continue
		}
		removed = append(removed, run.path)
		freed += run.size
		excess--
	}

	if len(removed) > 0 {
		p.logger.Info("run cleanup completed",
			log.Int("removed", len(removed)),
			log.String("freed", formatBytes(freed)),
		)
	}
	return removed, nil
}

// orderedRuns lists run directories oldest first. Timestamp names sort
// chronologically within a century.
func orderedRuns(base string) ([]runDir, error) {
	ents, err := os.ReadDir(base)
	if err != nil {
		return nil, err
	}
	var runs []runDir
	for _, e := range ents {
		if !e.IsDir() || !isRunDir(e.Name()) {
			continue
		}
		path := filepath.Join(base, e.Name())
		if _, err := os.Stat(filepath.Join(path, fsadapter.ManifestFileName)); err != nil {
			continue
		}
		size, err := dirSize(path)
		if err != nil {
			return nil, err
		}
		runs = append(runs, runDir{name: e.Name(), path: path, size: size})
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].name < runs[j].name })
	return runs, nil
}

func isRunDir(name string) bool {
	_, err := time.Parse(output.TimestampLayout, name)
	return err == nil
}

func dirSize(dir string) (int64, error) {
	var total int64
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		total += info.Size()
		return nil
	})
	return total, err
}

func formatBytes(b int64) string {
	const (
		_          = iota
		KB float64 = 1 << (10 * iota)
		MB
		GB
	)

	fb := float64(b)
	switch {
	case fb >= GB:
		return fmt.Sprintf("%.2fGiB", fb/GB)
	case fb >= MB:
		return fmt.Sprintf("%.2fMiB", fb/MB)
	case fb >= KB:
		return fmt.Sprintf("%.2fKiB", fb/KB)
	default:
		return fmt.Sprintf("%dB", b)
	}
}
