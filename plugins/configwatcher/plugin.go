// Package configwatcher reruns barcode generation when its inputs change.
// It watches the config file and the provided-barcode file and calls a
// callback once writes to them settle.
package configwatcher

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/barcodegen/pkg/log"
)

// RunFunc is called after a watched file changes.
type RunFunc func(ctx context.Context) error

// Plugin implements input watching.
type Plugin struct {
	mu sync.Mutex

	// Configuration
	debounceDelay time.Duration
	logger        log.Logger

	// Runtime state
	files    map[string]bool
	run      RunFunc
	runMu    sync.Mutex
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	debounce *time.Timer
}

// Config holds configuration options for the watcher.
type Config struct {
	// DebounceDelay is the delay to wait after a file change before rerunning.
	// Default: 200 milliseconds
	DebounceDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DebounceDelay: 200 * time.Millisecond,
	}
}

// New creates a new watcher with the given configuration.
func New(cfg Config, opts ...Option) *Plugin {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = 200 * time.Millisecond
	}

	p := &Plugin{
		debounceDelay: cfg.DebounceDelay,
		logger:        log.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the plugin identifier.
func (p *Plugin) Name() string {
	return "configwatcher"
}

// Start begins watching paths and calls run after each settled change.
// Empty paths are skipped. Watching is per directory so that editors which
// replace files on save are still seen.
func (p *Plugin) Start(ctx context.Context, paths []string, run RunFunc) error {
	if run == nil {
		return errors.New("configwatcher: nil run func")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	files := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, path := range paths {
		if path == "" {
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			watcher.Close()
			return err
		}
		files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return err
		}
		dirs[dir] = true
	}
	if len(files) == 0 {
		watcher.Close()
		return errors.New("configwatcher: nothing to watch")
	}

	watchCtx, cancel := context.WithCancel(ctx)
	p.mu.Lock()
	p.files = files
	p.run = run
	p.cancel = cancel
	p.mu.Unlock()

	p.logger.Info("watching for changes", log.Int("files", len(files)))

	p.wg.Add(1)
	go p.watchLoop(watchCtx, watcher)

	return nil
}

// Shutdown stops the watcher and waits for a pending run to finish.
func (p *Plugin) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	if p.debounce != nil {
		p.debounce.Stop()
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		p.runMu.Lock()
		p.runMu.Unlock()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// watchLoop watches for input file changes.
func (p *Plugin) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer p.wg.Done()
	defer watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !p.watched(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			p.logger.Debug("input changed", log.String("file", event.Name), log.String("op", event.Op.String()))
			p.debounceRun(ctx, p.debounceDelay)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			p.logger.Error("watcher error", log.Err(err))
		}
	}
}

func (p *Plugin) watched(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.files[abs]
}

func (p *Plugin) debounceRun(ctx context.Context, delay time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.debounce != nil {
		p.debounce.Stop()
	}

	p.debounce = time.AfterFunc(delay, func() {
		if ctx.Err() != nil {
			return
		}
		p.runMu.Lock()
		defer p.runMu.Unlock()
		if err := p.run(ctx); err != nil {
			p.logger.Error("rerun failed", log.Err(err))
		}
	})
}
