package configwatcher

import "github.com/bft-labs/barcodegen/pkg/log"

// Option configures a Plugin.
type Option func(*Plugin)

// WithLogger sets the logger used for watch events and rerun failures.
//
// Usage:
//
//	w := configwatcher.New(configwatcher.DefaultConfig(),
//	    configwatcher.WithLogger(logger),
//	)
func WithLogger(logger log.Logger) Option {
	return func(p *Plugin) {
		if logger != nil {
			p.logger = logger
		}
	}
}
