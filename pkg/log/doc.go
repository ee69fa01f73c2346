// Package log provides a logging abstraction for barcodegen components.
//
// This package defines a Logger interface that can be implemented by
// any logging library. A zerolog adapter is provided for the CLI and a
// no-op logger for tests and library callers that want silence.
//
// # Usage
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//	logger.Info("generated pairs", log.Int("accepted", 32), log.Int("failed", 4))
//
// Or use the no-op logger for testing:
//
//	logger := log.NewNoopLogger()
package log
