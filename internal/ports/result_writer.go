package ports

import (
	"context"

	"github.com/bft-labs/barcodegen/internal/domain"
)

// ResultWriter renders a generation result into one output format.
type ResultWriter interface {
	// Name identifies the writer in logs.
	Name() string

	// Write renders the result and returns the paths of the files it created.
	Write(ctx context.Context, result domain.Result) ([]string, error)
}

// ManifestStore persists the summary of a run.
type ManifestStore interface {
	// Save writes the manifest atomically and returns its path.
	Save(ctx context.Context, manifest domain.Manifest) (string, error)
}
