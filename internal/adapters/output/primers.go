package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bft-labs/barcodegen/internal/domain"
)

// Assembly wraps barcodes into full primer sequences.
type Assembly struct {
	FlankingFwd string
	FlankingRev string
	TemplateFwd string
	TemplateRev string
}

// Primer is one named oligo.
type Primer struct {
	Name     string
	Barcode  domain.Barcode
	Sequence string
}

// PrimerPair is the assembled forward and reverse primer for one accepted pair.
type PrimerPair struct {
	ID      string
	Forward Primer
	Reverse Primer
}

// BarcodeID returns the 1-based identifier used to name the n-th pair, e.g. BC01.
func BarcodeID(n int) string {
	return fmt.Sprintf("BC%02d", n)
}

// Primers assembles the accepted pairs in acceptance order.
func (a Assembly) Primers(pairs []domain.Pair) []PrimerPair {
	out := make([]PrimerPair, len(pairs))
	for i, p := range pairs {
		id := BarcodeID(i + 1)
		out[i] = PrimerPair{
			ID: id,
			Forward: Primer{
				Name:     id + "_F",
				Barcode:  p.Forward,
				Sequence: a.FlankingFwd + string(p.Forward) + a.TemplateFwd,
			},
			Reverse: Primer{
				Name:     id + "_R",
				Barcode:  p.Reverse,
				Sequence: a.FlankingRev + string(p.Reverse) + a.TemplateRev,
			},
		}
	}
	return out
}

// flatten lists primers as F, R, F, R... in pair order.
func flatten(pairs []PrimerPair) []Primer {
	out := make([]Primer, 0, 2*len(pairs))
	for _, p := range pairs {
		out = append(out, p.Forward, p.Reverse)
	}
	return out
}

// TimestampLayout names timestamped output directories, e.g. 241019_1432.
const TimestampLayout = "060102_1504"

// PrepareDir creates the output directory, adding a timestamped
// subdirectory when timestamped is set, and returns its path.
func PrepareDir(base string, timestamped bool, now time.Time) (string, error) {
	dir := base
	if timestamped {
		dir = filepath.Join(base, now.Format(TimestampLayout))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	return dir, nil
}
