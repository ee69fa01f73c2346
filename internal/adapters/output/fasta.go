package output

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/koeng101/poly"

	"github.com/bft-labs/barcodegen/internal/domain"
	"github.com/bft-labs/barcodegen/internal/ports"
)

// FASTAWriter writes every primer as a FASTA record whose header carries
// the primer name and its barcode, e.g. ">BC01_F|barcode=ACGTACGTAC".
type FASTAWriter struct {
	Path     string
	Assembly Assembly
}

// Name returns "fasta".
func (FASTAWriter) Name() string { return "fasta" }

// Records returns the FASTA records for the result, forward before reverse.
func (w FASTAWriter) Records(result domain.Result) []poly.Fasta {
	primers := flatten(w.Assembly.Primers(result.Pairs))
	records := make([]poly.Fasta, len(primers))
	for i, p := range primers {
		records[i] = poly.Fasta{
			Name:     fmt.Sprintf("%s|barcode=%s", p.Name, p.Barcode),
			Sequence: p.Sequence,
		}
	}
	return records
}

// Write renders the records to Path.
func (w FASTAWriter) Write(_ context.Context, result domain.Result) ([]string, error) {
	f, err := os.Create(w.Path)
	if err != nil {
		return nil, fmt.Errorf("write fasta: %w", err)
	}
	bw := bufio.NewWriter(f)
	for _, rec := range w.Records(result) {
		fmt.Fprintf(bw, ">%s\n%s\n", rec.Name, rec.Sequence)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return nil, fmt.Errorf("write fasta: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("write fasta: %w", err)
	}
	return []string{w.Path}, nil
}

var _ ports.ResultWriter = FASTAWriter{}
