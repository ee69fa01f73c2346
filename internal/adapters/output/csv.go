package output

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/bft-labs/barcodegen/internal/domain"
	"github.com/bft-labs/barcodegen/internal/ports"
)

// writeCSV writes a header and rows to path, replacing any existing file.
func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// IDTWriter writes an oligo order sheet with one row per primer.
type IDTWriter struct {
	Path         string
	Scale        string
	Purification string
	Assembly     Assembly
}

// Name returns "idt".
func (IDTWriter) Name() string { return "idt" }

// Write renders Name,Sequence,Scale,Purification rows, forward before reverse.
func (w IDTWriter) Write(_ context.Context, result domain.Result) ([]string, error) {
	primers := flatten(w.Assembly.Primers(result.Pairs))
	rows := make([][]string, len(primers))
	for i, p := range primers {
		rows[i] = []string{p.Name, p.Sequence, w.Scale, w.Purification}
	}
	if err := writeCSV(w.Path, []string{"Name", "Sequence", "Scale", "Purification"}, rows); err != nil {
		return nil, fmt.Errorf("write idt csv: %w", err)
	}
	return []string{w.Path}, nil
}

// FailuresWriter writes one row per rejected candidate.
type FailuresWriter struct {
	Path string
}

// Name returns "failures".
func (FailuresWriter) Name() string { return "failures" }

// Write renders Barcode_or_Pair,Reason rows in attempt order.
func (w FailuresWriter) Write(_ context.Context, result domain.Result) ([]string, error) {
	rows := make([][]string, len(result.Failures))
	for i, f := range result.Failures {
		rows[i] = []string{string(f.Barcode), f.Reason}
	}
	if err := writeCSV(w.Path, []string{"Barcode_or_Pair", "Reason"}, rows); err != nil {
		return nil, fmt.Errorf("write failures csv: %w", err)
	}
	return []string{w.Path}, nil
}

var (
	_ ports.ResultWriter = IDTWriter{}
	_ ports.ResultWriter = FailuresWriter{}
)
