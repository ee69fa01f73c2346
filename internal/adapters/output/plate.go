package output

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bft-labs/barcodegen/internal/domain"
	"github.com/bft-labs/barcodegen/internal/ports"
)

// WellIDs lists the wells of a plate row-major: A1, A2, ..., A<cols>, B1, ...
// rows must not exceed 26.
func WellIDs(rows, cols int) []string {
	wells := make([]string, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 1; c <= cols; c++ {
			wells = append(wells, fmt.Sprintf("%c%d", 'A'+r, c))
		}
	}
	return wells
}

// PlateWriter lays primers out on multi-well plates.
type PlateWriter struct {
	Path         string
	Rows         int
	Cols         int
	Split        bool
	Scale        string
	Purification string
	Assembly     Assembly
}

// Name returns "plate".
func (PlateWriter) Name() string { return "plate" }

// Write renders Well,Name,Sequence,Scale,Purification rows. When the primers
// do not fit on one plate, Write fails with domain.ErrPlateCapacity unless
// Split is set, in which case plates are written to <base>_<n>.<ext>.
func (w PlateWriter) Write(_ context.Context, result domain.Result) ([]string, error) {
	primers := flatten(w.Assembly.Primers(result.Pairs))
	capacity := w.Rows * w.Cols
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: plate has no wells", domain.ErrInvalidConfig)
	}

	if len(primers) <= capacity {
		if err := w.writeOne(w.Path, primers); err != nil {
			return nil, err
		}
		return []string{w.Path}, nil
	}

	if !w.Split {
		return nil, fmt.Errorf("%w: plate holds %d wells but %d primers were generated; enable plate splitting or request fewer primers",
			domain.ErrPlateCapacity, capacity, len(primers))
	}

	base, ext := splitExt(w.Path)
	var paths []string
	for start, n := 0, 1; start < len(primers); start, n = start+capacity, n+1 {
		end := start + capacity
		if end > len(primers) {
			end = len(primers)
		}
		path := fmt.Sprintf("%s_%d%s", base, n, ext)
		if err := w.writeOne(path, primers[start:end]); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (w PlateWriter) writeOne(path string, primers []Primer) error {
	wells := WellIDs(w.Rows, w.Cols)
	rows := make([][]string, 0, len(primers))
	for i, p := range primers {
		if i >= len(wells) {
			break
		}
		rows = append(rows, []string{wells[i], p.Name, p.Sequence, w.Scale, w.Purification})
	}
	if err := writeCSV(path, []string{"Well", "Name", "Sequence", "Scale", "Purification"}, rows); err != nil {
		return fmt.Errorf("write plate csv: %w", err)
	}
	return nil
}

// splitExt splits path into base and extension, defaulting to ".csv".
func splitExt(path string) (string, string) {
	ext := filepath.Ext(path)
	if ext == "" {
		return path, ".csv"
	}
	return strings.TrimSuffix(path, ext), ext
}

var _ ports.ResultWriter = PlateWriter{}
