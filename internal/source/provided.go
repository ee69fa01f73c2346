package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bft-labs/barcodegen/internal/domain"
)

// LoadProvided reads barcodes from a comma-separated file. The first row is a
// header and is skipped; the barcode is the second column of every other row.
// Barcodes are returned verbatim, in file order.
func LoadProvided(path string) ([]domain.Barcode, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open barcode file: %w", err)
	}
	defer f.Close()

	barcodes, err := ReadProvided(f)
	if err != nil {
		return nil, fmt.Errorf("read barcode file %s: %w", path, err)
	}
	return barcodes, nil
}

// ReadProvided parses provided barcodes from r. See LoadProvided.
func ReadProvided(r io.Reader) ([]domain.Barcode, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	var barcodes []domain.Barcode
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) < 2 {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d has no barcode column", domain.ErrMalformedBarcodeFile, line)
		}
		barcodes = append(barcodes, domain.Barcode(row[1]))
	}
	return barcodes, nil
}
