package source

import (
	"github.com/bft-labs/barcodegen/internal/domain"
	"github.com/bft-labs/barcodegen/internal/ports"
)

// Source serves provided barcodes by attempt index and falls back to a
// random source once the index runs past the provided list.
type Source struct {
	provided []domain.Barcode
	random   ports.BarcodeSource
}

// New creates a Source. provided may be empty.
func New(provided []domain.Barcode, random ports.BarcodeSource) *Source {
	return &Source{provided: provided, random: random}
}

// Next returns provided[attempt] when in range, otherwise a random barcode.
func (s *Source) Next(attempt int) domain.Barcode {
	if attempt >= 0 && attempt < len(s.provided) {
		return s.provided[attempt]
	}
	return s.random.Next(attempt)
}

// Provided returns the number of provided barcodes.
func (s *Source) Provided() int {
	return len(s.provided)
}

var (
	_ ports.BarcodeSource = (*Source)(nil)
	_ ports.BarcodeSource = (*Random)(nil)
)
