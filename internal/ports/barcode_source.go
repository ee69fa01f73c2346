package ports

import "github.com/bft-labs/barcodegen/internal/domain"

// BarcodeSource supplies candidate barcodes to the generation loop.
type BarcodeSource interface {
	// Next returns the candidate for the given zero-based attempt index.
	// The barcode is returned unvalidated; checkers decide whether it is usable.
	Next(attempt int) domain.Barcode
}
