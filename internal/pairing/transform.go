// Package pairing derives the reverse member of a barcode pair from the
// accepted forward barcode.
package pairing

import (
	"fmt"

	"github.com/koeng101/poly"

	"github.com/bft-labs/barcodegen/internal/domain"
)

// Transform names.
const (
	Trim              = "trim"
	Identity          = "identity"
	ReverseComplement = "revcomp"
)

// DefaultTrim is the number of trailing symbols dropped by the trim transform.
const DefaultTrim = 3

// Transform derives a reverse barcode from a forward barcode.
type Transform func(domain.Barcode) domain.Barcode

// TrimEnd drops the final n symbols. Barcodes of length n or less become empty.
func TrimEnd(n int) Transform {
	return func(b domain.Barcode) domain.Barcode {
		if len(b) <= n {
			return ""
		}
		return b[:len(b)-n]
	}
}

// Same returns the forward barcode unchanged (symmetric pairs).
func Same(b domain.Barcode) domain.Barcode {
	return b
}

// RevComp returns the reverse complement of the forward barcode.
func RevComp(b domain.Barcode) domain.Barcode {
	return domain.Barcode(poly.ReverseComplement(string(b)))
}

// ByName resolves a transform from its configured name. trim is the number
// of symbols dropped by the trim transform.
func ByName(name string, trim int) (Transform, error) {
	switch name {
	case "", Trim:
		if trim < 0 {
			return nil, fmt.Errorf("reverse trim must not be negative: %d", trim)
		}
		return TrimEnd(trim), nil
	case Identity:
		return Same, nil
	case ReverseComplement:
		return RevComp, nil
	default:
		return nil, fmt.Errorf("unknown reverse transform %q", name)
	}
}
