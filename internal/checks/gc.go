package checks

import (
	"fmt"

	"github.com/bft-labs/barcodegen/internal/domain"
	"github.com/bft-labs/barcodegen/internal/ports"
)

// GC accepts barcodes whose GC fraction lies in [Min, Max].
type GC struct {
	Min float64
	Max float64
}

// NewGC creates a GC content checker with inclusive bounds.
func NewGC(min, max float64) GC {
	return GC{Min: min, Max: max}
}

// Name returns "gc".
func (GC) Name() string { return "gc" }

// Check rejects candidates whose GC content falls outside the bounds.
// The reason reports the content rounded to two decimals.
func (c GC) Check(candidate domain.Barcode, _ []domain.Pair) (bool, string) {
	if candidate.Len() == 0 {
		return false, "empty barcode"
	}
	gc := candidate.GCContent()
	if gc < c.Min || gc > c.Max {
		return false, fmt.Sprintf("GC content %.2f out of range (%g-%g)", gc, c.Min, c.Max)
	}
	return true, ""
}

var _ ports.Checker = GC{}
