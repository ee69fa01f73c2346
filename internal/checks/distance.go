package checks

import (
	"fmt"

	"github.com/bft-labs/barcodegen/internal/domain"
	"github.com/bft-labs/barcodegen/internal/ports"
)

// Hamming counts mismatching positions over the overlapping prefix of a and b.
// Trailing symbols of the longer sequence are ignored, so a forward barcode
// can be compared directly against a shorter reverse barcode.
func Hamming(a, b domain.Barcode) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	d := 0
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			d++
		}
	}
	return d
}

// Distance rejects candidates closer than Min to either member of any
// previously accepted pair. Distance is Hamming over the overlapping prefix,
// not Levenshtein.
type Distance struct {
	Min int
}

// NewDistance creates an edit-distance checker.
func NewDistance(min int) Distance {
	return Distance{Min: min}
}

// Name returns "edit_distance".
func (Distance) Name() string { return "edit_distance" }

// Check compares the candidate with every accepted pair in acceptance order.
func (c Distance) Check(candidate domain.Barcode, accepted []domain.Pair) (bool, string) {
	for _, p := range accepted {
		if Hamming(candidate, p.Forward) < c.Min || Hamming(candidate, p.Reverse) < c.Min {
			return false, fmt.Sprintf("edit distance to existing barcode less than %d", c.Min)
		}
	}
	return true, ""
}

var _ ports.Checker = Distance{}
