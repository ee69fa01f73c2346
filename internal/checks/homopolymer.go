package checks

import (
	"fmt"

	"github.com/bft-labs/barcodegen/internal/domain"
	"github.com/bft-labs/barcodegen/internal/ports"
)

// LongestRun returns the length of the longest run of one repeated symbol.
func LongestRun(s string) int {
	best, cur := 0, 0
	for i := 0; i < len(s); i++ {
		if i > 0 && s[i] == s[i-1] {
			cur++
		} else {
			cur = 1
		}
		if cur > best {
			best = cur
		}
	}
	return best
}

// LongestHeteroStretch returns the length of the longest stretch in which
// every symbol differs from the one before it.
func LongestHeteroStretch(s string) int {
	best, cur := 0, 0
	for i := 0; i < len(s); i++ {
		if i > 0 && s[i] != s[i-1] {
			cur++
		} else {
			cur = 1
		}
		if cur > best {
			best = cur
		}
	}
	return best
}

// Homopolymer rejects barcodes containing a single-symbol run longer than Max.
type Homopolymer struct {
	Max int
}

// Name returns "homopolymer".
func (Homopolymer) Name() string { return "homopolymer" }

// Check rejects candidates with a run longer than Max.
func (c Homopolymer) Check(candidate domain.Barcode, _ []domain.Pair) (bool, string) {
	if run := LongestRun(string(candidate.Upper())); run > c.Max {
		return false, fmt.Sprintf("homopolymer run %d exceeds %d", run, c.Max)
	}
	return true, ""
}

// HeteroStretch rejects barcodes whose longest alternating stretch is longer than Max.
type HeteroStretch struct {
	Max int
}

// Name returns "hetero_stretch".
func (HeteroStretch) Name() string { return "hetero_stretch" }

// Check rejects candidates with a heterogeneous stretch longer than Max.
func (c HeteroStretch) Check(candidate domain.Barcode, _ []domain.Pair) (bool, string) {
	if n := LongestHeteroStretch(string(candidate.Upper())); n > c.Max {
		return false, fmt.Sprintf("heterogeneous stretch %d exceeds %d", n, c.Max)
	}
	return true, ""
}

var (
	_ ports.Checker = Homopolymer{}
	_ ports.Checker = HeteroStretch{}
)
