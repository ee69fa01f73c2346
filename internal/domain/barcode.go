package domain

import "strings"

// Alphabet is the nucleotide alphabet random barcodes are drawn from.
const Alphabet = "ACGT"

// Barcode is a short nucleotide sequence used to tag a sample.
type Barcode string

// String returns the barcode as a plain string.
func (b Barcode) String() string {
	return string(b)
}

// Len returns the number of symbols in the barcode.
func (b Barcode) Len() int {
	return len(b)
}

// GCContent returns the fraction of G and C symbols in the barcode.
// It returns 0 for an empty barcode.
func (b Barcode) GCContent() float64 {
	if len(b) == 0 {
		return 0
	}
	gc := 0
	for i := 0; i < len(b); i++ {
		if b[i] == 'G' || b[i] == 'C' {
			gc++
		}
	}
	return float64(gc) / float64(len(b))
}

// Upper returns the barcode with all symbols upper-cased.
func (b Barcode) Upper() Barcode {
	return Barcode(strings.ToUpper(string(b)))
}

// Pair is an accepted barcode pair. Reverse is derived from Forward
// by the configured pair transform.
type Pair struct {
	Forward Barcode
	Reverse Barcode
}

// Failure records a rejected candidate.
type Failure struct {
	// Barcode is the rejected candidate exactly as it was drawn
	Barcode Barcode

	// Reason names the violated bound, e.g. "GC content 0.20 out of range (0.4-0.6)"
	Reason string
}
