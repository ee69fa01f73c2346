// Package source supplies candidate barcodes to the generation loop, either
// from a pre-supplied list or from a seeded pseudo-random stream.
package source
