package ports

import "github.com/bft-labs/barcodegen/internal/domain"

// Checker is a constraint predicate evaluated against a single candidate.
// Checkers are pure: they must not retain or modify accepted.
type Checker interface {
	// Name identifies the checker in logs.
	Name() string

	// Check returns true if the candidate passes. On rejection, reason
	// names the violated bound.
	Check(candidate domain.Barcode, accepted []domain.Pair) (ok bool, reason string)
}
