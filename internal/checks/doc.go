// Package checks implements the constraint predicates a candidate barcode
// must pass before it is accepted.
//
// Every checker has the same shape (see ports.Checker) so the generation
// loop can run them in a fixed order: GC content first, then edit distance,
// then any of the optional checkers that were enabled.
package checks
