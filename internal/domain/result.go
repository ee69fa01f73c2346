package domain

import "fmt"

// State is the terminal state of a generation run.
type State int

const (
	// StateRunning is the state of a run that has not terminated yet.
	StateRunning State = iota
	// StateQuotaMet means the requested number of pairs was accepted.
	StateQuotaMet
	// StateAttemptsExhausted means the attempt budget ran out before the quota was met.
	StateAttemptsExhausted
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateQuotaMet:
		return "QuotaMet"
	case StateAttemptsExhausted:
		return "AttemptsExhausted"
	default:
		return "Unknown"
	}
}

// Outcome tags a result as complete or partial.
type Outcome struct {
	// Complete is true when the quota was met
	Complete bool

	// Reason explains a partial outcome; empty when Complete
	Reason string
}

// Result is the output of one generation run. Pairs are in acceptance order
// and Failures in attempt order; both orders are significant downstream.
type Result struct {
	Pairs    []Pair
	Failures []Failure

	// Attempts is the number of candidates evaluated
	Attempts int

	// Quota is the requested number of pairs
	Quota int

	State State
}

// Outcome derives the tagged outcome of the run.
func (r Result) Outcome() Outcome {
	if len(r.Pairs) >= r.Quota {
		return Outcome{Complete: true}
	}
	return Outcome{
		Complete: false,
		Reason: fmt.Sprintf("accepted %d of %d pairs after %d attempts (%d rejected)",
			len(r.Pairs), r.Quota, r.Attempts, len(r.Failures)),
	}
}

// Shortfall returns how many pairs are missing from the quota.
func (r Result) Shortfall() int {
	if n := r.Quota - len(r.Pairs); n > 0 {
		return n
	}
	return 0
}
