package app

import (
	"errors"
	"fmt"

	"github.com/bft-labs/barcodegen/internal/domain"
	"github.com/bft-labs/barcodegen/internal/pairing"
	"github.com/bft-labs/barcodegen/internal/ports"
	"github.com/bft-labs/barcodegen/pkg/log"
)

// Generator runs the generate-check-accept loop for one session.
type Generator struct {
	source    ports.BarcodeSource
	checkers  []ports.Checker
	transform pairing.Transform
	quota     int
	attempts  int
	logger    log.Logger
}

// NewGenerator creates a generator. quota must be positive; attempts bounds
// the number of candidates evaluated and may be zero.
func NewGenerator(quota, attempts int, source ports.BarcodeSource, checkers []ports.Checker, transform pairing.Transform, logger log.Logger) (*Generator, error) {
	if quota <= 0 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrMissingQuota, quota)
	}
	if attempts < 0 {
		return nil, fmt.Errorf("%w: n_attempts must not be negative", domain.ErrInvalidConfig)
	}
	if source == nil {
		return nil, errors.New("generator: nil barcode source")
	}
	if transform == nil {
		transform = pairing.TrimEnd(pairing.DefaultTrim)
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Generator{
		source:    source,
		checkers:  checkers,
		transform: transform,
		quota:     quota,
		attempts:  attempts,
		logger:    logger,
	}, nil
}

// Generate evaluates candidates in attempt order until the quota is met or
// the attempt budget runs out. Each candidate is checked only against pairs
// accepted before it. Running out of attempts is not an error; the result's
// State and Outcome report it.
func (g *Generator) Generate() domain.Result {
	res := domain.Result{
		Pairs:    make([]domain.Pair, 0, g.quota),
		Failures: make([]domain.Failure, 0),
		Quota:    g.quota,
		State:    domain.StateRunning,
	}

	for attempt := 0; attempt < g.attempts; attempt++ {
		if len(res.Pairs) >= g.quota {
			break
		}
		candidate := g.source.Next(attempt)
		res.Attempts++

		if reason, rejected := g.reject(candidate, res.Pairs); rejected {
			res.Failures = append(res.Failures, domain.Failure{Barcode: candidate, Reason: reason})
			continue
		}

		res.Pairs = append(res.Pairs, domain.Pair{
			Forward: candidate,
			Reverse: g.transform(candidate),
		})
		g.logger.Debug("accepted barcode",
			log.Int("attempt", attempt),
			log.String("barcode", candidate.String()),
			log.Int("accepted", len(res.Pairs)),
		)
	}

	if len(res.Pairs) >= g.quota {
		res.State = domain.StateQuotaMet
	} else {
		res.State = domain.StateAttemptsExhausted
	}
	return res
}

// reject runs the checkers in order and stops at the first failure.
func (g *Generator) reject(candidate domain.Barcode, accepted []domain.Pair) (string, bool) {
	for _, c := range g.checkers {
		if ok, reason := c.Check(candidate, accepted); !ok {
			g.logger.Debug("rejected barcode",
				log.String("barcode", candidate.String()),
				log.String("checker", c.Name()),
				log.String("reason", reason),
			)
			return reason, true
		}
	}
	return "", false
}
