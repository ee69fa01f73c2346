package domain

import "time"

// Manifest summarizes one generation run.
// JSON uses snake_case field names, matching the config file keys.
type Manifest struct {
	RunID            string    `json:"run_id"`
	StartedAt        time.Time `json:"started_at"`
	State            string    `json:"state"`
	Complete         bool      `json:"complete"`
	Reason           string    `json:"reason,omitempty"`
	Quota            int       `json:"n_primers"`
	Attempts         int       `json:"attempts"`
	Accepted         int       `json:"accepted"`
	Failed           int       `json:"failed"`
	Seed             int64     `json:"random_seed"`
	LegacySeedReuse  bool      `json:"legacy_seed_reuse"`
	ReverseTransform string    `json:"reverse_transform"`
	Digest           string    `json:"digest"`
	Outputs          []string  `json:"outputs"`
}
