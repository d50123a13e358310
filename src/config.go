package src

import "time"

// Config tunes the scoring-aware full search. The zero value is usable
// but picks an unbounded-looking Timeout of 0 (fires the budget check
// immediately); callers should start from DefaultConfig instead.
type Config struct {
	// Timeout bounds the full search's wall-clock budget.
	Timeout time.Duration
	// FullPrecision disables the "aspiration reached" early break, forcing
	// Solve to keep searching for a higher score until the timeout.
	FullPrecision bool
	// IgnoreTimeout disables the time budget entirely. Combined with
	// FullPrecision this can run forever on an adversarial maze; the CLI
	// layer is the one that guards against that combination.
	IgnoreTimeout bool
}

// DefaultConfig returns the solver's documented defaults: a 35 second
// budget, aspiration-based early exit enabled, timeout enforced.
func DefaultConfig() Config {
	return Config{
		Timeout:       35 * time.Second,
		FullPrecision: false,
		IgnoreTimeout: false,
	}
}
