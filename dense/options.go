// SPDX-License-Identifier: MIT

// Package dense: functional configuration for Multiply.
// This file defines:
//   - Option / mulOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package dense

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultAlgo is the algorithm Multiply uses when no WithAlgo option is
	// given. Native mirrors the reference semantics; Mul (the convenience
	// method) picks BlockIJP instead to balance cache friendliness and
	// performance.
	DefaultAlgo = Native

	// DefaultTile of 0 requests the heuristic tile size computed from the
	// scalar width and the assumed L1 capacity (see tile.go).
	DefaultTile = 0
)

// Internal panic message (no magic strings).
const panicTileNegative = "dense: WithTile: tile must be >= 0"

// Option mutates multiplication options. Safe to apply repeatedly
// (last write wins). Constructors MUST panic only on nonsensical values.
type Option func(*mulOptions)

// mulOptions carries the resolved Multiply configuration.
// Fields are unexported; public APIs consume ...Option.
type mulOptions struct {
	algo Algo // selected kernel; validated at dispatch
	tile int  // block edge; 0 = heuristic
}

// WithAlgo selects the multiplication algorithm.
// Validation is deferred to Multiply so that an out-of-range value is
// reported as ErrUnknownAlgo (an argument error, not a panic): callers may
// forward untrusted Algo values from a boundary layer.
func WithAlgo(a Algo) Option {
	return func(o *mulOptions) { o.algo = a }
}

// WithTile overrides the block edge used by the tiled kernels.
// tile == 0 keeps the heuristic; negative tiles are a programmer error.
func WithTile(tile int) Option {
	if tile < 0 {
		panic(panicTileNegative)
	}
	return func(o *mulOptions) { o.tile = tile }
}

// gatherOptions folds opts over the documented defaults.
func gatherOptions(opts ...Option) mulOptions {
	cfg := mulOptions{algo: DefaultAlgo, tile: DefaultTile}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
