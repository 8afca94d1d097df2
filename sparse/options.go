// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for construction-time numeric
// policy. This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that applies defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Reusability: options fields are unexported; public APIs consume ...Option.

package sparse

// ---------- Defaults (single source of truth) ----------

// DefaultValidateNaNInf toggles strict finite-value validation at
// construction. When enabled, NewCSR and FromDense reject NaN and ±Inf
// values with ErrNaNInf. Disable it only when non-finite payloads are an
// explicit part of the caller's value model.
const DefaultValidateNaNInf = true

// ---------- Public option type (functional) ----------

// Option mutates construction options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options is the internal resolved configuration.
type options struct {
	validateNaNInf bool // reject NaN/±Inf values at construction when true
}

// WithValidateNaNInf toggles the finite-value policy for constructed values.
// Pass false to admit NaN/±Inf payloads.
func WithValidateNaNInf(enabled bool) Option {
	return func(o *options) { o.validateNaNInf = enabled }
}

// gatherOptions applies defaults, then caller overrides, in order.
func gatherOptions(opts ...Option) options {
	o := options{validateNaNInf: DefaultValidateNaNInf} // documented defaults
	for _, fn := range opts {                           // deterministic application order
		fn(&o)
	}

	return o
}
