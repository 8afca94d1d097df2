// SPDX-License-Identifier: MIT

// Package sparse - element-wise rounding transform.
//
// Round is the one in-scope transform that touches values: it replaces the
// value buffer and carries shape, indices and indptr over untouched. The
// sparsity pattern is preserved exactly — a value that rounds to 0 stays a
// stored (explicit) zero. Pruning would change indices/indptr and break
// structural equality with the source, so it is deliberately not done.

package sparse

import "math"

// Round returns a new matrix with every stored value rounded to ndigits
// decimal digits using half-to-even (banker's) rounding. Shape, indices
// and indptr of the result are identical to the receiver's.
//
// ndigits may be negative: Round(-1) rounds to the nearest ten, and so on,
// following the same convention as rounding to a power of ten.
//
// Non-finite values (possible only under WithValidateNaNInf(false)) pass
// through unchanged.
// Errors: ErrNilMatrix on nil receiver.
// Complexity: O(nnz) time and memory.
func (m *CSR) Round(ndigits int) (*CSR, error) {
	if m == nil {
		return nil, csrErrorf("Round", ErrNilMatrix)
	}
	outVal := make([]float64, len(m.values))
	for i, v := range m.values { // fixed order
		outVal[i] = roundHalfEven(v, ndigits)
	}

	return newCSRUnchecked(outVal, m.indices, m.indptr, m.shape, m.opts), nil
}

// roundHalfEven rounds v to ndigits decimal digits, ties to even.
// Complexity: O(1).
func roundHalfEven(v float64, ndigits int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v // nothing sensible to round
	}
	switch {
	case ndigits == 0:
		return math.RoundToEven(v)
	case ndigits > 0:
		p := math.Pow10(ndigits)

		return math.RoundToEven(v*p) / p
	default:
		// Negative digits: scale down, round, scale back up.
		p := math.Pow10(-ndigits)

		return math.RoundToEven(v/p) * p
	}
}
