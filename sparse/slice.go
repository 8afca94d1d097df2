// SPDX-License-Identifier: MIT

// Package sparse: slice resolution.
//
// Purpose:
//   - Represent a start:stop:step selection as an explicit optional-integer
//     triple (nil means "not given"), with no implicit coercion.
//   - Normalize the triple against a concrete axis length following the
//     standard sequence-slicing contract: negative values count from the
//     end, out-of-range values clamp, and the traversal direction is set
//     by the sign of step.
//
// Determinism & Policy:
//   - normalize is pure: same inputs, same outputs, no allocation.
//   - An empty selection is a valid result (count == 0), never an error.
//   - The only rejected parameter is step == 0 (ErrZeroStep).

package sparse

// Slice selects start:stop:step over one axis. A nil field means the bound
// was not given and takes its direction-dependent default: for positive step
// the full forward range, for negative step the full reversed range.
//
// Examples (axis length n):
//
//	Slice{}                          ⇒ 0, 1, …, n-1
//	Slice{Step: Idx(-1)}             ⇒ n-1, n-2, …, 0
//	Slice{Start: Idx(1), Stop: Idx(-2), Step: Idx(2)}  ⇒ 1, 3, … below n-2
//	Slice{Start: Idx(-2), Stop: Idx(1), Step: Idx(-2)} ⇒ n-2, n-4, … above 1
type Slice struct {
	Start *int // first position; nil ⇒ directional default
	Stop  *int // exclusive bound; nil ⇒ directional default
	Step  *int // stride; nil ⇒ 1; zero is rejected
}

// Idx returns a pointer to v, for building Slice literals by hand.
func Idx(v int) *int { return &v }

// All selects the full forward range (the ":" slice).
func All() Slice { return Slice{} }

// Reverse selects the full reversed range (the "::-1" slice).
func Reverse() Slice { return Slice{Step: Idx(-1)} }

// Range selects start:stop with step 1.
func Range(start, stop int) Slice {
	return Slice{Start: Idx(start), Stop: Idx(stop)}
}

// Strided selects start:stop:step.
func Strided(start, stop, step int) Slice {
	return Slice{Start: Idx(start), Stop: Idx(stop), Step: Idx(step)}
}

// clampIndex resolves one explicit bound against axis length n:
// negative values gain n, then the result clamps into the closed interval
// appropriate for the traversal direction ([-1, n-1] when step < 0,
// [0, n] otherwise).
func clampIndex(v, n, step int) int {
	if v < 0 {
		v += n
		if v < 0 {
			if step < 0 {
				return -1 // one before the first element, reverse walk
			}

			return 0
		}

		return v
	}
	if v >= n {
		if step < 0 {
			return n - 1
		}

		return n
	}

	return v
}

// normalize resolves the triple against axis length n and returns the
// explicit traversal (start, step) together with the number of selected
// positions. Position k of the traversal is start + k*step.
//
// Errors: ErrZeroStep when step == 0. An empty selection returns count == 0
// with no error.
// Complexity: O(1).
func (s Slice) normalize(n int) (start, step, count int, err error) {
	// Resolve step first: it decides every directional default below.
	step = 1
	if s.Step != nil {
		step = *s.Step
	}
	if step == 0 {
		return 0, 0, 0, ErrZeroStep
	}

	// Directional defaults. For the reverse walk the exclusive stop bound
	// sits one position before index 0, which no explicit value can reach
	// after clamping — hence the literal -1.
	var stop int
	if step < 0 {
		start, stop = n-1, -1
	} else {
		start, stop = 0, n
	}
	if s.Start != nil {
		start = clampIndex(*s.Start, n, step)
	}
	if s.Stop != nil {
		stop = clampIndex(*s.Stop, n, step)
	}

	// Count selected positions; the formulas are the standard slicing ones
	// and yield 0 for every empty configuration.
	if step < 0 {
		if stop < start {
			count = (start-stop-1)/(-step) + 1
		}
	} else if start < stop {
		count = (stop-start-1)/step + 1
	}

	return start, step, count, nil
}
