package boundary

import "errors"

// Sentinel errors for the result layer. Failure sites wrap these with the
// offending index or quantity; callers branch with errors.Is.
var (
	// ErrInvalidSize indicates a negative element or sample-point count at
	// construction.
	ErrInvalidSize = errors.New("boundary: invalid size")

	// ErrShapeMismatch indicates that per-element arrays that must share a
	// length disagree.
	ErrShapeMismatch = errors.New("boundary: shape mismatch")

	// ErrDegenerateDivision indicates a zero denominator in a derived
	// quantity (zero blocked-power normalization, or a zero per-element
	// velocity).
	ErrDegenerateDivision = errors.New("boundary: degenerate division")
)
