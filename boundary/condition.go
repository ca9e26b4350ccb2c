// Package boundary models the result of a boundary-element acoustic
// simulation: the boundary condition imposed on the discretized surface, the
// incident field, the solved per-element potential/velocity fields, and the
// acoustic quantities derived from them at boundary elements and at arbitrary
// sample points. Assembling and solving the boundary integral system is the
// job of an external Solver; this package is a read-only view over its output.
package boundary

import "fmt"

// Condition holds the per-element coefficients of the Robin-type boundary
// condition alpha·φ + beta·v = f imposed on the surface for one frequency.
// All three arrays have identical length, one entry per boundary element, in
// mesh element order.
//
// A Condition is filled in place by the solver setup step and must not be
// mutated once handed to a solve step.
type Condition struct {
	Alpha []complex64
	Beta  []complex64
	F     []complex64
}

// NewCondition allocates a boundary condition for n elements. The arrays are
// allocated but their contents carry no meaning until the caller fills them;
// call Validate before handing the condition to a solve step.
func NewCondition(n int) (*Condition, error) {
	if n < 0 {
		return nil, fmt.Errorf("condition size %d: %w", n, ErrInvalidSize)
	}
	return &Condition{
		Alpha: make([]complex64, n),
		Beta:  make([]complex64, n),
		F:     make([]complex64, n),
	}, nil
}

// Size returns the number of boundary elements.
func (bc *Condition) Size() int { return len(bc.Alpha) }

// Validate checks that Alpha, Beta and F still share a length. Guards against
// callers reslicing individual arrays between allocation and solve.
func (bc *Condition) Validate() error {
	if len(bc.Beta) != len(bc.Alpha) || len(bc.F) != len(bc.Alpha) {
		return fmt.Errorf("condition arrays alpha=%d beta=%d f=%d: %w",
			len(bc.Alpha), len(bc.Beta), len(bc.F), ErrShapeMismatch)
	}
	return nil
}

// Incidence holds the incident field on the boundary before solving: the
// incident velocity potential Phi and incident normal velocity V per element.
// Used as solver input for interior and exterior scattering problems.
type Incidence struct {
	Phi []complex64
	V   []complex64
}

// NewIncidence allocates an incident field for n elements. As with
// NewCondition, the caller fills the arrays before use.
func NewIncidence(n int) (*Incidence, error) {
	if n < 0 {
		return nil, fmt.Errorf("incidence size %d: %w", n, ErrInvalidSize)
	}
	return &Incidence{
		Phi: make([]complex64, n),
		V:   make([]complex64, n),
	}, nil
}

// Size returns the number of boundary elements.
func (bi *Incidence) Size() int { return len(bi.Phi) }

// Validate checks that Phi and V still share a length.
func (bi *Incidence) Validate() error {
	if len(bi.V) != len(bi.Phi) {
		return fmt.Errorf("incidence arrays phi=%d v=%d: %w",
			len(bi.Phi), len(bi.V), ErrShapeMismatch)
	}
	return nil
}
