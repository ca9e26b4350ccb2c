package boundary

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gobem/acoustics"
)

// Solver is the capability set the result types require from the solver that
// produced them. The solver owns the physical constants and the mesh
// geometry; Solution and SampleSolution hold it as a non-owning reference for
// lookups and field extrapolation only.
//
// Sample points are passed as M×3 matrices, one row per 3-D point.
type Solver interface {
	// Density returns the mass density of the medium in kg/m³.
	Density() float64
	// C returns the speed of sound in the medium in m/s.
	C() float64
	// ElementArea returns the surface area of each boundary element, in mesh
	// element order.
	ElementArea() []float64
	// SolveInterior evaluates the field at interior sample points given a
	// boundary solution and the incident potential on the boundary.
	SolveInterior(s *Solution, incidentPhi []complex64, points mat.Matrix) (*SampleSolution, error)
	// SolveExterior evaluates the field at exterior sample points.
	SolveExterior(s *Solution, incidentPhi []complex64, points mat.Matrix) (*SampleSolution, error)
}

// Solution holds the solved boundary fields for one wavenumber: the velocity
// potential Phi and normal velocity V at each boundary element, together with
// the boundary condition that was imposed and the solver that produced the
// fields. It is immutable after construction; all methods are pure reads.
//
// A frequency sweep produces one Solution per wavenumber; independent
// instances share nothing mutable and may be used concurrently.
type Solution struct {
	solver    Solver
	condition *Condition
	k         float64
	phi       []complex64
	v         []complex64
}

// NewSolution builds a boundary solution from solver output. phi and v must
// match the boundary condition's element count and k must be non-negative.
// The slices are retained, not copied; the caller must not modify them after
// construction.
func NewSolution(solver Solver, cond *Condition, k float64, phi, v []complex64) (*Solution, error) {
	if err := cond.Validate(); err != nil {
		return nil, err
	}
	if len(phi) != len(v) || len(phi) != cond.Size() {
		return nil, fmt.Errorf("solution arrays phi=%d v=%d for %d boundary elements: %w",
			len(phi), len(v), cond.Size(), ErrShapeMismatch)
	}
	if k < 0 {
		return nil, fmt.Errorf("negative wavenumber %v", k)
	}
	return &Solution{
		solver:    solver,
		condition: cond,
		k:         k,
		phi:       phi,
		v:         v,
	}, nil
}

// Size returns the number of boundary elements.
func (s *Solution) Size() int { return len(s.phi) }

// K returns the wavenumber the solution was computed for.
func (s *Solution) K() float64 { return s.k }

// Condition returns the boundary condition the solution satisfies.
func (s *Solution) Condition() *Condition { return s.condition }

// Phi returns the solved velocity potential per element. Callers must treat
// the slice as read-only.
func (s *Solution) Phi() []complex64 { return s.phi }

// V returns the solved normal velocity per element. Callers must treat the
// slice as read-only.
func (s *Solution) V() []complex64 { return s.v }

// Pressure returns the complex sound pressure at each boundary element,
// p = i·ρ·c·k·φ.
func (s *Solution) Pressure() []complex64 {
	c, rho := s.solver.C(), s.solver.Density()
	p := make([]complex64, len(s.phi))
	for i, phi := range s.phi {
		p[i] = complex64(acoustics.SoundPressure(s.k, complex128(phi), c, rho))
	}
	return p
}

// PressureDecibel returns the sound pressure magnitude at each boundary
// element in decibels relative to the standard reference pressure.
func (s *Solution) PressureDecibel() []float64 {
	db := make([]float64, len(s.phi))
	for i, p := range s.Pressure() {
		db[i] = acoustics.SoundMagnitude(complex128(p))
	}
	return db
}

// RadiationRatio returns the ratio of the actively radiated acoustic power to
// the power a fully baffled radiator of the same vibrating area would
// radiate: 2·ΣRe(I_i) / Σ(ρ·c·|v_i|²). Elements are accumulated in ascending
// index order. Returns ErrDegenerateDivision when the blocked power is zero,
// i.e. all element velocities vanish.
func (s *Solution) RadiationRatio() (float64, error) {
	c, rho := s.solver.C(), s.solver.Density()
	power := make([]float64, len(s.phi))
	blocked := make([]float64, len(s.phi))
	for i, phi := range s.phi {
		p := acoustics.SoundPressure(s.k, complex128(phi), c, rho)
		v := complex128(s.v[i])
		power[i] = acoustics.Intensity(p, v)
		blocked[i] = rho * c * (real(v)*real(v) + imag(v)*imag(v))
	}
	bpower := floats.Sum(blocked)
	if bpower == 0 {
		return 0, fmt.Errorf("blocked power is zero (all element velocities vanish): %w",
			ErrDegenerateDivision)
	}
	return 2 * floats.Sum(power) / bpower, nil
}

// MechanicalImpedance returns Σ p_i·area_i / v_i over the boundary elements,
// with element areas supplied by the solver. An element with zero velocity
// makes the sum undefined and returns ErrDegenerateDivision naming the
// element.
func (s *Solution) MechanicalImpedance() (complex128, error) {
	area := s.solver.ElementArea()
	if len(area) != len(s.phi) {
		return 0, fmt.Errorf("element areas %d for %d boundary elements: %w",
			len(area), len(s.phi), ErrShapeMismatch)
	}
	c, rho := s.solver.C(), s.solver.Density()
	var zm complex128
	for i, phi := range s.phi {
		v := complex128(s.v[i])
		if v == 0 {
			return 0, fmt.Errorf("zero velocity at element %d: %w", i, ErrDegenerateDivision)
		}
		p := acoustics.SoundPressure(s.k, complex128(phi), c, rho)
		zm += p * complex(area[i], 0) / v
	}
	return zm, nil
}

// SolveInterior evaluates the acoustic field at interior sample points by
// delegating to the solver. incidentPhi is the incident potential on the
// boundary and must match the element count; points is an M×3 matrix of
// sample locations.
func (s *Solution) SolveInterior(incidentPhi []complex64, points mat.Matrix) (*SampleSolution, error) {
	if err := s.checkExtrapolation(incidentPhi, points); err != nil {
		return nil, err
	}
	return s.solver.SolveInterior(s, incidentPhi, points)
}

// SolveExterior evaluates the acoustic field at exterior sample points by
// delegating to the solver. Arguments as for SolveInterior.
func (s *Solution) SolveExterior(incidentPhi []complex64, points mat.Matrix) (*SampleSolution, error) {
	if err := s.checkExtrapolation(incidentPhi, points); err != nil {
		return nil, err
	}
	return s.solver.SolveExterior(s, incidentPhi, points)
}

func (s *Solution) checkExtrapolation(incidentPhi []complex64, points mat.Matrix) error {
	if len(incidentPhi) != len(s.phi) {
		return fmt.Errorf("incident potential %d for %d boundary elements: %w",
			len(incidentPhi), len(s.phi), ErrShapeMismatch)
	}
	if _, cols := points.Dims(); cols != 3 {
		return fmt.Errorf("sample points have %d columns, want 3: %w", cols, ErrShapeMismatch)
	}
	return nil
}

// SampleSolution holds the velocity potential evaluated at arbitrary sample
// points, produced by a solver's interior or exterior evaluation step from a
// boundary Solution. Pressure derives from the owning solution's wavenumber
// and medium; radiation and impedance quantities are undefined off the
// boundary. Immutable after construction.
type SampleSolution struct {
	solution *Solution
	phi      []complex64
}

// NewSampleSolution builds a sample solution over numPoints sample points.
// phi must hold exactly one potential value per point.
func NewSampleSolution(solution *Solution, phi []complex64, numPoints int) (*SampleSolution, error) {
	if numPoints < 0 {
		return nil, fmt.Errorf("sample point count %d: %w", numPoints, ErrInvalidSize)
	}
	if len(phi) != numPoints {
		return nil, fmt.Errorf("sample potentials %d for %d sample points: %w",
			len(phi), numPoints, ErrShapeMismatch)
	}
	return &SampleSolution{solution: solution, phi: phi}, nil
}

// Size returns the number of sample points.
func (ss *SampleSolution) Size() int { return len(ss.phi) }

// Solution returns the boundary solution the samples were extrapolated from.
func (ss *SampleSolution) Solution() *Solution { return ss.solution }

// Phi returns the potential per sample point. Callers must treat the slice
// as read-only.
func (ss *SampleSolution) Phi() []complex64 { return ss.phi }

// Pressure returns the complex sound pressure at each sample point, using
// the owning boundary solution's wavenumber and medium.
func (ss *SampleSolution) Pressure() []complex64 {
	bs := ss.solution
	c, rho := bs.solver.C(), bs.solver.Density()
	p := make([]complex64, len(ss.phi))
	for i, phi := range ss.phi {
		p[i] = complex64(acoustics.SoundPressure(bs.k, complex128(phi), c, rho))
	}
	return p
}

// PressureDecibel returns the sound pressure magnitude at each sample point
// in decibels relative to the standard reference pressure.
func (ss *SampleSolution) PressureDecibel() []float64 {
	db := make([]float64, len(ss.phi))
	for i, p := range ss.Pressure() {
		db[i] = acoustics.SoundMagnitude(complex128(p))
	}
	return db
}
