package boundary

import (
	"fmt"
	"strings"

	"github.com/notargets/gobem/acoustics"
)

// String renders a per-element report of the boundary solution: medium
// properties, wavenumber, then potential, pressure, velocity and intensity
// for each element. Formatting only; derived values come from the same
// relations as Pressure and RadiationRatio.
func (s *Solution) String() string {
	c, rho := s.solver.C(), s.solver.Density()

	var b strings.Builder
	fmt.Fprintf(&b, "Density of medium:      %g kg/m^3\n", rho)
	fmt.Fprintf(&b, "Speed of sound:         %g m/s\n", c)
	fmt.Fprintf(&b, "Wavenumber (Frequency): %g (%g Hz)\n\n",
		s.k, acoustics.WavenumberToFrequency(s.k, c))
	b.WriteString("index          Potential                   Pressure                    Velocity              Intensity\n\n")
	for i, phi := range s.phi {
		p := acoustics.SoundPressure(s.k, complex128(phi), c, rho)
		v := complex128(s.v[i])
		intensity := acoustics.Intensity(p, v)
		fmt.Fprintf(&b, "%5d  % .4e+% .4ei  % .4e+% .4ei  % .4e+% .4ei  % .4e\n",
			i+1, real(complex128(phi)), imag(complex128(phi)),
			real(p), imag(p), real(v), imag(v), intensity)
	}
	return b.String()
}

// String renders a per-point report of the sample solution: potential,
// pressure, magnitude in decibels and phase for each sample point.
func (ss *SampleSolution) String() string {
	bs := ss.solution
	c, rho := bs.solver.C(), bs.solver.Density()

	var b strings.Builder
	b.WriteString("index          Potential                    Pressure               Magnitude         Phase\n\n")
	for i, phi := range ss.phi {
		p := acoustics.SoundPressure(bs.k, complex128(phi), c, rho)
		fmt.Fprintf(&b, "%5d  % .4e+% .4ei  % .4e+% .4ei   % .4e dB      %.4f\n",
			i+1, real(complex128(phi)), imag(complex128(phi)),
			real(p), imag(p), acoustics.SoundMagnitude(p), acoustics.SignalPhase(p))
	}
	return b.String()
}
