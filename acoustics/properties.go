// Package acoustics provides the scalar relations between the velocity
// potential and the derived acoustic quantities (pressure, intensity,
// magnitude, phase) used by the boundary and sample result types.
package acoustics

import (
	"math"
	"math/cmplx"
)

// ReferencePressure is the standard reference sound pressure in air, 20 µPa.
// Sound magnitudes in decibels are expressed relative to this value.
const ReferencePressure = 2e-5

// SoundPressure converts a velocity potential phi into complex sound pressure
// via p = i·ρ·c·k·φ, where k is the wavenumber, c the speed of sound in the
// medium and density its mass density.
func SoundPressure(k float64, phi complex128, c, density float64) complex128 {
	return complex(0, density*c*k) * phi
}

// Intensity returns the time-averaged acoustic intensity for a pressure and
// particle velocity pair: I = 0.5·Re(p·conj(v)).
func Intensity(pressure, velocity complex128) float64 {
	return 0.5 * real(pressure*cmplx.Conj(velocity))
}

// SoundMagnitude expresses a complex pressure as a magnitude in decibels
// relative to ReferencePressure.
func SoundMagnitude(pressure complex128) float64 {
	return 20 * math.Log10(cmplx.Abs(pressure)/ReferencePressure)
}

// SignalPhase returns the phase angle of a complex pressure in radians,
// in the range (-π, π].
func SignalPhase(pressure complex128) float64 {
	return cmplx.Phase(pressure)
}

// WavenumberToFrequency converts a wavenumber k to the frequency in Hz of a
// wave travelling at speed of sound c: f = k·c / 2π.
func WavenumberToFrequency(k, c float64) float64 {
	return k * c / (2 * math.Pi)
}

// FrequencyToWavenumber converts a frequency in Hz to the corresponding
// wavenumber for speed of sound c: k = 2π·f / c.
func FrequencyToWavenumber(f, c float64) float64 {
	return 2 * math.Pi * f / c
}
