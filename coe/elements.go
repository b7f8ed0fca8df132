package coe

import "math"

// Angle is a degree-valued orbital element that can be geometrically
// undefined: equatorial orbits have no node line and circular orbits
// have no perigee, so the angles referenced to them lose meaning.
type Angle struct {
	Degrees float64
	Defined bool
}

// DefinedAngle returns an angle carrying deg.
func DefinedAngle(deg float64) Angle {
	return Angle{Degrees: deg, Defined: true}
}

// UndefinedAngle returns the sentinel for an element with no geometric
// meaning.
func UndefinedAngle() Angle {
	return Angle{}
}

// OrNaN returns the angle in degrees, or NaN when undefined. Serialized
// output uses the NaN convention; API consumers should branch on
// Defined instead.
func (a Angle) OrNaN() float64 {
	if a.Defined {
		return a.Degrees
	}
	return math.NaN()
}

// OrbitalElements is the classical element set derived from a single
// state vector. A new computation produces a new record; records are
// never mutated.
//
// SemiMajorAxis is +Inf for near-parabolic orbits (specific orbital
// energy within EnergyFloor of zero) and negative for hyperbolic ones.
type OrbitalElements struct {
	H             float64 // specific angular momentum magnitude, km^2/s
	SemiMajorAxis float64 // km
	Inclination   float64 // deg, in [0, 180]
	RAAN          Angle   // right ascension of ascending node, deg, in [0, 360)
	Eccentricity  float64
	ArgPerigee    Angle // argument of perigee, deg, in [0, 360)
	TrueAnomaly   Angle // deg, in [0, 360)
}

// Circular reports whether the orbit is circular under the solver's
// eccentricity cutoff.
func (el OrbitalElements) Circular() bool {
	return el.Eccentricity <= EccentricityFloor
}

// Equatorial reports whether the orbit lies in the reference plane,
// leaving the node line undefined.
func (el OrbitalElements) Equatorial() bool {
	return !el.RAAN.Defined
}

// Parabolic reports whether the specific orbital energy was within
// EnergyFloor of zero.
func (el OrbitalElements) Parabolic() bool {
	return math.IsInf(el.SemiMajorAxis, 1)
}
