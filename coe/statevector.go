package coe

import "math"

// MuEarth is Earth's standard gravitational parameter (km^3/s^2).
const MuEarth = 398600.4418

// InvalidStateError reports a state vector that cannot describe an
// orbit. It is the only failure mode of the solver; all validation
// happens before any element is computed.
type InvalidStateError struct {
	Reason string
}

func (e *InvalidStateError) Error() string {
	return "invalid state vector: " + e.Reason
}

// StateVector is a position/velocity pair at one instant around a body
// with gravitational parameter Mu. Construct it with NewStateVector so
// the invariants below hold; a constructed StateVector is never
// mutated.
type StateVector struct {
	R  Vec3    // position, km
	V  Vec3    // velocity, km/s
	Mu float64 // gravitational parameter, km^3/s^2
}

// NewStateVector validates r and v and returns an immutable state
// vector. It fails with *InvalidStateError when r or v is the zero
// vector, when any component is NaN or infinite, when mu is not a
// positive finite number, or when r and v are exactly parallel (pure
// radial motion, for which no orbital plane exists).
func NewStateVector(r, v Vec3, mu float64) (StateVector, error) {
	if r.IsZero() {
		return StateVector{}, &InvalidStateError{Reason: "position vector cannot be zero"}
	}
	if v.IsZero() {
		return StateVector{}, &InvalidStateError{Reason: "velocity vector cannot be zero"}
	}
	if !r.IsFinite() || !v.IsFinite() {
		return StateVector{}, &InvalidStateError{Reason: "position and velocity must contain finite numbers"}
	}
	if math.IsNaN(mu) || math.IsInf(mu, 0) || mu <= 0 {
		return StateVector{}, &InvalidStateError{Reason: "gravitational parameter must be a positive finite number"}
	}
	if r.Cross(v).IsZero() {
		return StateVector{}, &InvalidStateError{Reason: "position and velocity are parallel (radial trajectory has no orbital plane)"}
	}
	return StateVector{R: r, V: v, Mu: mu}, nil
}

// NewEarthStateVector is NewStateVector with Mu fixed to MuEarth.
func NewEarthStateVector(r, v Vec3) (StateVector, error) {
	return NewStateVector(r, v, MuEarth)
}
