// Package coe converts Cartesian orbital state vectors into classical
// orbital elements. Compute is a pure function: it has no side effects
// and is safe to call from any number of goroutines.
package coe

import "math"

const (
	// EccentricityFloor is the cutoff below which an orbit is treated
	// as circular and perigee-referenced angles are undefined.
	EccentricityFloor = 1e-8

	// EnergyFloor is the cutoff below which specific orbital energy is
	// treated as zero and the orbit as parabolic.
	EnergyFloor = 1e-12
)

// Compute derives the classical orbital elements from sv. Degenerate
// geometries never fail; the affected angles come back with
// Defined == false:
//
//	equatorial, elliptical:  RAAN and ArgPerigee undefined
//	equatorial, circular:    RAAN, ArgPerigee and TrueAnomaly undefined
//	inclined, circular:      ArgPerigee undefined; TrueAnomaly measured
//	                         from the ascending node
//	inclined, elliptical:    all defined
func Compute(sv StateVector) OrbitalElements {
	r, v, mu := sv.R, sv.V, sv.Mu

	rNorm := r.Norm()
	vNorm := v.Norm()

	// Specific angular momentum. Validation rejected parallel r and v,
	// so h is never zero here.
	hVec := r.Cross(v)
	h := hVec.Norm()

	inclination := acosDeg(hVec.Z / h)

	// Node line: ẑ × h.
	nVec := Vec3{X: -hVec.Y, Y: hVec.X}
	n := nVec.Norm()

	raan := UndefinedAngle()
	if n != 0 {
		deg := acosDeg(nVec.X / n)
		if nVec.Y < 0 {
			deg = 360 - deg
		}
		raan = DefinedAngle(deg)
	}

	rv := r.Dot(v)
	eVec := r.Scale(vNorm*vNorm - mu/rNorm).Sub(v.Scale(rv)).Scale(1 / mu)
	e := eVec.Norm()

	argPerigee := UndefinedAngle()
	if n != 0 && e > EccentricityFloor {
		deg := acosDeg(nVec.Dot(eVec) / (n * e))
		if eVec.Z < 0 {
			deg = 360 - deg
		}
		argPerigee = DefinedAngle(deg)
	}

	trueAnomaly := UndefinedAngle()
	switch {
	case e > EccentricityFloor:
		deg := acosDeg(eVec.Dot(r) / (e * rNorm))
		if rv < 0 {
			deg = 360 - deg
		}
		trueAnomaly = DefinedAngle(deg)
	case n != 0:
		// Circular orbit: measure from the ascending node instead of
		// the undefined perigee.
		deg := acosDeg(nVec.Dot(r) / (n * rNorm))
		if r.Z < 0 {
			deg = 360 - deg
		}
		trueAnomaly = DefinedAngle(deg)
	}

	energy := vNorm*vNorm/2 - mu/rNorm
	a := math.Inf(1)
	if math.Abs(energy) > EnergyFloor {
		a = -mu / (2 * energy)
	}

	return OrbitalElements{
		H:             h,
		SemiMajorAxis: a,
		Inclination:   inclination,
		RAAN:          raan,
		Eccentricity:  e,
		ArgPerigee:    argPerigee,
		TrueAnomaly:   trueAnomaly,
	}
}

// acosDeg is an inverse cosine in degrees with the argument clamped to
// [-1, 1] to absorb floating-point overshoot near ±1. Every inverse
// cosine in the pipeline goes through this helper.
func acosDeg(x float64) float64 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return math.Acos(x) * 180 / math.Pi
}
