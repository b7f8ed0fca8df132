// Package tlesource derives solver inputs from two-line element sets.
// SGP4 yields the ECI position and velocity for a single epoch; the
// solver then recovers the osculating classical elements from that
// state. go-satellite works in kilometres and km/s, matching the
// solver's units.
package tlesource

import (
	"fmt"
	"time"

	satellite "github.com/joshuaferrara/go-satellite"

	"github.com/signalsfoundry/orbital-elements/coe"
)

// StateVectorAt returns the ECI state vector for the TLE at time t,
// around a body with gravitational parameter mu.
func StateVectorAt(line1, line2 string, t time.Time, mu float64) (coe.StateVector, error) {
	sat := satellite.TLEToSat(line1, line2, satellite.GravityWGS72)

	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	pos, vel := satellite.Propagate(sat, year, int(month), day, hour, min, sec)

	r := coe.Vec3{X: pos.X, Y: pos.Y, Z: pos.Z}
	v := coe.Vec3{X: vel.X, Y: vel.Y, Z: vel.Z}
	sv, err := coe.NewStateVector(r, v, mu)
	if err != nil {
		return coe.StateVector{}, fmt.Errorf("tlesource: state at %s: %w", t.UTC().Format(time.RFC3339), err)
	}
	return sv, nil
}

// ElementsAt returns the osculating classical elements for the TLE at
// time t, assuming an Earth orbit.
func ElementsAt(line1, line2 string, t time.Time) (coe.OrbitalElements, error) {
	sv, err := StateVectorAt(line1, line2, t, coe.MuEarth)
	if err != nil {
		return coe.OrbitalElements{}, err
	}
	return coe.Compute(sv), nil
}
