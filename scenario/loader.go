// Package scenario loads state-vector inputs from YAML documents of the
// form:
//
//	state_vector:
//	  position: [x, y, z]   # km
//	  velocity: [x, y, z]   # km/s
//	  mu: 398600.4418       # optional, km^3/s^2; defaults to Earth
package scenario

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/signalsfoundry/orbital-elements/coe"
)

// internal YAML shapes – keep them unexported so we're free to evolve them.
type stateVectorYAML struct {
	StateVector struct {
		Position []float64 `yaml:"position"`
		Velocity []float64 `yaml:"velocity"`
		Mu       *float64  `yaml:"mu"`
	} `yaml:"state_vector"`
}

// Load reads one state-vector document from r and returns a validated
// state vector. Validation failures surface the solver's
// *InvalidStateError unchanged so callers can distinguish bad inputs
// from malformed files.
func Load(r io.Reader) (coe.StateVector, error) {
	var payload stateVectorYAML
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&payload); err != nil {
		return coe.StateVector{}, fmt.Errorf("scenario: decode failed: %w", err)
	}

	pos, err := vec3From(payload.StateVector.Position, "position")
	if err != nil {
		return coe.StateVector{}, err
	}
	vel, err := vec3From(payload.StateVector.Velocity, "velocity")
	if err != nil {
		return coe.StateVector{}, err
	}

	mu := coe.MuEarth
	if payload.StateVector.Mu != nil {
		mu = *payload.StateVector.Mu
	}

	sv, err := coe.NewStateVector(pos, vel, mu)
	if err != nil {
		return coe.StateVector{}, fmt.Errorf("scenario: %w", err)
	}
	return sv, nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) (coe.StateVector, error) {
	f, err := os.Open(path)
	if err != nil {
		return coe.StateVector{}, fmt.Errorf("scenario: open %q: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

func vec3From(raw []float64, field string) (coe.Vec3, error) {
	if len(raw) != 3 {
		return coe.Vec3{}, fmt.Errorf("scenario: %s must have exactly 3 components, got %d", field, len(raw))
	}
	return coe.Vec3{X: raw[0], Y: raw[1], Z: raw[2]}, nil
}
