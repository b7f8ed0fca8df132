package coe

import (
	"errors"
	"math"
	"testing"
)

func TestNewStateVector_Valid(t *testing.T) {
	sv, err := NewEarthStateVector(Vec3{X: 7000}, Vec3{Y: 7.5})
	if err != nil {
		t.Fatalf("NewEarthStateVector: %v", err)
	}
	if sv.Mu != MuEarth {
		t.Errorf("Mu = %v, want %v", sv.Mu, MuEarth)
	}
}

func TestNewStateVector_Rejections(t *testing.T) {
	cases := []struct {
		name string
		r, v Vec3
		mu   float64
	}{
		{"zero position", Vec3{}, Vec3{Y: 7.5}, MuEarth},
		{"zero velocity", Vec3{X: 7000}, Vec3{}, MuEarth},
		{"NaN velocity component", Vec3{X: 7000}, Vec3{X: math.NaN()}, MuEarth},
		{"infinite position component", Vec3{X: math.Inf(1)}, Vec3{Y: 7.5}, MuEarth},
		{"negative mu", Vec3{X: 7000}, Vec3{Y: 7.5}, -1},
		{"zero mu", Vec3{X: 7000}, Vec3{Y: 7.5}, 0},
		{"NaN mu", Vec3{X: 7000}, Vec3{Y: 7.5}, math.NaN()},
		{"radial trajectory", Vec3{X: 7000}, Vec3{X: -5}, MuEarth},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewStateVector(tc.r, tc.v, tc.mu)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			var ise *InvalidStateError
			if !errors.As(err, &ise) {
				t.Fatalf("error %v is not *InvalidStateError", err)
			}
		})
	}
}
