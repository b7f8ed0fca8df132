package fixture

import (
	"context"
	"strings"
	"testing"

	"github.com/signalsfoundry/orbital-elements/internal/logging"
)

const sampleDoc = `
test_cases:
  - name: leo-elliptical
    r: [-6045, -3490, 2500]
    v: [-3.457, 6.618, 2.533]
    expected:
      tolerance: 1.0e-3
      h (km^2/s): 58311.6699
      a (km): 8788.0818
      i (deg): 153.2492
      RAAN (deg): 255.2793
      e: 0.1712
      omega (deg): 20.0681
      nu (deg): 28.4458
  - name: equatorial-elliptical
    r: [7000, 0, 0]
    v: [0, 8.0, 0]
    expected:
      e: 0.1239
      i (deg): 0.0
    undefined: ["RAAN (deg)", "omega (deg)"]
`

func TestLoad_ParsesCasesAndTolerance(t *testing.T) {
	cases, err := Load(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cases) != 2 {
		t.Fatalf("len(cases) = %d, want 2", len(cases))
	}
	if cases[0].Tolerance != 1e-3 {
		t.Errorf("tolerance = %v, want 1e-3", cases[0].Tolerance)
	}
	if _, ok := cases[0].Expected["tolerance"]; ok {
		t.Error("tolerance key leaked into expected values")
	}
	if cases[1].Tolerance != DefaultTolerance {
		t.Errorf("default tolerance = %v, want %v", cases[1].Tolerance, DefaultTolerance)
	}
	if len(cases[1].Undefined) != 2 {
		t.Errorf("undefined assertions = %v, want 2 entries", cases[1].Undefined)
	}
}

func TestRun_AllPass(t *testing.T) {
	cases, err := Load(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	summary := Run(context.Background(), cases, logging.Noop())
	if !summary.AllPassed() {
		for _, res := range summary.Results {
			if !res.Passed() {
				t.Errorf("case %q failed: %v", res.Name, res.Errors)
			}
		}
	}
}

func TestRun_DetectsMismatch(t *testing.T) {
	doc := `
test_cases:
  - name: wrong-h
    r: [-6045, -3490, 2500]
    v: [-3.457, 6.618, 2.533]
    expected:
      h (km^2/s): 99999.0
`
	cases, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	summary := Run(context.Background(), cases, logging.Noop())
	if summary.AllPassed() {
		t.Fatal("expected mismatch to fail the run")
	}
	if summary.Failed != 1 {
		t.Errorf("Failed = %d, want 1", summary.Failed)
	}
}

func TestRun_UndefinedExpectationAgainstDefinedValue(t *testing.T) {
	doc := `
test_cases:
  - name: inclined-but-asserted-equatorial
    r: [-6045, -3490, 2500]
    v: [-3.457, 6.618, 2.533]
    undefined: ["RAAN (deg)"]
`
	cases, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	res := cases[0].Run()
	if res.Passed() {
		t.Fatal("expected failure: RAAN is defined for an inclined orbit")
	}
}

func TestRun_ExpectingNumberForUndefinedElement(t *testing.T) {
	doc := `
test_cases:
  - name: equatorial-with-raan-expectation
    r: [7000, 0, 0]
    v: [0, 8.0, 0]
    expected:
      RAAN (deg): 10.0
`
	cases, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	res := cases[0].Run()
	if res.Passed() {
		t.Fatal("expected failure: RAAN is undefined for an equatorial orbit")
	}
}

func TestRun_InvalidStateVectorFailsCase(t *testing.T) {
	doc := `
test_cases:
  - name: zero-position
    r: [0, 0, 0]
    v: [0, 7.5, 0]
    expected:
      e: 0.0
`
	cases, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	res := cases[0].Run()
	if res.Passed() {
		t.Fatal("expected failure for invalid state vector")
	}
}

func TestLoad_UnnamedCase(t *testing.T) {
	doc := `
test_cases:
  - r: [7000, 0, 0]
    v: [0, 7.5, 0]
`
	if _, err := Load(strings.NewReader(doc)); err == nil {
		t.Fatal("expected error for unnamed case")
	}
}
