// Package fixture runs named solver cases loaded from YAML: input
// vectors, expected element values keyed by the serialized field names,
// and a per-case absolute tolerance. Shape:
//
//	test_cases:
//	  - name: leo
//	    r: [-6045, -3490, 2500]
//	    v: [-3.457, 6.618, 2.533]
//	    mu: 398600.4418          # optional
//	    expected:
//	      tolerance: 1e-3        # optional, defaults to 1e-3
//	      h (km^2/s): 58311.67
//	      e: 0.17121
//	    undefined: [RAAN (deg)]  # elements asserted undefined
package fixture

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"

	"gonum.org/v1/gonum/floats/scalar"
	"gopkg.in/yaml.v3"

	"github.com/signalsfoundry/orbital-elements/coe"
	"github.com/signalsfoundry/orbital-elements/internal/logging"
	"github.com/signalsfoundry/orbital-elements/report"
)

// DefaultTolerance is the absolute comparison tolerance used when a
// case does not set its own.
const DefaultTolerance = 1e-3

// Case is one named fixture.
type Case struct {
	Name      string
	R, V      coe.Vec3
	Mu        float64 // km^3/s^2; zero means Earth
	Tolerance float64
	Expected  map[string]float64
	Undefined []string
}

// Result is the outcome of one case. Errors holds one message per
// mismatched element; an empty slice means the case passed.
type Result struct {
	Name   string
	Errors []string
}

// Passed reports whether every comparison in the case held.
func (r Result) Passed() bool { return len(r.Errors) == 0 }

// Summary aggregates the results of a fixture run.
type Summary struct {
	Results []Result
	Failed  int
}

// AllPassed reports whether every case passed.
func (s Summary) AllPassed() bool { return s.Failed == 0 }

type fixtureYAML struct {
	TestCases []caseYAML `yaml:"test_cases"`
}

type caseYAML struct {
	Name      string             `yaml:"name"`
	R         []float64          `yaml:"r"`
	V         []float64          `yaml:"v"`
	Mu        *float64           `yaml:"mu"`
	Expected  map[string]float64 `yaml:"expected"`
	Undefined []string           `yaml:"undefined"`
}

// Load parses a fixture document from r.
func Load(r io.Reader) ([]Case, error) {
	var payload fixtureYAML
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("fixture: decode failed: %w", err)
	}

	cases := make([]Case, 0, len(payload.TestCases))
	for i, tc := range payload.TestCases {
		if tc.Name == "" {
			return nil, fmt.Errorf("fixture: case %d has no name", i)
		}
		rVec, err := vec3From(tc.R, tc.Name, "r")
		if err != nil {
			return nil, err
		}
		vVec, err := vec3From(tc.V, tc.Name, "v")
		if err != nil {
			return nil, err
		}

		c := Case{
			Name:      tc.Name,
			R:         rVec,
			V:         vVec,
			Tolerance: DefaultTolerance,
			Expected:  make(map[string]float64, len(tc.Expected)),
			Undefined: tc.Undefined,
		}
		if tc.Mu != nil {
			c.Mu = *tc.Mu
		}
		// The tolerance rides inside the expected block, like the rest
		// of the element keys.
		for key, val := range tc.Expected {
			if key == "tolerance" {
				c.Tolerance = val
				continue
			}
			c.Expected[key] = val
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: open %q: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Run executes the case and compares every expected element with an
// absolute tolerance.
func (c Case) Run() Result {
	res := Result{Name: c.Name}

	mu := c.Mu
	if mu == 0 {
		mu = coe.MuEarth
	}
	sv, err := coe.NewStateVector(c.R, c.V, mu)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("state vector rejected: %v", err))
		return res
	}

	got := report.Values(coe.Compute(sv))

	for field, want := range c.Expected {
		actual, ok := got[field]
		if !ok {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: unknown element", field))
			continue
		}
		if math.IsNaN(actual) {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: expected %v, got undefined", field, want))
			continue
		}
		if !scalar.EqualWithinAbs(actual, want, c.Tolerance) {
			res.Errors = append(res.Errors,
				fmt.Sprintf("%s: expected %v, got %.4f (tol=%v)", field, want, actual, c.Tolerance))
		}
	}

	for _, field := range c.Undefined {
		actual, ok := got[field]
		if !ok {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: unknown element", field))
			continue
		}
		if !math.IsNaN(actual) {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: expected undefined, got %.4f", field, actual))
		}
	}

	return res
}

// Run executes every case, logging per-case pass/fail, and returns the
// aggregate summary.
func Run(ctx context.Context, cases []Case, log logging.Logger) Summary {
	if log == nil {
		log = logging.Noop()
	}

	summary := Summary{Results: make([]Result, 0, len(cases))}
	for _, c := range cases {
		res := c.Run()
		if res.Passed() {
			log.Info(ctx, "fixture passed", logging.String("case", c.Name))
		} else {
			summary.Failed++
			log.Error(ctx, "fixture failed",
				logging.String("case", c.Name),
				logging.Any("errors", res.Errors),
			)
		}
		summary.Results = append(summary.Results, res)
	}
	return summary
}

func vec3From(raw []float64, name, field string) (coe.Vec3, error) {
	if len(raw) != 3 {
		return coe.Vec3{}, fmt.Errorf("fixture: case %q: %s must have exactly 3 components, got %d", name, field, len(raw))
	}
	return coe.Vec3{X: raw[0], Y: raw[1], Z: raw[2]}, nil
}
