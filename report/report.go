// Package report renders computed orbital elements for humans (fixed
// two-decimal table) and for files (full-precision YAML). Field names
// and units follow the established output format.
package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/signalsfoundry/orbital-elements/coe"
)

// Serialized element field names, shared with the fixture harness.
const (
	FieldH     = "h (km^2/s)"
	FieldA     = "a (km)"
	FieldI     = "i (deg)"
	FieldRAAN  = "RAAN (deg)"
	FieldE     = "e"
	FieldOmega = "omega (deg)"
	FieldNu    = "nu (deg)"
)

// Fields lists the serialized names in output order.
var Fields = []string{FieldH, FieldA, FieldI, FieldRAAN, FieldE, FieldOmega, FieldNu}

// Values maps the serialized field names to the element values, with
// undefined angles as NaN. This is the comparison form used by the
// fixture harness.
func Values(el coe.OrbitalElements) map[string]float64 {
	return map[string]float64{
		FieldH:     el.H,
		FieldA:     el.SemiMajorAxis,
		FieldI:     el.Inclination,
		FieldRAAN:  el.RAAN.OrNaN(),
		FieldE:     el.Eccentricity,
		FieldOmega: el.ArgPerigee.OrNaN(),
		FieldNu:    el.TrueAnomaly.OrNaN(),
	}
}

// WriteTable renders el as a two-column table rounded to two decimals.
// Undefined angles print as "undefined".
func WriteTable(w io.Writer, el coe.OrbitalElements) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Element", "Value"})
	table.SetAutoFormatHeaders(false)

	table.Append([]string{FieldH, formatScalar(el.H)})
	table.Append([]string{FieldA, formatScalar(el.SemiMajorAxis)})
	table.Append([]string{FieldI, formatScalar(el.Inclination)})
	table.Append([]string{FieldRAAN, formatAngle(el.RAAN)})
	table.Append([]string{FieldE, formatScalar(el.Eccentricity)})
	table.Append([]string{FieldOmega, formatAngle(el.ArgPerigee)})
	table.Append([]string{FieldNu, formatAngle(el.TrueAnomaly)})

	table.Render()
}

// elementsYAML preserves the field names and order of the output format.
// Undefined angles serialize as .nan and a parabolic semi-major axis as
// .inf, matching the established file convention.
type elementsYAML struct {
	H     float64 `yaml:"h (km^2/s)"`
	A     float64 `yaml:"a (km)"`
	I     float64 `yaml:"i (deg)"`
	RAAN  float64 `yaml:"RAAN (deg)"`
	E     float64 `yaml:"e"`
	Omega float64 `yaml:"omega (deg)"`
	Nu    float64 `yaml:"nu (deg)"`
}

// WriteYAML serializes el at full precision.
func WriteYAML(w io.Writer, el coe.OrbitalElements) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()

	doc := elementsYAML{
		H:     el.H,
		A:     el.SemiMajorAxis,
		I:     el.Inclination,
		RAAN:  el.RAAN.OrNaN(),
		E:     el.Eccentricity,
		Omega: el.ArgPerigee.OrNaN(),
		Nu:    el.TrueAnomaly.OrNaN(),
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("report: encode failed: %w", err)
	}
	return nil
}

// SaveYAML writes the full-precision serialization to path.
func SaveYAML(path string, el coe.OrbitalElements) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %q: %w", path, err)
	}
	if err := WriteYAML(f, el); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("report: close %q: %w", path, err)
	}
	return nil
}

func formatScalar(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	if math.IsInf(v, -1) {
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatAngle(a coe.Angle) string {
	if !a.Defined {
		return "undefined"
	}
	return formatScalar(a.Degrees)
}
