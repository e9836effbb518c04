// Package report renders calculation results as plain text, tables, JSON and
// styled terminal cards.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/litescript/ls-burn/internal/kinematics"
	"github.com/litescript/ls-burn/internal/version"
)

// FormatValue renders v with the shortest exact decimal form and a unit suffix.
func FormatValue(v float64, unit string) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if unit == "" {
		return s
	}
	return s + " " + unit
}

// WriteText writes the three result lines.
func WriteText(w io.Writer, res kinematics.Result) {
	fmt.Fprintf(w, "Updated Velocity: %s\n", FormatValue(res.UpdatedVelocityKmh, "km/h"))
	fmt.Fprintf(w, "Updated Distance: %s\n", FormatValue(res.UpdatedDistanceKm, "km"))
	fmt.Fprintf(w, "Remaining Fuel: %s\n", FormatValue(res.RemainingFuelKg, "kg"))
	if res.FuelClamped {
		fmt.Fprintln(w, "Note: fuel ran out during the burn; remaining fuel clamped to 0 kg")
	}
}

// Row is one line of the parameter table.
type Row struct {
	Section string
	Name    string
	Value   string
	Unit    string
}

// Rows lists inputs followed by outputs.
func Rows(s kinematics.State, res kinematics.Result) []Row {
	var rows []Row
	for _, f := range kinematics.Fields() {
		v, _ := s.Get(f.Name)
		rows = append(rows, Row{Section: "input", Name: f.Name, Value: FormatValue(v, ""), Unit: f.Unit})
	}
	fuel := FormatValue(res.RemainingFuelKg, "")
	if res.FuelClamped {
		fuel += " (clamped)"
	}
	rows = append(rows,
		Row{Section: "output", Name: kinematics.FieldUpdatedVelocity, Value: FormatValue(res.UpdatedVelocityKmh, ""), Unit: "km/h"},
		Row{Section: "output", Name: kinematics.FieldUpdatedDistance, Value: FormatValue(res.UpdatedDistanceKm, ""), Unit: "km"},
		Row{Section: "output", Name: kinematics.FieldRemainingFuel, Value: fuel, Unit: "kg"},
	)
	return rows
}

// WriteTable writes inputs and outputs as an aligned text table.
func WriteTable(w io.Writer, s kinematics.State, res kinematics.Result) {
	fmt.Fprintln(w, "Burn Summary")
	fmt.Fprintln(w, strings.Repeat("─", 52))
	fmt.Fprintf(w, "%-7s %-20s %14s %-6s\n", "Kind", "Parameter", "Value", "Unit")
	fmt.Fprintln(w, strings.Repeat("─", 52))

	prev := ""
	for _, r := range Rows(s, res) {
		if prev != "" && r.Section != prev {
			fmt.Fprintln(w, strings.Repeat("─", 52))
		}
		prev = r.Section
		fmt.Fprintf(w, "%-7s %-20s %14s %-6s\n", r.Section, r.Name, r.Value, r.Unit)
	}
}

// Export is the JSON-serializable form of one calculation.
type Export struct {
	ComputedAt time.Time         `json:"computed_at"`
	Version    string            `json:"version"`
	FuelPolicy string            `json:"fuel_policy"`
	Parameters kinematics.State  `json:"parameters"`
	Result     kinematics.Result `json:"result"`
}

// NewExport builds an export document.
func NewExport(s kinematics.State, res kinematics.Result, policy kinematics.FuelPolicy, at time.Time) *Export {
	return &Export{
		ComputedAt: at,
		Version:    version.Version,
		FuelPolicy: policy.String(),
		Parameters: s,
		Result:     res,
	}
}

// WriteJSON writes the export as indented JSON.
func (e *Export) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}
