package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/litescript/ls-burn/internal/kinematics"
	"github.com/litescript/ls-burn/internal/version"
)

type run struct {
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, stdin string, args ...string) run {
	t.Helper()
	var stdout, stderr bytes.Buffer
	a := newApp(strings.NewReader(stdin), &stdout, &stderr)
	a.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	a.isTTY = func() bool { return false }

	root := a.rootCommand()
	root.SetArgs(args)
	err := root.Execute()
	return run{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestCalc_DefaultReference(t *testing.T) {
	for _, args := range [][]string{{}, {"calc"}} {
		r := execute(t, "", args...)
		if r.err != nil {
			t.Fatalf("%v: err = %v", args, r.err)
		}
		want := "Updated Velocity: 48880 km/h\nUpdated Distance: 10000 km\nRemaining Fuel: 3200 kg\n"
		if r.stdout != want {
			t.Errorf("%v: stdout =\n%s\nwant\n%s", args, r.stdout, want)
		}
	}
}

func TestCalc_FlagOverrides(t *testing.T) {
	r := execute(t, "", "calc", "--acceleration", "0", "--elapsed", "1800")
	if r.err != nil {
		t.Fatalf("err = %v", r.err)
	}
	for _, want := range []string{"Updated Velocity: 10000 km/h", "Updated Distance: 5000 km", "Remaining Fuel: 4100 kg"} {
		if !strings.Contains(r.stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, r.stdout)
		}
	}
}

func TestCalc_InvalidParameter(t *testing.T) {
	r := execute(t, "", "calc", "--elapsed", "-1")

	var ipe *kinematics.InvalidParameterError
	if !errors.As(r.err, &ipe) {
		t.Fatalf("err = %v, want InvalidParameterError", r.err)
	}
	if ipe.Field != kinematics.FieldElapsed {
		t.Errorf("field = %s", ipe.Field)
	}
	if r.stdout != "" {
		t.Errorf("no result expected on error, got %q", r.stdout)
	}
}

func TestCalc_FuelExhaustion(t *testing.T) {
	args := []string{"calc", "--starting-fuel", "100", "--burn-rate", "1", "--elapsed", "200"}

	r := execute(t, "", args...)
	if !errors.Is(r.err, kinematics.ErrFuelExhausted) {
		t.Fatalf("err = %v, want fuel exhausted", r.err)
	}
	if !strings.Contains(r.err.Error(), "--clamp-fuel") {
		t.Errorf("error should suggest --clamp-fuel: %v", r.err)
	}

	r = execute(t, "", append(args, "--clamp-fuel")...)
	if r.err != nil {
		t.Fatalf("clamped err = %v", r.err)
	}
	if !strings.Contains(r.stdout, "Remaining Fuel: 0 kg") {
		t.Errorf("stdout = %q", r.stdout)
	}
	if !strings.Contains(r.stderr, "[WARN] [calc]") {
		t.Errorf("expected clamp warning on stderr, got %q", r.stderr)
	}
}

func TestCalc_JSONOutput(t *testing.T) {
	r := execute(t, "", "calc", "--output", "json")
	if r.err != nil {
		t.Fatalf("err = %v", r.err)
	}

	var doc struct {
		ComputedAt time.Time         `json:"computed_at"`
		Version    string            `json:"version"`
		FuelPolicy string            `json:"fuel_policy"`
		Result     kinematics.Result `json:"result"`
	}
	if err := json.Unmarshal([]byte(r.stdout), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, r.stdout)
	}

	if doc.Version != version.Version || doc.FuelPolicy != "error" {
		t.Errorf("doc = %+v", doc)
	}
	if !doc.ComputedAt.Equal(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("computed_at = %v", doc.ComputedAt)
	}
	if doc.Result.UpdatedVelocityKmh != 48880 || doc.Result.RemainingFuelKg != 3200 {
		t.Errorf("result = %+v", doc.Result)
	}
}

func TestCalc_TableAndCardOutput(t *testing.T) {
	r := execute(t, "", "calc", "-o", "table")
	if r.err != nil || !strings.Contains(r.stdout, "Burn Summary") {
		t.Errorf("table: err = %v, stdout =\n%s", r.err, r.stdout)
	}

	r = execute(t, "", "calc", "-o", "CARD")
	if r.err != nil || !strings.Contains(r.stdout, "Burn Result") {
		t.Errorf("card: err = %v, stdout =\n%s", r.err, r.stdout)
	}

	r = execute(t, "", "calc", "-o", "xml")
	if r.err == nil || !strings.Contains(r.err.Error(), "unknown output format") {
		t.Errorf("xml: err = %v", r.err)
	}
}

func TestCalc_ParamsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "burn.yaml")
	content := "initialVelocityKmh: 0\naccelerationMs2: 1\nelapsedSeconds: 10\n" +
		"initialDistanceKm: 5\nstartingFuelKg: 20\nfuelBurnRateKgPerS: 1\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	r := execute(t, "", "calc", "--params", path)
	if r.err != nil {
		t.Fatalf("err = %v", r.err)
	}
	if !strings.Contains(r.stdout, "Updated Velocity: 36 km/h") || !strings.Contains(r.stdout, "Remaining Fuel: 10 kg") {
		t.Errorf("stdout =\n%s", r.stdout)
	}

	t.Setenv(EnvPrefix+"_PARAMS", path)
	r = execute(t, "", "calc", "--elapsed", "20")
	if r.err != nil {
		t.Fatalf("env err = %v", r.err)
	}
	if !strings.Contains(r.stdout, "Updated Velocity: 72 km/h") {
		t.Errorf("env stdout =\n%s", r.stdout)
	}
}

func TestCalc_ParamsStdinStringValue(t *testing.T) {
	stdin := `{"initialVelocityKmh": 10000, "accelerationMs2": "3", "elapsedSeconds": 3600,
		"initialDistanceKm": 0, "startingFuelKg": 5000, "fuelBurnRateKgPerS": 0.5}`

	r := execute(t, stdin, "calc", "--params", "-")

	var ipe *kinematics.InvalidParameterError
	if !errors.As(r.err, &ipe) {
		t.Fatalf("err = %v, want InvalidParameterError", r.err)
	}
	if ipe.Field != kinematics.FieldAcceleration || ipe.Constraint != kinematics.ConstraintNotNumber {
		t.Errorf("error = %+v", ipe)
	}
}

func TestBadLogLevel(t *testing.T) {
	r := execute(t, "", "calc", "--log-level", "loud")
	if r.err == nil || !strings.Contains(r.err.Error(), "unknown log level") {
		t.Errorf("err = %v", r.err)
	}
}

func TestUnitsAndVersion(t *testing.T) {
	r := execute(t, "", "units")
	if r.err != nil {
		t.Fatalf("units err = %v", r.err)
	}
	for _, want := range []string{"MS2ToKmhPerSecond = 3.6", "SecondsPerHour = 3600"} {
		if !strings.Contains(r.stdout, want) {
			t.Errorf("units missing %q:\n%s", want, r.stdout)
		}
	}

	r = execute(t, "", "version")
	if r.err != nil || r.stdout != "ls-burn v"+version.Version+"\n" {
		t.Errorf("version: err = %v, stdout = %q", r.err, r.stdout)
	}
}

func TestTUIRequiresTerminal(t *testing.T) {
	r := execute(t, "", "tui")
	if r.err == nil || !strings.Contains(r.err.Error(), "requires a terminal") {
		t.Errorf("err = %v", r.err)
	}
}
