// Package kinematics computes a spacecraft's velocity, distance and fuel after a single
// constant-acceleration time step.
package kinematics

// Canonical parameter names. These are also the JSON and parameter-file keys.
const (
	FieldInitialVelocity = "initialVelocityKmh"
	FieldAcceleration    = "accelerationMs2"
	FieldElapsed         = "elapsedSeconds"
	FieldInitialDistance = "initialDistanceKm"
	FieldStartingFuel    = "startingFuelKg"
	FieldFuelBurnRate    = "fuelBurnRateKgPerS"
)

// Result field names, used when reporting a non-finite output.
const (
	FieldUpdatedVelocity = "updatedVelocityKmh"
	FieldUpdatedDistance = "updatedDistanceKm"
	FieldRemainingFuel   = "remainingFuelKg"
)

// State is the input to one calculation.
type State struct {
	InitialVelocityKmh float64 `json:"initialVelocityKmh"`
	AccelerationMs2    float64 `json:"accelerationMs2"`
	ElapsedSeconds     float64 `json:"elapsedSeconds"`
	InitialDistanceKm  float64 `json:"initialDistanceKm"`
	StartingFuelKg     float64 `json:"startingFuelKg"`
	FuelBurnRateKgPerS float64 `json:"fuelBurnRateKgPerS"`
}

// Result holds the values derived from a State.
type Result struct {
	UpdatedVelocityKmh float64 `json:"updatedVelocityKmh"`
	UpdatedDistanceKm  float64 `json:"updatedDistanceKm"`
	RemainingFuelKg    float64 `json:"remainingFuelKg"`

	// FuelClamped is set when a negative remainder was replaced by zero
	// under FuelPolicyClamp.
	FuelClamped bool `json:"fuelClamped"`
}

// FieldSpec describes one input parameter.
type FieldSpec struct {
	Name          string
	Label         string
	Unit          string
	AllowNegative bool
}

// fields is in canonical order; validation reports the first violation in this order.
var fields = []FieldSpec{
	{Name: FieldInitialVelocity, Label: "Initial velocity", Unit: "km/h"},
	{Name: FieldAcceleration, Label: "Acceleration", Unit: "m/s²", AllowNegative: true},
	{Name: FieldElapsed, Label: "Elapsed time", Unit: "s"},
	{Name: FieldInitialDistance, Label: "Initial distance", Unit: "km"},
	{Name: FieldStartingFuel, Label: "Starting fuel", Unit: "kg"},
	{Name: FieldFuelBurnRate, Label: "Fuel burn rate", Unit: "kg/s"},
}

// Fields returns the input parameters in canonical order.
func Fields() []FieldSpec {
	out := make([]FieldSpec, len(fields))
	copy(out, fields)
	return out
}

// LookupField returns the spec for a canonical field name.
func LookupField(name string) (FieldSpec, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// ReferenceState returns the reference scenario: 10000 km/h, 3 m/s² for one hour,
// starting at 0 km with 5000 kg of fuel burning at 0.5 kg/s.
func ReferenceState() State {
	return State{
		InitialVelocityKmh: 10000,
		AccelerationMs2:    3,
		ElapsedSeconds:     3600,
		InitialDistanceKm:  0,
		StartingFuelKg:     5000,
		FuelBurnRateKgPerS: 0.5,
	}
}

// Get returns the value of a field by canonical name.
func (s State) Get(name string) (float64, bool) {
	switch name {
	case FieldInitialVelocity:
		return s.InitialVelocityKmh, true
	case FieldAcceleration:
		return s.AccelerationMs2, true
	case FieldElapsed:
		return s.ElapsedSeconds, true
	case FieldInitialDistance:
		return s.InitialDistanceKm, true
	case FieldStartingFuel:
		return s.StartingFuelKg, true
	case FieldFuelBurnRate:
		return s.FuelBurnRateKgPerS, true
	default:
		return 0, false
	}
}

// With returns a copy of s with one field replaced.
func (s State) With(name string, v float64) (State, bool) {
	switch name {
	case FieldInitialVelocity:
		s.InitialVelocityKmh = v
	case FieldAcceleration:
		s.AccelerationMs2 = v
	case FieldElapsed:
		s.ElapsedSeconds = v
	case FieldInitialDistance:
		s.InitialDistanceKm = v
	case FieldStartingFuel:
		s.StartingFuelKg = v
	case FieldFuelBurnRate:
		s.FuelBurnRateKgPerS = v
	default:
		return s, false
	}
	return s, true
}

// Map returns the state as a raw parameter map keyed by canonical name.
func (s State) Map() map[string]any {
	m := make(map[string]any, len(fields))
	for _, f := range fields {
		v, _ := s.Get(f.Name)
		m[f.Name] = v
	}
	return m
}
