package kinematics

import (
	"fmt"
	"math"
)

// FuelPolicy selects what happens when a burn would leave negative fuel.
type FuelPolicy int

const (
	// FuelPolicyError fails the calculation with a FuelExhaustionError.
	FuelPolicyError FuelPolicy = iota

	// FuelPolicyClamp reports zero remaining fuel and sets Result.FuelClamped.
	FuelPolicyClamp
)

func (p FuelPolicy) String() string {
	switch p {
	case FuelPolicyError:
		return "error"
	case FuelPolicyClamp:
		return "clamp"
	default:
		return "unknown"
	}
}

// Options configures a Calculator.
type Options struct {
	FuelPolicy FuelPolicy
}

// Calculator derives a Result from a State. The zero value uses FuelPolicyError.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	fuelPolicy FuelPolicy
}

// NewCalculator creates a calculator with the given options.
func NewCalculator(opts Options) Calculator {
	return Calculator{fuelPolicy: opts.FuelPolicy}
}

// FuelPolicy returns the calculator's fuel policy.
func (c Calculator) FuelPolicy() FuelPolicy {
	return c.fuelPolicy
}

// Validate checks that every field is finite and that all fields except
// acceleration are non-negative.
func (c Calculator) Validate(s State) error {
	for _, f := range fields {
		v, _ := s.Get(f.Name)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &InvalidParameterError{Field: f.Name, Constraint: ConstraintNonFinite, Value: v}
		}
		if !f.AllowNegative && v < 0 {
			return &InvalidParameterError{Field: f.Name, Constraint: ConstraintNegative, Value: v}
		}
	}
	return nil
}

// UpdatedVelocity returns v0 + a·3.6·t in km/h.
func (c Calculator) UpdatedVelocity(s State) float64 {
	return s.InitialVelocityKmh + AccelerationKmhPerSecond(s.AccelerationMs2)*s.ElapsedSeconds
}

// UpdatedDistance returns d0 + v0·(t/3600) in km.
//
// Only the initial velocity contributes; the extra distance gained while
// accelerating is not included.
func (c Calculator) UpdatedDistance(s State) float64 {
	return s.InitialDistanceKm + s.InitialVelocityKmh*SecondsToHours(s.ElapsedSeconds)
}

// RemainingFuel returns the fuel left after the burn. The bool reports whether
// the value was clamped to zero.
func (c Calculator) RemainingFuel(s State) (float64, bool, error) {
	burned := s.FuelBurnRateKgPerS * s.ElapsedSeconds
	remaining := s.StartingFuelKg - burned
	if remaining >= 0 {
		return remaining, false, nil
	}
	if c.fuelPolicy == FuelPolicyClamp {
		return 0, true, nil
	}
	return 0, false, &FuelExhaustionError{
		StartingFuelKg: s.StartingFuelKg,
		BurnedKg:       burned,
		DeficitKg:      -remaining,
	}
}

// Calculate validates s and derives the full Result. No partial result is
// returned on error.
func (c Calculator) Calculate(s State) (Result, error) {
	if err := c.Validate(s); err != nil {
		return Result{}, err
	}

	fuel, clamped, err := c.RemainingFuel(s)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		UpdatedVelocityKmh: c.UpdatedVelocity(s),
		UpdatedDistanceKm:  c.UpdatedDistance(s),
		RemainingFuelKg:    fuel,
		FuelClamped:        clamped,
	}

	for _, out := range []struct {
		name string
		v    float64
	}{
		{FieldUpdatedVelocity, res.UpdatedVelocityKmh},
		{FieldUpdatedDistance, res.UpdatedDistanceKm},
		{FieldRemainingFuel, res.RemainingFuelKg},
	} {
		if math.IsNaN(out.v) || math.IsInf(out.v, 0) {
			return Result{}, fmt.Errorf("%w: %s", ErrNonFiniteResult, out.name)
		}
	}

	return res, nil
}

var defaultCalculator Calculator

// Validate checks s with the default calculator.
func Validate(s State) error { return defaultCalculator.Validate(s) }

// UpdatedVelocity computes the updated velocity with the default calculator.
func UpdatedVelocity(s State) float64 { return defaultCalculator.UpdatedVelocity(s) }

// UpdatedDistance computes the updated distance with the default calculator.
func UpdatedDistance(s State) float64 { return defaultCalculator.UpdatedDistance(s) }

// RemainingFuel computes remaining fuel, failing on exhaustion.
func RemainingFuel(s State) (float64, error) {
	v, _, err := defaultCalculator.RemainingFuel(s)
	return v, err
}

// Calculate runs a full calculation with the default calculator.
func Calculate(s State) (Result, error) { return defaultCalculator.Calculate(s) }
