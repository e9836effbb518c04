package kinematics

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is matching.
var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrFuelExhausted    = errors.New("fuel exhausted")
	ErrNonFiniteResult  = errors.New("result is not finite")
)

// Constraint names the rule a parameter violated.
type Constraint string

const (
	ConstraintMissing   Constraint = "missing"
	ConstraintNotNumber Constraint = "not a number"
	ConstraintNonFinite Constraint = "not finite"
	ConstraintNegative  Constraint = "negative"
	ConstraintUnknown   Constraint = "unknown parameter"
)

// InvalidParameterError reports a parameter that is missing, of the wrong type,
// not finite, negative where that is disallowed, or not recognised.
type InvalidParameterError struct {
	Field      string
	Constraint Constraint
	Value      any
}

func (e *InvalidParameterError) Error() string {
	switch e.Constraint {
	case ConstraintMissing:
		return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Constraint)
	case ConstraintNotNumber:
		return fmt.Sprintf("invalid parameter %s: %s (got %T %v)", e.Field, e.Constraint, e.Value, e.Value)
	default:
		return fmt.Sprintf("invalid parameter %s: %s (got %v)", e.Field, e.Constraint, e.Value)
	}
}

// Is reports ErrInvalidParameter as a match.
func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// FuelExhaustionError reports a burn that would consume more fuel than is on board.
type FuelExhaustionError struct {
	StartingFuelKg float64
	BurnedKg       float64
	DeficitKg      float64
}

func (e *FuelExhaustionError) Error() string {
	return fmt.Sprintf("fuel exhausted: burn of %g kg exceeds starting fuel of %g kg by %g kg",
		e.BurnedKg, e.StartingFuelKg, e.DeficitKg)
}

// Is reports ErrFuelExhausted as a match.
func (e *FuelExhaustionError) Is(target error) bool {
	return target == ErrFuelExhausted
}
