package kinematics

import (
	"encoding/json"
	"sort"
)

// ParseState builds a State from an untyped parameter map, as decoded from JSON,
// a parameter file or user input. Keys must be canonical field names.
//
// Unknown keys are rejected first (in sorted order), then each field is checked in
// canonical order for presence and numeric type. The resulting State is validated
// before it is returned.
func ParseState(raw map[string]any) (State, error) {
	var unknown []string
	for k := range raw {
		if _, ok := LookupField(k); !ok {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return State{}, &InvalidParameterError{Field: unknown[0], Constraint: ConstraintUnknown, Value: raw[unknown[0]]}
	}

	var s State
	for _, f := range fields {
		v, ok := raw[f.Name]
		if !ok {
			return State{}, &InvalidParameterError{Field: f.Name, Constraint: ConstraintMissing}
		}
		n, ok := toFloat(v)
		if !ok {
			return State{}, &InvalidParameterError{Field: f.Name, Constraint: ConstraintNotNumber, Value: v}
		}
		s, _ = s.With(f.Name, n)
	}

	if err := Validate(s); err != nil {
		return State{}, err
	}
	return s, nil
}

// toFloat accepts Go numeric kinds and json.Number. Strings, bools and nil are rejected
// even when they look numeric.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
