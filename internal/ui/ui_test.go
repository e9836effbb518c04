package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-burn/internal/kinematics"
)

func press(m Model, keys ...tea.KeyMsg) Model {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

func typeText(m Model, s string) Model {
	return press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func clearField(m Model) Model {
	n := len(m.inputs[m.focus].Value())
	for i := 0; i < n; i++ {
		m = press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	return m
}

func TestNew_ReferenceResult(t *testing.T) {
	m := New(kinematics.ReferenceState(), kinematics.FuelPolicyError, nil)

	res, err := m.Result()
	if err != nil {
		t.Fatalf("Result() err = %v", err)
	}
	if res.UpdatedVelocityKmh != 48880 {
		t.Errorf("velocity = %v, want 48880", res.UpdatedVelocityKmh)
	}

	view := m.View()
	for _, want := range []string{"48880 km/h", "10000 km", "3200 kg", "Fuel burn rate"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestFocusNavigation(t *testing.T) {
	m := New(kinematics.ReferenceState(), kinematics.FuelPolicyError, nil)

	if m.Focused() != kinematics.FieldInitialVelocity {
		t.Fatalf("initial focus = %s", m.Focused())
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Focused() != kinematics.FieldAcceleration {
		t.Errorf("after tab focus = %s", m.Focused())
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	if m.Focused() != kinematics.FieldFuelBurnRate {
		t.Errorf("after wrap-around focus = %s", m.Focused())
	}
}

func TestEditingRecalculates(t *testing.T) {
	m := New(kinematics.ReferenceState(), kinematics.FuelPolicyError, nil)

	// Acceleration 3 -> 0: velocity stays at the initial value.
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	m = clearField(m)
	m = typeText(m, "0")

	res, err := m.Result()
	if err != nil {
		t.Fatalf("Result() err = %v", err)
	}
	if res.UpdatedVelocityKmh != 10000 {
		t.Errorf("velocity = %v, want 10000", res.UpdatedVelocityKmh)
	}
	if m.State().AccelerationMs2 != 0 {
		t.Errorf("state acceleration = %v", m.State().AccelerationMs2)
	}
}

func TestNonNumericInputNamesField(t *testing.T) {
	m := New(kinematics.ReferenceState(), kinematics.FuelPolicyError, nil)

	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	m = clearField(m)
	m = typeText(m, "fast")

	_, err := m.Result()
	var ipe *kinematics.InvalidParameterError
	if !errors.As(err, &ipe) {
		t.Fatalf("Result() err = %v, want InvalidParameterError", err)
	}
	if ipe.Field != kinematics.FieldAcceleration || ipe.Constraint != kinematics.ConstraintNotNumber {
		t.Errorf("error = %+v", ipe)
	}
	if m.errField != kinematics.FieldAcceleration {
		t.Errorf("errField = %q", m.errField)
	}
	if !strings.Contains(m.View(), "accelerationMs2") {
		t.Error("View() should show the offending field")
	}
}

func TestEmptyInputIsMissing(t *testing.T) {
	m := New(kinematics.ReferenceState(), kinematics.FuelPolicyError, nil)
	m = clearField(m)

	_, err := m.Result()
	var ipe *kinematics.InvalidParameterError
	if !errors.As(err, &ipe) || ipe.Constraint != kinematics.ConstraintMissing {
		t.Fatalf("Result() err = %v, want missing", err)
	}
}

func TestFuelPolicyToggle(t *testing.T) {
	s := kinematics.State{StartingFuelKg: 100, FuelBurnRateKgPerS: 1, ElapsedSeconds: 200}
	m := New(s, kinematics.FuelPolicyError, nil)

	if _, err := m.Result(); !errors.Is(err, kinematics.ErrFuelExhausted) {
		t.Fatalf("Result() err = %v, want fuel exhausted", err)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlF})
	res, err := m.Result()
	if err != nil {
		t.Fatalf("after ctrl+f err = %v", err)
	}
	if !res.FuelClamped || res.RemainingFuelKg != 0 {
		t.Errorf("result = %+v, want clamped", res)
	}
	if !strings.Contains(m.View(), "fuel policy: clamp") {
		t.Error("footer should show clamp policy")
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlF})
	if _, err := m.Result(); !errors.Is(err, kinematics.ErrFuelExhausted) {
		t.Errorf("after second ctrl+f err = %v", err)
	}
}

func TestResetRestoresReference(t *testing.T) {
	m := New(kinematics.State{}, kinematics.FuelPolicyError, nil)
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlR})

	if m.State() != kinematics.ReferenceState() {
		t.Errorf("State() = %+v", m.State())
	}
}

func TestQuitKeys(t *testing.T) {
	m := New(kinematics.ReferenceState(), kinematics.FuelPolicyError, nil)

	for _, k := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(k)
		if cmd == nil {
			t.Fatalf("%s: no command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: want QuitMsg", k)
		}
	}
}
