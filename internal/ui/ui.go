// Package ui provides the interactive burn editor using Bubble Tea.
package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-burn/internal/kinematics"
	"github.com/litescript/ls-burn/internal/logging"
	"github.com/litescript/ls-burn/internal/report"
	"github.com/litescript/ls-burn/internal/version"
)

// Model is the root Bubble Tea model. It holds one text input per parameter
// and recalculates on every change.
type Model struct {
	// Dependencies
	calc   kinematics.Calculator
	logger *logging.Logger

	// UI state
	fields []kinematics.FieldSpec
	inputs []textinput.Model
	focus  int
	width  int
	height int

	// Last calculation
	state    kinematics.State
	result   kinematics.Result
	err      error
	errField string
}

// New creates the editor pre-filled with initial.
func New(initial kinematics.State, policy kinematics.FuelPolicy, logger *logging.Logger) Model {
	if logger == nil {
		logger = logging.Discard()
	}

	fields := kinematics.Fields()
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = f.Unit
		ti.CharLimit = 32
		ti.Width = 16
		inputs[i] = ti
	}

	m := Model{
		calc:   kinematics.NewCalculator(kinematics.Options{FuelPolicy: policy}),
		logger: logger,
		fields: fields,
		inputs: inputs,
	}
	m.load(initial)
	m.inputs[0].Focus()
	return m
}

// load replaces every input's text with the values from s.
func (m *Model) load(s kinematics.State) {
	for i, f := range m.fields {
		v, _ := s.Get(f.Name)
		m.inputs[i].SetValue(report.FormatValue(v, ""))
	}
	m.recalculate()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "down", "enter":
			return m, m.setFocus((m.focus + 1) % len(m.inputs))

		case "shift+tab", "up":
			return m, m.setFocus((m.focus - 1 + len(m.inputs)) % len(m.inputs))

		case "ctrl+f":
			next := kinematics.FuelPolicyClamp
			if m.calc.FuelPolicy() == kinematics.FuelPolicyClamp {
				next = kinematics.FuelPolicyError
			}
			m.calc = kinematics.NewCalculator(kinematics.Options{FuelPolicy: next})
			m.logger.Debug("fuel policy set to %s", next)
			m.recalculate()
			return m, nil

		case "ctrl+r":
			m.load(kinematics.ReferenceState())
			return m, nil
		}

		var cmd tea.Cmd
		before := m.inputs[m.focus].Value()
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		if m.inputs[m.focus].Value() != before {
			m.recalculate()
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

// rawParams collects the input text. Text that does not parse as a number is
// passed through as a string so the calculator reports it as not a number.
func (m Model) rawParams() map[string]any {
	raw := make(map[string]any, len(m.fields))
	for i, f := range m.fields {
		text := strings.TrimSpace(m.inputs[i].Value())
		if text == "" {
			continue
		}
		if v, err := strconv.ParseFloat(text, 64); err == nil {
			raw[f.Name] = v
		} else {
			raw[f.Name] = text
		}
	}
	return raw
}

func (m *Model) recalculate() {
	m.err = nil
	m.errField = ""
	m.result = kinematics.Result{}

	s, err := kinematics.ParseState(m.rawParams())
	if err == nil {
		m.state = s
		m.result, err = m.calc.Calculate(s)
	}
	if err != nil {
		m.err = err
		var ipe *kinematics.InvalidParameterError
		if errors.As(err, &ipe) {
			m.errField = ipe.Field
		}
		m.logger.Debug("calculation failed: %v", err)
	}
}

// Result returns the last successful result, or the error that prevented one.
func (m Model) Result() (kinematics.Result, error) {
	return m.result, m.err
}

// State returns the last state that parsed successfully.
func (m Model) State() kinematics.State {
	return m.state
}

// Focused returns the canonical name of the focused field.
func (m Model) Focused() string {
	return m.fields[m.focus].Name
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("ls-burn"))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  v%s · constant-acceleration burn", version.Version)))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		style := labelStyle
		switch {
		case f.Name == m.errField:
			style = errorLabelStyle
		case i == m.focus:
			style = focusedLabelStyle
		}
		cursor := "  "
		if i == m.focus {
			cursor = "▸ "
		}
		b.WriteString(cursor)
		b.WriteString(style.Render(f.Label))
		b.WriteString(m.inputs[i].View())
		b.WriteString(" ")
		b.WriteString(unitStyle.Render(f.Unit))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderResult())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) renderResult() string {
	if m.err != nil {
		return errorPanelStyle.Render(errorTextStyle.Render(m.err.Error()))
	}

	var b strings.Builder
	line := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}
	line("Updated velocity", report.FormatValue(m.result.UpdatedVelocityKmh, "km/h"))
	line("Updated distance", report.FormatValue(m.result.UpdatedDistanceKm, "km"))
	line("Remaining fuel", report.FormatValue(m.result.RemainingFuelKg, "kg"))
	if m.result.FuelClamped {
		b.WriteString(warnStyle.Render("fuel ran out mid-burn, clamped to 0 kg"))
	}

	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderFooter() string {
	return mutedStyle.Render(fmt.Sprintf(
		"tab/↑↓ move · ctrl+f fuel policy: %s · ctrl+r reset · esc quit",
		m.calc.FuelPolicy()))
}
