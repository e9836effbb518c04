package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-burn/internal/kinematics"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	cardLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(18)

	cardValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)

	cardWarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

// RenderCard renders the calculation as a bordered card.
func RenderCard(s kinematics.State, res kinematics.Result) string {
	var b strings.Builder

	b.WriteString(cardTitleStyle.Render("Burn Result"))
	b.WriteString("\n\n")

	line := func(label, value string) {
		b.WriteString(cardLabelStyle.Render(label))
		b.WriteString(cardValueStyle.Render(value))
		b.WriteString("\n")
	}

	line("Velocity", FormatValue(s.InitialVelocityKmh, "km/h")+" → "+FormatValue(res.UpdatedVelocityKmh, "km/h"))
	line("Distance", FormatValue(s.InitialDistanceKm, "km")+" → "+FormatValue(res.UpdatedDistanceKm, "km"))
	line("Fuel", FormatValue(s.StartingFuelKg, "kg")+" → "+FormatValue(res.RemainingFuelKg, "kg"))
	line("Burn", FormatValue(s.AccelerationMs2, "m/s²")+" for "+FormatValue(s.ElapsedSeconds, "s"))

	if res.FuelClamped {
		b.WriteString("\n")
		b.WriteString(cardWarnStyle.Render("⚠ fuel exhausted mid-burn, clamped to 0 kg"))
	}

	return cardStyle.Render(strings.TrimRight(b.String(), "\n"))
}
