package kinematics

// Unit conversion constants. Each conversion is applied in exactly one place.
const (
	// MS2ToKmhPerSecond converts m/s² into km/h gained per second of burn.
	// 1 m/s² = 1 m/s per second = 3.6 km/h per second.
	MS2ToKmhPerSecond = 3.6

	// SecondsPerHour converts a duration in seconds into hours.
	SecondsPerHour = 3600.0
)

// AccelerationKmhPerSecond converts an acceleration in m/s² into km/h gained per second.
func AccelerationKmhPerSecond(ms2 float64) float64 {
	return ms2 * MS2ToKmhPerSecond
}

// SecondsToHours converts seconds into hours.
func SecondsToHours(seconds float64) float64 {
	return seconds / SecondsPerHour
}

// Conversion describes one named unit conversion.
type Conversion struct {
	Name        string
	Factor      float64
	From        string
	To          string
	Description string
}

// Conversions lists the conversions used by the calculator.
func Conversions() []Conversion {
	return []Conversion{
		{
			Name:   "MS2ToKmhPerSecond",
			Factor: MS2ToKmhPerSecond,
			From:   "m/s²",
			To:     "km/h per second",
			Description: "Acceleration is given in m/s² but velocity is tracked in km/h. " +
				"One m/s² adds 1 m/s every second, and 1 m/s = 3.6 km/h, so the velocity " +
				"gained is acceleration × 3.6 × elapsed seconds.",
		},
		{
			Name:   "SecondsPerHour",
			Factor: SecondsPerHour,
			From:   "s",
			To:     "h",
			Description: "Elapsed time is given in seconds but velocity is in km/h. " +
				"Distance covered is velocity × (elapsed seconds / 3600).",
		},
	}
}
