// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Interactive parameter editor (tui), lipgloss result card, fuel clamp policy
// 0.2.0 - Parameter files (JSON/YAML/TOML), JSON export, units command
// 0.1.0 - Initial release: validated kinematics core with single conversion step
