// Package tui provides terminal user interface components for fmsched.
//
// This package provides a centralized style system using Lip Gloss for
// consistent TUI component styling. All colors use AdaptiveColor for
// light/dark terminal support.
//
// # Semantic Colors
//
// Five semantic colors are exported for use across TUI components:
//   - ColorPrimary (Blue): Active states, the current wizard step
//   - ColorSuccess (Green): Completed steps, successful submissions
//   - ColorWarning (Yellow): Placeholder data in use, attention required
//   - ColorError (Red): Validation messages, failed submissions
//   - ColorMuted (Gray): Pending steps, secondary text
//
// # NO_COLOR Support
//
// Call CheckNoColor() at the start of commands to respect the NO_COLOR
// environment variable. Colors are also disabled when TERM=dumb.
package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/constants"
)

//nolint:gochecknoglobals // Intentional package-level constants for TUI styling API
var (
	// ColorPrimary is blue, used for the active wizard step and primary actions.
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#00D7FF"}

	// ColorSuccess is green, used for completed steps and successful submissions.
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#00FF87"}

	// ColorWarning is yellow, used when placeholder reference data is in effect.
	ColorWarning = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD700"}

	// ColorError is red, used for validation messages and failed submissions.
	ColorError = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}

	// ColorMuted is gray, used for pending steps and secondary text.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#6C6C6C"}

	// StyleBold applies bold formatting to text.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleDim applies dim/faint formatting to text.
	StyleDim = lipgloss.NewStyle().Faint(true)
)

// OutputStyles holds common output styles.
type OutputStyles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Dim     lipgloss.Style
}

// NewOutputStyles creates common output styles using AdaptiveColor for
// light/dark terminal support.
func NewOutputStyles() *OutputStyles {
	return &OutputStyles{
		Success: lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(ColorWarning),
		Info: lipgloss.NewStyle().
			Foreground(ColorPrimary),
		Dim: lipgloss.NewStyle().
			Foreground(ColorMuted),
	}
}

// CheckNoColor respects the NO_COLOR environment variable.
// Call this at the start of commands that output styled text.
func CheckNoColor() {
	if !HasColorSupport() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// HasColorSupport returns true if the terminal supports colors.
// Returns false if NO_COLOR is set (any value including empty string) or
// TERM=dumb. This follows the NO_COLOR standard: https://no-color.org/
func HasColorSupport() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return true
}

// StepIcon returns the icon for a wizard step given the session state.
// Triple redundancy is maintained for step displays: icon + color + text.
func StepIcon(step, active constants.StepID, completed bool) string {
	switch {
	case completed:
		return "✓"
	case step == active:
		return "●"
	default:
		return "○"
	}
}

// StepTrail renders the five-step progress line shown above each wizard
// screen, e.g. "✓ Basic Configuration  ● Schedule Setup  ○ Question Setup ...".
func StepTrail(active constants.StepID, completed [constants.StepCount]bool) string {
	styles := NewOutputStyles()
	parts := make([]string, 0, constants.StepCount)
	for step := constants.StepID(0); step < constants.StepCount; step++ {
		label := StepIcon(step, active, completed[step]) + " " + step.String()
		switch {
		case completed[step]:
			parts = append(parts, styles.Success.Render(label))
		case step == active:
			parts = append(parts, styles.Info.Render(label))
		default:
			parts = append(parts, styles.Dim.Render(label))
		}
	}
	return strings.Join(parts, "  ")
}
