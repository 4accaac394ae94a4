// Interactive menu system using Charm Huh. All wizard screens are built from
// these wrappers so navigation, theming and cancel handling stay consistent.
//
// Menus support standard navigation: arrow keys, Enter to select, Esc to
// cancel. Key hints are displayed at the bottom of menus when enabled.
package tui

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	fmerrors "github.com/helloakshay27/fm-matrix-revamp-sub008/internal/errors"
)

// Terminal layout constants.
const (
	// TerminalEdgeMargin is the number of characters to leave between
	// menu content and the terminal edge for visual padding.
	TerminalEdgeMargin = 4

	// MinMenuWidth is the minimum usable width for menu content.
	MinMenuWidth = 40

	// DefaultMenuWidth is used when terminal width cannot be determined.
	DefaultMenuWidth = 100
)

// ErrMenuCanceled is an alias for errors.ErrMenuCanceled for package-local use.
// Returned when the user cancels a menu operation by pressing Esc.
var ErrMenuCanceled = fmerrors.ErrMenuCanceled

// Option represents a selectable menu option.
type Option struct {
	// Label is the display text shown to the user.
	Label string
	// Description is optional help text shown after the label.
	Description string
	// Value is the value returned when this option is selected.
	Value string
}

// MenuConfig holds configuration for menu components.
type MenuConfig struct {
	// Width is the maximum width for the menu. If 0, adapts to terminal width.
	Width int
	// Accessible enables accessible mode for screen readers.
	Accessible bool
	// ShowKeyHints controls whether key hints are displayed.
	ShowKeyHints bool
}

// NewMenuConfig creates a MenuConfig with sensible defaults.
// It automatically detects accessible mode from the ACCESSIBLE environment
// variable.
func NewMenuConfig() *MenuConfig {
	_, accessible := os.LookupEnv("ACCESSIBLE")
	return &MenuConfig{
		Width:        DefaultMenuWidth,
		Accessible:   accessible,
		ShowKeyHints: true,
	}
}

// adaptWidth returns an appropriate menu width based on terminal size.
// It respects the maxWidth constraint while adapting to narrower terminals.
func adaptWidth(maxWidth int) int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		if maxWidth <= 0 {
			return DefaultMenuWidth
		}
		return maxWidth
	}

	availableWidth := width - TerminalEdgeMargin
	if maxWidth > 0 && maxWidth < availableWidth {
		return maxWidth
	}
	if availableWidth < MinMenuWidth {
		return MinMenuWidth
	}
	return availableWidth
}

// runFormWithConfig creates and runs a form with the given field and config.
// It handles common setup (theme, width, accessibility) and error handling.
func runFormWithConfig(field huh.Field, cfg *MenuConfig, errorContext string) error {
	// Prevents tests from hanging when TUI code is called without a terminal
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ErrMenuCanceled
	}

	CheckNoColor()

	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(Theme()).
		WithWidth(adaptWidth(cfg.Width)).
		WithAccessible(cfg.Accessible).
		WithShowHelp(cfg.ShowKeyHints)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrMenuCanceled
		}
		return fmt.Errorf("%s: %w", errorContext, err)
	}

	return nil
}

// Theme returns a custom Huh theme using the fmsched colors from styles.go.
// Uses AdaptiveColor for proper light/dark terminal support.
func Theme() *huh.Theme {
	CheckNoColor()

	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(ColorPrimary)
	t.Focused.Title = t.Focused.Title.Foreground(ColorPrimary)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(ColorPrimary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(ColorPrimary)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(ColorPrimary)

	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(ColorSuccess)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(ColorPrimary)

	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ColorError)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(ColorError)

	t.Blurred.Base = t.Blurred.Base.BorderForeground(ColorMuted)
	t.Blurred.Title = t.Blurred.Title.Foreground(ColorMuted)
	t.Focused.Description = t.Focused.Description.Foreground(ColorMuted)
	t.Help.Ellipsis = t.Help.Ellipsis.Foreground(ColorMuted)

	return t
}

// huhOptions converts menu options to huh.Option format.
// Huh doesn't support option-level descriptions natively, so the description
// is folded into the label when present.
func huhOptions(options []Option) []huh.Option[string] {
	out := make([]huh.Option[string], len(options))
	for i, opt := range options {
		label := opt.Label
		if opt.Description != "" {
			label = opt.Label + " - " + opt.Description
		}
		out[i] = huh.NewOption(label, opt.Value)
	}
	return out
}

// Select presents a single-selection menu and returns the selected value.
// Returns ErrMenuCanceled if the user presses Esc.
func Select(title string, options []Option) (string, error) {
	return SelectWithConfig(title, options, NewMenuConfig())
}

// SelectWithConfig presents a single-selection menu with custom configuration.
func SelectWithConfig(title string, options []Option, cfg *MenuConfig) (string, error) {
	if len(options) == 0 {
		return "", fmerrors.ErrNoMenuOptions
	}

	var selected string
	field := huh.NewSelect[string]().
		Title(title).
		Options(huhOptions(options)...).
		Value(&selected)

	if err := runFormWithConfig(field, cfg, "select menu failed"); err != nil {
		return "", err
	}
	return selected, nil
}

// MultiSelect presents a multi-selection menu and returns the selected values.
// Used for the user, asset and email-rule pickers where more than one choice
// is legal. Returns ErrMenuCanceled if the user presses Esc.
func MultiSelect(title string, options []Option, preselected []string) ([]string, error) {
	return MultiSelectWithConfig(title, options, preselected, NewMenuConfig())
}

// MultiSelectWithConfig presents a multi-selection menu with custom configuration.
func MultiSelectWithConfig(title string, options []Option, preselected []string, cfg *MenuConfig) ([]string, error) {
	if len(options) == 0 {
		return nil, fmerrors.ErrNoMenuOptions
	}

	selected := append([]string(nil), preselected...)
	field := huh.NewMultiSelect[string]().
		Title(title).
		Options(huhOptions(options)...).
		Value(&selected)

	if err := runFormWithConfig(field, cfg, "multi-select menu failed"); err != nil {
		return nil, err
	}
	return selected, nil
}

// Confirm presents a yes/no confirmation prompt.
// Returns the user's choice or ErrMenuCanceled if canceled.
func Confirm(message string, defaultYes bool) (bool, error) {
	confirmed := defaultYes

	field := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed)

	if err := runFormWithConfig(field, NewMenuConfig(), "confirm prompt failed"); err != nil {
		return false, err
	}
	return confirmed, nil
}

// Input presents a single-line text input prompt.
// Returns the entered text or ErrMenuCanceled if canceled.
func Input(prompt, defaultValue string) (string, error) {
	return InputWithValidation(prompt, defaultValue, nil)
}

// InputWithValidation presents an input prompt with a validation function.
// A nil validate function accepts any input.
func InputWithValidation(prompt, defaultValue string, validate func(string) error) (string, error) {
	value := defaultValue

	field := huh.NewInput().
		Title(prompt).
		Value(&value)
	if validate != nil {
		field = field.Validate(validate)
	}

	if err := runFormWithConfig(field, NewMenuConfig(), "input prompt failed"); err != nil {
		return "", err
	}
	return value, nil
}

// TextArea presents a multi-line text input prompt.
// Returns the entered text or ErrMenuCanceled if canceled.
func TextArea(prompt, placeholder string) (string, error) {
	var value string

	field := huh.NewText().
		Title(prompt).
		Placeholder(placeholder).
		Value(&value)

	if err := runFormWithConfig(field, NewMenuConfig(), "text area failed"); err != nil {
		return "", err
	}
	return value, nil
}
