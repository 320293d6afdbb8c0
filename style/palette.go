// Package style provides a functional API for composing and applying lipgloss-based TUI styles.
package style

import "github.com/charmbracelet/lipgloss"

// Palette is a named set of colors the TUI renders with.
type Palette struct {
	Base    lipgloss.Color
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Overlay lipgloss.Color
	Surface lipgloss.Color

	Accent  lipgloss.Color
	Second  lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

// Dark mirrors a mocha-style night palette.
var Dark = Palette{
	Base:    lipgloss.Color("#1e1e2e"),
	Text:    lipgloss.Color("#cdd6f4"),
	Subtext: lipgloss.Color("#a6adc8"),
	Overlay: lipgloss.Color("#6c7086"),
	Surface: lipgloss.Color("#313244"),

	Accent:  lipgloss.Color("#cba6f7"),
	Second:  lipgloss.Color("#89b4fa"),
	Success: lipgloss.Color("#a6e3a1"),
	Warning: lipgloss.Color("#f9e2af"),
	Error:   lipgloss.Color("#f38ba8"),
}

// Light mirrors a latte-style day palette.
var Light = Palette{
	Base:    lipgloss.Color("#eff1f5"),
	Text:    lipgloss.Color("#4c4f69"),
	Subtext: lipgloss.Color("#6c6f85"),
	Overlay: lipgloss.Color("#9ca0b0"),
	Surface: lipgloss.Color("#ccd0da"),

	Accent:  lipgloss.Color("#8839ef"),
	Second:  lipgloss.Color("#1e66f5"),
	Success: lipgloss.Color("#40a02b"),
	Warning: lipgloss.Color("#df8e1d"),
	Error:   lipgloss.Color("#d20f39"),
}

// Pick returns Dark or Light.
func Pick(dark bool) Palette {
	if dark {
		return Dark
	}
	return Light
}

// Title renders a banner.
func (p Palette) Title(s string) string {
	return Colored(p.Base, p.Accent).Bold(true).Padding(0, 1).Render(s)
}

// ErrorTitle renders a banner in the error color.
func (p Palette) ErrorTitle(s string) string {
	return Colored(p.Base, p.Error).Bold(true).Padding(0, 1).Render(s)
}

// Panel is the bordered box used for the tutorial and the zoomed thumbnail.
func (p Palette) Panel() lipgloss.Style {
	return New().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface).
		Foreground(p.Text).
		Padding(0, 1)
}

// Hi highlights s with the accent.
func (p Palette) Hi(s string) string {
	return Fg(p.Accent)(s)
}
