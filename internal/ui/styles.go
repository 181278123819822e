package ui

import (
	"charm.land/lipgloss/v2"

	"github.com/zhubert/wrapcheck/internal/ui/modals"
)

// Color palette, regenerated from the active theme
var (
	ColorPrimary     = lipgloss.Color(BuiltinThemes[DefaultTheme].Primary)
	ColorSecondary   = lipgloss.Color(BuiltinThemes[DefaultTheme].Secondary)
	ColorBorderFocus = lipgloss.Color(BuiltinThemes[DefaultTheme].GetBorderFocus())
	ColorText        = lipgloss.Color(BuiltinThemes[DefaultTheme].Text)
	ColorTextMuted   = lipgloss.Color(BuiltinThemes[DefaultTheme].TextMuted)
	ColorTextInverse = lipgloss.Color(BuiltinThemes[DefaultTheme].TextInverse)
	ColorWarning     = lipgloss.Color(BuiltinThemes[DefaultTheme].Warning)
	ColorError       = lipgloss.Color(BuiltinThemes[DefaultTheme].Error)
)

// Modal and option styles
var (
	ModalStyle          lipgloss.Style
	ModalTitleStyle     lipgloss.Style
	ModalHelpStyle      lipgloss.Style
	OptionStyle         lipgloss.Style
	OptionSelectedStyle lipgloss.Style
	StatusErrorStyle    lipgloss.Style
)

func init() {
	buildStyles(currentTheme)
	RefreshModalStyles()
}

// buildStyles derives every style from the palette variables and t.
func buildStyles(t Theme) {
	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		MarginTop(1)

	OptionStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)

	OptionSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(lipgloss.Color(t.Text)).
		Bold(true).
		Padding(0, 1)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)
}

// RefreshModalStyles pushes the current styles into the modals package.
func RefreshModalStyles() {
	modals.SetStyles(
		ModalTitleStyle, ModalHelpStyle, OptionStyle, OptionSelectedStyle, StatusErrorStyle,
		ColorPrimary, ColorSecondary, ColorText, ColorTextMuted, ColorTextInverse, ColorWarning,
		ModalWidth,
	)
}
