package modals

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// optionChromeWidth is the padding and marker RenderRadioList adds to a label.
const optionChromeWidth = 6

// RenderRadioList renders a single-choice list. The selected item carries a
// filled marker and the highlighted style; the others an empty marker.
func RenderRadioList(items []string, selectedIndex int) string {
	var result strings.Builder
	for i, item := range items {
		style := OptionStyle
		prefix := "( ) "
		if i == selectedIndex {
			style = OptionSelectedStyle
			prefix = "(•) "
		}
		result.WriteString(style.Render(prefix+item) + "\n")
	}
	return result.String()
}

// RenderBullets renders items as a bulleted block. Items longer than width
// cells wrap with continuation lines indented under the text; width <= 0
// disables wrapping.
func RenderBullets(items []string, width int) string {
	const bullet, indent = "• ", "  "

	lines := make([]string, len(items))
	for i, item := range items {
		if width > len(indent) {
			item = ansi.Wordwrap(item, width-len(indent), "")
			item = strings.ReplaceAll(item, "\n", "\n"+indent)
		}
		lines[i] = bullet + item
	}
	return strings.Join(lines, "\n")
}

// TruncateString truncates a string to maxWidth terminal cells with an ellipsis
func TruncateString(s string, maxWidth int) string {
	return runewidth.Truncate(s, maxWidth, "…")
}
