// Package ui provides the presentation layer for wrapcheck.
//
// # Overview
//
// The ui package owns the color palette, the Lipgloss styles derived from it
// and the Modal host that centers a dialog on screen. Dialog state types live
// in the modals subpackage; ui injects its styles into modals via
// modals.SetStyles whenever the theme changes.
//
// # Modal
//
// A Modal holds at most one modals.ModalState. The host application shows a
// state with Show, forwards key presses to Update, and hides it when the
// dialog is resolved:
//
//	modal := ui.NewModal()
//	modal.Show(state)
//	modal, cmd = modal.Update(msg)
//	content := modal.View(width, height)
//
// # Themes
//
// Themes are defined in theme.go. SetTheme regenerates every style variable
// and refreshes the modal styles. Unknown theme names fall back to
// DefaultTheme.
package ui
