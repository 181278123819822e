package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/wrapcheck/internal/clipboard"
	"github.com/zhubert/wrapcheck/internal/keys"
	"github.com/zhubert/wrapcheck/internal/ui/modals"
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteText

// handleModalKey routes modal key events to the appropriate handler based on modal state type.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch s := m.modal.State.(type) {
	case *modals.LineWrappingState:
		return m.handleLineWrappingModal(key, msg, s)
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleLineWrappingModal handles key events for the Line Wrapping Mismatch modal.
// Enter confirms the highlighted option; Esc and ctrl+c dismiss the dialog.
// Both end the program. "c" copies the help topic.
func (m *Model) handleLineWrappingModal(key string, msg tea.KeyPressMsg, state *modals.LineWrappingState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Enter:
		state.Confirm()
		m.modal.Hide()
		return m, tea.Quit
	case keys.Escape, keys.CtrlC:
		state.Cancel()
		m.modal.Hide()
		return m, tea.Quit
	case "c":
		if err := copyToClipboard(state.HelpLink().Topic); err != nil {
			m.modal.SetError("Could not copy link: " + err.Error())
		} else {
			m.modal.SetError("")
		}
		return m, nil
	}

	// Navigation keys are handled by the modal itself
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}
