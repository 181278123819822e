package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/wrapcheck/internal/keys"
)

// Update handles messages. This is the core Bubble Tea update function that routes
// all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

// handleKeyPress sends keys to the visible modal. Once the dialog has
// closed only quit keys do anything.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}
	switch msg.String() {
	case keys.CtrlC, keys.Escape, "q":
		return m, tea.Quit
	}
	return m, nil
}
