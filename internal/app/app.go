package app

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/wrapcheck/internal/config"
	"github.com/zhubert/wrapcheck/internal/logger"
	"github.com/zhubert/wrapcheck/internal/ui"
	"github.com/zhubert/wrapcheck/internal/ui/modals"
)

// AppState represents where the prompt is in its lifecycle.
type AppState int

const (
	StatePrompting AppState = iota // Dialog visible, waiting for the user
	StateConfirmed                 // User picked an option
	StateCancelled                 // User dismissed the dialog
)

// String returns a human-readable name for the state
func (s AppState) String() string {
	switch s {
	case StatePrompting:
		return "Prompting"
	case StateConfirmed:
		return "Confirmed"
	case StateCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Outcome is the result of the prompt once the program exits.
type Outcome struct {
	Confirmed bool
	Action    modals.LineWrappingAction // Meaningful only when Confirmed
}

// Model is the main Bubble Tea model
type Model struct {
	config *config.Config
	modal  *ui.Modal
	dialog *modals.LineWrappingState

	width  int
	height int

	state   AppState
	outcome Outcome
	log     *slog.Logger
}

// New creates the app model and opens the line wrapping dialog for a
// mismatch between detected and the resolved configuration.
func New(cfg *config.Config, detected string, res config.Resolution) (*Model, error) {
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	m := &Model{
		config: cfg,
		modal:  ui.NewModal(),
		state:  StatePrompting,
		log:    logger.ComponentLogger("App"),
	}

	dialog, err := modals.NewLineWrappingState(
		detected, res.Configured, res.IsProjectConfig, res.HaveProject,
		m.onConfirm, m.onCancel,
	)
	if err != nil {
		return nil, err
	}
	m.dialog = dialog
	m.modal.Show(dialog)
	return m, nil
}

func (m *Model) onConfirm(action modals.LineWrappingAction) {
	m.state = StateConfirmed
	m.outcome = Outcome{Confirmed: true, Action: action}
	m.log.Info("line wrapping confirmed", "action", action.String())
}

func (m *Model) onCancel() {
	m.state = StateCancelled
	m.outcome = Outcome{}
	m.log.Info("line wrapping cancelled")
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// State returns the current lifecycle state
func (m *Model) State() AppState {
	return m.state
}

// Outcome returns what the user decided. Zero until the dialog closes.
func (m *Model) Outcome() Outcome {
	return m.outcome
}

// Dialog returns the line wrapping dialog shown by this model
func (m *Model) Dialog() *modals.LineWrappingState {
	return m.dialog
}
