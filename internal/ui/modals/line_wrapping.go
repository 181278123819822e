package modals

import (
	"log/slog"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/zhubert/wrapcheck/internal/errors"
	"github.com/zhubert/wrapcheck/internal/keys"
	"github.com/zhubert/wrapcheck/internal/logger"
	"github.com/zhubert/wrapcheck/internal/wrap"
)

// LineWrappingAction is the resolution chosen in the line wrapping dialog.
type LineWrappingAction int

const (
	// SetFileLineWrapping keeps the detected wrapping for this document only.
	SetFileLineWrapping LineWrappingAction = iota
	// SetProjectLineWrapping adopts the detected wrapping for the whole project.
	SetProjectLineWrapping
	// SetNothing keeps the configured default.
	SetNothing
)

func (a LineWrappingAction) String() string {
	switch a {
	case SetFileLineWrapping:
		return "SetFileLineWrapping"
	case SetProjectLineWrapping:
		return "SetProjectLineWrapping"
	case SetNothing:
		return "SetNothing"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the action by name.
func (a LineWrappingAction) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// LineWrappingHelpLink points at the documentation for wrapping options.
var LineWrappingHelpLink = HelpLink{
	Label: "Learn more about visual mode line wrapping options",
	Topic: "visual_markdown_editing-line-wrapping",
}

// LineWrappingChoice is one option of the dialog's exclusive group.
type LineWrappingChoice struct {
	Label   string
	Action  LineWrappingAction
	Visible bool
}

// LineWrappingChoices builds the dialog's option group. The project option is
// always part of the group but only visible when a project exists.
func LineWrappingChoices(detected, configured string, isProjectConfig, haveProject bool) []LineWrappingChoice {
	return []LineWrappingChoice{
		{
			Label:   "Use " + detected + "-based line wrapping for this document",
			Action:  SetFileLineWrapping,
			Visible: true,
		},
		{
			Label:   "Use " + detected + "-based line wrapping for this project",
			Action:  SetProjectLineWrapping,
			Visible: haveProject,
		},
		{
			Label:   "Use the " + scopeName(isProjectConfig) + " default (" + wrap.Describe(configured) + ") for this document",
			Action:  SetNothing,
			Visible: true,
		},
	}
}

// ActionAt maps a position among the visible options to its action.
func ActionAt(choices []LineWrappingChoice, index int) (LineWrappingAction, bool) {
	i := 0
	for _, c := range choices {
		if !c.Visible {
			continue
		}
		if i == index {
			return c.Action, true
		}
		i++
	}
	return 0, false
}

func scopeName(isProjectConfig bool) string {
	if isProjectConfig {
		return "project"
	}
	return "global"
}

type lineWrappingKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	First   key.Binding
	Last    key.Binding
	Pick    key.Binding
	Copy    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func (k lineWrappingKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Copy, k.Confirm, k.Cancel}
}

func newLineWrappingKeyMap() lineWrappingKeyMap {
	return lineWrappingKeyMap{
		Up: key.NewBinding(
			key.WithKeys(keys.Up, "k", keys.ShiftTab),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(keys.Down, "j", keys.Tab),
			key.WithHelp("↓", "down"),
		),
		First: key.NewBinding(key.WithKeys(keys.Home, "g")),
		Last:  key.NewBinding(key.WithKeys(keys.End, "G")),
		Pick:  key.NewBinding(key.WithKeys("1", "2", "3")),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy link"),
		),
		Confirm: key.NewBinding(
			key.WithKeys(keys.Enter),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys(keys.Escape),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// =============================================================================
// LineWrappingState - State for the Line Wrapping Mismatch modal
// =============================================================================

// LineWrappingState asks how to resolve a mismatch between the line wrapping
// a document uses and the one configured for it. Enter and Esc are handled
// by the host, which calls Confirm or Cancel.
type LineWrappingState struct {
	DetectedLineWrapping   string
	ConfiguredLineWrapping string
	IsProjectConfig        bool
	HaveProject            bool
	SelectedIndex          int // Index among the visible choices

	choices   []LineWrappingChoice
	onConfirm func(LineWrappingAction)
	onCancel  func()
	closed    bool

	id   string
	keys lineWrappingKeyMap
	help help.Model
	log  *slog.Logger
}

// NewLineWrappingState creates the dialog. Both callbacks are required.
func NewLineWrappingState(
	detected, configured string,
	isProjectConfig, haveProject bool,
	onConfirm func(LineWrappingAction),
	onCancel func(),
) (*LineWrappingState, error) {
	if onConfirm == nil {
		return nil, errors.MissingCallback("onConfirm")
	}
	if onCancel == nil {
		return nil, errors.MissingCallback("onCancel")
	}

	id := uuid.New().String()
	s := &LineWrappingState{
		DetectedLineWrapping:   detected,
		ConfiguredLineWrapping: configured,
		IsProjectConfig:        isProjectConfig,
		HaveProject:            haveProject,
		choices:                LineWrappingChoices(detected, configured, isProjectConfig, haveProject),
		onConfirm:              onConfirm,
		onCancel:               onCancel,
		id:                     id,
		keys:                   newLineWrappingKeyMap(),
		help:                   help.New(),
		log:                    logger.WithDialog("LineWrapping", id),
	}

	s.log.Info("Dialog opened",
		"detected", detected,
		"configured", configured,
		"scope", scopeName(isProjectConfig),
		"haveProject", haveProject)
	return s, nil
}

func (*LineWrappingState) modalState() {}

func (s *LineWrappingState) Title() string { return "Line Wrapping Mismatch" }

func (s *LineWrappingState) Help() string {
	return s.help.ShortHelpView(s.keys.ShortHelp())
}

// ID identifies this dialog instance in the logs.
func (s *LineWrappingState) ID() string { return s.id }

// HelpLink returns the documentation link shown under the options.
func (s *LineWrappingState) HelpLink() HelpLink { return LineWrappingHelpLink }

// Options returns the labels of the options the user can select, in order.
func (s *LineWrappingState) Options() []string {
	var labels []string
	for _, c := range s.choices {
		if c.Visible {
			labels = append(labels, c.Label)
		}
	}
	return labels
}

// Choices returns the full option group, including the hidden project option.
func (s *LineWrappingState) Choices() []LineWrappingChoice {
	out := make([]LineWrappingChoice, len(s.choices))
	copy(out, s.choices)
	return out
}

// SelectedAction returns the action of the currently selected option.
func (s *LineWrappingState) SelectedAction() LineWrappingAction {
	action, ok := ActionAt(s.choices, s.SelectedIndex)
	if !ok {
		return SetFileLineWrapping
	}
	return action
}

// SelectAction selects the visible option with the given action. It reports
// false, leaving the selection unchanged, when no visible option has it.
func (s *LineWrappingState) SelectAction(action LineWrappingAction) bool {
	for i := range s.Options() {
		if a, _ := ActionAt(s.choices, i); a == action {
			s.setSelected(i)
			return true
		}
	}
	return false
}

func (s *LineWrappingState) setSelected(i int) {
	if i < 0 || i >= len(s.Options()) || i == s.SelectedIndex {
		return
	}
	s.SelectedIndex = i
	s.log.Debug("Selection changed", "action", s.SelectedAction().String())
}

// Closed reports whether the dialog has been confirmed or cancelled.
func (s *LineWrappingState) Closed() bool { return s.closed }

// Confirm closes the dialog and passes the selected action to onConfirm.
// It returns false if the dialog was already closed.
func (s *LineWrappingState) Confirm() (LineWrappingAction, bool) {
	if s.closed {
		return 0, false
	}
	s.closed = true
	action := s.SelectedAction()
	s.log.Info("Dialog confirmed", "action", action.String())
	s.onConfirm(action)
	return action, true
}

// Cancel closes the dialog and calls onCancel. It returns false if the
// dialog was already closed.
func (s *LineWrappingState) Cancel() bool {
	if s.closed {
		return false
	}
	s.closed = true
	s.log.Info("Dialog cancelled")
	s.onCancel()
	return true
}

func (s *LineWrappingState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	// Content width for text wrapping (modal width minus padding)
	contentWidth := ModalWidth - 4

	heading := lipgloss.NewStyle().
		Foreground(ColorText).
		Width(contentWidth).
		Render("Line wrapping mismatch detected:")

	summary := lipgloss.NewStyle().
		Foreground(ColorSecondary).
		MarginTop(1).
		MarginBottom(1).
		Width(contentWidth).
		Render(RenderBullets(s.summaryLines(), contentWidth))

	prompt := lipgloss.NewStyle().
		Foreground(ColorText).
		MarginBottom(1).
		Width(contentWidth).
		Render("Select your preference for line wrapping below:")

	// Labels stay exact; only their rendering is cut to one line each.
	labels := s.Options()
	for i, label := range labels {
		labels[i] = TruncateString(label, contentWidth-optionChromeWidth)
	}
	options := lipgloss.NewStyle().
		Width(contentWidth).
		Render(RenderRadioList(labels, s.SelectedIndex))

	link := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		Width(contentWidth).
		Render(s.HelpLink().Label + " (" + s.HelpLink().Topic + ")")

	helpLine := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, heading, summary, prompt, options, link, helpLine)
}

// summaryLines explains the mismatch: what the document uses and what the
// configuration says.
func (s *LineWrappingState) summaryLines() []string {
	configured := "The current global option is set to "
	if s.IsProjectConfig {
		configured = "The current project is configured with "
	}
	return []string{
		"This document appears to use " + s.DetectedLineWrapping + "-based line wrapping",
		configured + wrap.Describe(s.ConfiguredLineWrapping),
	}
}

func (s *LineWrappingState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || s.closed {
		return s, nil
	}

	switch {
	case key.Matches(keyMsg, s.keys.Up):
		s.setSelected(s.SelectedIndex - 1)
	case key.Matches(keyMsg, s.keys.Down):
		s.setSelected(s.SelectedIndex + 1)
	case key.Matches(keyMsg, s.keys.First):
		s.setSelected(0)
	case key.Matches(keyMsg, s.keys.Last):
		s.setSelected(len(s.Options()) - 1)
	case key.Matches(keyMsg, s.keys.Pick):
		s.setSelected(int(keyMsg.String()[0] - '1'))
	}
	return s, nil
}
