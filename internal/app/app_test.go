package app

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/wrapcheck/internal/config"
	"github.com/zhubert/wrapcheck/internal/keys"
	"github.com/zhubert/wrapcheck/internal/ui"
	"github.com/zhubert/wrapcheck/internal/ui/modals"
	"github.com/zhubert/wrapcheck/internal/wrap"
)

func TestAppState_String(t *testing.T) {
	tests := []struct {
		state AppState
		want  string
	}{
		{StatePrompting, "Prompting"},
		{StateConfirmed, "Confirmed"},
		{StateCancelled, "Cancelled"},
		{AppState(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("AppState(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestNew_ShowsDialog(t *testing.T) {
	m := testModel(t)
	if !m.modal.IsVisible() {
		t.Fatal("dialog should be visible on start")
	}
	if m.State() != StatePrompting {
		t.Errorf("State() = %v, want Prompting", m.State())
	}
	if m.Init() != nil {
		t.Error("Init should not return a command")
	}
	if got := len(m.Dialog().Options()); got != 3 {
		t.Errorf("dialog shows %d options, want 3", got)
	}
}

func TestEnter_ConfirmsDefaultSelection(t *testing.T) {
	m := testModel(t)
	m, cmd := sendKey(m, keys.Enter)

	if !isQuit(cmd) {
		t.Error("Enter should quit")
	}
	if m.State() != StateConfirmed {
		t.Errorf("State() = %v, want Confirmed", m.State())
	}
	want := Outcome{Confirmed: true, Action: modals.SetFileLineWrapping}
	if m.Outcome() != want {
		t.Errorf("Outcome() = %+v, want %+v", m.Outcome(), want)
	}
	if m.modal.IsVisible() {
		t.Error("modal should be hidden after confirm")
	}
}

func TestNavigateThenConfirm(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want modals.LineWrappingAction
	}{
		{"down once", []string{keys.Down}, modals.SetProjectLineWrapping},
		{"down twice", []string{keys.Down, keys.Down}, modals.SetNothing},
		{"end", []string{keys.End}, modals.SetNothing},
		{"tab then shift+tab", []string{keys.Tab, keys.ShiftTab}, modals.SetFileLineWrapping},
		{"number key", []string{"2"}, modals.SetProjectLineWrapping},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModel(t)
			for _, k := range tt.keys {
				m, _ = sendKey(m, k)
			}
			m, _ = sendKey(m, keys.Enter)
			if got := m.Outcome().Action; got != tt.want {
				t.Errorf("Action = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNoProject_SkipsHiddenOption(t *testing.T) {
	m := testModelWith(t, wrap.Column, config.Resolution{Configured: wrap.Sentence})

	m, _ = sendKey(m, keys.Down)
	m, _ = sendKey(m, keys.Enter)
	if got := m.Outcome().Action; got != modals.SetNothing {
		t.Errorf("Action = %v, want SetNothing", got)
	}
}

func TestCancelKeys(t *testing.T) {
	for _, k := range []string{keys.Escape, keys.CtrlC} {
		t.Run(k, func(t *testing.T) {
			m := testModel(t)
			m, _ = sendKey(m, keys.Down)
			m, cmd := sendKey(m, k)

			if !isQuit(cmd) {
				t.Errorf("%s should quit", k)
			}
			if m.State() != StateCancelled {
				t.Errorf("State() = %v, want Cancelled", m.State())
			}
			if m.Outcome().Confirmed {
				t.Error("cancel should not report a confirmation")
			}
		})
	}
}

func TestKeysAfterClose(t *testing.T) {
	m := testModel(t)
	m, _ = sendKey(m, keys.Escape)

	m, cmd := sendKey(m, keys.Enter)
	if cmd != nil {
		t.Error("Enter after close should do nothing")
	}
	if m.State() != StateCancelled || m.Outcome().Confirmed {
		t.Error("Enter after cancel must not confirm")
	}

	_, cmd = sendKey(m, "q")
	if !isQuit(cmd) {
		t.Error("q after close should quit")
	}
}

func TestView(t *testing.T) {
	m := testModel(t)
	if got := m.RenderToString(); got != "Loading..." {
		t.Errorf("view before size = %q, want Loading...", got)
	}

	m = setSize(m, 120, 40)
	v := m.View()
	if !v.AltScreen {
		t.Error("view should use the alt screen")
	}

	content := ansi.Strip(m.RenderToString())
	for _, want := range []string{
		"Line Wrapping Mismatch",
		"This document appears to use sentence-based line wrapping",
		"The current global option is set to no line wrapping",
	} {
		if !strings.Contains(strings.Join(strings.Fields(content), " "), want) {
			t.Errorf("view missing %q", want)
		}
	}

	m, _ = sendKey(m, keys.Enter)
	if m.RenderToString() != "" {
		t.Error("view should be empty once the dialog closes")
	}
}

func TestNew_AppliesSavedTheme(t *testing.T) {
	cfg := testConfig()
	cfg.SetTheme("nord")
	if _, err := New(cfg, wrap.Column, config.Resolution{Configured: wrap.None}); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { ui.SetTheme(ui.DefaultTheme) })
	if got := ui.CurrentThemeName(); got != ui.ThemeNord {
		t.Errorf("theme = %q, want nord", got)
	}
}

func TestCopyLink(t *testing.T) {
	var copied []string
	orig := copyToClipboard
	t.Cleanup(func() { copyToClipboard = orig })

	copyToClipboard = func(text string) error {
		copied = append(copied, text)
		return nil
	}
	m := testModel(t)
	m, cmd := sendKey(m, "c")
	if cmd != nil {
		t.Error("copy should not quit")
	}
	if len(copied) != 1 || copied[0] != modals.LineWrappingHelpLink.Topic {
		t.Errorf("copied = %v", copied)
	}
	if !m.modal.IsVisible() || m.Dialog().Closed() {
		t.Error("copy should leave the dialog open")
	}

	copyToClipboard = func(string) error { return errors.New("no display") }
	m, _ = sendKey(m, "c")
	if got := m.modal.GetError(); !strings.Contains(got, "no display") {
		t.Errorf("modal error = %q, want clipboard failure", got)
	}
}
