package modals

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRenderRadioList(t *testing.T) {
	out := ansi.Strip(RenderRadioList([]string{"a", "b", "c"}, 1))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), out)
	}
	for i, line := range lines {
		filled := strings.Contains(line, "(•)")
		if filled != (i == 1) {
			t.Errorf("line %d filled=%v: %q", i, filled, line)
		}
	}
}

func TestRenderBullets(t *testing.T) {
	got := RenderBullets([]string{"one", "two"}, 0)
	if got != "• one\n• two" {
		t.Errorf("RenderBullets = %q", got)
	}
}

func TestRenderBullets_Wraps(t *testing.T) {
	got := RenderBullets([]string{"uses sentence based wrapping"}, 16)
	want := "• uses sentence\n  based wrapping"
	if got != want {
		t.Errorf("RenderBullets = %q, want %q", got, want)
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"sentence", 20, "sentence"},
		{"sentence", 5, "sent…"},
		{"文章文章", 5, "文章…"},
	}
	for _, tt := range tests {
		if got := TruncateString(tt.in, tt.width); got != tt.want {
			t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
