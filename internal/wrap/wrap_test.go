package wrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zhubert/wrapcheck/internal/errors"
	"github.com/zhubert/wrapcheck/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		style string
		long  string
		short string
	}{
		{None, "no line wrapping", "no"},
		{Sentence, "sentence-based line wrapping", "sentence-based"},
		{Column, "column-based line wrapping", "column-based"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			if got := Describe(tt.style); got != tt.long {
				t.Errorf("Describe(%q) = %q, want %q", tt.style, got, tt.long)
			}
			if got := DescribeShort(tt.style); got != tt.short {
				t.Errorf("DescribeShort(%q) = %q, want %q", tt.style, got, tt.short)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
		ok    bool
	}{
		{"none", "none", None, true},
		{"sentence mixed case", " Sentence ", Sentence, true},
		{"column", "column", Column, true},
		{"numeric string", "72", Column, true},
		{"int", 80, Column, true},
		{"float whole", 72.0, Column, true},
		{"float fraction", 72.5, "", false},
		{"zero", 0, "", false},
		{"negative", -1, "", false},
		{"unknown string", "paragraph", "", false},
		{"bool", true, "", false},
		{"nil", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.value)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Normalize(%v) = (%q, %v), want (%q, %v)", tt.value, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := Validate("sentence"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := Validate("bogus"); err == nil {
		t.Error("expected error for unknown style")
	}
}

func TestMismatch(t *testing.T) {
	tests := []struct {
		detected, configured string
		want                 bool
	}{
		{"sentence", "none", true},
		{"sentence", "sentence", false},
		{"", "none", false},
		{"none", "column", true},
	}

	for _, tt := range tests {
		if got := Mismatch(tt.detected, tt.configured); got != tt.want {
			t.Errorf("Mismatch(%q, %q) = %v, want %v", tt.detected, tt.configured, got, tt.want)
		}
	}
}

func TestFirstYAMLBlock(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantKey string
		wantNil bool
	}{
		{
			name:    "standard front matter",
			src:     "---\ntitle: Report\n---\n\n# Body\n",
			wantKey: "title",
		},
		{
			name:    "dots terminator",
			src:     "---\ntitle: Report\n...\nBody\n",
			wantKey: "title",
		},
		{
			name:    "indented delimiters",
			src:     "  ---\ntitle: Indented\n  ---\n",
			wantKey: "title",
		},
		{
			name:    "blank line after opener is a horizontal rule",
			src:     "Intro\n---\n\nMore text\n---\n",
			wantNil: true,
		},
		{
			name:    "no block",
			src:     "# Just a heading\n",
			wantNil: true,
		},
		{
			name:    "unterminated",
			src:     "---\ntitle: x\n",
			wantNil: true,
		},
		{
			name:    "scalar block",
			src:     "---\njust text\n---\n",
			wantNil: true,
		},
		{
			name:    "windows line endings",
			src:     "---\r\ntitle: Report\r\n---\r\n",
			wantKey: "title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FirstYAMLBlock(tt.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantNil {
				if got != nil {
					t.Errorf("expected nil, got %v", got)
				}
				return
			}
			if _, ok := got[tt.wantKey]; !ok {
				t.Errorf("expected key %q in %v", tt.wantKey, got)
			}
		})
	}
}

func TestFirstYAMLBlock_InvalidYAML(t *testing.T) {
	_, err := FirstYAMLBlock("---\ntitle: [unclosed\n---\n")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !errors.Is(err, errors.KindParse) {
		t.Errorf("expected KindParse, got %v", errors.GetKind(err))
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
		ok   bool
	}{
		{
			name: "sentence",
			src:  "---\ntitle: x\neditor_options:\n  markdown:\n    wrap: sentence\n---\n",
			want: Sentence,
			ok:   true,
		},
		{
			name: "column width",
			src:  "---\neditor_options:\n  markdown:\n    wrap: 72\n---\n",
			want: Column,
			ok:   true,
		},
		{
			name: "none",
			src:  "---\neditor_options:\n  markdown:\n    wrap: none\n---\n",
			want: None,
			ok:   true,
		},
		{
			name: "no editor options",
			src:  "---\ntitle: x\n---\n",
		},
		{
			name: "markdown is not a mapping",
			src:  "---\neditor_options:\n  markdown: visual\n---\n",
		},
		{
			name: "invalid yaml is ignored",
			src:  "---\neditor_options: [\n---\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Detect(tt.src)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Detect() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestDetectFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.Rmd")
	src := "---\neditor_options:\n  markdown:\n    wrap: sentence\n---\n\nText.\n"
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	style, ok, err := DetectFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || style != Sentence {
		t.Errorf("DetectFile = (%q, %v), want (%q, true)", style, ok, Sentence)
	}

	_, _, err = DetectFile(filepath.Join(dir, "missing.Rmd"))
	if !errors.Is(err, errors.KindIO) {
		t.Errorf("expected KindIO for missing file, got %v", err)
	}
}
