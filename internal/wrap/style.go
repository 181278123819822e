// Package wrap names the line wrapping conventions a document can use and
// detects which one a document declares in its YAML front matter.
package wrap

import (
	"fmt"
	"strconv"
	"strings"
)

// Known line wrapping styles.
const (
	// None is the sentinel for "no line wrapping".
	None     = "none"
	Column   = "column"
	Sentence = "sentence"
)

// Styles lists the known styles in display order.
var Styles = []string{None, Column, Sentence}

// Describe renders a style as it reads in a sentence:
// "no line wrapping" or "sentence-based line wrapping".
func Describe(style string) string {
	return DescribeShort(style) + " line wrapping"
}

// DescribeShort renders the qualifier alone: "no" or "sentence-based".
func DescribeShort(style string) string {
	if style == None {
		return "no"
	}
	return style + "-based"
}

// Normalize maps a declared or configured value to a style label.
// A positive column width (e.g. 72) is column wrapping.
func Normalize(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		switch s {
		case None, Column, Sentence:
			return s, true
		}
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return Column, true
		}
	case int:
		if v > 0 {
			return Column, true
		}
	case int64:
		if v > 0 {
			return Column, true
		}
	case uint64:
		if v > 0 {
			return Column, true
		}
	case float64:
		if v > 0 && v == float64(int64(v)) {
			return Column, true
		}
	}
	return "", false
}

// Validate returns an error naming the accepted values when value does not
// normalize to a style.
func Validate(value string) error {
	if _, ok := Normalize(value); !ok {
		return fmt.Errorf("unknown line wrapping %q (want one of %s, or a column width)", value, strings.Join(Styles, ", "))
	}
	return nil
}

// Mismatch reports whether a detected style disagrees with the configured one.
// An empty detected style never mismatches.
func Mismatch(detected, configured string) bool {
	return detected != "" && detected != configured
}
