package wrap

import (
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zhubert/wrapcheck/internal/errors"
	"github.com/zhubert/wrapcheck/internal/logger"
)

var (
	yamlOpenRe  = regexp.MustCompile(`^[\t >]*---[ \t]*$`)
	yamlCloseRe = regexp.MustCompile(`^[\t >]*(?:---|\.\.\.)[ \t]*$`)
)

// FirstYAMLBlock parses the first YAML block in src. A block opens with a
// "---" line that is not followed by a blank line and closes at the next
// "---" or "..." line; delimiter lines may be indented with tabs, spaces or
// blockquote markers. It returns nil, nil when there is no block or the
// block is not a mapping.
func FirstYAMLBlock(src string) (map[string]any, error) {
	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")

	for i := 0; i < len(lines); i++ {
		if !yamlOpenRe.MatchString(lines[i]) {
			continue
		}
		if i+1 >= len(lines) || strings.TrimSpace(lines[i+1]) == "" {
			continue
		}
		for j := i + 1; j < len(lines); j++ {
			if !yamlCloseRe.MatchString(lines[j]) {
				continue
			}
			body := strings.Join(lines[i+1:j], "\n")

			var parsed any
			if err := yaml.Unmarshal([]byte(body), &parsed); err != nil {
				return nil, errors.FrontMatterInvalid(err)
			}
			m, ok := parsed.(map[string]any)
			if !ok {
				return nil, nil
			}
			return m, nil
		}
		// Unterminated: no later line can close a block either.
		return nil, nil
	}
	return nil, nil
}

// Detect returns the style declared at editor_options.markdown.wrap in the
// document's first YAML block.
func Detect(src string) (string, bool) {
	fm, err := FirstYAMLBlock(src)
	if err != nil {
		logger.Warn("wrap: ignoring front matter: %v", err)
		return "", false
	}
	v, ok := lookup(fm, "editor_options", "markdown", "wrap")
	if !ok {
		return "", false
	}
	return Normalize(v)
}

// DetectFile reads path and detects its declared style.
func DetectFile(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, errors.DocumentReadFailed(path, err)
	}
	style, ok := Detect(string(data))
	logger.Debug("wrap: detected %q (found=%v) in %s", style, ok, path)
	return style, ok, nil
}

func lookup(m map[string]any, path ...string) (any, bool) {
	var cur any = m
	for _, key := range path {
		mm, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = mm[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
