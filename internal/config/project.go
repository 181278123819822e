package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/zhubert/wrapcheck/internal/errors"
	"github.com/zhubert/wrapcheck/internal/logger"
	"github.com/zhubert/wrapcheck/internal/wrap"
)

// ProjectFileName is the per-project config file, looked up from the
// document's directory towards the filesystem root.
const ProjectFileName = ".wrapcheck.json"

// ProjectConfig holds settings stored in a project's ProjectFileName.
type ProjectConfig struct {
	LineWrapping string `json:"line_wrapping,omitempty"`
}

// Resolution describes which wrapping convention applies to a document and
// where it came from.
type Resolution struct {
	Configured      string // Normalized style in effect
	IsProjectConfig bool   // Configured comes from the project file rather than the global config
	HaveProject     bool   // The document lives inside a project
	ProjectRoot     string // Empty when HaveProject is false
}

// Scope names where Configured came from: "project" or "global".
func (r Resolution) Scope() string {
	if r.IsProjectConfig {
		return "project"
	}
	return "global"
}

// FindProjectRoot walks up from dir looking for a project marker: the
// project config file or a .git entry.
func FindProjectRoot(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		for _, marker := range []string{ProjectFileName, ".git"} {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// LoadProject reads the project config under root. A missing file yields an
// empty ProjectConfig.
func LoadProject(root string) (*ProjectConfig, error) {
	path := filepath.Join(root, ProjectFileName)
	pc := &ProjectConfig{}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return pc, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}
	if err := json.Unmarshal(data, pc); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}
	if pc.LineWrapping != "" {
		if err := wrap.Validate(pc.LineWrapping); err != nil {
			return nil, errors.ConfigInvalid(path + ": " + err.Error())
		}
	}
	return pc, nil
}

// SaveProject writes pc to root's project config file.
func SaveProject(root string, pc *ProjectConfig) error {
	path := filepath.Join(root, ProjectFileName)
	data, err := json.MarshalIndent(pc, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.ConfigSaveFailed(path, err)
	}
	return nil
}

// Resolve determines the wrapping convention configured for the document at
// docPath: the project's value when its config sets one, the global value
// otherwise.
func (c *Config) Resolve(docPath string) (Resolution, error) {
	res := Resolution{Configured: c.GetLineWrapping()}

	root, ok := FindProjectRoot(filepath.Dir(docPath))
	if !ok {
		logger.Debug("config: %s is not inside a project, using global %q", docPath, res.Configured)
		return res, nil
	}
	res.HaveProject = true
	res.ProjectRoot = root

	pc, err := LoadProject(root)
	if err != nil {
		return Resolution{}, err
	}
	if style, ok := wrap.Normalize(pc.LineWrapping); ok {
		res.Configured = style
		res.IsProjectConfig = true
	}

	logger.Debug("config: resolved %q (scope=%s, root=%s) for %s", res.Configured, res.Scope(), root, docPath)
	return res, nil
}
