package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/wrapcheck/internal/app"
	"github.com/zhubert/wrapcheck/internal/config"
	"github.com/zhubert/wrapcheck/internal/errors"
	"github.com/zhubert/wrapcheck/internal/logger"
	"github.com/zhubert/wrapcheck/internal/notification"
	"github.com/zhubert/wrapcheck/internal/ui"
	"github.com/zhubert/wrapcheck/internal/ui/modals"
	"github.com/zhubert/wrapcheck/internal/wrap"
)

var (
	debugMode             bool
	quietMode             bool
	accessibleMode        bool
	jsonOutput            bool
	applyChoice           bool
	notifyMismatch        bool
	detectedOverride      string
	configuredOverride    string
	themeName             string
	version, commit, date string
)

// loadConfig, notify and runProgram are replaced in tests.
var (
	loadConfig = config.Load
	notify     = notification.MismatchFound
	runProgram = func(m *app.Model, in io.Reader, out io.Writer) error {
		_, err := tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(out)).Run()
		return err
	}
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "wrapcheck [flags] <document>",
	Short: "Resolve line wrapping mismatches in markdown documents",
	Long: `wrapcheck compares the line wrapping a document declares in its YAML front
matter (editor_options.markdown.wrap) with the project or global default.
When they disagree it asks which one to use for the document.`,
	Args:          cobra.ExactArgs(1),
	RunE:          runCheck,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.Flags().BoolVar(&accessibleMode, "accessible", false, "Ask on the terminal line by line instead of the full-screen dialog")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the result as JSON")
	rootCmd.Flags().BoolVar(&applyChoice, "apply", false, "Write the chosen project wrapping to "+config.ProjectFileName)
	rootCmd.Flags().BoolVar(&notifyMismatch, "notify", false, "Send a desktop notification when a mismatch needs a decision")
	rootCmd.Flags().StringVar(&detectedOverride, "detected", "", "Use this wrapping instead of reading the document's front matter")
	rootCmd.Flags().StringVar(&configuredOverride, "configured", "", "Use this wrapping instead of the configured default")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "UI theme (dark-purple, nord, light), saved as the default")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("wrapcheck %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("wrapcheck %s\n", version)
}

// result is what a run reports, as text or JSON.
type result struct {
	Document   string `json:"document"`
	Detected   string `json:"detected"`
	Configured string `json:"configured"`
	Scope      string `json:"scope"`
	Action     string `json:"action"` // Empty when there was nothing to resolve
}

const actionCancelled = "cancelled"

func runCheck(cmd *cobra.Command, args []string) error {
	defer logger.Close()
	log := logger.ComponentLogger("CLI")
	doc := args[0]

	detected, err := detectedStyle(doc)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	res, err := cfg.Resolve(doc)
	if err != nil {
		return err
	}
	if configuredOverride != "" {
		style, ok := wrap.Normalize(configuredOverride)
		if !ok {
			return errors.E(errors.Op("cmd.runCheck"), errors.KindInvalid,
				fmt.Sprintf("invalid --configured value %q", configuredOverride))
		}
		res.Configured = style
	}
	if themeName != "" {
		if _, ok := ui.BuiltinThemes[ui.ThemeName(themeName)]; !ok {
			return errors.E(errors.Op("cmd.runCheck"), errors.KindInvalid,
				fmt.Sprintf("unknown --theme %q", themeName))
		}
		cfg.SetTheme(themeName)
		if err := cfg.Save(); err != nil {
			return err
		}
	}

	out := result{
		Document:   doc,
		Detected:   detected,
		Configured: res.Configured,
		Scope:      res.Scope(),
	}
	log.Info("checking document", "document", doc, "detected", detected,
		"configured", res.Configured, "scope", out.Scope)

	if !wrap.Mismatch(detected, res.Configured) {
		return report(cmd.OutOrStdout(), out)
	}

	m, err := app.New(cfg, detected, res)
	if err != nil {
		return err
	}
	if notifyMismatch {
		// Failures are logged by the notification package
		_ = notify(doc)
	}
	// The prompt draws on stderr; stdout carries only the report
	if accessibleMode {
		err = m.Dialog().RunAccessible(cmd.InOrStdin(), cmd.ErrOrStderr())
	} else {
		err = runProgram(m, cmd.InOrStdin(), cmd.ErrOrStderr())
	}
	if err != nil {
		return fmt.Errorf("error running app: %w", err)
	}

	outcome := m.Outcome()
	if !outcome.Confirmed {
		out.Action = actionCancelled
		return report(cmd.OutOrStdout(), out)
	}
	out.Action = outcome.Action.String()

	if applyChoice {
		if err := apply(outcome, detected, res); err != nil {
			return err
		}
	}
	return report(cmd.OutOrStdout(), out)
}

// detectedStyle returns the --detected override or the style declared in the
// document's front matter, empty when it declares none.
func detectedStyle(doc string) (string, error) {
	if detectedOverride != "" {
		style, ok := wrap.Normalize(detectedOverride)
		if !ok {
			return "", errors.E(errors.Op("cmd.detectedStyle"), errors.KindInvalid,
				fmt.Sprintf("invalid --detected value %q", detectedOverride))
		}
		return style, nil
	}
	style, _, err := wrap.DetectFile(doc)
	return style, err
}

// apply persists a project-wide choice. The other actions leave the
// configuration as it is: the document already declares its wrapping, and
// keeping the default needs no change.
func apply(outcome app.Outcome, detected string, res config.Resolution) error {
	if outcome.Action != modals.SetProjectLineWrapping || !res.HaveProject {
		return nil
	}
	pc, err := config.LoadProject(res.ProjectRoot)
	if err != nil {
		return err
	}
	pc.LineWrapping = detected
	return config.SaveProject(res.ProjectRoot, pc)
}

func report(w io.Writer, r result) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	switch r.Action {
	case "":
		_, err := fmt.Fprintf(w, "%s: no mismatch (%s)\n", r.Document, wrap.Describe(r.Configured))
		return err
	case actionCancelled:
		_, err := fmt.Fprintln(w, actionCancelled)
		return err
	default:
		_, err := fmt.Fprintf(w, "%s: %s\n", r.Document, r.Action)
		return err
	}
}
