package cmd

import (
	"fmt"

	"github.com/bnema/tabletray/internal/config"
	"github.com/bnema/tabletray/internal/notify"
	"github.com/bnema/tabletray/internal/tool"
	"github.com/bnema/tabletray/internal/ui"
	"github.com/spf13/cobra"
)

// Replaced in tests
var lookPath = tool.Available

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the required X11 tools are installed",
	Args:  cobra.NoArgs,
	RunE:  runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, ui.FormatAppHeader("DOCTOR", config.GetConfigPath()))
	fmt.Fprintln(out)

	var missing []string
	for _, name := range []string{cfg.Tools.Xrandr, cfg.Tools.Xinput} {
		path, ok := lookPath(name)
		if !ok {
			missing = append(missing, name)
			fmt.Fprintln(out, ui.FormatCheck(false, name, "not found in PATH"))
			continue
		}
		fmt.Fprintln(out, ui.FormatCheck(true, name, path))
	}

	// Notifications are optional, one tool is enough
	notifier := ""
	for _, name := range notify.ToolNames() {
		if path, ok := lookPath(name); ok {
			notifier = name + " " + path
			break
		}
	}
	switch {
	case !cfg.Notify.Enabled:
		fmt.Fprintln(out, ui.FormatCheck(true, "notifications", "disabled"))
	case notifier == "":
		fmt.Fprintln(out, ui.FormatCheck(false, "notifications", "no notification tool, errors only go to the log"))
	default:
		fmt.Fprintln(out, ui.FormatCheck(true, "notifications", notifier))
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required tools: %v", missing)
	}
	return nil
}
