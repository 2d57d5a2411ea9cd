package cmd

import (
	"fmt"

	"github.com/bnema/tabletray/internal/config"
	"github.com/bnema/tabletray/internal/logger"
	"github.com/bnema/tabletray/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage tabletray configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, ui.FormatAppHeader("CONFIGURATION", config.GetConfigPath()))

		section := func(name string) {
			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.HeaderStyle.Render("["+name+"]"))
		}
		field := func(key string, value interface{}) {
			fmt.Fprintf(out, "  %s = %v\n", key, value)
		}

		section("device")
		field("filter", fmt.Sprintf("%q", cfg.Device.Filter))

		section("tools")
		field("xrandr", cfg.Tools.Xrandr)
		field("xinput", cfg.Tools.Xinput)

		section("logging")
		field("log_level", fmt.Sprintf("%q", cfg.Logging.LogLevel))
		field("file", fmt.Sprintf("%q", cfg.Logging.File))

		section("notify")
		field("enabled", cfg.Notify.Enabled)

		section("tray")
		field("tooltip", fmt.Sprintf("%q", cfg.Tray.Tooltip))
		return nil
	},
}

var configInitForce bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Args:  cobra.NoArgs,
	// The target file may not exist yet, so it is not read first
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath != "" {
			config.SetConfigPath(configPath)
		}
		return logger.Init("", "")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.GetConfigPath()

		written, err := config.WriteDefault(path, configInitForce)
		if err != nil {
			return err
		}
		if !written {
			logger.Warnf("Config file already exists at %s (use --force to overwrite)", path)
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.FormatCheck(true, "Configuration written", path))
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "Overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
