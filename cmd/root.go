package cmd

import (
	"fmt"

	"github.com/bnema/tabletray/internal/config"
	"github.com/bnema/tabletray/internal/display"
	"github.com/bnema/tabletray/internal/input"
	"github.com/bnema/tabletray/internal/logger"
	"github.com/bnema/tabletray/internal/notify"
	"github.com/bnema/tabletray/internal/selector"
	"github.com/bnema/tabletray/internal/tool"
	"github.com/bnema/tabletray/internal/tray"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Version is set during build
	Version = "0.1.0-dev"

	configPath   string
	deviceFilter string

	// Replaced in tests
	newRunner = func() tool.Runner { return tool.NewRunner() }
	runTray   = func(sel *selector.Selector, tooltip string) { tray.New(sel, tooltip).Run() }

	rootCmd = &cobra.Command{
		Use:   "tabletray",
		Short: "Tabletray - bind a tablet pen to one monitor",
		Long: `Tabletray sits in the system tray and maps a graphics tablet's pointer
to a single X11 monitor. Pick the device and the monitor from the tray menu;
the mapping is applied immediately with xinput map-to-output.`,
		SilenceUsage:      true,
		PersistentPreRunE: initConfig,
		RunE:              runRoot,
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/tabletray/tabletray.toml)")
	rootCmd.PersistentFlags().StringVarP(&deviceFilter, "device", "d", "", "only offer pointer devices whose name contains this text")

	rootCmd.AddCommand(monitorsCmd)
	rootCmd.AddCommand(devicesCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig(cmd *cobra.Command, args []string) error {
	if configPath != "" {
		config.SetConfigPath(configPath)
	}
	if err := viper.BindPFlag("device.filter", cmd.Root().PersistentFlags().Lookup("device")); err != nil {
		return fmt.Errorf("failed to bind device flag: %w", err)
	}
	if err := config.Init(); err != nil {
		return err
	}

	cfg := config.Get()
	if err := logger.Init(cfg.Logging.LogLevel, cfg.Logging.File); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Debug("Configuration loaded", "path", config.GetConfigPath(), "filter", cfg.Device.Filter)
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	sel, err := buildSelector(cfg, newRunner())
	if err != nil {
		return err
	}

	logger.Info("Starting tray", "devices", len(sel.Devices()), "displays", len(sel.Displays()))
	runTray(sel, cfg.Tray.Tooltip)
	return nil
}

// buildSelector enumerates displays and pointer devices and applies the
// default mapping. Enumeration failures abort startup, mapping failures do not.
func buildSelector(cfg *config.Config, r tool.Runner) (*selector.Selector, error) {
	displays, err := display.NewEnumerator(r, cfg.Tools.Xrandr).List()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate displays: %w", err)
	}

	devices, err := input.NewEnumerator(r, cfg.Tools.Xinput).ListPointerDevices(cfg.Device.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate pointer devices: %w", err)
	}

	notifier := notify.New(r, cfg.Notify.Enabled)
	mapper := input.NewMapper(r, cfg.Tools.Xinput)

	return selector.New(displays, devices, mapper, selector.WithErrorHandler(func(err error) {
		logger.Error("Mapping failed", "err", err)
		if nerr := notifier.Error("Tablet mapping failed", err.Error()); nerr != nil {
			logger.Debug("Could not show notification", "err", nerr)
		}
	})), nil
}
