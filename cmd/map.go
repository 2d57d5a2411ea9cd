package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/bnema/tabletray/internal/config"
	"github.com/bnema/tabletray/internal/display"
	"github.com/bnema/tabletray/internal/input"
	"github.com/bnema/tabletray/internal/logger"
	"github.com/bnema/tabletray/internal/ui"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	// Replaced in tests
	stdinIsTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	promptMapping   = promptMappingForm
)

var mapCmd = &cobra.Command{
	Use:   "map [DEVICE_ID DISPLAY]",
	Short: "Map a pointer device to a monitor once",
	Long: `Map a pointer device to a monitor without starting the tray.

With no arguments the device and the monitor are chosen interactively,
which needs a terminal.`,
	Example: `  tabletray map 10 HDMI-1
  tabletray map -d huion`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("expected DEVICE_ID and DISPLAY, got %d argument(s)", len(args))
		}
		return nil
	},
	RunE: runMap,
}

func runMap(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	r := newRunner()

	var (
		deviceID int
		output   string
	)
	if len(args) == 2 {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid device id %q: %w", args[0], err)
		}
		deviceID, output = id, args[1]
	} else {
		if !stdinIsTerminal() {
			return errors.New("no DEVICE_ID and DISPLAY given and stdin is not a terminal")
		}

		devices, err := input.NewEnumerator(r, cfg.Tools.Xinput).ListPointerDevices(cfg.Device.Filter)
		if err != nil {
			return err
		}
		if len(devices) == 0 {
			return errors.New("no pointer device found")
		}
		displays, err := display.NewEnumerator(r, cfg.Tools.Xrandr).List()
		if err != nil {
			return err
		}
		if len(displays) == 0 {
			return errors.New("no active display found")
		}

		deviceID, output, err = promptMapping(devices, displays)
		if err != nil {
			return err
		}
	}

	if err := input.NewMapper(r, cfg.Tools.Xinput).MapToOutput(deviceID, output); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.FormatCheck(true, "Mapped", fmt.Sprintf("device %d to %s", deviceID, output)))
	return nil
}

func promptMappingForm(devices []input.Device, displays []display.Display) (int, string, error) {
	deviceOptions := make([]huh.Option[int], len(devices))
	for i, d := range devices {
		deviceOptions[i] = huh.NewOption(fmt.Sprintf("%s (id=%d)", d.Name, d.ID), d.ID)
	}

	displayOptions := make([]huh.Option[string], len(displays))
	for i, d := range displays {
		label := fmt.Sprintf("%s  %s", d.Name, d.Size())
		if d.IsMain {
			label += " " + ui.IconMain
		}
		displayOptions[i] = huh.NewOption(label, d.Name)
	}

	deviceID := devices[0].ID
	output := displays[0].Name
	if main, ok := display.Main(displays); ok {
		output = main.Name
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Select Device").
				Description("Pointer device to bind").
				Options(deviceOptions...).
				Value(&deviceID),
			huh.NewSelect[string]().
				Title("Select Monitor").
				Description("Monitor the device will be confined to").
				Options(displayOptions...).
				Value(&output),
		),
	)

	if err := form.Run(); err != nil {
		return 0, "", fmt.Errorf("mapping selection cancelled: %w", err)
	}

	logger.Debug("Mapping selected", "device", deviceID, "output", output)
	return deviceID, output, nil
}
