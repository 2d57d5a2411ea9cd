package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/tabletray/internal/config"
	"github.com/bnema/tabletray/internal/input"
	"github.com/bnema/tabletray/internal/ui"
	"github.com/spf13/cobra"
)

// DeviceInfo is the JSON form of a pointer device
type DeviceInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

var devicesJSON bool

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List pointer devices",
	Long: `List the pointer devices reported by xinput list, narrowed by the
device filter (--device or device.filter in the config file).`,
	Args: cobra.NoArgs,
	RunE: runDevices,
}

func init() {
	devicesCmd.Flags().BoolVar(&devicesJSON, "json", false, "Output in JSON format")
}

func runDevices(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	devices, err := input.NewEnumerator(newRunner(), cfg.Tools.Xinput).ListPointerDevices(cfg.Device.Filter)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if devicesJSON {
		infos := make([]DeviceInfo, 0, len(devices))
		for _, d := range devices {
			infos = append(infos, DeviceInfo{ID: d.ID, Name: d.Name, Type: d.Type})
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	subtitle := fmt.Sprintf("%d found", len(devices))
	if cfg.Device.Filter != "" {
		subtitle = fmt.Sprintf("%d matching %q", len(devices), cfg.Device.Filter)
	}
	fmt.Fprintln(out, ui.FormatAppHeader("POINTER DEVICES", subtitle))
	fmt.Fprintln(out)
	if len(devices) == 0 {
		fmt.Fprintln(out, ui.SubtleStyle.Render("No device found"))
		return nil
	}
	fmt.Fprintln(out, ui.DeviceTable(devices))
	return nil
}
