package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/tabletray/internal/config"
	"github.com/bnema/tabletray/internal/display"
	"github.com/bnema/tabletray/internal/ui"
	"github.com/spf13/cobra"
)

// MonitorInfo is the JSON form of an active display
type MonitorInfo struct {
	Index      int    `json:"index"`
	Name       string `json:"name"`
	Flags      string `json:"flags"`
	Resolution string `json:"resolution"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Main       bool   `json:"main"`
}

var monitorsJSON bool

var monitorsCmd = &cobra.Command{
	Use:   "monitors",
	Short: "List active monitors",
	Long:  `List the active monitors reported by xrandr --listactivemonitors.`,
	Args:  cobra.NoArgs,
	RunE:  runMonitors,
}

func init() {
	monitorsCmd.Flags().BoolVar(&monitorsJSON, "json", false, "Output in JSON format")
}

func runMonitors(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	displays, err := display.NewEnumerator(newRunner(), cfg.Tools.Xrandr).List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if monitorsJSON {
		infos := make([]MonitorInfo, 0, len(displays))
		for _, d := range displays {
			info := MonitorInfo{
				Index:      d.Index,
				Name:       d.Name,
				Flags:      d.CodeName,
				Resolution: d.Resolution,
				Main:       d.IsMain,
			}
			if g, err := d.Geometry(); err == nil {
				info.Width, info.Height = g.Width, g.Height
				info.X, info.Y = g.X, g.Y
			}
			infos = append(infos, info)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	fmt.Fprintln(out, ui.FormatAppHeader("MONITORS", fmt.Sprintf("%d active", len(displays))))
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.DisplayTable(displays))
	return nil
}
