package ui

import (
	"fmt"
	"strconv"

	"github.com/bnema/tabletray/internal/display"
	"github.com/bnema/tabletray/internal/input"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorSubtle)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return lipgloss.NewStyle().
					Foreground(ColorPrimary).
					Bold(true).
					Padding(0, 1)
			case col == 0:
				return lipgloss.NewStyle().
					Foreground(ColorInfo).
					Bold(true).
					Padding(0, 1)
			default:
				return lipgloss.NewStyle().
					Foreground(ColorText).
					Padding(0, 1)
			}
		}).
		Headers(headers...)
}

// DisplayRows converts displays to table rows
func DisplayRows(displays []display.Display) [][]string {
	rows := make([][]string, 0, len(displays))
	for _, d := range displays {
		position := "-"
		if g, err := d.Geometry(); err == nil {
			position = fmt.Sprintf("%d,%d", g.X, g.Y)
		}
		main := ""
		if d.IsMain {
			main = IconMain
		}
		rows = append(rows, []string{
			strconv.Itoa(d.Index),
			d.Name,
			d.CodeName,
			d.Size(),
			position,
			main,
		})
	}
	return rows
}

// DisplayTable renders displays as a table
func DisplayTable(displays []display.Display) string {
	return newTable("INDEX", "NAME", "FLAGS", "RESOLUTION", "POSITION", "MAIN").
		Rows(DisplayRows(displays)...).
		String()
}

// DeviceRows converts devices to table rows
func DeviceRows(devices []input.Device) [][]string {
	rows := make([][]string, 0, len(devices))
	for _, d := range devices {
		rows = append(rows, []string{strconv.Itoa(d.ID), d.Name, d.Type})
	}
	return rows
}

// DeviceTable renders devices as a table
func DeviceTable(devices []input.Device) string {
	return newTable("ID", "NAME", "TYPE").
		Rows(DeviceRows(devices)...).
		String()
}
