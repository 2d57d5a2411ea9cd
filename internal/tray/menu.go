package tray

import (
	"strconv"

	"github.com/bnema/tabletray/internal/selector"
)

const (
	DeviceMenuTitle  = "Huion Device"
	DisplayMenuTitle = "Select Monitor"
	QuitTitle        = "Quit"
	NoDeviceLabel    = "No device found"
	NoDisplayLabel   = "No display found"
)

// Kind tells what a section's actions target
type Kind int

const (
	KindDevice Kind = iota
	KindDisplay
)

// Section is one submenu of the tray menu
type Section struct {
	Title       string
	Kind        Kind
	Items       []selector.Action
	Placeholder string // shown disabled when Items is empty
}

// Menu is the toolkit-independent tray menu. Sections are followed by a
// separator and the quit entry when rendered.
type Menu struct {
	Sections []Section
}

// BuildMenu lays out the selector's actions: devices first, then displays
func BuildMenu(sel *selector.Selector) Menu {
	return Menu{
		Sections: []Section{
			{
				Title:       DeviceMenuTitle,
				Kind:        KindDevice,
				Items:       sel.DeviceActions(),
				Placeholder: NoDeviceLabel,
			},
			{
				Title:       DisplayMenuTitle,
				Kind:        KindDisplay,
				Items:       sel.DisplayActions(),
				Placeholder: NoDisplayLabel,
			},
		},
	}
}

// IsChecked reports whether the action matches the selector's current state:
// the selected device, or the output it was last mapped to.
func IsChecked(sel *selector.Selector, kind Kind, a selector.Action) bool {
	switch kind {
	case KindDevice:
		id, ok := sel.Selected()
		return ok && a.ID == strconv.Itoa(id)
	case KindDisplay:
		output, ok := sel.Current()
		return ok && a.ID == output
	default:
		return false
	}
}
