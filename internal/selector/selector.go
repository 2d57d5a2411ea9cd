// Package selector holds the device/display model behind the tray menu and
// turns it into clickable actions.
package selector

import (
	"strconv"

	"github.com/bnema/tabletray/internal/display"
	"github.com/bnema/tabletray/internal/input"
	"github.com/bnema/tabletray/internal/logger"
)

// Action is one menu entry: a label and what clicking it does.
type Action struct {
	Label string
	ID    string // device id or output name the action targets
	Run   func()
}

// Option configures a Selector
type Option func(*Selector)

// WithErrorHandler sets where mapping errors go. Menu actions have no return
// channel, so this is the only place they surface.
func WithErrorHandler(fn func(error)) Option {
	return func(s *Selector) {
		if fn != nil {
			s.onError = fn
		}
	}
}

// Selector tracks the selected device and maps it to displays on demand.
// It is not safe for concurrent use; callers serialise actions.
type Selector struct {
	displays []display.Display
	devices  []input.Device
	mapper   input.Mapper
	onError  func(error)

	selectedID  int
	hasSelected bool

	currentOutput string
}

// New builds a selector. When at least one device exists, the first one is
// selected and mapped to the main display, if there is one.
func New(displays []display.Display, devices []input.Device, mapper input.Mapper, opts ...Option) *Selector {
	s := &Selector{
		displays: displays,
		devices:  devices,
		mapper:   mapper,
		onError: func(err error) {
			logger.Error("Mapping failed", "err", err)
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	if len(devices) == 0 {
		logger.Warn("No pointer device found, default mapping skipped")
		return s
	}

	s.Select(devices[0].ID)
	if primary, ok := display.Main(displays); ok {
		logger.Debug("Applying default mapping", "device_id", s.selectedID, "output", primary.Name)
		if err := s.MapTo(primary.Name); err != nil {
			s.onError(err)
		}
	}

	return s
}

// Select makes id the device used by later MapTo calls
func (s *Selector) Select(id int) {
	s.selectedID = id
	s.hasSelected = true
	logger.Debug("Selected input device", "device_id", id)
}

// Selected returns the selected device id
func (s *Selector) Selected() (int, bool) {
	return s.selectedID, s.hasSelected
}

// Current returns the output the selected device was last mapped to
func (s *Selector) Current() (string, bool) {
	return s.currentOutput, s.currentOutput != ""
}

// MapTo maps the currently selected device to output. Without a selected
// device it does nothing.
func (s *Selector) MapTo(output string) error {
	if !s.hasSelected {
		logger.Debug("No device selected, ignoring mapping", "output", output)
		return nil
	}

	if err := s.mapper.MapToOutput(s.selectedID, output); err != nil {
		return err
	}
	s.currentOutput = output
	return nil
}

// Displays returns the enumerated displays
func (s *Selector) Displays() []display.Display {
	return s.displays
}

// Devices returns the enumerated devices
func (s *Selector) Devices() []input.Device {
	return s.devices
}

// DisplayActions returns one action per display. Each action reads the
// selected device when it runs, not when it is built.
func (s *Selector) DisplayActions() []Action {
	actions := make([]Action, 0, len(s.displays))
	for _, d := range s.displays {
		output := d.Name
		actions = append(actions, Action{
			Label: d.Name,
			ID:    output,
			Run: func() {
				if err := s.MapTo(output); err != nil {
					s.onError(err)
				}
			},
		})
	}
	return actions
}

// DeviceActions returns one action per device selecting it
func (s *Selector) DeviceActions() []Action {
	actions := make([]Action, 0, len(s.devices))
	for _, dev := range s.devices {
		id := dev.ID
		actions = append(actions, Action{
			Label: dev.Name,
			ID:    strconv.Itoa(id),
			Run: func() {
				s.Select(id)
			},
		})
	}
	return actions
}
