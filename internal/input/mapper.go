package input

import (
	"fmt"
	"strconv"

	"github.com/bnema/tabletray/internal/logger"
	"github.com/bnema/tabletray/internal/tool"
)

// Mapper binds an input device to an output
type Mapper interface {
	MapToOutput(deviceID int, output string) error
}

// XinputMapper maps devices with "xinput map-to-output"
type XinputMapper struct {
	Runner  tool.Runner
	Command string
}

// NewMapper creates a mapper using the given xinput binary
func NewMapper(r tool.Runner, command string) *XinputMapper {
	if command == "" {
		command = DefaultCommand
	}
	return &XinputMapper{Runner: r, Command: command}
}

// MapToOutput restricts the device to the output's region. Only the exit
// status of xinput is checked.
func (m *XinputMapper) MapToOutput(deviceID int, output string) error {
	if output == "" {
		return fmt.Errorf("cannot map device %d: empty output name", deviceID)
	}

	if _, err := m.Runner.Run(m.Command, "map-to-output", strconv.Itoa(deviceID), output); err != nil {
		return fmt.Errorf("failed to map device %d to %s: %w", deviceID, output, err)
	}

	logger.Info("Mapped input device", "device_id", deviceID, "output", output)
	return nil
}
