// Package input lists X11 pointer devices and maps them to outputs with xinput
package input

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bnema/tabletray/internal/logger"
	"github.com/bnema/tabletray/internal/tool"
)

const (
	DefaultCommand = "xinput"

	// branchGlyph marks device lines in the xinput list tree
	branchGlyph = "↳"
	pointerRole = "pointer"
)

var deviceLine = regexp.MustCompile(`↳\s+(.+?)\s*id=(\d+)\s+\[(.+)\]`)

// Device is a pointer input device reported by xinput
type Device struct {
	Name string
	ID   int
	Type string // e.g. "slave  pointer  (2)"
}

// Enumerator lists devices through xinput
type Enumerator struct {
	Runner  tool.Runner
	Command string
}

// NewEnumerator creates an enumerator using the given xinput binary
func NewEnumerator(r tool.Runner, command string) *Enumerator {
	if command == "" {
		command = DefaultCommand
	}
	return &Enumerator{Runner: r, Command: command}
}

// ListPointerDevices returns the pointer devices whose name contains filter,
// compared case-insensitively. An empty filter matches every pointer device.
func (e *Enumerator) ListPointerDevices(filter string) ([]Device, error) {
	output, err := e.Runner.Run(e.Command, "list")
	if err != nil {
		return nil, fmt.Errorf("failed to list input devices: %w", err)
	}

	devices := parseDeviceList(string(output), filter)
	logger.Debugf("Found %d pointer device(s) matching %q", len(devices), filter)
	return devices, nil
}

// ListPointerDevices runs the default xinput binary with r
func ListPointerDevices(r tool.Runner, filter string) ([]Device, error) {
	return NewEnumerator(r, DefaultCommand).ListPointerDevices(filter)
}

// parseDeviceList parses xinput list output:
//
//	⎡ Virtual core pointer                    	id=2	[master pointer  (3)]
//	⎜   ↳ HUION Huion Tablet_H640P Pen            	id=10	[slave  pointer  (2)]
//	⎣ Virtual core keyboard                   	id=3	[master keyboard (2)]
//	    ↳ HUION Huion Tablet_H640P Keyboard       	id=12	[slave  keyboard (3)]
//
// Branch lines that do not match are skipped, not reported.
func parseDeviceList(output, filter string) []Device {
	filter = strings.ToLower(filter)

	devices := []Device{}
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, branchGlyph) {
			continue
		}

		m := deviceLine.FindStringSubmatch(line)
		if m == nil {
			logger.Debug("Skipping unrecognised xinput line", "line", line)
			continue
		}

		id, err := strconv.Atoi(m[2])
		if err != nil {
			logger.Debug("Skipping xinput line with invalid id", "line", line, "err", err)
			continue
		}

		name := strings.TrimSpace(m[1])
		inputType := m[3]
		if !strings.Contains(strings.ToLower(name), filter) {
			continue
		}
		if !strings.Contains(strings.ToLower(inputType), pointerRole) {
			continue
		}

		devices = append(devices, Device{Name: name, ID: id, Type: inputType})
	}

	return devices
}
