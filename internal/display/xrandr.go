package display

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bnema/tabletray/internal/logger"
	"github.com/bnema/tabletray/internal/tool"
)

const DefaultCommand = "xrandr"

// monitorLine matches "<index>: <flags> <geometry> <name>"
var monitorLine = regexp.MustCompile(`^(\d+):\s+(\S+)\s+(\S+)\s+(\S+)`)

// Enumerator lists displays through xrandr
type Enumerator struct {
	Runner  tool.Runner
	Command string
}

// NewEnumerator creates an enumerator using the given xrandr binary
func NewEnumerator(r tool.Runner, command string) *Enumerator {
	if command == "" {
		command = DefaultCommand
	}
	return &Enumerator{Runner: r, Command: command}
}

// List returns the active displays in xrandr order
func (e *Enumerator) List() ([]Display, error) {
	output, err := e.Runner.Run(e.Command, "--listactivemonitors")
	if err != nil {
		return nil, fmt.Errorf("failed to list active monitors: %w", err)
	}

	displays, err := parseActiveMonitors(e.Command, string(output))
	if err != nil {
		return nil, fmt.Errorf("failed to parse active monitors: %w", err)
	}

	logger.Debugf("Found %d active display(s)", len(displays))
	return displays, nil
}

// List runs the default xrandr binary with r
func List(r tool.Runner) ([]Display, error) {
	return NewEnumerator(r, DefaultCommand).List()
}

// parseActiveMonitors parses xrandr --listactivemonitors output:
//
//	Monitors: 2
//	 0: +*HDMI-1 1920/527x1080/296+0+0  HDMI-1
//	 1: +DP-1 2560/597x1440/336+1920+0  DP-1
//
// A line that does not match fails the whole parse.
func parseActiveMonitors(toolName, output string) ([]Display, error) {
	lines := strings.Split(output, "\n")
	if len(lines) > 0 {
		logger.Debug("xrandr header", "line", strings.TrimSpace(lines[0]))
		lines = lines[1:]
	}

	displays := []Display{}
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := monitorLine.FindStringSubmatch(line)
		if m == nil {
			return nil, &tool.MalformedOutputError{
				Tool:   toolName,
				LineNo: i + 2,
				Line:   line,
				Reason: "expected '<index>: <flags> <geometry> <name>'",
			}
		}

		index, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, &tool.MalformedOutputError{
				Tool:   toolName,
				LineNo: i + 2,
				Line:   line,
				Reason: "invalid index",
			}
		}

		displays = append(displays, Display{
			Name:       m[4],
			CodeName:   m[2],
			Index:      index,
			IsMain:     strings.Contains(m[2], "*"),
			Resolution: m[3],
		})
	}

	return displays, nil
}
