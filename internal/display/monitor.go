// Package display lists the active X11 outputs
package display

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/bnema/tabletray/internal/tool"
)

// Display is one active output as reported by xrandr --listactivemonitors
type Display struct {
	Name       string // output name, e.g. HDMI-1
	CodeName   string // raw flags token, e.g. +*HDMI-1
	Index      int
	IsMain     bool
	Resolution string // raw geometry token, e.g. 1920/527x1080/296+0+0
}

// Geometry is the parsed form of Display.Resolution
type Geometry struct {
	Width    int
	Height   int
	WidthMM  int
	HeightMM int
	X        int
	Y        int
}

// geometryPattern matches WIDTH/MMxHEIGHT/MM+X+Y. Offsets may be negative.
var geometryPattern = regexp.MustCompile(`^(\d+)/(\d+)x(\d+)/(\d+)([+-]\d+)([+-]\d+)$`)

// Geometry parses the resolution token
func (d Display) Geometry() (Geometry, error) {
	m := geometryPattern.FindStringSubmatch(d.Resolution)
	if m == nil {
		return Geometry{}, &tool.MalformedOutputError{
			Tool:   "xrandr",
			Line:   d.Resolution,
			Reason: "unexpected geometry",
		}
	}

	var g Geometry
	fields := []*int{&g.Width, &g.WidthMM, &g.Height, &g.HeightMM, &g.X, &g.Y}
	for i, f := range fields {
		v, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Geometry{}, fmt.Errorf("invalid geometry value %q: %w", m[i+1], err)
		}
		*f = v
	}
	return g, nil
}

// Size returns WIDTHxHEIGHT, or the raw token when it cannot be parsed
func (d Display) Size() string {
	g, err := d.Geometry()
	if err != nil {
		return d.Resolution
	}
	return fmt.Sprintf("%dx%d", g.Width, g.Height)
}

// Main returns the first display flagged as primary
func Main(displays []Display) (Display, bool) {
	for _, d := range displays {
		if d.IsMain {
			return d, true
		}
	}
	return Display{}, false
}
