package tray

import (
	"testing"
	"time"

	"github.com/bnema/tabletray/internal/display"
	"github.com/bnema/tabletray/internal/input"
	"github.com/bnema/tabletray/internal/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopMapper struct {
	calls []string
}

func (m *nopMapper) MapToOutput(deviceID int, output string) error {
	m.calls = append(m.calls, output)
	return nil
}

func newSelector(displays []display.Display, devices []input.Device) (*selector.Selector, *nopMapper) {
	m := &nopMapper{}
	return selector.New(displays, devices, m), m
}

func labels(actions []selector.Action) []string {
	var out []string
	for _, a := range actions {
		out = append(out, a.Label)
	}
	return out
}

func TestBuildMenu(t *testing.T) {
	sel, _ := newSelector(
		[]display.Display{{Name: "DP-1"}, {Name: "HDMI-1", IsMain: true}},
		[]input.Device{{Name: "HUION Pen", ID: 10}, {Name: "HUION Pad", ID: 11}},
	)

	menu := BuildMenu(sel)
	require.Len(t, menu.Sections, 2)

	devices := menu.Sections[0]
	assert.Equal(t, DeviceMenuTitle, devices.Title)
	assert.Equal(t, KindDevice, devices.Kind)
	assert.Equal(t, []string{"HUION Pen", "HUION Pad"}, labels(devices.Items))

	displays := menu.Sections[1]
	assert.Equal(t, DisplayMenuTitle, displays.Title)
	assert.Equal(t, KindDisplay, displays.Kind)
	assert.Equal(t, []string{"DP-1", "HDMI-1"}, labels(displays.Items))
}

func TestBuildMenuPlaceholders(t *testing.T) {
	sel, _ := newSelector(nil, nil)

	menu := BuildMenu(sel)
	require.Len(t, menu.Sections, 2)
	assert.Empty(t, menu.Sections[0].Items)
	assert.Equal(t, NoDeviceLabel, menu.Sections[0].Placeholder)
	assert.Empty(t, menu.Sections[1].Items)
	assert.Equal(t, NoDisplayLabel, menu.Sections[1].Placeholder)
}

func TestIsChecked(t *testing.T) {
	sel, _ := newSelector(
		[]display.Display{{Name: "DP-1"}, {Name: "HDMI-1", IsMain: true}},
		[]input.Device{{Name: "HUION Pen", ID: 10}, {Name: "HUION Pad", ID: 11}},
	)
	menu := BuildMenu(sel)
	devices, displays := menu.Sections[0].Items, menu.Sections[1].Items

	assert.True(t, IsChecked(sel, KindDevice, devices[0]))
	assert.False(t, IsChecked(sel, KindDevice, devices[1]))
	assert.False(t, IsChecked(sel, KindDisplay, displays[0]))
	assert.True(t, IsChecked(sel, KindDisplay, displays[1]))

	devices[1].Run()
	displays[0].Run()

	assert.False(t, IsChecked(sel, KindDevice, devices[0]))
	assert.True(t, IsChecked(sel, KindDevice, devices[1]))
	assert.True(t, IsChecked(sel, KindDisplay, displays[0]))
	assert.False(t, IsChecked(sel, KindDisplay, displays[1]))
}

func TestDispatchRunsActionsInOrder(t *testing.T) {
	sel, m := newSelector(
		[]display.Display{{Name: "DP-1"}, {Name: "HDMI-1"}},
		[]input.Device{{Name: "HUION Pen", ID: 10}, {Name: "HUION Pad", ID: 11}},
	)
	tr := New(sel, "test")

	// afterAction runs on the dispatcher, so the third refresh means the
	// third action has finished
	refreshes := 0
	finished := make(chan struct{})
	tr.afterAction = func() {
		refreshes++
		if refreshes == 3 {
			close(finished)
		}
	}
	go tr.dispatch()

	devices := tr.menu.Sections[0].Items
	displays := tr.menu.Sections[1].Items

	require.True(t, tr.enqueue(devices[1].Run))
	require.True(t, tr.enqueue(displays[0].Run))
	require.True(t, tr.enqueue(displays[1].Run))

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatcher did not run queued actions")
	}

	assert.Equal(t, []string{"DP-1", "HDMI-1"}, m.calls)
	id, _ := sel.Selected()
	assert.Equal(t, 11, id)
	output, _ := sel.Current()
	assert.Equal(t, "HDMI-1", output)

	tr.stop()
	assert.False(t, tr.enqueue(func() {}), "enqueue after stop must not block")
}

func TestStopIsIdempotent(t *testing.T) {
	sel, _ := newSelector(nil, nil)
	tr := New(sel, "test")

	tr.stop()
	tr.stop()
	assert.NotEmpty(t, defaultIcon)
}
