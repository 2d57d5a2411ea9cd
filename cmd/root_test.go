package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/tabletray/internal/selector"
	"github.com/bnema/tabletray/internal/tool"
	"github.com/bnema/tabletray/internal/tool/tooltest"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const xrandrOutput = `Monitors: 2
 0: +*HDMI-1 1920/527x1080/296+0+0  HDMI-1
 1: +DP-1 2560/597x1440/336+1920+0  DP-1
`

const xinputOutput = `⎡ Virtual core pointer                    	id=2	[master pointer  (3)]
⎜   ↳ Virtual core XTEST pointer              	id=4	[slave  pointer  (2)]
⎜   ↳ HUION Huion Tablet_H640P Pen            	id=10	[slave  pointer  (2)]
⎜   ↳ HUION Huion Tablet_H640P Pad            	id=11	[slave  pointer  (2)]
⎣ Virtual core keyboard                   	id=3	[master keyboard (2)]
    ↳ HUION Huion Tablet_H640P Keyboard       	id=12	[slave  keyboard (3)]
`

// useRunner makes every command run against r
func useRunner(t *testing.T, r tool.Runner) {
	t.Helper()
	orig := newRunner
	newRunner = func() tool.Runner { return r }
	t.Cleanup(func() { newRunner = orig })
}

// captureTray replaces the blocking tray with a recorder
func captureTray(t *testing.T) *[]*selector.Selector {
	t.Helper()
	var started []*selector.Selector
	orig := runTray
	runTray = func(sel *selector.Selector, tooltip string) { started = append(started, sel) }
	t.Cleanup(func() { runTray = orig })
	return &started
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tabletray.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func executeCommand(root *cobra.Command, args ...string) (string, error) {
	viper.Reset()
	resetFlags(root)

	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func standardRunner() *tooltest.Runner {
	return tooltest.New().
		On("xrandr --listactivemonitors", xrandrOutput).
		On("xinput list", xinputOutput).
		On("xinput map-to-output 10 HDMI-1", "").
		On("xinput map-to-output 11 HDMI-1", "")
}

func TestRootStartsTrayWithDefaultMapping(t *testing.T) {
	r := standardRunner()
	useRunner(t, r)
	started := captureTray(t)

	_, err := executeCommand(rootCmd, "--config", writeConfig(t, ""), "-d", "huion")
	require.NoError(t, err)

	require.Len(t, *started, 1)
	sel := (*started)[0]

	id, ok := sel.Selected()
	assert.True(t, ok)
	assert.Equal(t, 10, id)

	output, ok := sel.Current()
	assert.True(t, ok)
	assert.Equal(t, "HDMI-1", output)

	assert.Equal(t, []string{
		"xrandr --listactivemonitors",
		"xinput list",
		"xinput map-to-output 10 HDMI-1",
	}, r.CommandLines())
}

func TestRootDeviceFilterFromConfig(t *testing.T) {
	useRunner(t, standardRunner())
	started := captureTray(t)

	path := writeConfig(t, "[device]\nfilter = \"pad\"\n")
	_, err := executeCommand(rootCmd, "--config", path)
	require.NoError(t, err)

	require.Len(t, *started, 1)
	devices := (*started)[0].Devices()
	require.Len(t, devices, 1)
	assert.Equal(t, 11, devices[0].ID)
}

func TestRootFlagOverridesConfigFilter(t *testing.T) {
	useRunner(t, standardRunner())
	started := captureTray(t)

	path := writeConfig(t, "[device]\nfilter = \"pad\"\n")
	_, err := executeCommand(rootCmd, "--config", path, "--device", "pen")
	require.NoError(t, err)

	require.Len(t, *started, 1)
	devices := (*started)[0].Devices()
	require.Len(t, devices, 1)
	assert.Equal(t, 10, devices[0].ID)
}

func TestRootEnumerationFailureIsFatal(t *testing.T) {
	r := tooltest.New().On("xinput list", xinputOutput)
	useRunner(t, r)
	started := captureTray(t)

	_, err := executeCommand(rootCmd, "--config", writeConfig(t, ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to enumerate displays")
	assert.True(t, tool.IsExecError(err))
	assert.Empty(t, *started)
}

func TestRootMalformedXrandrIsFatal(t *testing.T) {
	r := tooltest.New().
		On("xrandr --listactivemonitors", "Monitors: 1\ngarbage\n").
		On("xinput list", xinputOutput)
	useRunner(t, r)
	started := captureTray(t)

	_, err := executeCommand(rootCmd, "--config", writeConfig(t, ""))
	require.Error(t, err)
	assert.True(t, tool.IsMalformed(err))
	assert.Empty(t, *started)
}

func TestRootMappingFailureKeepsRunning(t *testing.T) {
	r := tooltest.New().
		On("xrandr --listactivemonitors", xrandrOutput).
		On("xinput list", xinputOutput).
		Fail("xinput map-to-output 10 HDMI-1", errors.New("exit status 1"))
	useRunner(t, r)
	started := captureTray(t)

	path := writeConfig(t, "[notify]\nenabled = false\n")
	_, err := executeCommand(rootCmd, "--config", path, "-d", "huion")
	require.NoError(t, err)

	require.Len(t, *started, 1)
	_, mapped := (*started)[0].Current()
	assert.False(t, mapped)
}

func TestRootUsesConfiguredTools(t *testing.T) {
	r := tooltest.New().
		On("/opt/x/xrandr --listactivemonitors", xrandrOutput).
		On("/opt/x/xinput list", xinputOutput).
		On("/opt/x/xinput map-to-output 10 HDMI-1", "")
	useRunner(t, r)
	captureTray(t)

	path := writeConfig(t, "[tools]\nxrandr = \"/opt/x/xrandr\"\nxinput = \"/opt/x/xinput\"\n")
	_, err := executeCommand(rootCmd, "--config", path, "-d", "huion")
	require.NoError(t, err)
	assert.Contains(t, r.CommandLines(), "/opt/x/xinput map-to-output 10 HDMI-1")
}

func TestMissingExplicitConfigFails(t *testing.T) {
	useRunner(t, standardRunner())
	started := captureTray(t)

	_, err := executeCommand(rootCmd, "--config", filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Empty(t, *started)
}
