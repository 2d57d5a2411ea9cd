package input

import (
	"errors"
	"testing"

	"github.com/bnema/tabletray/internal/tool"
	"github.com/bnema/tabletray/internal/tool/tooltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapToOutput(t *testing.T) {
	r := tooltest.New().On("xinput map-to-output 10 HDMI-1", "")

	err := NewMapper(r, "").MapToOutput(10, "HDMI-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"xinput map-to-output 10 HDMI-1"}, r.CommandLines())
}

func TestMapToOutputFailure(t *testing.T) {
	r := tooltest.New().Fail("xinput map-to-output 10 DP-9", errors.New("exit status 1"))

	err := NewMapper(r, "xinput").MapToOutput(10, "DP-9")
	require.Error(t, err)
	assert.True(t, tool.IsExecError(err))
	assert.Contains(t, err.Error(), "DP-9")
	assert.Len(t, r.Calls, 1, "no retry")
}

func TestMapToOutputEmptyName(t *testing.T) {
	r := tooltest.New()

	err := NewMapper(r, "").MapToOutput(10, "")
	require.Error(t, err)
	assert.Empty(t, r.Calls)
}
