package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTargetButtons(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"LEFT", "left"},
		{"RIGHT", "right"},
		{"MIDDLE", "center"},
	}
	for _, tt := range tests {
		target, err := ResolveTarget(tt.name)
		require.NoError(t, err)
		assert.Equal(t, ButtonTarget, target.Kind)
		assert.Equal(t, tt.code, target.Code)
	}
}

func TestResolveTargetKeys(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"A", "a"},
		{"Z", "z"},
		{"7", "7"},
		{"ENTER", "enter"},
		{"SPACE", "space"},
		{"ESCAPE", "esc"},
		{"F12", "f12"},
		{"PAGE_DOWN", "pagedown"},
	}
	for _, tt := range tests {
		target, err := ResolveTarget(tt.name)
		require.NoError(t, err)
		assert.Equal(t, KeyTarget, target.Kind)
		assert.Equal(t, tt.code, target.Code)
	}
}

func TestResolveTargetIsCaseInsensitive(t *testing.T) {
	target, err := ResolveTarget("left")
	require.NoError(t, err)
	assert.Equal(t, ButtonTarget, target.Kind)

	target, err = ResolveTarget(" enter ")
	require.NoError(t, err)
	assert.Equal(t, "enter", target.Code)
}

func TestResolveTargetButtonsShadowArrowKeys(t *testing.T) {
	// LEFT and RIGHT always mean mouse buttons; only UP and DOWN reach
	// the arrow keys.
	target, err := ResolveTarget("RIGHT")
	require.NoError(t, err)
	assert.Equal(t, ButtonTarget, target.Kind)

	target, err = ResolveTarget("UP")
	require.NoError(t, err)
	assert.Equal(t, KeyTarget, target.Kind)
}

func TestResolveTargetUnknown(t *testing.T) {
	_, err := ResolveTarget("NOSUCHKEY")
	require.ErrorIs(t, err, ErrUnknownTarget)
}
