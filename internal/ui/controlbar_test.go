package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControlBarButtons(t *testing.T) {
	screen, sim := newTestScreen(t, 80, 24)
	bar := NewControlBar(0)
	bar.Render(screen, "100%", 9)
	screen.Show()

	assert.Equal(t, "[Go to center] [+] [100% ▾] [-]", rowText(sim, 0, 1, 32))

	tests := []struct {
		name string
		x    int
		want ControlAction
	}{
		{"center", 3, ControlCenter},
		{"zoom in", 17, ControlZoomIn},
		{"zoom out", 30, ControlZoomOut},
		{"empty bar", 60, ControlNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, _, ok := bar.Click(tt.x, 0)
			assert.True(t, ok)
			assert.Equal(t, tt.want, action)
		})
	}

	_, _, ok := bar.Click(5, 5)
	assert.False(t, ok, "clicks below the bar belong to the board")
}

func TestControlBarDropdown(t *testing.T) {
	screen, sim := newTestScreen(t, 80, 24)
	bar := NewControlBar(0)
	bar.Render(screen, "100%", 9)

	action, _, ok := bar.Click(22, 0)
	require.True(t, ok)
	assert.Equal(t, ControlToggleDropdown, action)
	assert.True(t, bar.IsOpen())

	bar.Render(screen, "100%", 9)
	screen.Show()
	assert.Equal(t, " 10%", rowText(sim, 1, 21, 25))
	assert.Equal(t, "200%", rowText(sim, 20, 21, 25))

	action, value, ok := bar.Click(21, 15)
	require.True(t, ok)
	assert.Equal(t, ControlSelectPreset, action)
	assert.Equal(t, "1.5", value)
	assert.False(t, bar.IsOpen())
}

func TestControlBarClickOutsideClosesDropdown(t *testing.T) {
	screen, _ := newTestScreen(t, 80, 24)
	bar := NewControlBar(0)
	bar.Render(screen, "100%", 9)
	bar.Toggle()
	bar.Render(screen, "100%", 9)

	action, _, ok := bar.Click(60, 12)
	assert.True(t, ok)
	assert.Equal(t, ControlCloseDropdown, action)
	assert.False(t, bar.IsOpen())
}

func TestControlBarDropdownScrollsToActive(t *testing.T) {
	screen, sim := newTestScreen(t, 80, 8)
	bar := NewControlBar(0)
	bar.Toggle()
	bar.Render(screen, "200%", 19)
	screen.Show()

	// seven rows of room, the last one holds the active preset
	assert.Equal(t, "200%", rowText(sim, 7, 21, 25))

	action, value, ok := bar.Click(21, 7)
	require.True(t, ok)
	assert.Equal(t, ControlSelectPreset, action)
	assert.Equal(t, "2", value)
}
