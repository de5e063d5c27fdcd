package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input    string
		expected tcell.Color
	}{
		{"#ff0000", tcell.NewRGBColor(255, 0, 0)},
		{"#0f0", tcell.NewRGBColor(0, 255, 0)},
		{" #0000FF ", tcell.NewRGBColor(0, 0, 255)},
		{"rgb(1, 2, 3)", tcell.NewRGBColor(1, 2, 3)},
		{"default", tcell.ColorDefault},
		{"Navy", tcell.ColorNavy},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := ParseColor(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, input := range []string{"#12", "#zzzzzz", "rgb(1,2)", "rgb(1,2,300)", "not-a-color"} {
		_, err := ParseColor(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestBlend(t *testing.T) {
	black := tcell.NewRGBColor(0, 0, 0)
	white := tcell.NewRGBColor(255, 255, 255)

	assert.Equal(t, black, Blend(black, white, 0))
	assert.Equal(t, white, Blend(black, white, 1))
	assert.Equal(t, tcell.ColorDefault, Blend(tcell.ColorDefault, white, 0.5))
}

func TestLoadBuiltinThemes(t *testing.T) {
	for _, name := range []string{"default", "tokyo-night"} {
		th, err := LoadTheme(name)
		require.NoError(t, err)
		assert.Equal(t, name, th.Name)
	}

	assert.Equal(t, "tokyo-night", LoadThemeOrDefault("no-such-theme").Name)
}

func TestLoadThemeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.toml")
	data := `
name = "mine"
base = "default"

[colors]
node_text = "#ffffff"
add_button = "rgb(0,255,0)"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	th, err := LoadThemeFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "mine", th.Name)
	assert.Equal(t, tcell.NewRGBColor(255, 255, 255), th.Colors.NodeText)
	assert.Equal(t, tcell.NewRGBColor(0, 255, 0), th.Colors.AddButton)
	assert.Equal(t, tcell.ColorDefault, th.Colors.Background, "unset colors come from the base theme")
}

func TestLoadThemeFromFileErrors(t *testing.T) {
	tests := map[string]string{
		"unknown key":  "[colors]\nsparkle = \"#fff\"",
		"bad color":    "[colors]\nnode_text = \"#nope\"",
		"unknown base": "base = \"solarized\"",
		"bad toml":     "name = ",
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.toml")
			require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
			_, err := LoadThemeFromFile(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadThemeByPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paper.toml")
	require.NoError(t, os.WriteFile(path, []byte("name = \"paper\"\n[colors]\nbackground = \"white\"\n"), 0o644))

	th, err := LoadTheme(path)
	require.NoError(t, err)
	assert.Equal(t, "paper", th.Name)
	assert.Equal(t, tcell.ColorWhite, th.Colors.Background)
}
