package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"
)

// ThemeConfig represents the raw TOML theme configuration
type ThemeConfig struct {
	Name   string            `toml:"name"`
	Base   string            `toml:"base"`
	Colors map[string]string `toml:"colors"`
}

// slots maps TOML color keys to the fields they override
func slots(c *Colors) map[string]*tcell.Color {
	return map[string]*tcell.Color{
		"background":      &c.Background,
		"node_text":       &c.NodeText,
		"node_input_bg":   &c.NodeInputBg,
		"node_focused":    &c.NodeFocused,
		"node_focus_bg":   &c.NodeFocusBg,
		"node_match":      &c.NodeMatch,
		"node_match_bg":   &c.NodeMatchBg,
		"expand_marker":   &c.ExpandMarker,
		"guide":           &c.Guide,
		"add_button":      &c.AddButton,
		"control_bar_bg":  &c.ControlBarBg,
		"control_button":  &c.ControlButton,
		"control_active":  &c.ControlActive,
		"dropdown_bg":     &c.DropdownBg,
		"dropdown_active": &c.DropdownActive,
		"status_text":     &c.StatusText,
		"status_message":  &c.StatusMessage,
		"status_drag":     &c.StatusDrag,
		"command_prompt":  &c.CommandPrompt,
		"command_text":    &c.CommandText,
		"help_background": &c.HelpBackground,
		"help_border":     &c.HelpBorder,
		"help_title":      &c.HelpTitle,
		"help_content":    &c.HelpContent,
	}
}

// getThemePaths returns the search paths for theme files
func getThemePaths() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return []string{
		filepath.Join(home, ".config", "tui-board", "themes"),
		filepath.Join(home, ".local", "share", "tui-board", "themes"),
	}
}

// findThemeFile searches for a theme file in standard locations
func findThemeFile(themeName string) (string, error) {
	filename := themeName + ".toml"

	for _, dir := range getThemePaths() {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("theme file not found: %s", filename)
}

// LoadThemeFromFile loads a theme from a TOML file
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var config ThemeConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	return configToTheme(config)
}

// LoadTheme loads a theme by name: built-in names first, then theme files.
// A name ending in .toml is read as a file path.
func LoadTheme(themeName string) (*Theme, error) {
	if fn, ok := builtin[themeName]; ok {
		return fn(), nil
	}
	if filepath.Ext(themeName) == ".toml" {
		return LoadThemeFromFile(themeName)
	}

	filePath, err := findThemeFile(themeName)
	if err != nil {
		return nil, err
	}

	return LoadThemeFromFile(filePath)
}

// configToTheme overlays the configured colors on the base theme
// (Tokyo Night unless base names another built-in theme).
func configToTheme(config ThemeConfig) (*Theme, error) {
	base := TokyoNight
	if config.Base != "" {
		fn, ok := builtin[config.Base]
		if !ok {
			return nil, fmt.Errorf("unknown base theme %q", config.Base)
		}
		base = fn
	}
	t := base()

	fields := slots(&t.Colors)
	keys := make([]string, 0, len(config.Colors))
	for key := range config.Colors {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		field, ok := fields[key]
		if !ok {
			return nil, fmt.Errorf("unknown theme color %q", key)
		}
		c, err := ParseColor(config.Colors[key])
		if err != nil {
			return nil, fmt.Errorf("theme color %s: %w", key, err)
		}
		*field = c
	}

	if config.Name != "" {
		t.Name = config.Name
	}

	return t, nil
}

// LoadThemeOrDefault loads a theme by name, or returns Tokyo Night if not found
func LoadThemeOrDefault(themeName string) *Theme {
	t, err := LoadTheme(themeName)
	if err != nil {
		return TokyoNight()
	}
	return t
}
