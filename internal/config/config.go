package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// appDir is the directory name used under ~/.config
const appDir = "tui-board"

// Config holds application configuration
type Config struct {
	Theme    string            `toml:"theme"`
	Board    BoardConfig       `toml:"board"`
	Settings map[string]string `toml:"settings"`

	// Session settings (not persisted to TOML, overrides persisted settings)
	sessionSettings map[string]string
}

// BoardConfig holds the tree and viewport settings
type BoardConfig struct {
	RootLabel  string  `toml:"root_label"`
	ZoomStep   float64 `toml:"zoom_step"`
	MinScale   float64 `toml:"min_scale"`
	MaxScale   float64 `toml:"max_scale"`
	CenterLeft float64 `toml:"center_left"`
	CenterTop  float64 `toml:"center_top"`
	Indent     int     `toml:"indent"`
}

// Load loads the config file from the standard location
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaultConfig(), nil // Return default if can't find config path
	}

	return LoadFromFile(configPath)
}

// LoadFromFile loads config from a specific file
func LoadFromFile(filePath string) (*Config, error) {
	// If file doesn't exist, return default config
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return defaultConfig(), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Decode over the defaults so keys missing from the file keep their
	// default while an explicit zero stays zero
	config := defaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyDefaults()

	if err := config.Board.validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filePath, err)
	}

	return config, nil
}

// applyDefaults restores the string fields a file set to "" and makes
// sure both settings maps exist
func (c *Config) applyDefaults() {
	if c.Theme == "" {
		c.Theme = "tokyo-night"
	}
	if c.Board.RootLabel == "" {
		c.Board.RootLabel = defaultBoard().RootLabel
	}
	if c.Settings == nil {
		c.Settings = make(map[string]string)
	}
	if c.sessionSettings == nil {
		c.sessionSettings = make(map[string]string)
	}
}

func (b BoardConfig) validate() error {
	if b.ZoomStep <= 0 {
		return fmt.Errorf("zoom_step must be positive, got %v", b.ZoomStep)
	}
	if b.MinScale <= 0 {
		return fmt.Errorf("min_scale must be positive, got %v", b.MinScale)
	}
	if b.MaxScale < b.MinScale {
		return fmt.Errorf("max_scale %v is below min_scale %v", b.MaxScale, b.MinScale)
	}
	if b.CenterLeft < 0 || b.CenterLeft > 1 || b.CenterTop < 0 || b.CenterTop > 1 {
		return fmt.Errorf("center_left and center_top must be between 0 and 1")
	}
	if b.Indent < 1 {
		return fmt.Errorf("indent must be at least 1, got %d", b.Indent)
	}
	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, "config.toml"), nil
}

func defaultBoard() BoardConfig {
	return BoardConfig{
		RootLabel:  "Categories",
		ZoomStep:   0.1,
		MinScale:   0.1,
		MaxScale:   2.0,
		CenterLeft: 0.45,
		CenterTop:  0.40,
		Indent:     2,
	}
}

// defaultConfig returns the default configuration
func defaultConfig() *Config {
	return &Config{
		Theme:           "tokyo-night",
		Board:           defaultBoard(),
		Settings:        make(map[string]string),
		sessionSettings: make(map[string]string),
	}
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return defaultConfig()
}

// GetConfigDir returns the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config", appDir), nil
}

// Set sets a session configuration value
func (c *Config) Set(key, value string) {
	if c.sessionSettings == nil {
		c.sessionSettings = make(map[string]string)
	}
	c.sessionSettings[key] = value
}

// Get retrieves a configuration value, checking session settings first (which override persisted settings)
// Returns empty string if not found in either source
func (c *Config) Get(key string) string {
	if c.sessionSettings != nil {
		if val, ok := c.sessionSettings[key]; ok {
			return val
		}
	}

	if c.Settings != nil {
		if val, ok := c.Settings[key]; ok {
			return val
		}
	}

	return ""
}

// GetAll returns all configuration values (both persisted and session)
// Session settings override persisted settings with the same key
func (c *Config) GetAll() map[string]string {
	result := make(map[string]string)

	for k, v := range c.Settings {
		result[k] = v
	}
	for k, v := range c.sessionSettings {
		result[k] = v
	}

	return result
}

// ErrUnknownSetting is returned by SetBoard for keys outside the [board] table
var ErrUnknownSetting = errors.New("unknown setting")

// BoardKeys lists the [board] keys SetBoard accepts
var BoardKeys = []string{"zoom_step", "min_scale", "max_scale", "center_left", "center_top", "indent"}

// SetBoard overrides one [board] value for this session. The value is
// parsed and the resulting board config validated before anything
// changes; on success it is also recorded as a session setting.
func (c *Config) SetBoard(key, value string) error {
	b := c.Board

	var err error
	switch key {
	case "zoom_step":
		b.ZoomStep, err = strconv.ParseFloat(value, 64)
	case "min_scale":
		b.MinScale, err = strconv.ParseFloat(value, 64)
	case "max_scale":
		b.MaxScale, err = strconv.ParseFloat(value, 64)
	case "center_left":
		b.CenterLeft, err = strconv.ParseFloat(value, 64)
	case "center_top":
		b.CenterTop, err = strconv.ParseFloat(value, 64)
	case "indent":
		b.Indent, err = strconv.Atoi(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownSetting, key)
	}
	if err != nil {
		return fmt.Errorf("invalid value %q for %s: %w", value, key, err)
	}
	if err := b.validate(); err != nil {
		return err
	}

	c.Board = b
	c.Set(key, value)
	return nil
}

// BoardValue returns the current value of a [board] key as :set shows it
func (c *Config) BoardValue(key string) (string, bool) {
	b := c.Board
	switch key {
	case "zoom_step":
		return strconv.FormatFloat(b.ZoomStep, 'g', -1, 64), true
	case "min_scale":
		return strconv.FormatFloat(b.MinScale, 'g', -1, 64), true
	case "max_scale":
		return strconv.FormatFloat(b.MaxScale, 'g', -1, 64), true
	case "center_left":
		return strconv.FormatFloat(b.CenterLeft, 'g', -1, 64), true
	case "center_top":
		return strconv.FormatFloat(b.CenterTop, 'g', -1, 64), true
	case "indent":
		return strconv.Itoa(b.Indent), true
	}
	return "", false
}
