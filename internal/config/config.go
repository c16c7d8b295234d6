// Package config provides configuration types and defaults for storybook.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/storybook/internal/flags"
	"github.com/zjrosen/storybook/internal/log"
)

// Config holds all configuration options for storybook.
type Config struct {
	Story      string          `mapstructure:"story"`      // embedded story name or path to a YAML story
	StartPage  int             `mapstructure:"start_page"` // 0 uses the story's own start page
	AutoReload bool            `mapstructure:"auto_reload"`
	Loading    LoadingConfig   `mapstructure:"loading"`
	Vortex     VortexConfig    `mapstructure:"vortex"`
	UI         UIConfig        `mapstructure:"ui"`
	Flags      map[string]bool `mapstructure:"flags"`
}

// LoadingConfig controls the loading screen shown before the cover.
type LoadingConfig struct {
	Enabled bool `mapstructure:"enabled"`

	// Duration is how long the progress bar takes to fill.
	Duration time.Duration `mapstructure:"duration"`

	// StallAfter switches the boot log to stall messages when the story is
	// still not ready. Zero disables stall messages.
	StallAfter time.Duration `mapstructure:"stall_after"`
}

// VortexConfig controls the spinner drawn on the loading screen.
type VortexConfig struct {
	Seed      int64 `mapstructure:"seed"`
	Secondary bool  `mapstructure:"secondary"`
	FPS       int   `mapstructure:"fps"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	MarkdownStyle string `mapstructure:"markdown_style"` // "dark" (default) or "light"
	ShowHelpBar   bool   `mapstructure:"show_help_bar"`
}

const (
	MinFPS = 1
	MaxFPS = 60
)

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Story:      "journey",
		AutoReload: true,
		Loading: LoadingConfig{
			Enabled:    true,
			Duration:   4 * time.Second,
			StallAfter: 8 * time.Second,
		},
		Vortex: VortexConfig{
			Seed:      0,
			Secondary: true,
			FPS:       20,
		},
		UI: UIConfig{
			MarkdownStyle: "dark",
			ShowHelpBar:   true,
		},
		Flags: flags.Defaults(),
	}
}

// Validate checks the whole configuration and returns the first problem.
func (c Config) Validate() error {
	if c.StartPage < 0 {
		return fmt.Errorf("start_page must not be negative, got %d", c.StartPage)
	}
	if err := ValidateLoading(c.Loading); err != nil {
		return err
	}
	if err := ValidateVortex(c.Vortex); err != nil {
		return err
	}
	return ValidateUI(c.UI)
}

// ValidateLoading checks loading screen configuration for errors.
func ValidateLoading(l LoadingConfig) error {
	if l.Duration < 0 {
		return fmt.Errorf("loading.duration must not be negative, got %s", l.Duration)
	}
	if l.StallAfter < 0 {
		return fmt.Errorf("loading.stall_after must not be negative, got %s", l.StallAfter)
	}
	return nil
}

// ValidateVortex checks spinner configuration for errors.
// A zero FPS is allowed and means the default.
func ValidateVortex(v VortexConfig) error {
	if v.FPS != 0 && (v.FPS < MinFPS || v.FPS > MaxFPS) {
		return fmt.Errorf("vortex.fps must be between %d and %d, got %d", MinFPS, MaxFPS, v.FPS)
	}
	return nil
}

// ValidateUI checks user interface configuration for errors.
func ValidateUI(ui UIConfig) error {
	switch ui.MarkdownStyle {
	case "", "dark", "light":
		return nil
	default:
		return fmt.Errorf("ui.markdown_style must be \"dark\" or \"light\", got %q", ui.MarkdownStyle)
	}
}

// FrameInterval returns the spinner tick interval for the configured FPS.
func (v VortexConfig) FrameInterval() time.Duration {
	fps := v.FPS
	if fps <= 0 {
		fps = Defaults().Vortex.FPS
	}
	return time.Second / time.Duration(fps)
}

// DefaultConfigPath returns ~/.config/storybook/config.yaml, or an empty
// string when the home directory is unknown.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "storybook", "config.yaml")
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Storybook Configuration

# Story to open: an embedded story name (run 'storybook stories') or a path to a YAML story
story: journey

# Page to open after the cover (0 uses the story's start page)
# start_page: 0

# Reload the story when its file changes on disk
auto_reload: true

# Loading screen shown before the cover
loading:
  enabled: true
  duration: 4s      # How long the progress bar takes to fill
  stall_after: 8s   # Show stall messages if the story is still not ready (0 disables)

# Vortex spinner
vortex:
  seed: 0           # Same seed, same spiral
  secondary: true   # Draw the dimmer counter-rotating spiral
  fps: 20           # Animation frames per second (1-60)

# UI settings
ui:
  markdown_style: dark  # Page text rendering style: "dark" (default) or "light"
  show_help_bar: true   # Show key hints under the book

# Feature flags
# flags:
#   secondary-vortex: true
#   boot-log: true
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
