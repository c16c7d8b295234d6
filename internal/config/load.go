package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// SetDefaults registers every default on v so keys missing from the file
// still unmarshal to their default values.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("story", d.Story)
	v.SetDefault("start_page", d.StartPage)
	v.SetDefault("auto_reload", d.AutoReload)
	v.SetDefault("loading.enabled", d.Loading.Enabled)
	v.SetDefault("loading.duration", d.Loading.Duration)
	v.SetDefault("loading.stall_after", d.Loading.StallAfter)
	v.SetDefault("vortex.seed", d.Vortex.Seed)
	v.SetDefault("vortex.secondary", d.Vortex.Secondary)
	v.SetDefault("vortex.fps", d.Vortex.FPS)
	v.SetDefault("ui.markdown_style", d.UI.MarkdownStyle)
	v.SetDefault("ui.show_help_bar", d.UI.ShowHelpBar)
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}
