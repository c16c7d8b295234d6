// Package flags toggles optional presentation features from configuration.
// A Registry is read-only once built; unknown flags are always off.
package flags

import (
	"maps"
	"slices"

	"github.com/zjrosen/storybook/internal/log"
)

const (
	// FlagSecondaryVortex draws the dimmer counter-rotating spiral behind the primary one.
	FlagSecondaryVortex = "secondary-vortex"

	// FlagBootLog shows the scrolling system log during loading.
	FlagBootLog = "boot-log"
)

// Defaults are the values used for known flags the config leaves unset.
func Defaults() map[string]bool {
	return map[string]bool{
		FlagSecondaryVortex: true,
		FlagBootLog:         true,
	}
}

// Registry holds feature flag state.
type Registry struct {
	flags map[string]bool
}

// New builds a Registry from config values layered over Defaults.
func New(overrides map[string]bool) *Registry {
	flags := Defaults()
	maps.Copy(flags, overrides)
	r := &Registry{flags: flags}
	log.Debug(log.CatConfig, "Feature flags initialized", "count", len(flags), "enabled", r.EnabledNames())
	return r
}

// Enabled reports whether the named flag is on. Nil registries and unknown
// flags report false.
func (r *Registry) Enabled(name string) bool {
	if r == nil {
		return false
	}
	value, ok := r.flags[name]
	if !ok {
		log.Debug(log.CatConfig, "Unknown flag accessed", "flag", name)
		return false
	}
	return value
}

// All returns a copy of every flag value.
func (r *Registry) All() map[string]bool {
	if r == nil {
		return map[string]bool{}
	}
	return maps.Clone(r.flags)
}

// EnabledNames returns the enabled flag names in sorted order.
func (r *Registry) EnabledNames() []string {
	if r == nil {
		return nil
	}
	var names []string
	for name, on := range r.flags {
		if on {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
