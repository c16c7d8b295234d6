package vortexview

import (
	"context"
	"time"

	"github.com/zjrosen/storybook/internal/cachemanager"
	"github.com/zjrosen/storybook/internal/log"
	"github.com/zjrosen/storybook/internal/vortex"
)

// LayoutTTL is how long a generated spiral stays memoized.
const LayoutTTL = 30 * time.Minute

// Layouts memoizes vortex.Generate by Params.Key. Layouts are pure, so a
// cached slice is shared between callers and must not be modified.
type Layouts struct {
	rt *cachemanager.ReadThroughCache[string, []vortex.Placement, vortex.Params]
}

// NewLayouts wraps cache. A nil cache disables memoization.
func NewLayouts(cache cachemanager.CacheManager[string, []vortex.Placement]) *Layouts {
	generate := func(_ context.Context, p vortex.Params) ([]vortex.Placement, error) {
		start := time.Now()
		out, err := vortex.Generate(p)
		if err != nil {
			return nil, err
		}
		log.Debug(log.CatVortex, "Generated layout", "tendrils", p.TendrilCount, "chars", p.CharsPerTendril, "seed", p.Seed, "took", time.Since(start))
		return out, nil
	}
	return &Layouts{rt: cachemanager.NewReadThroughCache(cache, generate, cache == nil)}
}

// Get returns the placements for p.
func (l *Layouts) Get(ctx context.Context, p vortex.Params) ([]vortex.Placement, error) {
	return l.rt.GetWithRefresh(ctx, p.Key(), p, LayoutTTL)
}
