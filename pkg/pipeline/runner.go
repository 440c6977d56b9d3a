package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/modchart/pkg/cache"
	"github.com/matzehuels/modchart/pkg/config"
	"github.com/matzehuels/modchart/pkg/graph"
	modio "github.com/matzehuels/modchart/pkg/io"
	"github.com/matzehuels/modchart/pkg/observability"
	"github.com/matzehuels/modchart/pkg/render"
	"github.com/matzehuels/modchart/pkg/render/dialects"
	"github.com/matzehuels/modchart/pkg/render/graphviz"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration // Expiry for cache entries; zero means none
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    config.DefaultCacheTTL,
	}
}

// cachedRender is the cache encoding of a Result.
type cachedRender struct {
	Source  string `json:"source"`
	Classes string `json:"classes,omitempty"`
}

// Render produces the diagram text for g with caching.
//
// With opts.InferTypes, types used by g but missing from cfg are added
// before rendering. Otherwise a node or edge with an undeclared type fails
// with UNRESOLVED_STYLE.
func (r *Runner) Render(ctx context.Context, g *graph.Graph, cfg config.Config, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	d, err := dialects.Find(opts.Dialect)
	if err != nil {
		return nil, err
	}
	if opts.InferTypes {
		cfg.ProjectTypes, cfg.LinkTypes = config.InferTypes(g, cfg.ProjectTypes, cfg.LinkTypes)
	}

	result := &Result{
		Dialect: opts.Dialect,
		Ext:     d.Ext(),
		Config:  cfg,
		Stats: Stats{
			NodeCount: g.NodeCount(),
			EdgeCount: g.EdgeCount(),
		},
	}

	graphHash, err := cache.HashJSON(modio.FromGraph(g))
	if err != nil {
		return nil, err
	}
	configHash, err := cache.HashJSON(cfg)
	if err != nil {
		return nil, err
	}
	result.GraphHash = graphHash
	key := r.Keyer.RenderKey(graphHash, opts.RenderKeyOpts(configHash))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var cached cachedRender
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "render")
				result.Source, result.Classes = cached.Source, cached.Classes
				result.CacheHit = true
				r.Logger.Debug("render cache hit", "dialect", opts.Dialect)
				return result, nil
			}
			// If deserialization fails, fall through to re-render
		} else if err != nil {
			r.Logger.Warn("cache read failed", "error", err)
		}
		observability.Cache().OnCacheMiss(ctx, "render")
	}

	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, string(opts.Dialect), g.NodeCount())
	if opts.SplitClasses {
		var split render.Split
		split, err = render.RenderSplit(d, g, cfg, ClassesName+"."+d.Ext(), opts.RenderOptions())
		result.Source, result.Classes = split.Body, split.Classes
	} else {
		result.Source, err = render.Render(d, g, cfg, opts.RenderOptions())
	}
	result.Stats.RenderTime = time.Since(start)
	observability.Pipeline().OnRenderComplete(ctx, string(opts.Dialect), result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("rendered diagram",
		"dialect", opts.Dialect,
		"bytes", len(result.Source)+len(result.Classes),
		"duration", result.Stats.RenderTime)

	if data, err := json.Marshal(cachedRender{Source: result.Source, Classes: result.Classes}); err == nil {
		r.store(ctx, "render", key, data)
	}
	return result, nil
}

// SVG lays out DOT source with Graphviz, with caching.
func (r *Runner) SVG(ctx context.Context, dot string, layout config.LayoutEngine, refresh bool) ([]byte, bool, error) {
	key := r.Keyer.SVGKey(cache.Hash([]byte(dot)), string(layout))

	if !refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "svg")
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "svg")
	}

	start := time.Now()
	observability.Pipeline().OnSVGStart(ctx, string(layout))
	svg, err := graphviz.RenderSVG(ctx, dot, layout)
	observability.Pipeline().OnSVGComplete(ctx, string(layout), len(svg), time.Since(start), err)
	if err != nil {
		return nil, false, fmt.Errorf("svg: %w", err)
	}

	r.store(ctx, "svg", key, svg)
	return svg, false, nil
}

// store writes a cache entry, retrying transient backend failures.
// Cache failures never fail a run.
func (r *Runner) store(ctx context.Context, keyType, key string, data []byte) {
	err := cache.DefaultBackoff.Retry(ctx, func() error {
		return r.Cache.Set(ctx, key, data, r.TTL)
	})
	if err != nil {
		r.Logger.Warn("cache write failed", "key_type", keyType, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
