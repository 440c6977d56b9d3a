// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about rendering, cache operations, and served requests.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// [OTelHooks] is a ready-made implementation that records OpenTelemetry
// spans for every event pair; it uses the globally registered tracer provider.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    hooks := observability.NewOTelHooks()
//	    observability.SetPipelineHooks(hooks)
//	    observability.SetCacheHooks(hooks)
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnRenderStart(ctx, dialect, nodeCount)
//	// ... render ...
//	observability.Pipeline().OnRenderComplete(ctx, dialect, duration, err)
package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// PipelineHooks receives events from the chart pipeline.
type PipelineHooks interface {
	// Render events, one pair per dialect rendered
	OnRenderStart(ctx context.Context, dialect string, nodeCount int)
	OnRenderComplete(ctx context.Context, dialect string, duration time.Duration, err error)

	// SVG layout events
	OnSVGStart(ctx context.Context, layout string)
	OnSVGComplete(ctx context.Context, layout string, size int, duration time.Duration, err error)

	// README injection events
	OnInjectStart(ctx context.Context, path string)
	OnInjectComplete(ctx context.Context, path string, duration time.Duration, err error)
}

// CacheHooks receives cache lookups and writes. keyType is "render" or
// "svg".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// ServerHooks receives one OnRequest and one OnResponse per HTTP request.
// OnRequest sees the raw URL path; OnResponse sees the matched route
// pattern, such as "/render/{dialect}".
type ServerHooks interface {
	OnRequest(ctx context.Context, method, path string)
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnRenderStart(context.Context, string, int)                       {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, time.Duration, error)   {}
func (NoopPipelineHooks) OnSVGStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnSVGComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnInjectStart(context.Context, string)                            {}
func (NoopPipelineHooks) OnInjectComplete(context.Context, string, time.Duration, error)   {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopServerHooks is a no-op implementation of ServerHooks.
type NoopServerHooks struct{}

func (NoopServerHooks) OnRequest(context.Context, string, string)                      {}
func (NoopServerHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// slot holds one registered hook set. Reads happen on every render and
// request, so they are a single atomic load.
type slot[T any] struct {
	def T
	p   atomic.Pointer[T]
}

func (s *slot[T]) get() T {
	if p := s.p.Load(); p != nil {
		return *p
	}
	return s.def
}

// set registers h. A nil h is ignored.
func (s *slot[T]) set(h T) {
	if any(h) == nil {
		return
	}
	s.p.Store(&h)
}

var (
	pipelineHooks = slot[PipelineHooks]{def: NoopPipelineHooks{}}
	cacheHooks    = slot[CacheHooks]{def: NoopCacheHooks{}}
	serverHooks   = slot[ServerHooks]{def: NoopServerHooks{}}
)

// SetPipelineHooks registers pipeline hooks, normally once at startup.
func SetPipelineHooks(h PipelineHooks) { pipelineHooks.set(h) }

// SetCacheHooks registers cache hooks.
func SetCacheHooks(h CacheHooks) { cacheHooks.set(h) }

// SetServerHooks registers server hooks.
func SetServerHooks(h ServerHooks) { serverHooks.set(h) }

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks { return pipelineHooks.get() }

// Cache returns the registered cache hooks.
func Cache() CacheHooks { return cacheHooks.get() }

// Server returns the registered server hooks.
func Server() ServerHooks { return serverHooks.get() }

// Reset restores the no-op hooks. Tests use it to undo registrations.
func Reset() {
	pipelineHooks.p.Store(nil)
	cacheHooks.p.Store(nil)
	serverHooks.p.Store(nil)
}
