package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope used by OTelHooks.
const TracerName = "github.com/matzehuels/modchart"

// OTelHooks records each completed operation as a span. Start events are
// ignored; the span is back-dated by the reported duration when the
// matching Complete event arrives.
type OTelHooks struct {
	tracer trace.Tracer
}

// NewOTelHooks returns hooks backed by the global tracer provider.
func NewOTelHooks() *OTelHooks {
	return NewOTelHooksWithTracer(otel.Tracer(TracerName))
}

// NewOTelHooksWithTracer returns hooks that record spans on tracer.
func NewOTelHooksWithTracer(tracer trace.Tracer) *OTelHooks {
	return &OTelHooks{tracer: tracer}
}

func (h *OTelHooks) record(ctx context.Context, name string, d time.Duration, err error, attrs ...attribute.KeyValue) {
	end := time.Now()
	_, span := h.tracer.Start(ctx, name,
		trace.WithTimestamp(end.Add(-d)),
		trace.WithAttributes(attrs...),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End(trace.WithTimestamp(end))
}

func (h *OTelHooks) OnRenderStart(context.Context, string, int) {}

func (h *OTelHooks) OnRenderComplete(ctx context.Context, dialect string, d time.Duration, err error) {
	h.record(ctx, "modchart.render", d, err, attribute.String("modchart.dialect", dialect))
}

func (h *OTelHooks) OnSVGStart(context.Context, string) {}

func (h *OTelHooks) OnSVGComplete(ctx context.Context, layout string, size int, d time.Duration, err error) {
	h.record(ctx, "modchart.svg", d, err,
		attribute.String("modchart.layout", layout),
		attribute.Int("modchart.svg.bytes", size),
	)
}

func (h *OTelHooks) OnInjectStart(context.Context, string) {}

func (h *OTelHooks) OnInjectComplete(ctx context.Context, path string, d time.Duration, err error) {
	h.record(ctx, "modchart.inject", d, err, attribute.String("modchart.readme", path))
}

// Cache events are attached to the current span, if any.

func (h *OTelHooks) OnCacheHit(ctx context.Context, keyType string) {
	trace.SpanFromContext(ctx).AddEvent("cache.hit", trace.WithAttributes(attribute.String("key_type", keyType)))
}

func (h *OTelHooks) OnCacheMiss(ctx context.Context, keyType string) {
	trace.SpanFromContext(ctx).AddEvent("cache.miss", trace.WithAttributes(attribute.String("key_type", keyType)))
}

func (h *OTelHooks) OnCacheSet(ctx context.Context, keyType string, size int) {
	trace.SpanFromContext(ctx).AddEvent("cache.set", trace.WithAttributes(
		attribute.String("key_type", keyType),
		attribute.Int("size", size),
	))
}

func (h *OTelHooks) OnRequest(context.Context, string, string) {}

func (h *OTelHooks) OnResponse(ctx context.Context, method, path string, status int, d time.Duration) {
	var err error
	if status >= 500 {
		err = statusError(status)
	}
	h.record(ctx, "modchart.http "+method+" "+path, d, err,
		attribute.String("http.request.method", method),
		attribute.String("url.path", path),
		attribute.Int("http.response.status_code", status),
	)
}

type statusError int

func (s statusError) Error() string { return fmt.Sprintf("server error %d", int(s)) }

var (
	_ PipelineHooks = (*OTelHooks)(nil)
	_ CacheHooks    = (*OTelHooks)(nil)
	_ ServerHooks   = (*OTelHooks)(nil)
)
