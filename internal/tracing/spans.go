package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Attribute keys shared by the client, the dev server and the pipeline.
const (
	AttrResource   = "restodesk.resource"
	AttrScreen     = "restodesk.screen"
	AttrRequestID  = "restodesk.request.id"
	AttrHTTPMethod = "http.request.method"
	AttrHTTPStatus = "http.response.status_code"
	AttrRowCount   = "restodesk.rows"
	AttrTicket     = "restodesk.fetch.ticket"
)

// Span names.
const (
	SpanPrefixAPI = "api."
	SpanFetch     = "screen.fetch"
	SpanExport    = "screen.export"
)

// EventStaleFetch marks a fetch that resolved after a newer one was applied.
const EventStaleFetch = "fetch.stale"

// AttrDiscarded records whether a stale fetch was dropped.
const AttrDiscarded = "restodesk.fetch.discarded"

// StartRequest opens a client span for one backend call. op is the verb
// ("list", "create", "update", "delete").
func StartRequest(ctx context.Context, tracer trace.Tracer, op, resource, method string) (context.Context, trace.Span) {
	return tracer.Start(ctx, SpanPrefixAPI+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(AttrResource, resource),
			attribute.String(AttrHTTPMethod, method),
		),
	)
}

// End records err (if any) on span and ends it.
func End(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
