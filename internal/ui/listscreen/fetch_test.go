package listscreen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/zjrosen/restodesk/internal/masters"
	"github.com/zjrosen/restodesk/internal/tracing"
)

func withRecorder(t *testing.T) (*tracetest.SpanRecorder, func(*Config[masters.Unit])) {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return rec, func(c *Config[masters.Unit]) { c.Tracer = tp.Tracer("listscreen-test") }
}

func spansNamed(rec *tracetest.SpanRecorder, name string) []sdktrace.ReadOnlySpan {
	var out []sdktrace.ReadOnlySpan
	for _, s := range rec.Ended() {
		if s.Name() == name {
			out = append(out, s)
		}
	}
	return out
}

func attrValue(attrs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestFetch_IgnoresResultsIssuedByAnotherScreen(t *testing.T) {
	first := newHarness(t, newFakeBackend("Kg", "Box"))
	second := newHarness(t, newFakeBackend("Litre"))

	msgs := collect(first.m.fetch())
	require.Len(t, msgs, 1)
	require.True(t, first.m.Pipeline().Source().Loading())

	second.send(msgs[0])
	require.Equal(t, []string{"Litre"}, rowNames(second.m.Pipeline()))
	require.True(t, first.m.Pipeline().Source().Loading(), "the issuing screen still waits for its result")

	first.send(msgs[0])
	require.False(t, first.m.Pipeline().Source().Loading())
	require.Equal(t, []string{"Box", "Kg"}, rowNames(first.m.Pipeline()))
}

func TestFetch_SpanCarriesScreenAndRowCount(t *testing.T) {
	rec, opt := withRecorder(t)
	newHarness(t, newFakeBackend("Kg", "Box", "Gram"), opt)

	spans := spansNamed(rec, tracing.SpanFetch)
	require.Len(t, spans, 1)
	screen, ok := attrValue(spans[0].Attributes(), tracing.AttrScreen)
	require.True(t, ok)
	require.Equal(t, "units", screen.AsString())
	rows, ok := attrValue(spans[0].Attributes(), tracing.AttrRowCount)
	require.True(t, ok)
	require.Equal(t, int64(3), rows.AsInt64())
	require.Empty(t, spans[0].Events())
}

func TestFetch_LateResultAddsStaleEvent(t *testing.T) {
	for _, discard := range []bool{false, true} {
		rec, opt := withRecorder(t)
		h := newHarness(t, newFakeBackend("Kg"), opt, func(c *Config[masters.Unit]) {
			c.DiscardStale = discard
		})

		older := collect(h.m.fetch())
		newer := collect(h.m.fetch())
		require.Len(t, older, 1)
		require.Len(t, newer, 1)
		h.send(newer[0])
		h.send(older[0])

		var stale []sdktrace.Event
		for _, s := range spansNamed(rec, tracing.SpanFetch) {
			for _, e := range s.Events() {
				if e.Name == tracing.EventStaleFetch {
					stale = append(stale, e)
				}
			}
		}
		require.Len(t, stale, 1, "discard=%v", discard)
		ticket, ok := attrValue(stale[0].Attributes, tracing.AttrTicket)
		require.True(t, ok)
		require.Equal(t, int64(older[0].(fetchedMsg[masters.Unit]).ticket), ticket.AsInt64())
		dropped, ok := attrValue(stale[0].Attributes, tracing.AttrDiscarded)
		require.True(t, ok)
		require.Equal(t, discard, dropped.AsBool())
		require.False(t, h.m.Pipeline().Source().Loading())
	}
}

func TestExport_RecordsSpan(t *testing.T) {
	rec, opt := withRecorder(t)
	h := newHarness(t, newFakeBackend("Kg", "Box"), opt)

	h.run(h.m.exportFiltered())

	spans := spansNamed(rec, tracing.SpanExport)
	require.Len(t, spans, 1)
	rows, ok := attrValue(spans[0].Attributes(), tracing.AttrRowCount)
	require.True(t, ok)
	require.Equal(t, int64(2), rows.AsInt64())
}
