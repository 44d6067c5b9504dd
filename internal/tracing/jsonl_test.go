package tracing

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestFileExporter_AppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traces.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(`{"existing":true}`+"\n"), 0600))

	exp, err := NewFileExporter(path)
	require.NoError(t, err)

	start := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	stub := tracetest.SpanStub{Name: "api.create", StartTime: start, EndTime: start.Add(250 * time.Millisecond)}
	require.NoError(t, exp.ExportSpans(context.Background(), []sdktrace.ReadOnlySpan{stub.Snapshot()}))
	require.NoError(t, exp.Shutdown(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[1], `"name":"api.create"`)
	require.Contains(t, lines[1], `"duration_ms":250`)
}

func TestFileExporter_ShutdownTwiceAndExportAfterClose(t *testing.T) {
	exp, err := NewFileExporter(filepath.Join(t.TempDir(), "t.jsonl"))
	require.NoError(t, err)
	require.NoError(t, exp.Shutdown(context.Background()))
	require.NoError(t, exp.Shutdown(context.Background()))

	stub := tracetest.SpanStub{Name: "late"}
	require.Error(t, exp.ExportSpans(context.Background(), []sdktrace.ReadOnlySpan{stub.Snapshot()}))
}

func TestNewSpanRecord(t *testing.T) {
	traceID := trace.TraceID{1, 2, 3}
	parent := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: trace.SpanID{9}})
	start := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)

	stub := tracetest.SpanStub{
		Name:        "screen.fetch",
		SpanKind:    trace.SpanKindInternal,
		SpanContext: trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: trace.SpanID{7}}),
		Parent:      parent,
		StartTime:   start,
		EndTime:     start.Add(time.Second),
		Status:      sdktrace.Status{Code: codes.Ok},
		Attributes:  []attribute.KeyValue{attribute.String(AttrScreen, "units"), attribute.Int(AttrRowCount, 3)},
		Events: []sdktrace.Event{{
			Name:       EventStaleFetch,
			Time:       start.Add(500 * time.Millisecond),
			Attributes: []attribute.KeyValue{attribute.Int64(AttrTicket, 2)},
		}},
	}

	rec := NewSpanRecord(stub.Snapshot())
	require.Equal(t, traceID.String(), rec.TraceID)
	require.Equal(t, trace.SpanID{9}.String(), rec.ParentID)
	require.Equal(t, "internal", rec.Kind)
	require.Equal(t, "OK", rec.Status)
	require.Equal(t, 1000.0, rec.DurationMs)
	require.Equal(t, "units", rec.Attributes[AttrScreen])
	require.Equal(t, int64(3), rec.Attributes[AttrRowCount])
	require.Len(t, rec.Events, 1)
	require.Equal(t, EventStaleFetch, rec.Events[0].Name)
	require.Equal(t, int64(2), rec.Events[0].Attributes[AttrTicket])
}

func TestNewSpanRecord_NoParentNoAttrs(t *testing.T) {
	rec := NewSpanRecord(tracetest.SpanStub{Name: "root"}.Snapshot())
	require.Empty(t, rec.ParentID)
	require.Nil(t, rec.Attributes)
	require.Equal(t, "UNSET", rec.Status)
}
