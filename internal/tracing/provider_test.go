package tracing

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/restodesk/internal/config"
)

func TestNewProvider_DisabledIsNoop(t *testing.T) {
	p, err := NewProvider(config.TracingConfig{}, "")
	require.NoError(t, err)
	require.False(t, p.Enabled())

	_, span := p.Tracer().Start(context.Background(), "x")
	require.False(t, span.SpanContext().IsValid())
	span.End()
	require.NoError(t, p.Shutdown(context.Background()))
}

func TestNewProvider_FileExporterWritesSpans(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traces", "out.jsonl")
	p, err := NewProvider(config.TracingConfig{
		Enabled:    true,
		Exporter:   "file",
		FilePath:   path,
		SampleRate: 1.0,
	}, "restodesk-test")
	require.NoError(t, err)
	require.True(t, p.Enabled())

	ctx, span := StartRequest(context.Background(), p.Tracer(), "list", "ledger", "GET")
	require.True(t, span.SpanContext().IsValid())
	_, child := p.Tracer().Start(ctx, "decode")
	child.End()
	End(span, errors.New("boom"))

	require.NoError(t, p.Shutdown(context.Background()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	byName := map[string]SpanRecord{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var rec SpanRecord
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		byName[rec.Name] = rec
	}
	require.Len(t, byName, 2)

	req := byName["api.list"]
	require.Equal(t, "client", req.Kind)
	require.Equal(t, "ERROR", req.Status)
	require.Equal(t, "boom", req.StatusMsg)
	require.Equal(t, "ledger", req.Attributes[AttrResource])
	require.Equal(t, "GET", req.Attributes[AttrHTTPMethod])
	require.NotEmpty(t, req.Events, "RecordError adds an exception event")

	require.Equal(t, req.SpanID, byName["decode"].ParentID)
	require.Equal(t, req.TraceID, byName["decode"].TraceID)
}

func TestNewProvider_FileExporterNeedsPath(t *testing.T) {
	_, err := NewProvider(config.TracingConfig{Enabled: true, Exporter: "file"}, "")
	require.ErrorContains(t, err, "file_path")
}

func TestNewProvider_UnknownExporter(t *testing.T) {
	_, err := NewProvider(config.TracingConfig{Enabled: true, Exporter: "zipkin"}, "")
	require.ErrorContains(t, err, "unsupported exporter")
}

func TestNewProvider_NoneExporterStillRecords(t *testing.T) {
	p, err := NewProvider(config.TracingConfig{Enabled: true, Exporter: "none"}, "")
	require.NoError(t, err)
	_, span := p.Tracer().Start(context.Background(), "x")
	require.True(t, span.SpanContext().IsValid())
	span.End()
	require.NoError(t, p.Shutdown(context.Background()))
}
