package listscreen

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/restodesk/internal/export"
	"github.com/zjrosen/restodesk/internal/log"
	"github.com/zjrosen/restodesk/internal/masters"
	"github.com/zjrosen/restodesk/internal/tracing"
	"github.com/zjrosen/restodesk/internal/ui/recordform"
)

// fetch issues a ticketed full list request. Results are applied in the
// order they resolve.
func (m Model[T]) fetch() tea.Cmd {
	source := m.pipeline.Source()
	ticket := source.BeginFetch()
	backend, screen := m.cfg.Backend, m.cfg.Def.Name
	ctx, span := m.cfg.Tracer.Start(m.cfg.Context, tracing.SpanFetch,
		trace.WithAttributes(
			attribute.String(tracing.AttrScreen, screen),
			attribute.Int64(tracing.AttrTicket, int64(ticket)),
		))
	log.Debug(log.CatUI, "fetching", "screen", screen, "ticket", ticket)
	return func() tea.Msg {
		records, err := backend.List(ctx)
		return fetchedMsg[T]{source: source, ticket: ticket, span: span, records: records, err: err}
	}
}

// completeFetch applies msg to the source and closes its span. A result
// that lands after a newer one was applied is marked on the span.
func (m Model[T]) completeFetch(msg fetchedMsg[T]) {
	source := m.pipeline.Source()
	stale := msg.err == nil && source.Stale(msg.ticket)
	replaced := source.CompleteFetch(msg.ticket, msg.records, msg.err)
	if msg.span == nil {
		return
	}
	if stale {
		msg.span.AddEvent(tracing.EventStaleFetch, trace.WithAttributes(
			attribute.Int64(tracing.AttrTicket, int64(msg.ticket)),
			attribute.Bool(tracing.AttrDiscarded, !replaced),
		))
	}
	msg.span.SetAttributes(attribute.Int(tracing.AttrRowCount, len(msg.records)))
	tracing.End(msg.span, msg.err)
}

func (m Model[T]) save(sub recordform.SubmitMsg[T]) tea.Cmd {
	ctx, backend, screen := m.cfg.Context, m.cfg.Backend, m.cfg.Def.Name
	rec := sub.Record
	if m.cfg.Def.Stamp != nil {
		m.cfg.Def.Stamp(&rec, m.cfg.Session)
	}
	if !sub.Edit {
		return func() tea.Msg {
			created, err := backend.Create(ctx, rec)
			return savedMsg[T]{screen: screen, record: created, err: err}
		}
	}
	id := m.cfg.Def.Key(sub.Before)
	return func() tea.Msg {
		updated, err := backend.Update(ctx, id, rec)
		return savedMsg[T]{screen: screen, record: updated, edit: true, err: err}
	}
}

func (m Model[T]) remove(id masters.ID, label string) tea.Cmd {
	ctx, backend, screen := m.cfg.Context, m.cfg.Backend, m.cfg.Def.Name
	return func() tea.Msg {
		err := backend.Delete(ctx, id)
		return deletedMsg{screen: screen, id: id, label: label, err: err}
	}
}

func (m Model[T]) loadOptions(names []string) tea.Cmd {
	if m.cfg.Lookups == nil || len(names) == 0 {
		return nil
	}
	ctx, lookups, screen := m.cfg.Context, m.cfg.Lookups, m.cfg.Def.Name
	cmds := make([]tea.Cmd, 0, len(names))
	for _, name := range names {
		cmds = append(cmds, func() tea.Msg {
			opts, err := lookups.Options(ctx, name)
			return optionsMsg{screen: screen, name: name, opts: opts, err: err}
		})
	}
	return tea.Batch(cmds...)
}

func (m Model[T]) invalidateLookups() {
	if m.cfg.Lookups == nil || len(m.cfg.Dependents) == 0 {
		return
	}
	m.cfg.Lookups.Invalidate(m.cfg.Context, m.cfg.Dependents...)
}

// exportFiltered writes the filtered, sorted list before pagination.
func (m Model[T]) exportFiltered() tea.Cmd {
	def := m.cfg.Def
	filtered := m.pipeline.Filtered()
	t := export.Table{Headers: def.Headers(), Rows: def.Rows(filtered)}
	dir, format, now := m.cfg.ExportDir, m.cfg.ExportFormat, m.cfg.Now()
	_, span := m.cfg.Tracer.Start(m.cfg.Context, tracing.SpanExport,
		trace.WithAttributes(
			attribute.String(tracing.AttrScreen, def.Name),
			attribute.Int(tracing.AttrRowCount, len(t.Rows)),
		))
	return func() tea.Msg {
		path, err := export.ToFile(dir, def.Name, format, t, now)
		tracing.End(span, err)
		return exportedMsg{screen: def.Name, path: path, rows: len(t.Rows), err: err}
	}
}
