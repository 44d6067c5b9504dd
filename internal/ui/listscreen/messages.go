package listscreen

import (
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/restodesk/internal/listview"
	"github.com/zjrosen/restodesk/internal/masters"
)

// BackMsg asks the app to return to the screen menu.
type BackMsg struct{}

// SortChangedMsg reports a sort chosen by the user so it can be saved.
type SortChangedMsg struct {
	Screen string
	Sort   listview.SortKey
}

// SavedMsg is published after a record was created, updated or deleted.
type SavedMsg struct {
	Screen string
	ID     masters.ID
	Action string // "created", "updated" or "deleted"
}

// fetchedMsg is matched to the pipeline source that issued it, so a screen
// reopened under the same name ignores its predecessor's results.
type fetchedMsg[T any] struct {
	source  *listview.Source[T, masters.ID]
	ticket  listview.Ticket
	span    trace.Span
	records []T
	err     error
}

type savedMsg[T any] struct {
	screen string
	record T
	edit   bool
	err    error
}

type deletedMsg struct {
	screen string
	id     masters.ID
	label  string
	err    error
}

type optionsMsg struct {
	screen string
	name   string
	opts   []masters.Option
	err    error
}

type exportedMsg struct {
	screen string
	path   string
	rows   int
	err    error
}

// confirmSave and confirmDelete tag the two confirmation dialogs.
type confirmSave struct{}

type confirmDelete struct {
	id    masters.ID
	label string
}
