package listview

import (
	"sort"
	"time"
)

type ledger struct {
	ID       int
	Name     string
	LedgerNo string
	Balance  *float64
}

func balance(f float64) *float64 { return &f }

var ledgerFields = []Field[ledger]{
	{Name: "Id", Get: func(l ledger) Value { return Int(int64(l.ID)) }},
	{Name: "Name", Get: func(l ledger) Value { return String(l.Name) }},
	{Name: "LedgerNo", Get: func(l ledger) Value { return String(l.LedgerNo) }},
	{Name: "Balance", Get: func(l ledger) Value {
		if l.Balance == nil {
			return Null
		}
		return Number(*l.Balance)
	}},
}

func field(name string) Field[ledger] {
	f, ok := FieldByName(ledgerFields, name)
	if !ok {
		panic("unknown test field " + name)
	}
	return f
}

func names(rows []ledger) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func ids(rows []ledger) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func newLedgerPipeline(pageSize int) *Pipeline[ledger, int] {
	p, err := New(Config[ledger, int]{
		Name:        "ledgers",
		Key:         func(l ledger) int { return l.ID },
		Fields:      ledgerFields,
		Searchable:  []string{"Name", "LedgerNo"},
		DefaultSort: SortKey{Field: "Name"},
		PageSize:    pageSize,
	})
	if err != nil {
		panic(err)
	}
	return p
}

// manualScheduler is a virtual clock for debouncer tests.
type manualScheduler struct {
	now    time.Duration
	timers []*manualTimer
}

type manualTimer struct {
	at        time.Duration
	fn        func()
	cancelled bool
	fired     bool
}

func (s *manualScheduler) Schedule(delay time.Duration, fn func()) CancelFunc {
	t := &manualTimer{at: s.now + delay, fn: fn}
	s.timers = append(s.timers, t)
	return func() { t.cancelled = true }
}

func (s *manualScheduler) AdvanceTo(at time.Duration) {
	due := make([]*manualTimer, 0, len(s.timers))
	for _, t := range s.timers {
		if !t.cancelled && !t.fired && t.at <= at {
			due = append(due, t)
		}
	}
	sort.SliceStable(due, func(i, j int) bool { return due[i].at < due[j].at })
	for _, t := range due {
		if t.cancelled {
			continue
		}
		s.now = t.at
		t.fired = true
		t.fn()
	}
	s.now = at
}

func (s *manualScheduler) live() int {
	n := 0
	for _, t := range s.timers {
		if !t.cancelled && !t.fired {
			n++
		}
	}
	return n
}
