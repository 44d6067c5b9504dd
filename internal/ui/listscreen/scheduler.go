package listscreen

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/restodesk/internal/listview"
)

// debounceMsg fires timer id of the scheduler that issued it.
type debounceMsg struct {
	sched *tickScheduler
	id    int
}

// tickScheduler runs debounce timers through the Bubble Tea loop: each
// Schedule queues a tea.Tick and the callback runs inside Update when the
// tick arrives, so pipeline state is only touched from Update.
type tickScheduler struct {
	next   int
	timers map[int]func()
	queued []tea.Cmd
}

func newTickScheduler() *tickScheduler {
	return &tickScheduler{timers: map[int]func(){}}
}

// Schedule implements listview.Scheduler.
func (s *tickScheduler) Schedule(delay time.Duration, fn func()) listview.CancelFunc {
	s.next++
	id := s.next
	s.timers[id] = fn
	s.queued = append(s.queued, tea.Tick(delay, func(time.Time) tea.Msg {
		return debounceMsg{sched: s, id: id}
	}))
	return func() { delete(s.timers, id) }
}

// Cmd drains the ticks queued since the last call.
func (s *tickScheduler) Cmd() tea.Cmd {
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

// Fire runs timer id unless it was cancelled.
func (s *tickScheduler) Fire(id int) {
	fn, ok := s.timers[id]
	if !ok {
		return
	}
	delete(s.timers, id)
	fn()
}

// Pending returns the number of live timers.
func (s *tickScheduler) Pending() int {
	return len(s.timers)
}
