// Package app contains the root application model: the screen menu, the
// open list screen, and the services shared between them.
package app

import (
	"context"
	"fmt"
	"maps"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/restodesk/internal/config"
	"github.com/zjrosen/restodesk/internal/keys"
	"github.com/zjrosen/restodesk/internal/log"
	"github.com/zjrosen/restodesk/internal/pubsub"
	"github.com/zjrosen/restodesk/internal/screens"
	"github.com/zjrosen/restodesk/internal/ui/listscreen"
	"github.com/zjrosen/restodesk/internal/ui/logoverlay"
	"github.com/zjrosen/restodesk/internal/ui/styles"
	"github.com/zjrosen/restodesk/internal/ui/toaster"
	"github.com/zjrosen/restodesk/internal/watcher"
)

// configChange is published when the config file changes on disk.
type configChange struct {
	Path string
}

type configLoadedMsg struct {
	cfg config.Config
	err error
}

type sortSavedMsg struct {
	screen string
	err    error
}

// Options wires the app.
type Options struct {
	Env        screens.Env
	Registry   *screens.Registry
	ConfigPath string
	// Watch reloads the config when ConfigPath changes.
	Watch bool
	// Debug enables the log overlay (ctrl+x).
	Debug bool
}

// Model is the root application state.
type Model struct {
	env        screens.Env
	registry   *screens.Registry
	configPath string

	entries []screens.Entry
	cursor  int
	active  screens.Screen

	width  int
	height int

	toaster    toaster.Model
	lastChange string

	debug       bool
	logs        logoverlay.Model
	logListener *pubsub.Listener[string]

	watcher        *watcher.Watcher
	changes        *pubsub.Broker[configChange]
	changeListener *pubsub.Listener[configChange]
	cancel         context.CancelFunc
}

// New builds the app. A config watcher that fails to start is logged and
// skipped; the app works without hot reload.
func New(opts Options) Model {
	if opts.Registry == nil {
		opts.Registry = screens.New()
	}
	if opts.Env.Context == nil {
		opts.Env.Context = context.Background()
	}
	ctx, cancel := context.WithCancel(opts.Env.Context)

	m := Model{
		env:        opts.Env,
		registry:   opts.Registry,
		configPath: opts.ConfigPath,
		entries:    opts.Registry.Visible(opts.Env.Config),
		toaster:    toaster.New(),
		debug:      opts.Debug,
		logs:       logoverlay.New(logoverlay.DefaultCapacity),
		changes:    pubsub.NewBroker[configChange](),
		cancel:     cancel,
	}
	m.changeListener = pubsub.NewListener[configChange](ctx, m.changes)
	if opts.Debug {
		m.logListener = log.NewListener(ctx)
	}

	if opts.Watch && opts.ConfigPath != "" {
		w, err := watcher.New(opts.ConfigPath, watcher.DefaultDebounce)
		if err == nil {
			var ch <-chan struct{}
			if ch, err = w.Start(); err == nil {
				m.watcher = w
				go forward(ctx, ch, m.changes, opts.ConfigPath)
			} else {
				_ = w.Stop()
			}
		}
		if err != nil {
			log.Warn(log.CatWatcher, "config watcher disabled", "path", opts.ConfigPath, "error", err)
		}
	}
	return m
}

// forward republishes watcher notifications until ctx ends.
func forward(ctx context.Context, ch <-chan struct{}, broker *pubsub.Broker[configChange], path string) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			broker.Publish(pubsub.UpdatedEvent, configChange{Path: path})
		}
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.changeListener.Listen()}
	if m.logListener != nil {
		cmds = append(cmds, m.logListener.Listen())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.logs = m.logs.SetSize(msg.Width, msg.Height)
		if m.active != nil {
			return m.updateActive(tea.WindowSizeMsg{Width: msg.Width, Height: m.contentHeight()})
		}
		return m, nil

	case log.LogEvent:
		m.logs = m.logs.Append(msg.Payload)
		if m.logListener == nil {
			return m, nil
		}
		return m, m.logListener.Listen()

	case pubsub.Event[configChange]:
		log.Info(log.CatConfig, "config changed on disk", "path", msg.Payload.Path)
		return m, tea.Batch(m.reload(), m.changeListener.Listen())

	case configLoadedMsg:
		return m.applyConfig(msg)

	case sortSavedMsg:
		if msg.err != nil {
			log.ErrorErr(log.CatConfig, "saving sort failed", msg.err, "screen", msg.screen)
			return m.toast("Could not save sort: "+msg.err.Error(), toaster.StyleError)
		}
		return m, nil

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		if m.active != nil {
			return m.updateActive(msg)
		}
		return m, nil

	case logoverlay.CloseMsg:
		return m, nil

	case listscreen.BackMsg:
		m.closeActive()
		return m, nil

	case listscreen.SortChangedMsg:
		return m.saveSort(msg)

	case listscreen.SavedMsg:
		m.lastChange = fmt.Sprintf("%s #%s %s", msg.Screen, msg.ID, msg.Action)
		log.Info(log.CatUI, "record saved", "screen", msg.Screen, "id", msg.ID, "action", msg.Action)
		return m, nil

	case tea.KeyMsg:
		if m.debug && key.Matches(msg, keys.Menu.Logs) {
			m.logs = m.logs.Toggle()
			return m, nil
		}
		if m.logs.Visible() {
			var cmd tea.Cmd
			m.logs, cmd = m.logs.Update(msg)
			return m, cmd
		}
		if m.active == nil {
			return m.updateMenu(msg)
		}

	case tea.MouseMsg:
		if m.active == nil {
			return m.clickMenu(msg)
		}
	}

	if m.active != nil {
		return m.updateActive(msg)
	}
	return m, nil
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.active.Update(msg)
	if s, ok := next.(screens.Screen); ok {
		m.active = s
	}
	return m, cmd
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Menu.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Menu.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Menu.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Menu.Open):
		return m.open(m.cursor)
	case key.Matches(msg, keys.Menu.Reload):
		return m, m.reload()
	}
	return m, nil
}

func (m Model) clickMenu(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	for i := range m.entries {
		if z := zone.Get(menuZone(i)); z != nil && z.InBounds(msg) {
			m.cursor = i
			return m.open(i)
		}
	}
	return m, nil
}

func (m Model) open(i int) (tea.Model, tea.Cmd) {
	if i < 0 || i >= len(m.entries) {
		return m, nil
	}
	e := m.entries[i]
	s, err := e.Open(m.env)
	if err != nil {
		log.Warn(log.CatUI, "cannot open screen", "screen", e.Name, "error", err)
		return m.toast(err.Error(), toaster.StyleWarn)
	}
	m.active = s
	log.Debug(log.CatUI, "screen opened", "screen", e.Name)

	sized, _ := m.active.Update(tea.WindowSizeMsg{Width: m.width, Height: m.contentHeight()})
	if ss, ok := sized.(screens.Screen); ok {
		m.active = ss
	}
	return m, m.active.Init()
}

func (m *Model) closeActive() {
	if m.active == nil {
		return
	}
	m.active.Close()
	m.active = nil
}

func (m Model) reload() tea.Cmd {
	path := m.configPath
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		cfg, err := config.Load(path)
		return configLoadedMsg{cfg: cfg, err: err}
	}
}

// applyConfig swaps in a reloaded config. The open screen keeps its
// settings until it is reopened.
func (m Model) applyConfig(msg configLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		log.ErrorErr(log.CatConfig, "config reload failed", msg.err)
		return m.toast("Config reload failed: "+msg.err.Error(), toaster.StyleError)
	}
	if err := styles.ApplyTheme(styles.ThemeConfig{Preset: msg.cfg.Theme.Preset, Colors: msg.cfg.Theme.Colors}); err != nil {
		log.ErrorErr(log.CatConfig, "theme reload failed", err)
		return m.toast("Theme error: "+err.Error(), toaster.StyleError)
	}
	m.env.Config = msg.cfg
	m.entries = m.registry.Visible(msg.cfg)
	m.cursor = max(min(m.cursor, len(m.entries)-1), 0)
	log.Info(log.CatConfig, "config reloaded", "path", m.configPath)
	return m.toast("Configuration reloaded", toaster.StyleInfo)
}

// saveSort records the new sort in memory and, when a config file is in
// use, on disk.
func (m Model) saveSort(msg listscreen.SortChangedMsg) (Model, tea.Cmd) {
	sort := config.FormatSort(msg.Sort)
	sc := m.env.Config.Screen(msg.Screen)
	sc.Sort = sort
	overrides := make(map[string]config.ScreenConfig, len(m.env.Config.Screens)+1)
	maps.Copy(overrides, m.env.Config.Screens)
	overrides[msg.Screen] = sc
	m.env.Config.Screens = overrides

	if m.configPath == "" {
		return m, nil
	}
	path, cfg := m.configPath, m.env.Config
	return m, func() tea.Msg {
		return sortSavedMsg{screen: msg.Screen, err: config.SaveSort(path, cfg, msg.Screen, sort)}
	}
}

func (m Model) toast(text string, style toaster.Style) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.toaster, cmd = m.toaster.Show(text, style)
	return m, cmd
}

// Config returns the current configuration.
func (m Model) Config() config.Config {
	return m.env.Config
}

// Active returns the open screen name, or "" on the menu.
func (m Model) Active() string {
	if m.active == nil {
		return ""
	}
	return m.active.Name()
}

func (m Model) contentHeight() int {
	if m.env.Config.UI.ShowStatusBar {
		return max(m.height-1, 0)
	}
	return m.height
}

func menuZone(i int) string {
	return fmt.Sprintf("menu-%d", i)
}

// View implements tea.Model.
func (m Model) View() string {
	var view string
	if m.active != nil {
		view = m.active.View()
	} else {
		view = m.menuView()
	}
	if m.env.Config.UI.ShowStatusBar {
		view = lipgloss.JoinVertical(lipgloss.Left, view, m.statusBar())
	}
	if m.toaster.Visible() {
		view = m.toaster.Overlay(view, m.width, m.height)
	}
	if m.debug && m.logs.Visible() {
		view = m.logs.Overlay(view)
	}
	return zone.Scan(view)
}

func (m Model) menuView() string {
	session := m.env.Client.Session()
	lines := make([]string, 0, len(m.entries))
	for i, e := range m.entries {
		prefix := "  "
		title := e.Title
		if i == m.cursor {
			prefix = styles.SelectionIndicatorStyle.Render("> ")
			title = styles.SelectedRowStyle.Render(title)
		}
		line := prefix + title
		if err := e.Available(session); err != nil {
			line = prefix + styles.MutedStyle.Render(e.Title+" ("+err.Error()+")")
		}
		lines = append(lines, zone.Mark(menuZone(i), line))
	}
	if len(lines) == 0 {
		lines = append(lines, styles.MutedStyle.Render("Every screen is hidden by the config"))
	}
	hint := styles.MutedStyle.Render("enter open · ctrl+r reload config · q quit")
	lines = append(lines, "", hint)
	return styles.RenderSection(lines, "Masters", "", max(m.width, 40), true)
}

func (m Model) statusBar() string {
	parts := []string{m.env.Config.Backend.BaseURL}
	s := m.env.Client.Session()
	if s.HotelID != "" {
		parts = append(parts, "hotel "+string(s.HotelID))
	}
	if s.CompanyID != "" {
		parts = append(parts, "company "+string(s.CompanyID)+"/"+string(s.YearID))
	}
	if m.lastChange != "" {
		parts = append(parts, "last: "+m.lastChange)
	}
	return styles.StatusBarStyle.Render(strings.Join(parts, " · "))
}

// Close releases the open screen and the config watcher.
func (m *Model) Close() error {
	m.closeActive()
	m.cancel()
	m.changes.Close()
	if m.watcher != nil {
		return m.watcher.Stop()
	}
	return nil
}
