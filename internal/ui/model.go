package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/kochi/internal/fleet"
	"github.com/five82/kochi/internal/prefs"
)

// Options configures the UI.
type Options struct {
	Store     *fleet.Store
	Logger    *zap.Logger
	ThemeName string
	PrefsPath string // empty uses prefs.DefaultPath()
	LogFile   string // shown in the activity overlay; empty when logging is off
}

// Model is the view controller for the fleet dashboard. It owns the active
// filter and the rendered output; the fleet itself stays in the store and is
// re-read on every refresh.
type Model struct {
	// Configuration
	store     *fleet.Store
	logger    *zap.Logger
	keys      keyMap
	help      help.Model
	prefsPath string
	logFile   string

	// UI state
	theme  Theme
	filter fleet.Filter
	cursor int // index into the visible vehicles
	width  int
	height int
	ready  bool

	// Rendered grid and the click targets recorded while rendering it
	grid          viewport.Model
	gridTop       int
	perRow        int
	cardHeight    int
	headerTargets []clickTarget
	gridTargets   []clickTarget

	// Overlays
	showHelp     bool
	showActivity bool
	activity     []string
	activityErr  error

	lastErr error
}

// New creates the dashboard model with the filter set to all.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		store:     opts.Store,
		logger:    logger.Named("ui"),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		prefsPath: prefsPath,
		logFile:   opts.LogFile,
		theme:     GetTheme(themeName),
		filter:    fleet.FilterAll,
		grid:      viewport.New(0, 0),
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		cmd := m.handleMouse(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.refresh()
		return m, nil

	case activityMsg:
		m.activity = msg.lines
		m.activityErr = msg.err
		return m, nil
	}

	return m, nil
}

// Filter returns the active filter.
func (m Model) Filter() fleet.Filter {
	return m.filter
}

// Err returns the error shown in the footer, if any.
func (m Model) Err() error {
	return m.lastErr
}

// SetFilter changes the active filter and re-renders the vehicle list.
// Values outside all plus the status enumeration are rejected and leave the
// current filter in place.
func (m *Model) SetFilter(f fleet.Filter) error {
	if !f.Valid() {
		err := fmt.Errorf("filter %q: %w", f, fleet.ErrInvalidArgument)
		m.fail("filter rejected", err)
		return err
	}
	if f != m.filter {
		m.logger.Debug("filter changed", zap.String("from", string(m.filter)), zap.String("to", string(f)))
	}
	m.filter = f
	m.lastErr = nil
	m.cursor = 0
	m.grid.GotoTop()
	m.refresh()
	return nil
}

// RequestStatusChange reassigns a vehicle and re-renders counts and list,
// since the vehicle may enter or leave the current filter.
func (m *Model) RequestStatusChange(id string, status fleet.Status) error {
	prev, _ := m.store.Status(id)
	if err := m.store.SetStatus(id, status); err != nil {
		m.fail("status change rejected", err, zap.String("id", id), zap.String("status", string(status)))
		return err
	}
	m.logger.Info("status changed",
		zap.String("id", id),
		zap.String("from", string(prev)),
		zap.String("to", string(status)),
	)
	m.lastErr = nil
	m.refresh()
	return nil
}

func (m *Model) fail(msg string, err error, fields ...zap.Field) {
	m.lastErr = err
	m.logger.Warn(msg, append(fields, zap.Error(err))...)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Any key closes an overlay.
	if m.showHelp || m.showActivity {
		m.showHelp = false
		m.showActivity = false
		return m, nil
	}

	if f, ok := m.keys.filterForKey(msg); ok {
		_ = m.SetFilter(f)
		return m, nil
	}
	if st, ok := m.keys.statusForKey(msg); ok {
		if v, ok := m.cursorVehicle(); ok {
			_ = m.RequestStatusChange(v.ID, st)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Activity):
		m.showActivity = true
		return m, loadActivityCmd(m.logFile)
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
	case key.Matches(msg, m.keys.Escape):
		m.lastErr = nil
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-m.perRow)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.perRow)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Top):
		m.moveCursor(-m.cursor)
	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(m.visibleCount())
	case key.Matches(msg, m.keys.PageUp):
		m.grid.SetYOffset(m.grid.YOffset - m.grid.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.grid.SetYOffset(m.grid.YOffset + m.grid.Height)
	}
	return m, nil
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Warn("save prefs failed", zap.Error(err))
	}
	m.refresh()
}

// handleMouse routes a click through the targets recorded by the last
// render. Wheel events scroll the grid.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.grid.SetYOffset(m.grid.YOffset - wheelStep)
		return nil
	case tea.MouseButtonWheelDown:
		m.grid.SetYOffset(m.grid.YOffset + wheelStep)
		return nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if m.showHelp || m.showActivity {
		m.showHelp = false
		m.showActivity = false
		return nil
	}

	target, ok := m.hitTest(msg.X, msg.Y)
	if !ok {
		return nil
	}
	m.dispatch(target)
	return nil
}

// dispatch performs the action a click target carries.
func (m *Model) dispatch(t clickTarget) {
	switch t.Kind {
	case targetFilter:
		_ = m.SetFilter(t.Filter)
	case targetCard:
		m.selectVehicle(t.VehicleID)
	case targetControl:
		m.selectVehicle(t.VehicleID)
		_ = m.RequestStatusChange(t.VehicleID, t.Status)
	}
}

func (m *Model) selectVehicle(id string) {
	for i, v := range m.store.Filtered(m.filter) {
		if v.ID == id {
			m.cursor = i
			m.refresh()
			return
		}
	}
}

func (m *Model) moveCursor(delta int) {
	if delta == 0 {
		return
	}
	m.cursor += delta
	m.refresh()
}

func (m Model) visibleCount() int {
	return len(m.store.Filtered(m.filter))
}

// cursorVehicle returns the vehicle under the cursor in the current view.
func (m Model) cursorVehicle() (fleet.Vehicle, bool) {
	visible := m.store.Filtered(m.filter)
	if m.cursor < 0 || m.cursor >= len(visible) {
		return fleet.Vehicle{}, false
	}
	return visible[m.cursor], true
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showActivity {
		return m.renderActivity()
	}
	return m.renderMain()
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a fleet store")
	}
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
