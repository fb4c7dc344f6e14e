package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/kochi/internal/fleet"
)

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Activity   key.Binding
	Escape     key.Binding

	// Filters
	FilterAll    key.Binding
	FilterStatus []key.Binding // one per fleet.Statuses(), keys "1".."4"

	// Cursor
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Status changes for the vehicle under the cursor
	SetStatus map[fleet.Status]key.Binding
}

// statusKeys are the single-letter shortcuts that reassign the cursor vehicle.
var statusKeys = map[fleet.Status]string{
	fleet.StatusService:     "s",
	fleet.StatusStandby:     "b",
	fleet.StatusWashing:     "w",
	fleet.StatusMaintenance: "m",
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	k := keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Activity: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Activity log"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close overlay"),
		),

		FilterAll: key.NewBinding(
			key.WithKeys("0", "a", "A"),
			key.WithHelp("0/a", "Show all"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Previous row"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Next row"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("left", "Previous train"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("right", "Next train"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "First train"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Last train"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "Scroll down"),
		),

		SetStatus: make(map[fleet.Status]key.Binding),
	}

	for i, st := range fleet.Statuses() {
		digit := string(rune('1' + i))
		k.FilterStatus = append(k.FilterStatus, key.NewBinding(
			key.WithKeys(digit),
			key.WithHelp(digit, "Show "+st.Label()),
		))
		letter := statusKeys[st]
		k.SetStatus[st] = key.NewBinding(
			key.WithKeys(letter),
			key.WithHelp(letter, "Set "+st.Label()),
		)
	}
	return k
}

// filterForKey resolves a filter key press. Digits 1-4 follow the declared
// status order; 0, a and A select all.
func (k keyMap) filterForKey(msg tea.KeyMsg) (fleet.Filter, bool) {
	if key.Matches(msg, k.FilterAll) {
		return fleet.FilterAll, true
	}
	statuses := fleet.Statuses()
	for i, binding := range k.FilterStatus {
		if key.Matches(msg, binding) {
			return fleet.FilterFor(statuses[i]), true
		}
	}
	return "", false
}

// statusForKey resolves a status-change key press.
func (k keyMap) statusForKey(msg tea.KeyMsg) (fleet.Status, bool) {
	for _, st := range fleet.Statuses() {
		if key.Matches(msg, k.SetStatus[st]) {
			return st, true
		}
	}
	return "", false
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "Filter")),
		k.FilterAll,
		key.NewBinding(key.WithKeys("s", "b", "w", "m"), key.WithHelp("s/b/w/m", "Set status")),
		k.Help,
		k.Quit,
	}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	statusBindings := make([]key.Binding, 0, len(k.SetStatus))
	for _, st := range fleet.Statuses() {
		statusBindings = append(statusBindings, k.SetStatus[st])
	}
	filters := append([]key.Binding{k.FilterAll}, k.FilterStatus...)
	return [][]key.Binding{
		filters,
		{k.Up, k.Down, k.Left, k.Right, k.Top, k.Bottom, k.PageUp, k.PageDown},
		statusBindings,
		{k.Activity, k.CycleTheme, k.Help, k.Escape, k.Quit},
	}
}
