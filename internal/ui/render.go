package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/kochi/internal/fleet"
)

// StatusSummary is one overview card: a status with its count and share.
type StatusSummary struct {
	Status  fleet.Status
	Count   int
	Percent int
}

// RenderState is the style-free content of the dashboard. Every render pass
// derives it from the store; nothing in it is kept between passes.
type RenderState struct {
	Total     int
	Summaries []StatusSummary // declared status order
	Filter    fleet.Filter
	Visible   []fleet.Vehicle
	NoResults bool
	Cursor    string // ID of the vehicle under the cursor, empty when none
}

// Summary returns the overview entry for status.
func (s RenderState) Summary(status fleet.Status) StatusSummary {
	for _, sum := range s.Summaries {
		if sum.Status == status {
			return sum
		}
	}
	return StatusSummary{Status: status}
}

// RenderState queries the store and describes what the display shows.
func (m Model) RenderState() RenderState {
	counts := m.store.CountsByStatus()
	total := m.store.Len()

	state := RenderState{
		Total:   total,
		Filter:  m.filter,
		Visible: m.store.Filtered(m.filter),
	}
	for _, st := range fleet.Statuses() {
		state.Summaries = append(state.Summaries, StatusSummary{
			Status:  st,
			Count:   counts[st],
			Percent: fleet.Percent(counts[st], total),
		})
	}
	state.NoResults = len(state.Visible) == 0
	if m.cursor >= 0 && m.cursor < len(state.Visible) {
		state.Cursor = state.Visible[m.cursor].ID
	}
	return state
}

// refresh re-reads the store and rebuilds the header targets and the grid.
// It runs after every filter change, status change, cursor move and resize.
func (m *Model) refresh() {
	if m.store == nil {
		return
	}
	visible := m.visibleCount()
	if m.cursor >= visible {
		m.cursor = visible - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	state := m.RenderState()
	header, headerTargets := m.renderHeader(state)
	m.headerTargets = headerTargets
	m.gridTop = lipgloss.Height(header)

	content, gridTargets := m.renderGrid(state)
	m.gridTargets = gridTargets

	m.grid.Width = m.width
	m.grid.Height = max(1, m.height-m.gridTop-footerLines)
	m.grid.SetContent(content)
	m.scrollToCursor()
}

// scrollToCursor keeps the cursor card inside the grid viewport.
func (m *Model) scrollToCursor() {
	if m.perRow <= 0 || m.cardHeight <= 0 {
		return
	}
	top := (m.cursor / m.perRow) * m.cardHeight
	bottom := top + m.cardHeight
	switch {
	case top < m.grid.YOffset:
		m.grid.SetYOffset(top)
	case bottom > m.grid.YOffset+m.grid.Height:
		m.grid.SetYOffset(bottom - m.grid.Height)
	}
}

// renderMain renders header, grid and footer.
func (m Model) renderMain() string {
	state := m.RenderState()
	header, _ := m.renderHeader(state)

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(m.grid.View())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader renders the title bar, overview cards and filter bar, and
// records a click target for every overview card and filter tab.
func (m Model) renderHeader(state RenderState) (string, []clickTarget) {
	styles := m.theme.Styles()
	var lines []string
	var targets []clickTarget

	title := styles.Logo.Render("kochi") + "  " +
		styles.Text.Render("Fleet status") + "  " +
		styles.MutedText.Render(fmt.Sprintf("%d trains", state.Total))
	lines = append(lines, m.fill(styles.Header).Render(title), "")

	overview, cardTargets := m.renderOverview(state, len(lines))
	lines = append(lines, overview, "")
	targets = append(targets, cardTargets...)

	bar, tabTargets := m.renderFilterBar(state, lipgloss.Height(strings.Join(lines, "\n")))
	lines = append(lines, bar, "")
	targets = append(targets, tabTargets...)

	return strings.Join(lines, "\n"), targets
}

// renderOverview renders one card per status with count and percentage.
// Clicking a card filters by its status.
func (m Model) renderOverview(state RenderState, line int) (string, []clickTarget) {
	styles := m.theme.Styles()
	n := len(state.Summaries)
	width := overviewMinWidth
	if m.width > 0 && n > 0 {
		// Subtract border columns and gaps before sharing the row.
		if w := (m.width-(n-1)*overviewGap)/n - 2; w > width {
			width = w
		}
	}

	var cards []string
	var targets []clickTarget
	x := 0
	for i, sum := range state.Summaries {
		color := styles.StatusColor(sum.Status)
		body := lipgloss.NewStyle().Foreground(color).Bold(true).Render(sum.Status.Label()) + "\n" +
			styles.Text.Bold(true).Render(fmt.Sprintf("%d", sum.Count)) + "  " +
			styles.MutedText.Render(fmt.Sprintf("%d%%", sum.Percent))
		card := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color).
			Padding(0, 1).
			Width(width).
			Render(body)

		cardWidth := lipgloss.Width(card)
		targets = append(targets, clickTarget{
			Line:   line,
			Height: lipgloss.Height(card),
			StartX: x,
			EndX:   x + cardWidth,
			Kind:   targetFilter,
			Filter: fleet.FilterFor(sum.Status),
		})
		cards = append(cards, card)
		x += cardWidth
		if i < n-1 {
			cards = append(cards, strings.Repeat(" ", overviewGap))
			x += overviewGap
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...), targets
}

// renderFilterBar renders the All tab plus one tab per status. Exactly one
// tab, the active filter, is highlighted.
func (m Model) renderFilterBar(state RenderState, line int) (string, []clickTarget) {
	styles := m.theme.Styles()
	var parts []string
	var targets []clickTarget
	x := 0
	for i, f := range fleet.Filters() {
		count := state.Total
		accent := lipgloss.Color(m.theme.Accent)
		if st, ok := f.Status(); ok {
			count = state.Summary(st).Count
			accent = styles.StatusColor(st)
		}
		tab := styles.Tab(f == state.Filter, accent).Render(fmt.Sprintf("%s %d", f.Label(), count))
		w := lipgloss.Width(tab)
		targets = append(targets, clickTarget{
			Line:   line,
			Height: 1,
			StartX: x,
			EndX:   x + w,
			Kind:   targetFilter,
			Filter: f,
		})
		parts = append(parts, tab)
		x += w
		if i < len(fleet.Filters())-1 {
			parts = append(parts, " ")
			x++
		}
	}
	return strings.Join(parts, ""), targets
}

// renderGrid lays vehicle cards out in rows that fit the terminal width, or
// the no-results message when the filter matches nothing. Targets use line
// numbers within the grid content.
func (m *Model) renderGrid(state RenderState) (string, []clickTarget) {
	styles := m.theme.Styles()

	if state.NoResults {
		m.perRow = 0
		m.cardHeight = 0
		msg := styles.MutedText.Render("No trains match this filter")
		if m.width > 0 {
			msg = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, msg)
		}
		return "\n" + msg, nil
	}

	var cards []string
	for _, v := range state.Visible {
		cards = append(cards, m.renderCard(v, v.ID == state.Cursor))
	}
	cardWidth := lipgloss.Width(cards[0])
	m.cardHeight = lipgloss.Height(cards[0])
	m.perRow = 1
	if m.width > 0 {
		m.perRow = max(1, (m.width+cardGap)/(cardWidth+cardGap))
	}

	var rows []string
	var targets []clickTarget
	for start := 0; start < len(cards); start += m.perRow {
		end := min(start+m.perRow, len(cards))
		rowTop := len(rows) * m.cardHeight

		var parts []string
		for i := start; i < end; i++ {
			col := i - start
			x0 := col * (cardWidth + cardGap)
			id := state.Visible[i].ID

			// Controls first so they win over the card body in hitTest.
			for k, st := range fleet.Statuses() {
				cx := x0 + 2 + k*(controlWidth+1)
				targets = append(targets, clickTarget{
					Line:      rowTop + controlLine,
					Height:    1,
					StartX:    cx,
					EndX:      cx + controlWidth,
					Kind:      targetControl,
					VehicleID: id,
					Status:    st,
				})
			}
			targets = append(targets, clickTarget{
				Line:      rowTop,
				Height:    m.cardHeight,
				StartX:    x0,
				EndX:      x0 + cardWidth,
				Kind:      targetCard,
				VehicleID: id,
			})

			parts = append(parts, cards[i])
			if i < end-1 {
				parts = append(parts, strings.Repeat(" ", cardGap))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return strings.Join(rows, "\n"), targets
}

// renderCard renders one vehicle: its number, a status badge, and one control
// per status with the current one filled.
func (m Model) renderCard(v fleet.Vehicle, selected bool) string {
	styles := m.theme.Styles()

	name := styles.Text.Bold(true).Render("Train " + v.ID)
	border := lipgloss.Color(m.theme.Border)
	if selected {
		name = styles.AccentText.Bold(true).Render("Train " + v.ID)
		border = lipgloss.Color(m.theme.BorderFocus)
	}

	controls := make([]string, 0, len(fleet.Statuses()))
	for _, st := range fleet.Statuses() {
		controls = append(controls, styles.Control(st, st == v.Status).Render(strings.ToUpper(statusKeys[st])))
	}

	body := name + "\n" +
		styles.StatusBadge(v.Status).Render(v.Status.Label()) + "\n" +
		strings.Join(controls, " ")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(cardContentWidth + 2).
		Render(body)
}

// renderFooter shows the last error, or the short key help.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	content := m.help.View(m.keys)
	if m.lastErr != nil {
		content = styles.DangerText.Render("✗ " + m.lastErr.Error())
	}
	return m.fill(styles.Footer).Render(content)
}

// fill stretches a bar style across the terminal width when it is known.
func (m Model) fill(style lipgloss.Style) lipgloss.Style {
	if m.width > 0 {
		return style.Width(m.width)
	}
	return style
}
