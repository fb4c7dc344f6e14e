package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/five82/kochi/internal/fleet"
)

// Summary renders the aggregate counts as a table for non-interactive use.
func Summary(store *fleet.Store, themeName string) string {
	theme := GetTheme(themeName)
	styles := theme.Styles()

	counts := store.CountsByStatus()
	total := store.Len()
	statuses := fleet.Statuses()

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Border))).
		Headers("Status", "Trains", "Share")

	for _, st := range statuses {
		t.Row(st.Label(), fmt.Sprintf("%d", counts[st]), fmt.Sprintf("%d%%", fleet.Percent(counts[st], total)))
	}
	t.Row("Total", fmt.Sprintf("%d", total), "")

	t.StyleFunc(func(row, col int) lipgloss.Style {
		cell := lipgloss.NewStyle().Padding(0, 1)
		switch {
		case row == table.HeaderRow:
			return cell.Inherit(styles.AccentText).Bold(true)
		case row < len(statuses) && col == 0:
			return cell.Foreground(styles.StatusColor(statuses[row])).Bold(true)
		case row == len(statuses):
			return cell.Inherit(styles.Text).Bold(true)
		case col > 0:
			return cell.Inherit(styles.Text).Align(lipgloss.Right)
		}
		return cell
	})

	return t.Render()
}
