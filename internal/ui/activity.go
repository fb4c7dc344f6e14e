package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/kochi/internal/logtail"
)

// activityMsg carries the formatted tail of the log file.
type activityMsg struct {
	lines []string
	err   error
}

// loadActivityCmd reads the log tail off the update loop.
func loadActivityCmd(path string) tea.Cmd {
	return func() tea.Msg {
		raw, err := logtail.Read(path, activityLines)
		if err != nil {
			return activityMsg{err: err}
		}
		lines := make([]string, 0, len(raw))
		for _, line := range raw {
			if strings.TrimSpace(line) == "" {
				continue
			}
			lines = append(lines, logtail.Parse(line).Format())
		}
		return activityMsg{lines: lines}
	}
}

// renderActivity shows the most recent log records that fit on screen.
func (m Model) renderActivity() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Activity"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	switch {
	case strings.TrimSpace(m.logFile) == "":
		b.WriteString(styles.MutedText.Render("Logging is off. Set log_file in config.toml or pass --log-file."))
	case m.activityErr != nil:
		b.WriteString(styles.DangerText.Render(m.activityErr.Error()))
	case len(m.activity) == 0:
		b.WriteString(styles.MutedText.Render("Nothing logged yet."))
	default:
		// Border, padding, title and rule take 9 lines.
		room := max(1, m.height-9)
		lines := m.activity
		if len(lines) > room {
			lines = lines[len(lines)-room:]
		}
		for i, line := range lines {
			style := styles.Text
			switch {
			case strings.Contains(line, " WARN "):
				style = styles.WarningText
			case strings.Contains(line, " ERROR "):
				style = styles.DangerText
			}
			b.WriteString(style.Render(line))
			if i < len(lines)-1 {
				b.WriteString("\n")
			}
		}
	}

	width := 72
	if m.width > 0 && m.width-4 < width {
		width = max(20, m.width-4)
	}
	return m.renderModal(b.String(), width)
}
