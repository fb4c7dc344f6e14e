package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/kochi/internal/fleet"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header, footer, cards
	SurfaceAlt string // Inactive tabs and controls

	// Border colors
	Border      string // Default border
	BorderFocus string // Cursor card and active tab

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Warning string
	Danger  string

	// Status colors, keyed by fleet.Status
	StatusColors map[fleet.Status]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		statusColors: t.StatusColors,
		background:   t.Background,
		surfaceAlt:   t.SurfaceAlt,
		muted:        t.Muted,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Header lipgloss.Style
	Footer lipgloss.Style
	Logo   lipgloss.Style

	statusColors map[fleet.Status]string
	background   string
	surfaceAlt   string
	muted        string
}

// StatusColor returns the theme color for a status, falling back to muted.
func (s Styles) StatusColor(status fleet.Status) lipgloss.Color {
	color := s.statusColors[status]
	if color == "" {
		color = s.muted
	}
	return lipgloss.Color(color)
}

// StatusBadge returns a filled chip style for the given status.
func (s Styles) StatusBadge(status fleet.Status) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.background)).
		Background(s.StatusColor(status)).
		Bold(true).
		Padding(0, 1)
}

// Control returns the style for a status control on a vehicle card. The
// active control is filled; the rest are outlined in the status color.
func (s Styles) Control(status fleet.Status, active bool) lipgloss.Style {
	if active {
		return s.StatusBadge(status)
	}
	return lipgloss.NewStyle().
		Foreground(s.StatusColor(status)).
		Background(lipgloss.Color(s.surfaceAlt)).
		Padding(0, 1)
}

// Tab returns the style for a filter tab.
func (s Styles) Tab(active bool, accent lipgloss.Color) lipgloss.Style {
	if active {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(s.background)).
			Background(accent).
			Bold(true).
			Padding(0, 1)
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.muted)).
		Background(lipgloss.Color(s.surfaceAlt)).
		Padding(0, 1)
}

// Theme definitions

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a theme by name, falling back to Nightfox.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return append([]string(nil), themeOrder...)
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		SurfaceAlt: "#212e3f", // bg2

		Border:      "#39506d", // bg4
		BorderFocus: "#719cd6", // blue

		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Faint:   "#71839b", // fg3
		Accent:  "#719cd6", // blue
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red

		StatusColors: map[fleet.Status]string{
			fleet.StatusService:     "#81b29a", // green
			fleet.StatusStandby:     "#dbc074", // yellow
			fleet.StatusWashing:     "#63cdcf", // cyan
			fleet.StatusMaintenance: "#c94f6d", // red
		},
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",

		Background: "#16161D", // sumiInk0
		Surface:    "#1F1F28", // sumiInk3
		SurfaceAlt: "#2A2A37", // sumiInk4

		Border:      "#54546D", // sumiInk6
		BorderFocus: "#7E9CD8", // crystalBlue

		Text:    "#DCD7BA", // fujiWhite
		Muted:   "#C8C093", // oldWhite
		Faint:   "#727169", // fujiGray
		Accent:  "#7E9CD8", // crystalBlue
		Warning: "#E6C384", // carpYellow
		Danger:  "#E46876", // waveRed

		StatusColors: map[fleet.Status]string{
			fleet.StatusService:     "#98BB6C", // springGreen
			fleet.StatusStandby:     "#E6C384", // carpYellow
			fleet.StatusWashing:     "#7FB4CA", // springBlue
			fleet.StatusMaintenance: "#E46876", // waveRed
		},
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#1e293b", // slate-800

		Border:      "#334155", // slate-700
		BorderFocus: "#38bdf8", // sky-400

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500

		StatusColors: map[fleet.Status]string{
			fleet.StatusService:     "#22c55e", // green-500
			fleet.StatusStandby:     "#f59e0b", // amber-500
			fleet.StatusWashing:     "#06b6d4", // cyan-500
			fleet.StatusMaintenance: "#dc2626", // red-600
		},
	}
}
