package ui

// Vehicle card geometry.
const (
	// cardContentWidth fits four 3-cell status controls separated by spaces.
	cardContentWidth = 15

	// cardGap is the number of blank columns between cards in a row.
	cardGap = 1

	// controlWidth is the rendered width of one status control (" S ").
	controlWidth = 3

	// controlLine is the line of a card, counting the top border, that
	// holds the status controls.
	controlLine = 3
)

// Overview card geometry.
const (
	// overviewMinWidth keeps "Maintenance" and "25  100%" on one line each.
	overviewMinWidth = 16

	overviewGap = 1
)

const (
	// wheelStep is how many lines one mouse wheel notch scrolls the grid.
	wheelStep = 3

	// activityLines is how much of the log tail the activity overlay reads.
	activityLines = 200

	// footerLines is the height of the footer below the grid.
	footerLines = 1
)
