package ui

import "github.com/five82/kochi/internal/fleet"

type targetKind int

const (
	targetFilter  targetKind = iota // filter tab or overview card
	targetCard                      // vehicle card body, moves the cursor
	targetControl                   // status control on a vehicle card
)

// clickTarget maps a rectangular region of rendered output to the data an
// action needs. Rendering records targets; handleMouse reads the data back
// out of the one it hits, so nothing about the action is baked into the
// rendered text.
type clickTarget struct {
	Line   int // first line; absolute for the header, grid-relative for the grid
	Height int
	StartX int // inclusive
	EndX   int // exclusive
	Kind   targetKind

	VehicleID string
	Status    fleet.Status
	Filter    fleet.Filter
}

func (t clickTarget) contains(x, line int) bool {
	return line >= t.Line && line < t.Line+t.Height && x >= t.StartX && x < t.EndX
}

// hitTest finds the target under screen position (x, y). Grid targets are
// offset by the grid's position and scroll.
func (m Model) hitTest(x, y int) (clickTarget, bool) {
	if y < m.gridTop {
		return firstHit(m.headerTargets, x, y)
	}
	if y >= m.gridTop+m.grid.Height {
		return clickTarget{}, false
	}
	return firstHit(m.gridTargets, x, y-m.gridTop+m.grid.YOffset)
}

func firstHit(targets []clickTarget, x, line int) (clickTarget, bool) {
	for _, t := range targets {
		if t.contains(x, line) {
			return t, true
		}
	}
	return clickTarget{}, false
}
