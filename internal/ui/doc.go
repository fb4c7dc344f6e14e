// Package ui provides the terminal dashboard for kochi.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model is the view controller: it owns the
// active filter, the cursor and the rendered output, and holds a pointer to
// the fleet.Store it was given. It never keeps fleet data between renders;
// every refresh asks the store again.
//
// # Package Structure
//
//   - model.go: Model, Update loop, SetFilter, RequestStatusChange, Run
//   - render.go: RenderState, overview cards, filter bar, vehicle grid, footer
//   - targets.go: click targets recorded during rendering and the hit test
//   - keys.go: key bindings (filters 1-4, 0/a, status letters, navigation)
//   - help.go, activity.go: overlays
//   - summary.go: table output for --summary
//   - theme.go, layout.go: colors and geometry
//
// # Event Flow
//
//  1. A key or mouse message reaches Update
//  2. Update resolves it to SetFilter or RequestStatusChange
//  3. Those call the store, then refresh() rebuilds header targets and grid
//  4. View composes the header, the scrolled grid and the footer
//
// # Controls
//
// Rendering does not encode behavior. Each filter tab, overview card,
// vehicle card and status control is recorded as a clickTarget carrying
// its vehicle ID, status or filter. A single mouse handler hit-tests the
// click and dispatches on the target's data.
//
// # Display States
//
// The grid shows either vehicle cards or the "No trains match this filter"
// message, never both. RenderState exposes the same information without
// styling so tests can assert on it.
package ui
