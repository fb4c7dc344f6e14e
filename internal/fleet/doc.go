// Package fleet holds the in-memory train fleet for kochi.
//
// # Overview
//
// A Store maps a fixed set of vehicle identifiers to one of four statuses.
// The identifier set is created by Initialize and never grows or shrinks
// afterwards; SetStatus only moves vehicles between statuses.
//
//	Store.Initialize(25, Statuses())
//	     ↓
//	"001" → service
//	"002" → washing
//	 ...
//	"025" → standby
//
// # Core Types
//
// Status:
//   - Closed enumeration: service, standby, washing, maintenance
//   - Statuses() returns the declared order used by filter tabs and key bindings
//
// Filter:
//   - FilterAll or one status
//   - Matches() is the single visibility rule shared by Store.Filtered and the UI
//
// Counts:
//   - Derived on every call to CountsByStatus, never cached
//   - Every status key is present; values sum to Store.Len()
//
// # Errors
//
// Two sentinel errors cover every failure:
//
//   - ErrInvalidArgument: bad Initialize parameters, or an out-of-enumeration
//     status or filter reaching ParseStatus, ParseFilter, or SetStatus
//   - ErrNotFound: SetStatus for an identifier that is not in the fleet
//
// Both are programming errors rather than transient conditions, so nothing
// retries them. A failing call leaves the store untouched.
//
// # Concurrency
//
// Store has no lock. The bubbletea program delivers every message on one
// goroutine and that goroutine is the store's only reader and writer.
package fleet
