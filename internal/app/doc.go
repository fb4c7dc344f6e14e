// Package app is the composition root for kochi.
//
// # Overview
//
// Run wires configuration, logging, the fleet store and the UI together:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read ~/.config/kochi/config.toml
//	       ├─────> applyOverrides()     Command-line flags win
//	       ├─────> logging.New()        zap logger (no-op without log_file)
//	       ├─────> NewFleet()           Build and initialize fleet.Store
//	       ├─────> prefs.Load()         Saved theme, unless config sets one
//	       └─────> ui.Run()             Dashboard (blocks)
//	                or ui.Summary()     Table on stdout for --summary
//
// # Ownership
//
// The store is created here and passed into the UI explicitly. There is no
// package-level fleet; tests build their own store with fleet.New.
//
// # Error Handling
//
// Configuration, logger and fleet initialization errors are returned wrapped
// with context and end the process with status 1. Errors raised while the
// dashboard runs (unknown vehicle, rejected filter) stay inside the UI and
// are shown in its footer.
package app
