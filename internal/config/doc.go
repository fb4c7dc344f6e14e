// Package config handles loading and parsing the kochi configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/kochi/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are zero or blank, use defaults for them
//
// # Default Values
//
//   - trains: 25
//   - id_width: 3 (identifiers "001".."025")
//   - log_file: empty, logging disabled
//   - log_level: info
//   - theme: empty, the saved preference decides
//
// # TOML Format
//
//	trains = 25
//	id_width = 3
//	log_file = "~/.local/state/kochi/kochi.log"
//	log_level = "debug"
//	theme = "Kanagawa"
//
// Every field is optional. Tilde expansion is performed on log_file.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors and a negative trains value
//
// Command-line flags override whatever Load returns; see cmd/kochi.
package config
