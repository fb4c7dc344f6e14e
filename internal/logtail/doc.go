// Package logtail reads the tail of kochi's own log file for the in-app
// activity overlay.
//
// Read uses a ring buffer of maxLines entries, so memory stays at
// O(maxLines) however large the file grows. Parse and Entry.Format turn the
// JSON records written by internal/logging back into one-line summaries:
//
//	09:15:02 INFO status changed id=001 status=maintenance
//
// A missing file is not an error; it simply means nothing has been logged yet.
package logtail
