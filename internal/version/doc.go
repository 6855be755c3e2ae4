// Package version exposes build metadata for alarm-notify.
//
// Version, Commit and BuildTime are injected via ldflags. Full is printed by
// the version subcommand; UserAgent identifies webhook requests.
package version
