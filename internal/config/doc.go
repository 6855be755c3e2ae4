// Package config defines the runtime settings of alarm-notify and loads them
// from an optional YAML file followed by environment variable overrides.
//
// In Lambda only the environment is used; the YAML file exists for local runs
// of the format, invoke and serve commands.
package config
