// Package config loads, normalizes, and validates swstats configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// SWAPI_BASE_URL and SWSTATS_LOG_LEVEL. The Config type centralizes the
// retrieval, logging, and report knobs the CLI needs.
//
// Always obtain settings through this package so commands receive trimmed
// values, canonical formats, and clear validation errors.
package config
