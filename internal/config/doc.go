// Package config loads, normalizes, and validates annig configuration.
//
// Values come from a TOML file (the --config flag, ~/.config/annig/config.toml,
// or annig.toml in the working directory, in that order) layered over built-in
// defaults, then from environment variables such as ANNI_REPO and
// MUSICBRAINZ_BASE_URL. A .env file in the working directory is read before the
// environment is applied. Paths are expanded to absolute form during
// normalization so callers never deal with "~".
package config
