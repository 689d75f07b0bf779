// Package config loads the hilfsbuch configuration.
// Values come from the embedded defaults, the user's config file and
// HILFSBUCH_* environment variables, in that order of precedence.
package config
