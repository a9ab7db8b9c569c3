// Package config assembles the portal's configuration from environment
// variables, command-line flags, and an optional JSON file.
//
// Sources are merged in that order; with mergo's non-override merge the
// first source to set a field wins, so environment variables take priority
// over flags, and flags over the JSON file.
//
// [GetStructuredConfig] yields the full server configuration;
// [GetClientConfig] derives the validated client-side view from it.
package config
