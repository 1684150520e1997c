// Package config loads the joshify configuration file and applies
// environment overrides.
//
// Configuration lives in ~/.config/joshify/config.toml and covers asset
// resolution (local asset directory vs. CDN base URL), the analytics
// database location, and logging. Every field has a usable default and a
// missing config file is not an error. JOSHIFY_* environment variables
// take precedence over the file; that is how the local-assets vs. CDN
// flavor is selected without editing config.
package config
