// Package config provides configuration loading, merging, and validation
// facilities for the relay.
//
// Configuration is assembled from multiple sources; a value found in an
// earlier source is kept:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
