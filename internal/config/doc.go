// Package config provides configuration loading, merging, and validation
// facilities for the client.
//
// Configuration is assembled from multiple sources, each one overriding the
// non-zero fields of the sources before it:
//  1. Environment variables
//  2. Command-line flags, which override env
//  3. JSON config file, which overrides flags and env
//
// A field left zero in every source gets its default in [ClientConfig]
// before validation.
//
// The main entry point is [GetClientConfig]; [GetStructuredConfig] exposes
// the raw merged view.
package config
