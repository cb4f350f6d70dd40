// Package config provides configuration loading, merging, and validation
// facilities for the server.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win over later ones for non-zero fields):
//  1. Command-line flags that were passed explicitly
//  2. ENV_SERVER_* environment variables
//  3. Built-in defaults
//
// The main entry point is [GetStructuredConfig]; flags are declared with
// [RegisterFlags].
package config
