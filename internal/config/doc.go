// Package config provides configuration loading, merging, and validation
// facilities for the ptp-tester client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. A .env file (values are exported into the process environment)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Defaults are applied after merging. The main entry point is
// [GetClientConfig].
package config
