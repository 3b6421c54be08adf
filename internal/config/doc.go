// Package config loads, merges and validates configuration for the
// zone-keeper client and the record-store server.
//
// Sources, lowest to highest priority:
//  1. JSON config file (-c / CONFIG)
//  2. Environment variables
//  3. Command-line flags
//
// Entry points are [GetServerConfig] and [GetClientConfig].
package config
