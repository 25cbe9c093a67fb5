// Package config loads, merges and validates the phonebook configuration.
//
// Sources are applied in this order, later non-zero fields winning:
//  1. environment variables
//  2. command-line flags
//  3. a .json or .toml config file
//
// Remaining zero fields are filled with defaults. [GetServerConfig] serves
// the REST API and [GetClientConfig] the terminal client.
package config
