// Package cli implements the trading-post command line front end.
//
// Global options bind config.Config (flags, environment variables and an optional
// .env file); the sub-commands `user`, `buy` and `sell` call the matching
// client operation and print the JSON response indented by two spaces.
package cli
