// Package server holds the HTTP server configuration.
//
// The server itself is assembled in the start command; this package only
// owns the configuration section so that core/config can compose it with
// the other partial configurations.
package server
