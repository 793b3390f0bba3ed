// Package server holds the HTTP server configuration.
//
// The start command reads the listen address and API key from here. The API key is
// enforced by the auth middleware.
package server
