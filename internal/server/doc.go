// Package server wires and runs the application's HTTP server.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown once SIGTERM, SIGINT or SIGQUIT is received.
package server
