// Package http implements the HTTP transport layer of the server.
//
// A single catch-all route answers every path and method with the
// pre-rendered configuration payload. Cross-cutting concerns such as panic
// recovery, request tracing, access logging and response compression are
// handled by middleware wired in [Handler.Init].
package http
