// Package server wires and runs the portal's HTTP transport.
//
// It provides startup, signal handling, and graceful shutdown for the REST
// API server.
package server
