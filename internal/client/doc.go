// Package client implements the interactive client application runtime.
//
// It wires the portal adapters, the session provider, client services, the
// terminal UI, and the background cache refresh job into a single process
// lifecycle.
package client
