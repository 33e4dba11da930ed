// Package feed broadcasts roster changes to websocket clients.
//
// The Hub is a single-goroutine actor fed by a command channel; each client
// gets a writer goroutine with a bounded send buffer, and clients that cannot
// keep up are evicted rather than allowed to block the hub.
package feed
