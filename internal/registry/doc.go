// Package registry implements the activity roster store and application service.
//
// Store abstracts roster storage so the in-memory implementation can be swapped
// for a persistent backend without touching the HTTP handlers. MemoryStore is
// the only implementation: a mutex-guarded map seeded once at startup.
// Service layers metrics and the live event feed on top of a Store.
package registry
