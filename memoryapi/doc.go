// Package memoryapi is a typed client for the Alphahuman Memory API.
//
// Includes:
//   - MemoryItem: a namespaced key/content/metadata record.
//   - Request/response envelopes for ingest, read, delete.
//   - Client: one POST round trip per operation, bearer auth, no retries.
//
// Invariant: the client forwards requests as given; filter semantics
// (e.g. delete with multiple of key/keys/delete_all) are decided server-side.
package memoryapi
