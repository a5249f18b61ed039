// Package device implements the tracker device registry.
//
// A Device is a physical tracker unit identified by IMEI and an internally
// generated id. The Registry validates registration requests, applies
// defaults, generates ids, and persists records through a Repository.
// The SQLite repository is the production implementation; the interface
// exists so handlers and tests can substitute their own.
//
// The registry holds no state between calls. Every operation is a single
// round trip to the store and is safe for concurrent use.
package device
