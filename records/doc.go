// Package records implements the durable record store behind the
// congregation security engine.
//
// The whole application state lives in two named blobs: a database blob
// holding the merged record (users, designations, programs, messages,
// audit logs, chat flag) and a session blob holding the sole active
// session. Writes are read-modify-merge at top-level JSON field
// granularity, so collections this package does not model survive every
// write untouched.
//
// A malformed database blob decodes as an empty store. Corruption is an
// availability problem for the caller to notice through the audit trail,
// never a hard failure.
package records
