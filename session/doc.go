// Package session persists and validates the single active device
// session of the congregation security engine.
//
// The session is stored as an HS256-signed compact token under its own
// blob key. Signing makes the blob tamper-evident: any edit to the
// persisted bytes fails verification and the store treats the key as
// holding no session at all, clearing it on the way out. Expiry is not
// enforced by the codec: the engine distinguishes an expired session
// from a forged one, so the deadline check stays with the caller.
package session
