// Package password hashes and verifies account passwords with Argon2id.
//
// Hashes are serialized in PHC string format
// ($argon2id$v=19$m=...,t=...,p=...$salt$hash), so every parameter needed
// for verification travels inside the stored value and parameter upgrades
// never break old records.
package password
