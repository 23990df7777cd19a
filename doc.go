// Package congsec is the account security and audit core of the
// congregation management client: session issuance and validation,
// login-attempt lockout, registration with email confirmation,
// resend/reset throttling, and an append-only audit trail.
//
// The package is an in-process library. Its boundary is the collaborator
// contracts it consumes (a durable two-key blob store and a mail
// dispatcher) and the Engine operations the UI layers call. There is no
// network surface here.
//
// # Architecture boundaries
//
// congsec is the public surface. It exposes [Engine], [Builder], [Config],
// and the record value types. Persistence mechanics live in the records
// package, session encoding in the session package, hashing in password.
// The UI never sees a blob key or a raw session token.
//
// # What this package must NOT do
//
//   - Render anything, or know that tabs, panels, and chat screens exist.
//   - Mutate chat, program, or designation collections beyond carrying
//     them through a merged write untouched.
//   - Let an error escape an operation without a sentinel the caller can
//     match with errors.Is, or a structured result where the contract is
//     a user-facing message.
package congsec
