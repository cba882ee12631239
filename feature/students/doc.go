// Package students implements the student record manager: validation,
// uniqueness enforcement and persistence for the students table, exposed
// over HTTP.
//
// # Layers
//
//   - Store: owns the table, ids and timestamps; enforces the unique
//     indexes on email and id_number as the backstop for races.
//   - Service: normalizes and validates payloads, runs the uniqueness
//     pre-check (excluding the record itself on update) and delegates to
//     the store.
//   - Handler: binds the service to Fiber routes and maps the error
//     taxonomy to status codes (400 validation, 404 missing, 409 conflict,
//     500 store failure).
//
// The read-then-write uniqueness pre-check is inherently racy under
// concurrent identical submissions; the losing write is rejected by the
// unique index and still reported as a conflict, never as a generic
// failure.
package students
