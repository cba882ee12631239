// Package models defines the student record, the client payload and the
// declarative validation rules applied to incoming payloads.
//
// # Validation
//
// Rules live as struct tags on StudentPayload and are evaluated with
// go-playground/validator. Every violated rule is reported, so a form can
// surface all problems in one round trip. Two custom rules are registered:
//
//   - personname: letters, spaces and hyphens only (names)
//   - exactdigits=N: exactly N digits (phone, national id number)
//
// Payloads must be normalized (trimmed, email lowercased) before validation.
package models
