// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//
// Transport-level concerns with stock implementations (CORS, security
// headers, panic recovery) use Fiber's builtin middleware and are wired in
// the start command.
package middleware
