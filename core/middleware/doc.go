// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation. Disabled when no key is configured; public
//     prefixes (health, metrics, swagger) bypass it.
//   - rayid: assigns every request a RayID, stored in the context locals and
//     echoed in the X-Ray-ID response header for tracing.
//
// Both are registered globally in the start command, rayid first.
package middleware
