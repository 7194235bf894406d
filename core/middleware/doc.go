// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - Auth: API key validation. Swagger and metrics paths are left public.
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     storing it in the request locals and the response headers for tracing.
package middleware
