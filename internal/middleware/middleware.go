// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request logging, tracing, CORS, panic recovery, and
// the validation stage + gate that every API route is mounted behind.
package middleware
