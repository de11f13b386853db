// Package errs defines the error shapes returned to API clients.
//
// Everything that is not a validation rejection (malformed bodies, unknown
// routes, failed dependencies) is rendered from an HTTPError by the global
// error handler, so clients always see the same JSON structure.
package errs
