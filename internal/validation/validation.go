// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules (like
// required fields or email formats) defined in struct tags
// and turns the result into an ordered list of findings that
// a gate can inspect before business logic runs.
package validation
