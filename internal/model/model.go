// Package model holds the request and response payloads of the API.
//
// Request types validate themselves (validation.Validatable) so the
// validation stage can turn their failures into findings.
package model
