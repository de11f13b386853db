// Package service contains the business logic.
//
// It receives payloads that already passed the validation gate from the
// handler layer and performs the trip and inquiry operations.
package service
