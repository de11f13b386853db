// Package handler is the HTTP layer behind the router.
//
// Payload-carrying endpoints run after the validation stage and the gate,
// so a handler only ever sees a request that produced no findings. It
// calls the service layer and writes the response.
package handler
