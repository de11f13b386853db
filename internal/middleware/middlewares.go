package middleware

import (
	"github.com/deppfellow/vamoose/internal/server"
)

// Middlewares groups all middleware components used by the HTTP server so
// router setup receives one object instead of many.
type Middlewares struct {
	// Global holds CORS, request logging, recovery, secure headers and the
	// global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer attaches a request-scoped logger.
	ContextEnhancer *ContextEnhancer

	// Tracing installs New Relic transactions and custom attributes.
	Tracing *TracingMiddleware

	// Gate halts requests that carry validation findings.
	Gate *ValidationGate
}

// NewMiddlewares constructs all middleware components from the application
// container. Without a New Relic application, tracing degrades to no-ops.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, s.LoggerService.GetApplication()),
		Gate:            NewValidationGate(s),
	}
}
