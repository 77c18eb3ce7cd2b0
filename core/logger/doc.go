// Package logger provides a structured logging facility based on Zap.
//
// The debug level selects Zap's development configuration (ISO8601 timestamps,
// caller info); every other level uses the production configuration. The
// console format colors levels and drops stack traces.
//
// # Context Awareness
//
// WithRayID attaches the request's RayID from a Fiber context, and
// WithSelection attaches the product and item ids a gifts resolution runs for,
// so every log line of a request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
