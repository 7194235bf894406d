// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments (development vs production)
// and integrates with the Fiber web framework.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID (request id) from a Fiber context and attaches it to the
// log entry, so that all logs of a request can be correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json, console, or auto (console when stdout is a terminal, via go-isatty)
//
// The terminal editor draws on stdout, so it logs to a file created with NewFile.
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
