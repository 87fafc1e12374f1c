// Package logx provides leveled logging with environment variable
// configuration and debug formatting for Go values.
//
// Environment Variables:
//   - LOG_LEVEL: Set the minimum log level (TRACE, DEBUG, INFO, WARN, ERROR, OFF)
//   - LOG_FORMAT: Set output format (console, json)
//   - LOG_COLOR: Enable/disable colored output (true/false, default: true)
//   - LOG_CALLER: Enable/disable caller information (true/false, default: true)
//
// Basic Usage:
//
//	logx.Info("Registered %d event types", n)
//	logx.Error("Handler failed: %v", err)
//
// Debug Formatting:
//
//	// Automatic value formatting at DEBUG/TRACE levels
//	logx.Debug("Dispatching: %v", event)
//
//	// Explicit value logging
//	logx.DebugValue("event", event)
//
// Format Examples:
//
//	Console Format (default):
//	LOG_LEVEL=DEBUG go run main.go
//	[2025-06-08 18:57:52] [DEBUG] main.go:64: Dispatching: UserCreated{ID: 123, Name: "John Doe"}
//
//	JSON Format (structured logging for log aggregation):
//	LOG_FORMAT=json LOG_LEVEL=DEBUG go run main.go
//	{"timestamp":"2025-06-08T18:57:52Z","level":"DEBUG","message":"Dispatching: ...","caller":"main.go:64"}
//
// Both a package-level default logger and instance-based loggers are
// supported; the default is configured once from the environment at init.
package logx
