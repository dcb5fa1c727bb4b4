// Package pkg provides shared utilities for the jh71xx peripheral HAL.
//
// This package contains common functionality used across the peripheral
// packages, including:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel error types for bus and transfer errors
//   - Component identifiers for log filtering
//
// The package is designed to have zero external dependencies, relying
// only on the Go standard library.
//
// # Logging
//
// The logging subsystem wraps [log/slog] with HAL-specific context:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogInfo(pkg.ComponentI2C, "master configured", "speed", "fast")
//
// # Errors
//
// Common bus errors are defined as sentinel values:
//
//	if errors.Is(err, pkg.ErrNoAcknowledge) {
//	    // Target did not respond
//	}
package pkg
