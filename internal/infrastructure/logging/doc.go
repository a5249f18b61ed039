// Package logging provides structured logging for Trackpoint Core.
//
// It wraps the standard library's log/slog with service-wide defaults:
// configurable level, JSON or text output, and default attributes
// (service name, version) attached to every record.
//
// Components receive a *Logger and typically scope it:
//
//	log := logger.With("component", "device")
//	log.Info("device registered", "device_id", id)
package logging
