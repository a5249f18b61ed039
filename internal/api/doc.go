// Package api implements the HTTP REST API for Trackpoint Core.
//
// This package provides:
//   - REST endpoints for device registration, listing, and status updates
//   - User account registration and credential verification endpoints
//   - Middleware stack (request ID, logging, recovery, CORS, body limits)
//
// # Architecture
//
// The API server sits between client applications (web dashboard, mobile
// apps) and the device registry + user directory. Handlers decode the wire
// format, delegate to the domain packages, and translate their sentinel
// errors into HTTP status codes. Route shapes and JSON field names are
// pinned to what deployed clients already send.
//
// # Lifecycle
//
//	server, err := api.New(deps)
//	server.Start(ctx)
//	defer server.Close()
//
// Start launches the listener in a background goroutine; Close drains
// in-flight requests before returning.
package api
