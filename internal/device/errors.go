package device

import "errors"

// Domain errors for the device package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, device.ErrInvalidDevice) {
//	    // handle validation failure
//	}
var (
	// ErrInvalidDevice is returned when a registration request fails validation.
	ErrInvalidDevice = errors.New("device: invalid")

	// ErrDeviceExists is returned when an insert collides with an existing id.
	ErrDeviceExists = errors.New("device: already exists")

	// ErrDeviceNotFound is returned by lookups when no device matches the id.
	// UpdateStatus deliberately does not return it; see Registry.UpdateStatus.
	ErrDeviceNotFound = errors.New("device: not found")
)
