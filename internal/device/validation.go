package device

import (
	"fmt"
	"strings"
)

// Validation limits. Generous for tracker hardware, tight enough to stop
// oversized payloads reaching the store.
const (
	maxNameLength  = 100
	maxIMEILength  = 32
	maxNotesLength = 1024
)

// ValidateRegistration checks a registration request for the required fields
// and size limits. Returns an error wrapping ErrInvalidDevice describing the
// first failure found.
func ValidateRegistration(req *RegisterRequest) error {
	if req == nil {
		return ErrInvalidDevice
	}

	if strings.TrimSpace(req.DeviceName) == "" {
		return fmt.Errorf("%w: device name is required", ErrInvalidDevice)
	}
	if len(req.DeviceName) > maxNameLength {
		return fmt.Errorf("%w: device name exceeds %d characters", ErrInvalidDevice, maxNameLength)
	}

	if strings.TrimSpace(req.IMEI) == "" {
		return fmt.Errorf("%w: IMEI is required", ErrInvalidDevice)
	}
	if len(req.IMEI) > maxIMEILength {
		return fmt.Errorf("%w: IMEI exceeds %d characters", ErrInvalidDevice, maxIMEILength)
	}

	if req.Notes != nil && len(*req.Notes) > maxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidDevice, maxNotesLength)
	}

	return nil
}
