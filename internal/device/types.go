package device

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Defaults applied during registration.
const (
	// DefaultUserID is the placeholder owner until device-to-user linking
	// is wired up by the client application.
	DefaultUserID = "tempUserId"

	// DefaultStatus is the status assigned to newly registered devices.
	DefaultStatus = "Active"
)

// idSuffixLength is the number of UUID-derived characters appended to
// generated device ids.
const idSuffixLength = 9

// Device represents a registered tracker unit.
//
// JSON field names match the wire format consumed by the existing client
// applications, hence the camelCase tags. CreatedAt and LastSeen are ISO-8601
// strings rather than time.Time: CreatedAt is trusted verbatim from the
// caller when supplied, so the registry never reinterprets it.
type Device struct {
	ID        string   `json:"id"`
	UserID    string   `json:"userId"`
	Name      string   `json:"name"`
	IMEI      string   `json:"imei"`
	Status    string   `json:"status"`
	LastSeen  *string  `json:"lastSeen,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Notes     *string  `json:"notes"`
	CreatedAt string   `json:"createdAt"`
}

// RegisterRequest carries the caller-supplied fields for device registration.
// DeviceName and IMEI are required; everything else is optional and defaulted
// by the registry.
type RegisterRequest struct {
	DeviceName string   `json:"deviceName"`
	IMEI       string   `json:"imei"`
	UserID     string   `json:"userId"`
	Status     string   `json:"status"`
	Notes      *string  `json:"notes"`
	LastSeen   *string  `json:"lastSeen"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	CreatedAt  string   `json:"createdAt"`
}

// NewID generates a device id of the form DEV_<unix-millis>_<suffix>.
//
// The shape (DEV_ prefix, timestamp, alphanumeric suffix) is part of the wire
// contract with existing clients. The suffix is drawn from a UUID instead of
// math/rand so ids remain unique even when many devices register within the
// same millisecond.
func NewID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:idSuffixLength]
	return fmt.Sprintf("DEV_%d_%s", now.UnixMilli(), suffix)
}
