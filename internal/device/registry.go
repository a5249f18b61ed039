package device

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Logger defines the logging interface used by the Registry.
// This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Registry validates and persists device registrations and status updates.
//
// It wraps a Repository and owns the registration policy: required-field
// validation, defaulting, and id generation. All public methods are safe
// for concurrent use; the registry keeps no state between calls.
type Registry struct {
	repo   Repository
	logger Logger
	now    func() time.Time
}

// NewRegistry creates a new device registry backed by the given repository.
func NewRegistry(repo Repository) *Registry {
	return &Registry{
		repo:   repo,
		logger: noopLogger{},
		now:    time.Now,
	}
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger Logger) {
	r.logger = logger
}

// Register validates the request, applies defaults, generates a unique id,
// and persists the device. Returns the stored record.
//
// Defaults: userId falls back to DefaultUserID, status to DefaultStatus,
// createdAt to the current time in RFC3339. A caller-supplied createdAt is
// trusted verbatim. Notes stay null unless provided.
func (r *Registry) Register(ctx context.Context, req *RegisterRequest) (*Device, error) {
	if err := ValidateRegistration(req); err != nil {
		return nil, err
	}

	now := r.now().UTC()

	dev := &Device{
		ID:        NewID(now),
		UserID:    req.UserID,
		Name:      req.DeviceName,
		IMEI:      req.IMEI,
		Status:    req.Status,
		LastSeen:  req.LastSeen,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Notes:     req.Notes,
		CreatedAt: req.CreatedAt,
	}

	if dev.UserID == "" {
		dev.UserID = DefaultUserID
	}
	if dev.Status == "" {
		dev.Status = DefaultStatus
	}
	if dev.CreatedAt == "" {
		dev.CreatedAt = now.Format(time.RFC3339)
	}

	if err := r.repo.Insert(ctx, dev); err != nil {
		return nil, fmt.Errorf("registering device: %w", err)
	}

	r.logger.Info("device registered",
		"device_id", dev.ID,
		"user_id", dev.UserID,
		"imei", maskIMEI(dev.IMEI),
	)

	return dev, nil
}

// List returns all devices, or only those owned by userID when it is
// non-empty. The result is never nil.
func (r *Registry) List(ctx context.Context, userID string) ([]Device, error) {
	if userID != "" {
		devices, err := r.repo.ListByUser(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("listing devices for user: %w", err)
		}
		return devices, nil
	}

	devices, err := r.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing devices: %w", err)
	}
	return devices, nil
}

// UpdateStatus overwrites the status of the device with the given id.
//
// An id that matches no device is still a success: the update affects zero
// records and no not-found condition is surfaced. Existing clients depend on
// this pass-through behaviour.
func (r *Registry) UpdateStatus(ctx context.Context, id, status string) error {
	affected, err := r.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return fmt.Errorf("updating device status: %w", err)
	}

	if affected == 0 {
		r.logger.Debug("status update matched no device", "device_id", id)
	} else {
		r.logger.Info("device status updated", "device_id", id, "status", status)
	}

	return nil
}

// Get retrieves a single device by id.
// Returns ErrDeviceNotFound if no device matches.
func (r *Registry) Get(ctx context.Context, id string) (*Device, error) {
	return r.repo.GetByID(ctx, id)
}

// maskIMEI hides all but the last four characters of an IMEI for logging.
func maskIMEI(imei string) string {
	const visible = 4
	if len(imei) <= visible {
		return imei
	}
	return strings.Repeat("*", len(imei)-visible) + imei[len(imei)-visible:]
}
