package device

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Repository defines the interface for device persistence operations.
// This abstraction allows for different implementations (SQLite, mock, etc.)
// and enables unit testing without database dependencies.
type Repository interface {
	// Insert persists a new device record.
	// Returns ErrDeviceExists if the id is already taken.
	Insert(ctx context.Context, device *Device) error

	// GetByID retrieves a device by its unique identifier.
	// Returns ErrDeviceNotFound if the device does not exist.
	GetByID(ctx context.Context, id string) (*Device, error)

	// List retrieves all devices.
	List(ctx context.Context) ([]Device, error)

	// ListByUser retrieves all devices whose userId matches exactly.
	ListByUser(ctx context.Context, userID string) ([]Device, error)

	// UpdateStatus overwrites the status of the device with the given id
	// and reports how many rows were affected. Zero is not an error.
	UpdateStatus(ctx context.Context, id, status string) (int64, error)
}

// SQLiteRepository implements Repository using SQLite.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite-backed repository.
// The db parameter should be an open SQLite connection.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const deviceColumns = "id, user_id, name, imei, status, last_seen, latitude, longitude, notes, created_at"

// Insert persists a new device record.
func (r *SQLiteRepository) Insert(ctx context.Context, device *Device) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO devices (`+deviceColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		device.ID,
		device.UserID,
		device.Name,
		device.IMEI,
		device.Status,
		nullableString(device.LastSeen),
		nullableFloat(device.Latitude),
		nullableFloat(device.Longitude),
		nullableString(device.Notes),
		device.CreatedAt,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrDeviceExists
		}
		return fmt.Errorf("inserting device: %w", err)
	}
	return nil
}

// GetByID retrieves a device by its unique identifier.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*Device, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+deviceColumns+" FROM devices WHERE id = ?", id)

	device, err := scanDevice(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDeviceNotFound
		}
		return nil, fmt.Errorf("querying device by id: %w", err)
	}
	return device, nil
}

// List retrieves all devices, newest first.
func (r *SQLiteRepository) List(ctx context.Context) ([]Device, error) {
	return r.queryDevices(ctx,
		"SELECT "+deviceColumns+" FROM devices ORDER BY created_at DESC")
}

// ListByUser retrieves all devices owned by the given user, newest first.
func (r *SQLiteRepository) ListByUser(ctx context.Context, userID string) ([]Device, error) {
	return r.queryDevices(ctx,
		"SELECT "+deviceColumns+" FROM devices WHERE user_id = ? ORDER BY created_at DESC",
		userID)
}

// UpdateStatus overwrites the status field of the matching device.
// Returns the number of rows affected; zero rows means no device had that id.
func (r *SQLiteRepository) UpdateStatus(ctx context.Context, id, status string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE devices SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return 0, fmt.Errorf("updating device status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking rows affected: %w", err)
	}
	return affected, nil
}

// queryDevices executes a query and returns a slice of devices.
func (r *SQLiteRepository) queryDevices(ctx context.Context, query string, args ...any) ([]Device, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying devices: %w", err)
	}
	defer rows.Close()

	devices := []Device{}
	for rows.Next() {
		device, err := scanDevice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning device: %w", err)
		}
		devices = append(devices, *device)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating devices: %w", err)
	}

	return devices, nil
}

// rowScanner is an interface that sql.Row and sql.Rows both implement.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanDevice scans a row or rows result into a Device.
func scanDevice(scanner rowScanner) (*Device, error) {
	var d Device
	var lastSeen, notes sql.NullString
	var latitude, longitude sql.NullFloat64

	err := scanner.Scan(
		&d.ID,
		&d.UserID,
		&d.Name,
		&d.IMEI,
		&d.Status,
		&lastSeen,
		&latitude,
		&longitude,
		&notes,
		&d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lastSeen.Valid {
		d.LastSeen = &lastSeen.String
	}
	if latitude.Valid {
		d.Latitude = &latitude.Float64
	}
	if longitude.Valid {
		d.Longitude = &longitude.Float64
	}
	if notes.Valid {
		d.Notes = &notes.String
	}

	return &d, nil
}

// nullableString returns a sql.NullString for optional string pointers.
func nullableString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// nullableFloat returns a sql.NullFloat64 for optional float pointers.
func nullableFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

// isUniqueConstraintError checks if an error is a SQLite unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "unique constraint")
}
