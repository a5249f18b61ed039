package device

import (
	"context"
	"errors"
	"regexp"
	"testing"
)

var idPattern = regexp.MustCompile(`^DEV_\d+_[a-z0-9]+$`)

func TestRegister_AppliesDefaults(t *testing.T) {
	reg := testRegistry(t)
	ctx := context.Background()

	dev, err := reg.Register(ctx, &RegisterRequest{
		DeviceName: "Tracker1",
		IMEI:       "123456789012345",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if !idPattern.MatchString(dev.ID) {
		t.Errorf("ID = %q, want match for %s", dev.ID, idPattern)
	}
	if dev.UserID != DefaultUserID {
		t.Errorf("UserID = %q, want %q", dev.UserID, DefaultUserID)
	}
	if dev.Status != DefaultStatus {
		t.Errorf("Status = %q, want %q", dev.Status, DefaultStatus)
	}
	if dev.CreatedAt == "" {
		t.Error("CreatedAt should be defaulted to registration time")
	}
	if dev.Notes != nil {
		t.Errorf("Notes = %v, want nil", *dev.Notes)
	}

	// The returned record must match what was persisted.
	stored, err := reg.Get(ctx, dev.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if stored.Name != "Tracker1" || stored.IMEI != "123456789012345" {
		t.Errorf("stored device = %+v, want Tracker1/123456789012345", stored)
	}
}

func TestRegister_TrustsCallerValues(t *testing.T) {
	reg := testRegistry(t)
	notes := "fitted under dashboard"

	dev, err := reg.Register(context.Background(), &RegisterRequest{
		DeviceName: "Van 7",
		IMEI:       "490154203237518",
		UserID:     "usr-42",
		Status:     "Dormant",
		Notes:      &notes,
		CreatedAt:  "2025-01-15T09:30:00Z",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if dev.UserID != "usr-42" {
		t.Errorf("UserID = %q, want %q", dev.UserID, "usr-42")
	}
	if dev.Status != "Dormant" {
		t.Errorf("Status = %q, want %q", dev.Status, "Dormant")
	}
	if dev.CreatedAt != "2025-01-15T09:30:00Z" {
		t.Errorf("CreatedAt = %q, want caller value preserved", dev.CreatedAt)
	}
	if dev.Notes == nil || *dev.Notes != notes {
		t.Errorf("Notes = %v, want %q", dev.Notes, notes)
	}
}

func TestRegister_ValidationFailures(t *testing.T) {
	reg := testRegistry(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *RegisterRequest
	}{
		{name: "missing name", req: &RegisterRequest{IMEI: "123456789012345"}},
		{name: "missing imei", req: &RegisterRequest{DeviceName: "Tracker1"}},
		{name: "blank name", req: &RegisterRequest{DeviceName: "   ", IMEI: "123456789012345"}},
		{name: "nil request", req: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := reg.Register(ctx, tt.req); !errors.Is(err, ErrInvalidDevice) {
				t.Errorf("Register() error = %v, want ErrInvalidDevice", err)
			}
		})
	}

	// Nothing may have been persisted by the failed attempts.
	devices, err := reg.List(ctx, "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(devices) != 0 {
		t.Errorf("List() returned %d devices after failed registrations, want 0", len(devices))
	}
}

func TestRegister_IDsAreUnique(t *testing.T) {
	reg := testRegistry(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		dev, err := reg.Register(ctx, &RegisterRequest{
			DeviceName: "Tracker",
			IMEI:       "123456789012345",
		})
		if err != nil {
			t.Fatalf("Register() #%d error = %v", i, err)
		}
		if dev.ID == "" {
			t.Fatalf("Register() #%d produced empty id", i)
		}
		if seen[dev.ID] {
			t.Fatalf("Register() #%d produced duplicate id %q", i, dev.ID)
		}
		seen[dev.ID] = true
	}
}

func TestList_FiltersByUser(t *testing.T) {
	reg := testRegistry(t)
	ctx := context.Background()

	for _, userID := range []string{"usr-a", "usr-a", "usr-b", ""} {
		if _, err := reg.Register(ctx, &RegisterRequest{
			DeviceName: "Tracker",
			IMEI:       "123456789012345",
			UserID:     userID,
		}); err != nil {
			t.Fatalf("Register() error = %v", err)
		}
	}

	all, err := reg.List(ctx, "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 4 {
		t.Errorf("List(all) returned %d devices, want 4", len(all))
	}

	forA, err := reg.List(ctx, "usr-a")
	if err != nil {
		t.Fatalf("List(usr-a) error = %v", err)
	}
	if len(forA) != 2 {
		t.Errorf("List(usr-a) returned %d devices, want 2", len(forA))
	}
	for _, d := range forA {
		if d.UserID != "usr-a" {
			t.Errorf("List(usr-a) included device owned by %q", d.UserID)
		}
	}

	// The unset owner was defaulted, so it is filterable by the placeholder.
	placeholder, err := reg.List(ctx, DefaultUserID)
	if err != nil {
		t.Fatalf("List(placeholder) error = %v", err)
	}
	if len(placeholder) != 1 {
		t.Errorf("List(placeholder) returned %d devices, want 1", len(placeholder))
	}
}

func TestList_EmptyRegistry(t *testing.T) {
	reg := testRegistry(t)

	devices, err := reg.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if devices == nil {
		t.Error("List() should return an empty slice, not nil")
	}
	if len(devices) != 0 {
		t.Errorf("List() returned %d devices, want 0", len(devices))
	}
}

func TestUpdateStatus(t *testing.T) {
	reg := testRegistry(t)
	ctx := context.Background()

	dev, err := reg.Register(ctx, &RegisterRequest{
		DeviceName: "Tracker1",
		IMEI:       "123456789012345",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if err := reg.UpdateStatus(ctx, dev.ID, "Inactive"); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}

	stored, err := reg.Get(ctx, dev.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if stored.Status != "Inactive" {
		t.Errorf("Status = %q, want %q", stored.Status, "Inactive")
	}
}

func TestUpdateStatus_UnknownIDIsSuccess(t *testing.T) {
	reg := testRegistry(t)
	ctx := context.Background()

	// Pass-through semantics: no matching row is still success.
	if err := reg.UpdateStatus(ctx, "DEV_0_nosuchdev", "Inactive"); err != nil {
		t.Fatalf("UpdateStatus() on unknown id error = %v, want nil", err)
	}

	// And nothing was created as a side effect.
	devices, err := reg.List(ctx, "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(devices) != 0 {
		t.Errorf("List() returned %d devices, want 0", len(devices))
	}
}
