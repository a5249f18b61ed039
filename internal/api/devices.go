package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mstrand/trackpoint-core/internal/device"
)

// handleRegisterDevice registers a new tracker device.
//
// Responds 201 with the stored device wrapped in a confirmation envelope.
// Validation failures surface as 400 with the reason in the message.
func (s *Server) handleRegisterDevice(w http.ResponseWriter, r *http.Request) {
	var req device.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	dev, err := s.registry.Register(r.Context(), &req)
	if err != nil {
		if errors.Is(err, device.ErrInvalidDevice) {
			writeError(w, http.StatusBadRequest, ErrCodeValidation, err.Error())
			return
		}
		if errors.Is(err, device.ErrDeviceExists) {
			writeConflict(w, "device already registered")
			return
		}
		writeInternalError(w, "failed to register device")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Device registered",
		"device":  dev,
	})
}

// handleListDevices returns registered devices as a bare JSON array.
//
// Query parameters:
//   - userId: filter to devices owned by this user; absent means no filter
func (s *Server) handleListDevices(w http.ResponseWriter, r *http.Request) {
	devices, err := s.registry.List(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		writeInternalError(w, "failed to list devices")
		return
	}

	writeJSON(w, http.StatusOK, devices)
}

// handleUpdateDeviceStatus sets the status of a device.
//
// Updating an unknown device id is not an error: the response is the same
// success envelope, so clients can fire-and-forget status changes.
func (s *Server) handleUpdateDeviceStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if err := s.registry.UpdateStatus(r.Context(), id, req.Status); err != nil {
		writeInternalError(w, "failed to update device status")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
