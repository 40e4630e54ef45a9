package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/career-agent/internal/types"
)

// locationRequest carries a coordinate to record as the user's position.
type locationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	// Denied records a refusal instead of a coordinate.
	Denied bool `json:"denied"`
}

// handleSetLocation records the user's position (or their refusal).
// Reverse geocoding is best-effort; a geocoding failure still stores the
// coordinate.
func (s *Server) handleSetLocation(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Denied {
		if err := s.location.Deny(r.Context()); err != nil {
			s.log.Error().Err(err).Msg("failed to record denial")
			s.errorResponse(w, http.StatusInternalServerError, "failed to record denial")
			return
		}
		s.jsonResponse(w, http.StatusOK, map[string]string{"permission": string(types.PermissionDenied)})
		return
	}

	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	loc, err := s.location.Acquire(r.Context(), *req.Latitude, *req.Longitude)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to save location")
		s.errorResponse(w, http.StatusInternalServerError, "failed to save location")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"location":   loc,
		"permission": types.PermissionGranted,
	})
}

func (s *Server) handleGetLocation(w http.ResponseWriter, r *http.Request) {
	loc, perm, err := s.location.Current(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load location")
		s.errorResponse(w, http.StatusInternalServerError, "failed to load location")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"location":   loc,
		"permission": perm,
	})
}

func (s *Server) handleClearLocation(w http.ResponseWriter, r *http.Request) {
	if err := s.location.Clear(r.Context()); err != nil {
		s.log.Error().Err(err).Msg("failed to clear location")
		s.errorResponse(w, http.StatusInternalServerError, "failed to clear location")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
