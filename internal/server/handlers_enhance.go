package server

import (
	"net/http"

	"github.com/jonathan/career-agent/internal/types"
)

// handleEnhanceResume runs one enhancement pass over a stored resume and
// persists the result. Re-enhancing replaces the previous result.
func (s *Server) handleEnhanceResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	resume, err := s.store.GetResume(r.Context(), id)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to get resume")
		s.errorResponse(w, http.StatusInternalServerError, "failed to get resume")
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "resume not found")
		return
	}

	result, err := s.engine.Enhance(resume)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	enhancementID, err := s.store.SaveEnhancement(r.Context(), id, result)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to save enhancement")
		s.errorResponse(w, http.StatusInternalServerError, "failed to save enhancement")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"id":     enhancementID,
		"result": result,
	})
}

func (s *Server) handleGetEnhancement(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	result, err := s.store.GetEnhancementByResume(r.Context(), id)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to get enhancement")
		s.errorResponse(w, http.StatusInternalServerError, "failed to get enhancement")
		return
	}
	if result == nil {
		s.errorResponse(w, http.StatusNotFound, "enhancement not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleApplySuggestion flips the applied flag on a suggestion. The
// suggestion stays listed and the synthesized resume is unaffected.
func (s *Server) handleApplySuggestion(w http.ResponseWriter, r *http.Request) {
	s.mutateSuggestion(w, r, (*types.EnhancementResult).ApplySuggestion)
}

// handleRejectSuggestion removes a suggestion from the list entirely.
func (s *Server) handleRejectSuggestion(w http.ResponseWriter, r *http.Request) {
	s.mutateSuggestion(w, r, (*types.EnhancementResult).RejectSuggestion)
}

func (s *Server) mutateSuggestion(w http.ResponseWriter, r *http.Request, mutate func(*types.EnhancementResult, string) bool) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}
	sid := r.PathValue("sid")

	result, err := s.store.GetEnhancement(r.Context(), id)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to get enhancement")
		s.errorResponse(w, http.StatusInternalServerError, "failed to get enhancement")
		return
	}
	if result == nil {
		s.errorResponse(w, http.StatusNotFound, "enhancement not found")
		return
	}

	if !mutate(result, sid) {
		s.errorResponse(w, http.StatusNotFound, "suggestion not found")
		return
	}

	if err := s.store.UpdateEnhancement(r.Context(), id, result); err != nil {
		s.log.Error().Err(err).Msg("failed to update enhancement")
		s.errorResponse(w, http.StatusInternalServerError, "failed to update enhancement")
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}
