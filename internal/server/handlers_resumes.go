package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/career-agent/internal/export"
	"github.com/jonathan/career-agent/internal/types"
	"github.com/jonathan/career-agent/internal/upload"
)

// uploadRequest carries the metadata of one uploaded resume file.
type uploadRequest struct {
	FileName    string `json:"file_name" validate:"required"`
	Size        int64  `json:"size" validate:"required,gt=0"`
	ContentType string `json:"content_type"`
}

// handleUploadResume accepts upload metadata, applies the file acceptance
// rules, and generates and stores the parsed resume.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := upload.ValidateFile(upload.FileMeta{
		Name:        req.FileName,
		Size:        req.Size,
		ContentType: req.ContentType,
	}); err != nil {
		var rej *upload.Rejection
		if errors.As(err, &rej) {
			s.jsonResponse(w, http.StatusUnprocessableEntity, map[string]any{
				"error":      "file rejected",
				"rejections": []upload.Rejection{*rej},
			})
			return
		}
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	resume := s.generator.FromFile(req.FileName)
	id, err := s.store.SaveResume(r.Context(), resume)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to save resume")
		s.errorResponse(w, http.StatusInternalServerError, "failed to save resume")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"id":     id,
		"resume": resume,
	})
}

func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
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
	s.jsonResponse(w, http.StatusOK, resume)
}

func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.errorResponse(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	summaries, err := s.store.ListResumes(r.Context(), limit)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list resumes")
		s.errorResponse(w, http.StatusInternalServerError, "failed to list resumes")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"resumes": summaries})
}

func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := s.store.DeleteResume(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusNotFound, "resume not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleExportResume renders the resume as a styled document. The enhanced
// version is preferred when an enhancement exists. ?format=pdf prints
// through a headless browser; the default is HTML.
func (s *Server) handleExportResume(w http.ResponseWriter, r *http.Request) {
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

	if result, err := s.store.GetEnhancementByResume(r.Context(), id); err == nil && result != nil && result.Enhanced != nil {
		resume = result.Enhanced
	}

	style := styleFromQuery(r)
	html, err := export.HTML(resume, style)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to render resume")
		s.errorResponse(w, http.StatusInternalServerError, "failed to render resume")
		return
	}

	if r.URL.Query().Get("format") == "pdf" {
		pdf, err := export.PDF(r.Context(), html, 0)
		if err != nil {
			s.log.Error().Err(err).Msg("failed to print resume to pdf")
			s.errorResponse(w, http.StatusInternalServerError, "failed to print resume to pdf")
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
		w.WriteHeader(http.StatusOK)
		w.Write(pdf) //nolint:errcheck
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html)) //nolint:errcheck
}

// styleFromQuery assembles an export style from query parameters, falling
// back to the defaults for anything unspecified.
func styleFromQuery(r *http.Request) types.ResumeStyle {
	style := types.DefaultStyle()
	q := r.URL.Query()
	if v := q.Get("template"); v != "" {
		style.Template = types.ResumeTemplate(v)
		style.FontFamily = v
	}
	if v := q.Get("color"); v != "" {
		style.PrimaryColor = v
	}
	if v := q.Get("font"); v != "" {
		style.FontFamily = v
	}
	if v := q.Get("size"); v != "" {
		style.FontSize = v
	}
	if v := q.Get("spacing"); v != "" {
		style.Spacing = v
	}
	return style
}

// pathUUID parses a UUID path segment, writing a 400 on failure.
func (s *Server) pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
