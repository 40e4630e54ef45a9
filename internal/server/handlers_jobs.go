package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/jonathan/career-agent/internal/jobs"
	"github.com/jonathan/career-agent/internal/types"
)

// jobView decorates a posting with its display strings.
type jobView struct {
	types.Job
	SalaryDisplay string `json:"salary_display"`
	PostedDisplay string `json:"posted_display"`
}

func (s *Server) jobViews(list []types.Job) []jobView {
	now := time.Now()
	out := make([]jobView, len(list))
	for i, job := range list {
		out[i] = jobView{
			Job:           job,
			SalaryDisplay: jobs.FormatSalary(job.Salary),
			PostedDisplay: jobs.FormatPostedDate(job.PostedAt, now),
		}
	}
	return out
}

// handleListJobs filters the catalog by the query parameters. Radius
// filtering uses the saved user location when one exists.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	filters, err := filtersFromQuery(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var loc *types.UserLocation
	if saved, perm, err := s.store.GetLocation(r.Context()); err == nil && perm == types.PermissionGranted {
		loc = saved
	}

	matched := s.jobs.Search(filters, loc)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"jobs":  s.jobViews(matched),
		"total": len(matched),
	})
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	job, ok := s.jobs.Get(r.PathValue("id"))
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "job not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, s.jobViews([]types.Job{*job})[0])
}

// filtersFromQuery builds a filter specification from the request query.
// Absent parameters leave their predicates unspecified.
func filtersFromQuery(r *http.Request) (*types.JobFilters, error) {
	q := r.URL.Query()
	filters := &types.JobFilters{Query: q.Get("q")}

	if v := q.Get("radius_km"); v != "" {
		radius, err := strconv.ParseFloat(v, 64)
		if err != nil || radius <= 0 {
			return nil, fmt.Errorf("invalid radius_km")
		}
		filters.RadiusKm = &radius
	}
	for _, v := range q["employment_type"] {
		filters.EmploymentTypes = append(filters.EmploymentTypes, types.EmploymentType(v))
	}
	for _, v := range q["experience_level"] {
		filters.ExperienceLevels = append(filters.ExperienceLevels, types.ExperienceLevel(v))
	}
	if v := q.Get("salary_min"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid salary_min")
		}
		filters.SalaryMin = &n
	}
	if v := q.Get("salary_max"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid salary_max")
		}
		filters.SalaryMax = &n
	}
	filters.Skills = q["skill"]
	if v := q.Get("remote"); v != "" {
		remote, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid remote")
		}
		filters.IsRemote = &remote
	}
	filters.PostedWithin = types.PostedWithin(q.Get("posted_within"))

	return filters, nil
}
