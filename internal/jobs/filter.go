package jobs

import (
	"strings"
	"time"

	"github.com/jonathan/career-agent/internal/geo"
	"github.com/jonathan/career-agent/internal/types"
)

// postedWithinWindow maps a recency bucket to its lookback window.
var postedWithinWindow = map[types.PostedWithin]time.Duration{
	types.Posted24h: 24 * time.Hour,
	types.Posted3d:  3 * 24 * time.Hour,
	types.Posted7d:  7 * 24 * time.Hour,
	types.Posted14d: 14 * 24 * time.Hour,
	types.Posted30d: 30 * 24 * time.Hour,
}

// Filter reduces postings to those matching every specified predicate.
// Unspecified predicates are skipped entirely, so an empty filter returns
// the input unchanged. The input order is always preserved.
//
// Radius filtering needs both a radius and a user coordinate; without a
// coordinate the predicate is skipped rather than failing every posting.
func Filter(jobs []types.Job, filters *types.JobFilters, loc *types.UserLocation, now time.Time) []types.Job {
	if filters == nil || filters.IsEmpty() {
		return jobs
	}

	out := make([]types.Job, 0, len(jobs))
	for _, job := range jobs {
		if matches(&job, filters, loc, now) {
			out = append(out, job)
		}
	}
	return out
}

func matches(job *types.Job, f *types.JobFilters, loc *types.UserLocation, now time.Time) bool {
	if f.Query != "" && !matchesQuery(job, f.Query) {
		return false
	}
	if f.RadiusKm != nil && loc != nil && !matchesRadius(job, f, loc) {
		return false
	}
	if f.IsRemote != nil && job.IsRemote != *f.IsRemote {
		return false
	}
	if len(f.EmploymentTypes) > 0 && !containsEmployment(f.EmploymentTypes, job.EmploymentType) {
		return false
	}
	if len(f.ExperienceLevels) > 0 && !containsExperience(f.ExperienceLevels, job.ExperienceLevel) {
		return false
	}
	if f.SalaryMin != nil && job.Salary.Max < *f.SalaryMin {
		return false
	}
	if f.SalaryMax != nil && job.Salary.Min > *f.SalaryMax {
		return false
	}
	if len(f.Skills) > 0 && !matchesSkills(job.Skills, f.Skills) {
		return false
	}
	if f.PostedWithin != "" {
		window, ok := postedWithinWindow[f.PostedWithin]
		if ok && job.PostedAt.Before(now.Add(-window)) {
			return false
		}
	}
	return true
}

// matchesQuery checks the free-text query as a case-insensitive substring of
// the title, company name, description, or any skill.
func matchesQuery(job *types.Job, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(job.Title), q) ||
		strings.Contains(strings.ToLower(job.Company.Name), q) ||
		strings.Contains(strings.ToLower(job.Description), q) {
		return true
	}
	for _, skill := range job.Skills {
		if strings.Contains(strings.ToLower(skill), q) {
			return true
		}
	}
	return false
}

// matchesRadius keeps a posting when it is within the radius of the user's
// position. A remote posting passes when the filter also asks for remote
// work; a posting with no coordinate cannot satisfy a radius and fails.
func matchesRadius(job *types.Job, f *types.JobFilters, loc *types.UserLocation) bool {
	if job.IsRemote && f.IsRemote != nil && *f.IsRemote {
		return true
	}
	if job.Location.Latitude == nil || job.Location.Longitude == nil {
		return false
	}
	distance := geo.Distance(
		geo.Coordinates{Latitude: loc.Latitude, Longitude: loc.Longitude},
		geo.Coordinates{Latitude: *job.Location.Latitude, Longitude: *job.Location.Longitude},
	)
	return distance <= *f.RadiusKm
}

func containsEmployment(set []types.EmploymentType, v types.EmploymentType) bool {
	for _, t := range set {
		if t == v {
			return true
		}
	}
	return false
}

func containsExperience(set []types.ExperienceLevel, v types.ExperienceLevel) bool {
	for _, l := range set {
		if l == v {
			return true
		}
	}
	return false
}

// matchesSkills reports whether any filter skill appears, case-insensitively,
// as a substring of any posting skill.
func matchesSkills(jobSkills, filterSkills []string) bool {
	for _, js := range jobSkills {
		lower := strings.ToLower(js)
		for _, fs := range filterSkills {
			if strings.Contains(lower, strings.ToLower(fs)) {
				return true
			}
		}
	}
	return false
}
