package types

import "time"

// EmploymentType enumerates the employment arrangements a posting can offer.
type EmploymentType string

// Employment types.
const (
	EmploymentFullTime   EmploymentType = "full-time"
	EmploymentPartTime   EmploymentType = "part-time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentFreelance  EmploymentType = "freelance"
	EmploymentInternship EmploymentType = "internship"
)

// ExperienceLevel enumerates seniority tiers for a posting.
type ExperienceLevel string

// Experience levels.
const (
	ExperienceEntry     ExperienceLevel = "entry"
	ExperienceMid       ExperienceLevel = "mid"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceExecutive ExperienceLevel = "executive"
)

// CompanySize enumerates employer size tiers.
type CompanySize string

// Company sizes.
const (
	CompanyStartup    CompanySize = "startup"
	CompanySmall      CompanySize = "small"
	CompanyMedium     CompanySize = "medium"
	CompanyLarge      CompanySize = "large"
	CompanyEnterprise CompanySize = "enterprise"
)

// SalaryPeriod enumerates salary payout periods.
type SalaryPeriod string

// Salary periods.
const (
	PeriodHourly  SalaryPeriod = "hourly"
	PeriodDaily   SalaryPeriod = "daily"
	PeriodWeekly  SalaryPeriod = "weekly"
	PeriodMonthly SalaryPeriod = "monthly"
	PeriodYearly  SalaryPeriod = "yearly"
)

// Company describes the employer attached to a posting.
type Company struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Logo        string      `json:"logo,omitempty"`
	Website     string      `json:"website,omitempty"`
	Description string      `json:"description,omitempty"`
	Size        CompanySize `json:"size"`
	Industry    string      `json:"industry"`
}

// JobLocation describes where a posting is based. Latitude and Longitude are
// pointers because many postings carry no coordinate; a radius filter
// excludes those.
type JobLocation struct {
	City       string   `json:"city"`
	State      string   `json:"state,omitempty"`
	Country    string   `json:"country"`
	PostalCode string   `json:"postal_code,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	IsRemote   bool     `json:"is_remote"`
}

// Salary describes a posting's pay range.
type Salary struct {
	Min          int          `json:"min"`
	Max          int          `json:"max"`
	Currency     string       `json:"currency"`
	Period       SalaryPeriod `json:"period"`
	IsNegotiable bool         `json:"is_negotiable"`
}

// Job represents one job posting. The catalog is static; postings are never
// created or destroyed at runtime, only filtered.
type Job struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	Company          Company         `json:"company"`
	Location         JobLocation     `json:"location"`
	Description      string          `json:"description"`
	Requirements     []string        `json:"requirements"`
	Responsibilities []string        `json:"responsibilities"`
	Skills           []string        `json:"skills"`
	Salary           Salary          `json:"salary"`
	EmploymentType   EmploymentType  `json:"employment_type"`
	ExperienceLevel  ExperienceLevel `json:"experience_level"`
	PostedAt         time.Time       `json:"posted_at"`
	ExpiresAt        *time.Time      `json:"expires_at,omitempty"`
	ApplicationURL   string          `json:"application_url,omitempty"`
	MatchScore       int             `json:"match_score,omitempty"`
	IsRemote         bool            `json:"is_remote"`
	IsFeatured       bool            `json:"is_featured"`
}

// PostedWithin enumerates the recency buckets a filter can request.
type PostedWithin string

// Recency buckets.
const (
	Posted24h PostedWithin = "24h"
	Posted3d  PostedWithin = "3d"
	Posted7d  PostedWithin = "7d"
	Posted14d PostedWithin = "14d"
	Posted30d PostedWithin = "30d"
)

// JobFilters represents the user-chosen filter state. Nil or zero-length
// fields mean "predicate not specified" and are skipped entirely; the filter
// state is replaced wholesale on each change, never merged field-by-field.
type JobFilters struct {
	Query           string            `json:"query,omitempty"`
	RadiusKm        *float64          `json:"radius_km,omitempty"`
	EmploymentTypes []EmploymentType  `json:"employment_types,omitempty"`
	ExperienceLevels []ExperienceLevel `json:"experience_levels,omitempty"`
	SalaryMin       *int              `json:"salary_min,omitempty"`
	SalaryMax       *int              `json:"salary_max,omitempty"`
	Skills          []string          `json:"skills,omitempty"`
	IsRemote        *bool             `json:"is_remote,omitempty"`
	PostedWithin    PostedWithin      `json:"posted_within,omitempty"`
}

// IsEmpty reports whether no predicate is specified at all.
func (f *JobFilters) IsEmpty() bool {
	return f.Query == "" &&
		f.RadiusKm == nil &&
		len(f.EmploymentTypes) == 0 &&
		len(f.ExperienceLevels) == 0 &&
		f.SalaryMin == nil &&
		f.SalaryMax == nil &&
		len(f.Skills) == 0 &&
		f.IsRemote == nil &&
		f.PostedWithin == ""
}
