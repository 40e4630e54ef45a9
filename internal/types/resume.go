// Package types provides type definitions for structured data used throughout the career-agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"time"
)

// SkillCategory classifies a skill entry.
type SkillCategory string

// Skill categories.
const (
	SkillTechnical SkillCategory = "technical"
	SkillSoft      SkillCategory = "soft"
	SkillLanguage  SkillCategory = "language"
	SkillTool      SkillCategory = "tool"
)

// Proficiency represents a skill proficiency level.
type Proficiency string

// Skill proficiency levels.
const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyExpert       Proficiency = "expert"
)

// ResumeData represents a parsed resume with all its sections.
type ResumeData struct {
	ID             string          `json:"id"`
	PersonalInfo   PersonalInfo    `json:"personal_info"`
	Summary        string          `json:"summary"`
	Experience     []WorkExperience `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         []Skill         `json:"skills"`
	Certifications []Certification `json:"certifications"`
	Projects       []Project       `json:"projects"`
	Languages      []Language      `json:"languages"`
	UploadedAt     time.Time       `json:"uploaded_at"`
	FileName       string          `json:"file_name"`
}

// PersonalInfo represents the contact block of a resume.
type PersonalInfo struct {
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	GitHub    string `json:"github,omitempty"`
}

// WorkExperience represents one work-experience entry. Dates are "YYYY-MM"
// strings; an empty EndDate with Current set means an open-ended position.
// Achievements are unordered free text.
type WorkExperience struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Title        string   `json:"title"`
	Location     string   `json:"location"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

// Education represents one education entry.
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	GPA         string `json:"gpa,omitempty"`
}

// Skill represents a named skill. Duplicate names are not prevented; the
// enhancement engine may append a skill that is already present.
type Skill struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Category    SkillCategory `json:"category"`
	Proficiency Proficiency   `json:"proficiency"`
}

// Certification represents one certification entry.
type Certification struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	Date         string `json:"date"`
	ExpiryDate   string `json:"expiry_date,omitempty"`
	CredentialID string `json:"credential_id,omitempty"`
}

// Project represents one project entry.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link,omitempty"`
	GitHub       string   `json:"github,omitempty"`
}

// Language represents a spoken language entry.
type Language struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

// Validate checks that the resume has the sections the enhancement engine
// requires. Empty lists are tolerated; they simply yield fewer suggestions.
func (r *ResumeData) Validate() error {
	if r.PersonalInfo.FullName == "" {
		return fmt.Errorf("resume validation: personal_info.full_name is required")
	}
	for i, exp := range r.Experience {
		if exp.Company == "" {
			return fmt.Errorf("resume validation: experience[%d].company is required", i)
		}
		if exp.Title == "" {
			return fmt.Errorf("resume validation: experience[%d].title is required", i)
		}
	}
	for i, skill := range r.Skills {
		if skill.Name == "" {
			return fmt.Errorf("resume validation: skills[%d].name is required", i)
		}
	}
	return nil
}

// Clone returns a deep copy of the resume. The enhancement engine works on
// a clone so the caller's record is never mutated.
func (r *ResumeData) Clone() *ResumeData {
	out := *r

	out.Experience = make([]WorkExperience, len(r.Experience))
	for i, exp := range r.Experience {
		out.Experience[i] = exp
		out.Experience[i].Achievements = append([]string(nil), exp.Achievements...)
	}
	out.Education = append([]Education(nil), r.Education...)
	out.Skills = append([]Skill(nil), r.Skills...)
	out.Certifications = append([]Certification(nil), r.Certifications...)
	out.Languages = append([]Language(nil), r.Languages...)

	out.Projects = make([]Project, len(r.Projects))
	for i, p := range r.Projects {
		out.Projects[i] = p
		out.Projects[i].Technologies = append([]string(nil), p.Technologies...)
	}

	return &out
}
