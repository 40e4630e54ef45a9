package enhance

import (
	"regexp"
	"strings"

	"github.com/jonathan/career-agent/internal/types"
)

// Scoring bases and caps.
const (
	qualityBase = 50
	atsBase     = 40
	scoreCap    = 100

	// atsKeywordPoints is awarded per distinct technical keyword found,
	// up to atsKeywordCap total.
	atsKeywordPoints = 2
	atsKeywordCap    = 30
)

// Length thresholds on the free-text summary.
const (
	summaryMinLength = 50
	summaryATSLength = 100
)

// Skill-count tiers.
const (
	skillTierHigh = 8
	skillTierLow  = 5
)

// quantifiablePattern recognizes measurable impact in an achievement line:
// a percentage, a currency amount, or a count of people/users.
var quantifiablePattern = regexp.MustCompile(`(?i)\d+%|\$\d+|\d+\s*(users|customers|team)`)

// QualityScore computes the 0-100 baseline quality score for a resume.
func QualityScore(r *types.ResumeData) int {
	score := qualityBase

	if len(r.Summary) > summaryMinLength {
		score += 5
	}

	if hasQuantifiableAchievement(r) {
		score += 10
	}

	if hasActionVerb(r) {
		score += 10
	}

	switch {
	case len(r.Skills) >= skillTierHigh:
		score += 10
	case len(r.Skills) >= skillTierLow:
		score += 5
	}

	if len(r.Certifications) > 0 {
		score += 5
	}

	if r.PersonalInfo.LinkedIn != "" {
		score += 5
	}
	if r.PersonalInfo.GitHub != "" {
		score += 5
	}

	return min(score, scoreCap)
}

// ATSScore computes the 0-100 ATS-compatibility score for a resume.
func ATSScore(r *types.ResumeData) int {
	score := atsBase

	text := strings.ToLower(resumeText(r))
	matches := 0
	for _, kw := range technicalKeywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			matches++
		}
	}
	score += min(matches*atsKeywordPoints, atsKeywordCap)

	if len(r.Summary) > summaryATSLength {
		score += 10
	}

	// Awarded only for a non-empty experience list; a resume with no
	// experience at all gets no formatting credit here.
	if len(r.Experience) > 0 && everyEntryHasAchievements(r.Experience) {
		score += 10
	}

	if len(r.Skills) >= skillTierLow {
		score += 10
	}

	return min(score, scoreCap)
}

// resumeText concatenates the searchable free text of a resume.
func resumeText(r *types.ResumeData) string {
	parts := []string{r.Summary}
	for _, exp := range r.Experience {
		parts = append(parts, exp.Description)
		parts = append(parts, exp.Achievements...)
	}
	for _, skill := range r.Skills {
		parts = append(parts, skill.Name)
	}
	for _, project := range r.Projects {
		parts = append(parts, project.Description)
	}
	return strings.Join(parts, " ")
}

func hasQuantifiableAchievement(r *types.ResumeData) bool {
	for _, exp := range r.Experience {
		for _, ach := range exp.Achievements {
			if quantifiablePattern.MatchString(ach) {
				return true
			}
		}
	}
	return false
}

func hasActionVerb(r *types.ResumeData) bool {
	for _, exp := range r.Experience {
		for _, ach := range exp.Achievements {
			lower := strings.ToLower(ach)
			for _, verb := range actionVerbs {
				if strings.Contains(lower, strings.ToLower(verb)) {
					return true
				}
			}
		}
	}
	return false
}

func everyEntryHasAchievements(experience []types.WorkExperience) bool {
	for _, exp := range experience {
		if len(exp.Achievements) < 2 {
			return false
		}
	}
	return true
}
