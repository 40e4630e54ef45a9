package enhance

import (
	"testing"

	"github.com/jonathan/career-agent/internal/types"
	"github.com/stretchr/testify/assert"
)

func strongResume() *types.ResumeData {
	return &types.ResumeData{
		ID: "1",
		PersonalInfo: types.PersonalInfo{
			FullName: "Asha Patel",
			Email:    "asha.patel@example.com",
			LinkedIn: "linkedin.com/in/asha-patel",
			GitHub:   "github.com/ashapatel",
		},
		Summary: "Results-driven senior engineer with deep expertise in distributed backend systems and developer tooling.",
		Experience: []types.WorkExperience{
			{
				ID:        "1",
				Company:   "Razorpay",
				Title:     "Senior Software Engineer",
				StartDate: "2019-06",
				Current:   true,
				Achievements: []string{
					"Improved checkout latency by 45%",
					"Led a team of 6 developers on major product releases",
				},
			},
		},
		Skills: []types.Skill{
			{ID: "1", Name: "Go", Category: types.SkillTechnical},
			{ID: "2", Name: "PostgreSQL", Category: types.SkillTechnical},
			{ID: "3", Name: "Redis", Category: types.SkillTechnical},
			{ID: "4", Name: "Docker", Category: types.SkillTool},
			{ID: "5", Name: "Kubernetes", Category: types.SkillTool},
			{ID: "6", Name: "AWS", Category: types.SkillTool},
			{ID: "7", Name: "React", Category: types.SkillTechnical},
			{ID: "8", Name: "GraphQL", Category: types.SkillTechnical},
		},
		Certifications: []types.Certification{
			{ID: "1", Name: "AWS Certified Solutions Architect", Issuer: "Amazon Web Services"},
		},
	}
}

// sparseResume has an empty skills list and a 10-character summary, so
// neither scorer awards any bonus beyond keyword matches.
func sparseResume() *types.ResumeData {
	return &types.ResumeData{
		ID:           "2",
		PersonalInfo: types.PersonalInfo{FullName: "Dev Person"},
		Summary:      "Dev person",
	}
}

func TestQualityScoreStrongResume(t *testing.T) {
	// 50 base + 5 summary + 10 metrics + 10 action verbs + 10 for eight
	// skills + 5 certification + 5 LinkedIn + 5 GitHub.
	assert.Equal(t, 100, QualityScore(strongResume()))
}

func TestQualityScoreSparseResume(t *testing.T) {
	assert.Equal(t, 50, QualityScore(sparseResume()))
}

func TestQualityScoreSkillTiers(t *testing.T) {
	r := strongResume()

	r.Skills = r.Skills[:5]
	assert.Equal(t, 95, QualityScore(r))

	r.Skills = r.Skills[:4]
	assert.Equal(t, 90, QualityScore(r))
}

func TestQualityScoreCapped(t *testing.T) {
	r := strongResume()
	// Already at 100; nothing pushes it beyond the cap.
	assert.LessOrEqual(t, QualityScore(r), 100)
}

func TestATSScoreSparseResume(t *testing.T) {
	// Base 40 only: no keyword in the text, summary under threshold,
	// empty experience earns no formatting credit, no skills.
	assert.Equal(t, 40, ATSScore(sparseResume()))
}

func TestATSScoreEmptyExperienceGetsNoFormattingCredit(t *testing.T) {
	r := sparseResume()
	withExp := sparseResume()
	withExp.Experience = []types.WorkExperience{
		{ID: "1", Company: "TCS", Title: "Engineer", Achievements: []string{"a", "b"}},
	}

	assert.Equal(t, ATSScore(r)+10, ATSScore(withExp))
}

func TestATSScoreKeywordMatches(t *testing.T) {
	r := sparseResume()
	r.Skills = []types.Skill{
		{ID: "1", Name: "Rust"},
		{ID: "2", Name: "Terraform"},
	}

	// 40 base + 2*2 keywords. Two skills stay below the count tier.
	assert.Equal(t, 44, ATSScore(r))
}

func TestATSScoreKeywordBonusCapped(t *testing.T) {
	r := sparseResume()
	for _, kw := range technicalKeywords {
		r.Summary += " " + kw
	}

	// Every keyword matches but the keyword bonus caps at +30; the long
	// summary adds +10.
	assert.Equal(t, 40+30+10, ATSScore(r))
}

func TestQuantifiablePattern(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected bool
	}{
		{"percentage", "Improved throughput by 45%", true},
		{"currency", "Saved $200000 in infra spend", true},
		{"user count", "Shipped features for 50000 users", true},
		{"team size", "Mentored a 4 team cohort", true},
		{"no metric", "Worked on the billing service", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, quantifiablePattern.MatchString(tt.line))
		})
	}
}
