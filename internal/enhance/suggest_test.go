package enhance

import (
	"strings"
	"testing"
	"time"

	"github.com/jonathan/career-agent/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

func TestSummarySuggestionStrictlyLonger(t *testing.T) {
	tests := []struct {
		name    string
		summary string
	}{
		{"empty summary", ""},
		{"short summary", "Backend engineer."},
		{"just under threshold", strings.Repeat("x", summaryRewriteThreshold-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := strongResume()
			r.Summary = tt.summary

			suggestions, _ := GenerateSuggestions(r, fixedNow)

			var found *types.EnhancementSuggestion
			for i := range suggestions {
				if suggestions[i].Section == "summary" {
					found = &suggestions[i]
					break
				}
			}
			require.NotNil(t, found, "expected a summary suggestion")
			assert.Greater(t, len(found.Suggestion), len(tt.summary))
			assert.Equal(t, types.PriorityHigh, found.Priority)
		})
	}
}

func TestNoSummarySuggestionForLongSummary(t *testing.T) {
	r := strongResume()
	r.Summary = strings.Repeat("Seasoned engineer. ", 10) // well past the threshold

	suggestions, _ := GenerateSuggestions(r, fixedNow)
	for _, s := range suggestions {
		assert.NotEqual(t, "summary", s.Section)
	}
}

func TestRewriteAchievementIdempotentOnStrongLine(t *testing.T) {
	// Starts with an action verb, has a well-formed from/to metric, and
	// names an audience: no rule fires.
	line := "Increased conversion by 20% (from 100 to 120) for customers"
	assert.Equal(t, line, RewriteAchievement(line))
}

func TestRewriteAchievementAddsActionVerb(t *testing.T) {
	got := RewriteAchievement("worked with cross-functional teams")
	assert.Equal(t, "Developed and worked with cross-functional teams", got)
}

func TestRewriteAchievementPercentageFraming(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			"increase framing",
			"Improved application throughput by 45%",
			"Improved application throughput by 45% (from 100% to 145% of baseline)",
		},
		{
			"reduction framing",
			"Reduced deployment time by 60% with CI/CD implementation",
			"Reduced deployment time by 60% (from 100% to 40% of baseline) with CI/CD implementation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RewriteAchievement(tt.line)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "$%", "must never emit placeholder tokens")
		})
	}
}

func TestRewriteAchievementSkipsFramedPercentage(t *testing.T) {
	line := "Improved throughput by 45% (from 2k to 2.9k rps) for customers"
	assert.Equal(t, line, RewriteAchievement(line))
}

func TestRewriteAchievementImpactClause(t *testing.T) {
	got := RewriteAchievement("Optimized the payments API")
	assert.Equal(t, "Optimized the payments API"+impactClause, got)

	// An audience term suppresses the clause.
	line := "Optimized the payments API for enterprise customers"
	assert.Equal(t, line, RewriteAchievement(line))
}

func TestOrganizeSkillsPartition(t *testing.T) {
	skills := []types.Skill{
		{ID: "1", Name: "Go"},
		{ID: "2", Name: "React"},
		{ID: "3", Name: "Node.js"},
		{ID: "4", Name: "AWS"},
		{ID: "5", Name: "PostgreSQL"},
		{ID: "6", Name: "Figma"}, // unrecognized, lands in the catch-all
		{ID: "7", Name: "Python"},
	}

	out := OrganizeSkills(skills)

	// Split on the category delimiter: every input skill must appear
	// exactly once across all categories.
	var collected []string
	for _, group := range strings.Split(out, " | ") {
		parts := strings.SplitN(group, ": ", 2)
		require.Len(t, parts, 2, "malformed category group %q", group)
		collected = append(collected, strings.Split(parts[1], ", ")...)
	}

	assert.ElementsMatch(t,
		[]string{"Go", "React", "Node.js", "AWS", "PostgreSQL", "Figma", "Python"},
		collected)

	assert.Contains(t, out, "Languages: Go, Python")
	assert.Contains(t, out, "Tools & Others: Figma")
}

func TestOrganizeSkillsSuggestionThreshold(t *testing.T) {
	r := strongResume()
	r.Skills = r.Skills[:5]

	suggestions, _ := GenerateSuggestions(r, fixedNow)
	for _, s := range suggestions {
		assert.NotEqual(t, "skills-org", s.ID, "no regrouping at five skills or fewer")
	}
}

func TestMissingKeywords(t *testing.T) {
	missing := MissingKeywords(sparseResume())

	require.Len(t, missing, missingKeywordScanLimit)
	// Vocabulary order is preserved.
	assert.Equal(t, []string{"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "Go", "Rust"}, missing)
}

func TestMissingKeywordsSkipsPresent(t *testing.T) {
	r := sparseResume()
	r.Summary = "JavaScript and TypeScript specialist"

	missing := MissingKeywords(r)
	assert.NotContains(t, missing, "JavaScript")
	assert.NotContains(t, missing, "TypeScript")
	// "Java" is a substring of "JavaScript" and therefore counts as present.
	assert.NotContains(t, missing, "Java")
	assert.Contains(t, missing, "Python")
}

func TestEstimateYearsOfExperience(t *testing.T) {
	tests := []struct {
		name     string
		starts   []string
		expected int
	}{
		{"single entry", []string{"2019-06"}, 7},
		{"earliest wins", []string{"2023-01", "2017-06"}, 9},
		{"malformed date falls back", []string{"garbage"}, 2},
		{"floor of two years", []string{"2025-09"}, 2},
		{"no experience", nil, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &types.ResumeData{PersonalInfo: types.PersonalInfo{FullName: "X"}}
			for i, start := range tt.starts {
				r.Experience = append(r.Experience, types.WorkExperience{
					ID: string(rune('1' + i)), Company: "C", Title: "T", StartDate: start,
				})
			}
			assert.Equal(t, tt.expected, EstimateYearsOfExperience(r, fixedNow))
		})
	}
}

func TestSuggestionsKeyedByPosition(t *testing.T) {
	r := strongResume()
	// Two identical weak lines in different entries each get their own
	// positionally-keyed suggestion.
	r.Experience = append(r.Experience, types.WorkExperience{
		ID: "2", Company: "Infosys", Title: "Engineer",
		Achievements: []string{"worked on internal tooling"},
	})
	r.Experience[0].Achievements = []string{"worked on internal tooling"}

	suggestions, _ := GenerateSuggestions(r, fixedNow)

	var targets [][2]int
	for _, s := range suggestions {
		if s.Section == "experience" {
			targets = append(targets, [2]int{s.ExperienceIndex, s.AchievementIndex})
		}
	}
	assert.ElementsMatch(t, [][2]int{{0, 0}, {1, 0}}, targets)
}
