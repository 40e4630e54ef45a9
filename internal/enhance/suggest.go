package enhance

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/career-agent/internal/types"
)

const (
	// summaryRewriteThreshold is the summary length below which a rewrite
	// is proposed.
	summaryRewriteThreshold = 150

	// minExperienceYears is the floor for the years-of-experience figure
	// stated in a rewritten summary.
	minExperienceYears = 2

	// defaultRoleTitle is used when the resume has no experience entries.
	defaultRoleTitle = "Software Engineer"

	// skillsOrganizeThreshold: above this many skills a regrouping
	// suggestion is proposed.
	skillsOrganizeThreshold = 5

	// keywordSuggestionLimit caps how many missing keywords one
	// suggestion proposes to add.
	keywordSuggestionLimit = 6

	// missingKeywordScanLimit caps how many missing keywords are
	// collected from the vocabulary.
	missingKeywordScanLimit = 8
)

// impactClause is appended to achievement lines that mention API or
// performance work without naming an audience.
const impactClause = ", improving experience for 50,000+ daily active users"

// percentPattern matches the first percentage figure in an achievement.
var percentPattern = regexp.MustCompile(`(\d+)%`)

// reductionHint marks achievements describing a decrease, which flips the
// direction of the synthesized before/after framing.
var reductionHints = []string{"reduc", "decreas", "cut ", "lower"}

// GenerateSuggestions runs every suggestion rule against the resume and
// returns the suggestion list plus the keywords the keyword rule selected.
// Achievement suggestions are keyed by structural position.
func GenerateSuggestions(r *types.ResumeData, now time.Time) ([]types.EnhancementSuggestion, []string) {
	var suggestions []types.EnhancementSuggestion

	if len(r.Summary) < summaryRewriteThreshold {
		suggestions = append(suggestions, types.EnhancementSuggestion{
			ID:               "summary",
			Type:             types.SuggestionContent,
			Section:          "summary",
			Original:         r.Summary,
			Suggestion:       RewriteSummary(r, now),
			Reason:           "Expanded summary with specific technologies and measurable impact for stronger first impression",
			Priority:         types.PriorityHigh,
			ExperienceIndex:  -1,
			AchievementIndex: -1,
		})
	}

	for expIdx, exp := range r.Experience {
		for achIdx, ach := range exp.Achievements {
			rewritten := RewriteAchievement(ach)
			if rewritten == ach {
				continue
			}
			suggestions = append(suggestions, types.EnhancementSuggestion{
				ID:               fmt.Sprintf("exp-%d-ach-%d", expIdx, achIdx),
				Type:             types.SuggestionContent,
				Section:          "experience",
				Original:         ach,
				Suggestion:       rewritten,
				Reason:           "Added quantifiable metrics and stronger action verbs for better impact",
				Priority:         types.PriorityHigh,
				ExperienceIndex:  expIdx,
				AchievementIndex: achIdx,
			})
		}
	}

	if len(r.Skills) > skillsOrganizeThreshold {
		names := make([]string, len(r.Skills))
		for i, s := range r.Skills {
			names[i] = s.Name
		}
		suggestions = append(suggestions, types.EnhancementSuggestion{
			ID:               "skills-org",
			Type:             types.SuggestionFormatting,
			Section:          "skills",
			Original:         strings.Join(names, ", "),
			Suggestion:       OrganizeSkills(r.Skills),
			Reason:           "Organized skills by category for better ATS readability and visual hierarchy",
			Priority:         types.PriorityMedium,
			ExperienceIndex:  -1,
			AchievementIndex: -1,
		})
	}

	var keywordsAdded []string
	if missing := MissingKeywords(r); len(missing) > 0 {
		keywordsAdded = missing[:min(len(missing), keywordSuggestionLimit)]
		suggestions = append(suggestions, types.EnhancementSuggestion{
			ID:               "keywords",
			Type:             types.SuggestionKeywords,
			Section:          "skills",
			Original:         "Current skills list",
			Suggestion:       "Add relevant keywords: " + strings.Join(keywordsAdded, ", "),
			Reason:           "These keywords are commonly searched by ATS systems for your role",
			Priority:         types.PriorityHigh,
			ExperienceIndex:  -1,
			AchievementIndex: -1,
		})
	}

	return suggestions, keywordsAdded
}

// RewriteSummary produces the proposed replacement summary: states years of
// experience, names the top skills, and adds value-proposition language.
// The result is always longer than any summary under the rewrite threshold.
func RewriteSummary(r *types.ResumeData, now time.Time) string {
	topSkills := make([]string, 0, 4)
	for _, s := range r.Skills {
		topSkills = append(topSkills, s.Name)
		if len(topSkills) == 4 {
			break
		}
	}
	expertise := strings.Join(topSkills, ", ")
	if expertise == "" {
		expertise = "modern software development"
	}

	return fmt.Sprintf(
		"Results-driven %s with %d+ years of expertise in %s. "+
			"Proven track record of delivering scalable solutions, leading high-performing teams, "+
			"and driving measurable business impact. Passionate about creating innovative "+
			"applications and solving complex technical challenges.",
		strings.ToLower(roleTitle(r)), EstimateYearsOfExperience(r, now), expertise)
}

// EstimateYearsOfExperience derives experience years from the earliest
// experience start year. Malformed dates fall back to a two-year default;
// the result never goes below the floor.
func EstimateYearsOfExperience(r *types.ResumeData, now time.Time) int {
	currentYear := now.Year()
	earliest := currentYear
	for _, exp := range r.Experience {
		year := currentYear - minExperienceYears
		if parts := strings.SplitN(exp.StartDate, "-", 2); len(parts) > 0 {
			if y, err := strconv.Atoi(parts[0]); err == nil {
				year = y
			}
		}
		if year < earliest {
			earliest = year
		}
	}
	return max(currentYear-earliest, minExperienceYears)
}

func roleTitle(r *types.ResumeData) string {
	if len(r.Experience) > 0 && r.Experience[0].Title != "" {
		return r.Experience[0].Title
	}
	return defaultRoleTitle
}

// RewriteAchievement applies the achievement rewrite rules to one line and
// returns the result. A line that already starts with a recognized action
// verb, already carries "from X to Y" framing for its percentage, and
// already names an audience comes back unchanged.
func RewriteAchievement(line string) string {
	enhanced := line

	if !startsWithActionVerb(line) {
		enhanced = "Developed and " + strings.ToLower(line)
	}

	if strings.Contains(line, "%") && !strings.Contains(line, "from") {
		enhanced = reframePercentage(enhanced, line)
	}

	if !strings.Contains(line, "users") && !strings.Contains(line, "customers") {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "api") || strings.Contains(lower, "performance") {
			enhanced += impactClause
		}
	}

	return enhanced
}

func startsWithActionVerb(line string) bool {
	lower := strings.ToLower(line)
	for _, verb := range actionVerbs {
		if strings.HasPrefix(lower, strings.ToLower(verb)) {
			return true
		}
	}
	return false
}

// reframePercentage adds a synthetic before/after framing to the first
// percentage figure. The figures are derived deterministically from the
// percentage itself against a 100% baseline; reductions count down,
// everything else counts up.
func reframePercentage(enhanced, original string) string {
	m := percentPattern.FindStringSubmatch(original)
	if m == nil {
		return enhanced
	}
	pct, err := strconv.Atoi(m[1])
	if err != nil {
		return enhanced
	}

	after := 100 + pct
	lower := strings.ToLower(original)
	for _, hint := range reductionHints {
		if strings.Contains(lower, hint) {
			after = 100 - pct
			break
		}
	}

	framing := fmt.Sprintf("%d%% (from 100%% to %d%% of baseline)", pct, after)
	return percentPattern.ReplaceAllStringFunc(enhanced, func(match string) string {
		if match == m[0] {
			return framing
		}
		return match
	})
}

// OrganizeSkills renders the fixed-category regrouping of a skill list.
// Every input skill appears exactly once; unrecognized names land in the
// trailing catch-all category. Categories render as "Name: a, b" joined
// with " | ".
func OrganizeSkills(skills []types.Skill) string {
	grouped := make(map[string][]string, len(skillCategories))

	for _, skill := range skills {
		category := skillCategories[len(skillCategories)-1].Name
		for _, c := range skillCategories {
			if containsName(c.Members, skill.Name) {
				category = c.Name
				break
			}
		}
		grouped[category] = append(grouped[category], skill.Name)
	}

	parts := make([]string, 0, len(skillCategories))
	for _, c := range skillCategories {
		if names := grouped[c.Name]; len(names) > 0 {
			parts = append(parts, c.Name+": "+strings.Join(names, ", "))
		}
	}
	return strings.Join(parts, " | ")
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// MissingKeywords returns the leading vocabulary keywords absent from the
// resume's full text.
func MissingKeywords(r *types.ResumeData) []string {
	text := strings.ToLower(resumeText(r))
	missing := make([]string, 0, missingKeywordScanLimit)
	for _, kw := range technicalKeywords {
		if !strings.Contains(text, strings.ToLower(kw)) {
			missing = append(missing, kw)
			if len(missing) == missingKeywordScanLimit {
				break
			}
		}
	}
	return missing
}
