package enhance

import (
	"fmt"
	"time"

	"github.com/jonathan/career-agent/internal/types"
)

// Engine runs one enhancement pass over a resume. The clock is injectable
// so years-of-experience derivation is reproducible in tests.
type Engine struct {
	now func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine's time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates an enhancement engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Enhance scores the resume, generates suggestions, synthesizes the
// enhanced copy, and re-scores it. The input record is never mutated.
// Both score pairs are measured recomputations, not inflated estimates.
func (e *Engine) Enhance(resume *types.ResumeData) (*types.EnhancementResult, error) {
	if resume == nil {
		return nil, fmt.Errorf("enhance: resume is nil")
	}
	if err := resume.Validate(); err != nil {
		return nil, fmt.Errorf("enhance: %w", err)
	}

	original := resume.Clone()
	now := e.now()

	suggestions, keywordsAdded := GenerateSuggestions(original, now)
	enhanced := Synthesize(original, suggestions, keywordsAdded)

	return &types.EnhancementResult{
		Original:    original,
		Enhanced:    enhanced,
		Suggestions: suggestions,
		Score: types.ScorePair{
			Original: QualityScore(original),
			Enhanced: QualityScore(enhanced),
		},
		KeywordsAdded: keywordsAdded,
		ATSCompatibility: types.ScorePair{
			Original: ATSScore(original),
			Enhanced: ATSScore(enhanced),
		},
	}, nil
}

// Synthesize builds the enhanced resume: a deep copy of the original with
// the summary rewrite and every achievement rewrite applied by structural
// position, and the keyword-derived skills appended at intermediate
// proficiency.
func Synthesize(original *types.ResumeData, suggestions []types.EnhancementSuggestion, keywordsAdded []string) *types.ResumeData {
	enhanced := original.Clone()

	for _, s := range suggestions {
		switch {
		case s.Section == "summary" && s.Type == types.SuggestionContent:
			enhanced.Summary = s.Suggestion
		case s.Section == "experience" && s.Type == types.SuggestionContent:
			if s.ExperienceIndex >= 0 && s.ExperienceIndex < len(enhanced.Experience) {
				achievements := enhanced.Experience[s.ExperienceIndex].Achievements
				if s.AchievementIndex >= 0 && s.AchievementIndex < len(achievements) {
					achievements[s.AchievementIndex] = s.Suggestion
				}
			}
		}
	}

	for i, kw := range keywordsAdded {
		enhanced.Skills = append(enhanced.Skills, types.Skill{
			ID:          fmt.Sprintf("added-%d", i),
			Name:        kw,
			Category:    types.SkillTechnical,
			Proficiency: types.ProficiencyIntermediate,
		})
	}

	return enhanced
}
