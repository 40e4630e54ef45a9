package types

// SuggestionType categorizes an enhancement suggestion.
type SuggestionType string

// Suggestion types.
const (
	SuggestionGrammar    SuggestionType = "grammar"
	SuggestionFormatting SuggestionType = "formatting"
	SuggestionContent    SuggestionType = "content"
	SuggestionKeywords   SuggestionType = "keywords"
	SuggestionStructure  SuggestionType = "structure"
)

// Priority tiers for suggestions.
type Priority string

// Priorities.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// EnhancementSuggestion represents one proposed edit. Achievement rewrites
// are keyed by structural position (experience index + achievement index)
// rather than by text equality, so a duplicate achievement line can never
// receive a rewrite intended for another entry.
type EnhancementSuggestion struct {
	ID       string         `json:"id"`
	Type     SuggestionType `json:"type"`
	Section  string         `json:"section"`
	Original string         `json:"original"`
	Suggestion string       `json:"suggestion"`
	Reason   string         `json:"reason"`
	Priority Priority       `json:"priority"`
	Applied  bool           `json:"applied"`

	// Structural target for achievement rewrites. Both are -1 for
	// suggestions that do not target a specific achievement line.
	ExperienceIndex  int `json:"experience_index"`
	AchievementIndex int `json:"achievement_index"`
}

// ScorePair holds a before/after score.
type ScorePair struct {
	Original int `json:"original"`
	Enhanced int `json:"enhanced"`
}

// EnhancementResult bundles the outcome of one enhancement pass. It is
// created once per invocation; only the suggestion list's applied/rejected
// state changes afterwards.
type EnhancementResult struct {
	Original         *ResumeData             `json:"original"`
	Enhanced         *ResumeData             `json:"enhanced"`
	Suggestions      []EnhancementSuggestion `json:"suggestions"`
	Score            ScorePair               `json:"score"`
	KeywordsAdded    []string                `json:"keywords_added"`
	ATSCompatibility ScorePair               `json:"ats_compatibility"`
}

// ApplySuggestion flips the applied flag on the suggestion with the given
// ID. The suggestion stays listed; the enhanced resume was synthesized
// upfront and is unaffected. Returns false if no suggestion matches.
func (r *EnhancementResult) ApplySuggestion(id string) bool {
	for i := range r.Suggestions {
		if r.Suggestions[i].ID == id {
			r.Suggestions[i].Applied = true
			return true
		}
	}
	return false
}

// RejectSuggestion removes the suggestion with the given ID from the list
// entirely. Returns false if no suggestion matches.
func (r *EnhancementResult) RejectSuggestion(id string) bool {
	for i := range r.Suggestions {
		if r.Suggestions[i].ID == id {
			r.Suggestions = append(r.Suggestions[:i], r.Suggestions[i+1:]...)
			return true
		}
	}
	return false
}
