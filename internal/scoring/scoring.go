package scoring

import (
	"fmt"
	"math"
	"strings"
)

// Engine computes keyword match scores against per-title keyword sets.
// Scoring is pure: the same inputs always produce the same score.
type Engine struct {
	sets map[string][]string
}

func NewEngine() *Engine {
	return &Engine{sets: defaultKeywordSets}
}

// NewEngineWithSets builds an engine over custom keyword sets, e.g. sets
// loaded from a KEYWORDS_FILE override.
func NewEngineWithSets(sets map[string][]string) *Engine {
	if sets == nil {
		sets = defaultKeywordSets
	}
	return &Engine{sets: sets}
}

// Keywords returns the keyword list for a job title, or nil when the
// title is unknown.
func (e *Engine) Keywords(jobTitle string) []string {
	return e.sets[strings.ToLower(jobTitle)]
}

// Score returns the percentage of the job title's keywords found in the
// resume text, rounded to the nearest integer. Matching is a
// case-insensitive substring check. A title with no keyword set scores 0
// rather than dividing by zero.
func (e *Engine) Score(resumeText, jobTitle string) (int, error) {
	if strings.TrimSpace(resumeText) == "" {
		return 0, fmt.Errorf("resume text is empty")
	}

	keywords := e.sets[strings.ToLower(jobTitle)]
	if len(keywords) == 0 {
		return 0, nil
	}

	resumeLower := strings.ToLower(resumeText)

	matches := 0
	for _, keyword := range keywords {
		if strings.Contains(resumeLower, strings.ToLower(keyword)) {
			matches++
		}
	}

	return int(math.Round(float64(matches) / float64(len(keywords)) * 100)), nil
}
