// Package recommend scores providers against quiz answers.
package recommend

import (
	"sort"

	"speechbench/internal/app/catalog"
	apperrors "speechbench/internal/app/errors"
)

// DefaultTopN is how many providers the quiz recommends, and the most it ever returns
const DefaultTopN = 3

var ErrInvalidOption = apperrors.New("answer is not an option of this step")

// Answers are the three collected quiz answers
type Answers struct {
	UseCase  UseCase  `json:"use_case"`
	Priority Priority `json:"priority"`
	// Volume is collected but does not influence scoring.
	Volume Volume `json:"volume"`
}

// Validate checks every answer against the question table
func (a Answers) Validate() error {
	values := []string{string(a.UseCase), string(a.Priority), string(a.Volume)}
	for i, q := range questions {
		if !q.HasOption(values[i]) {
			return apperrors.Wrapf(ErrInvalidOption, "step %d: %q", q.Step, values[i])
		}
	}
	return nil
}

// Recommendation is a scored provider
type Recommendation struct {
	Provider catalog.Provider `json:"provider"`
	Score    float64          `json:"score"`
}

// Score adds up the independent bonuses a provider earns for the answers
func Score(p catalog.Provider, a Answers) float64 {
	var score float64
	b := p.Benchmarks

	if a.UseCase != "" && p.HasTag(string(a.UseCase)) {
		score += 10
	}
	if a.UseCase == UseCaseVoiceAgent && b.Speed >= 4 {
		score += 5
	}
	if a.UseCase == UseCaseContentCreation && b.Quality >= 4.5 {
		score += 5
	}
	if a.UseCase == UseCaseBudget && b.PriceScore >= 4 {
		score += 10
	}

	switch a.Priority {
	case PriorityQuality:
		score += b.Quality * 2
	case PrioritySpeed:
		score += b.Speed * 2
	case PriorityPrice:
		score += b.PriceScore * 2
	}

	return score
}

// Recommend scores every provider and returns the n best. Equal scores keep
// catalog order. n <= 0 or above DefaultTopN falls back to DefaultTopN.
func Recommend(c *catalog.Catalog, a Answers, n int) []Recommendation {
	if n <= 0 || n > DefaultTopN {
		n = DefaultTopN
	}

	providers := c.All()
	scored := make([]Recommendation, 0, len(providers))
	for _, p := range providers {
		scored = append(scored, Recommendation{Provider: p, Score: Score(p, a)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > n {
		scored = scored[:n]
	}
	return scored
}
