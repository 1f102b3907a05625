package services

import (
	"sort"

	"studyhub/internal/core/domain/model/expert"
)

// DefaultCandidateLimit is the number of ranked candidates returned when the
// caller does not specify a limit.
const DefaultCandidateLimit = 5

// ExpertMatcher is a domain service that ranks candidate experts for an
// order. It is a pure function over a candidate snapshot: it never reads or
// writes storage and never blocks.
//
// Ranking rules:
//   - Candidates at the workload cap are filtered out
//   - Survivors are scored by rating, success rate, experience and load
//   - Results are sorted by descending score; ties break on expert id
//     ascending so the ranking is reproducible
//
// Example usage:
//
//	matcher := NewExpertMatcher()
//	ranked, err := matcher.Match(candidates, 5)
//	if err != nil {
//	    // A candidate snapshot was malformed
//	    return
//	}
//	// ranked[0] is the best available expert
type ExpertMatcher struct{}

// NewExpertMatcher creates a new ExpertMatcher instance.
func NewExpertMatcher() ExpertMatcher {
	return ExpertMatcher{}
}

// Match filters and ranks the candidate snapshot, returning at most limit
// candidates in descending relevance order. A non-positive limit falls back
// to DefaultCandidateLimit. An empty result is not an error: the caller
// decides what an empty shortlist means.
func (m ExpertMatcher) Match(candidates []expert.Candidate, limit int) ([]expert.Candidate, error) {
	if limit <= 0 {
		limit = DefaultCandidateLimit
	}

	ranked := make([]expert.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if c.IsOverloaded() {
			continue
		}
		ranked = append(ranked, c)
	}

	sort.Slice(ranked, func(i, j int) bool {
		si, sj := m.Score(ranked[i]), m.Score(ranked[j])
		if si != sj {
			return si > sj
		}
		return ranked[i].ExpertID().String() < ranked[j].ExpertID().String()
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked, nil
}

// Score computes the relevance score of one candidate:
//
//	0.4*avg_rating + 0.003*success_rate + 0.2*experience_years + 0.1*(1 - workload*0.02)
//
// with success_rate a percentage in [0, 100].
func (m ExpertMatcher) Score(c expert.Candidate) float64 {
	return 0.4*c.AverageRating() +
		0.003*c.SuccessRate() +
		0.2*float64(c.ExperienceYears()) +
		0.1*(1-float64(c.Workload())*0.02)
}
