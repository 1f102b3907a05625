package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhub/internal/core/domain/model/expert"
	"studyhub/internal/core/domain/model/kernel"
)

func mustCandidate(t *testing.T, rating, success float64, years, workload int) expert.Candidate {
	t.Helper()

	c, err := expert.NewCandidate(kernel.NewUUID(), rating, success, years, workload)
	require.NoError(t, err)
	return c
}

func TestExpertMatcherShouldPreferHigherRatedExpertDespiteLoad(t *testing.T) {
	matcher := NewExpertMatcher()
	// A carries one active order but a clearly better rating than idle B.
	a := mustCandidate(t, 4.8, 90, 5, 1)
	b := mustCandidate(t, 4.2, 90, 5, 0)

	ranked, err := matcher.Match([]expert.Candidate{b, a}, 0)

	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.True(t, ranked[0].ExpertID().IsEqual(a.ExpertID()))
	assert.True(t, ranked[1].ExpertID().IsEqual(b.ExpertID()))
	assert.Greater(t, matcher.Score(a), matcher.Score(b))
}

func TestExpertMatcherShouldFilterOverloadedCandidates(t *testing.T) {
	matcher := NewExpertMatcher()
	overloaded := mustCandidate(t, 5, 100, 10, expert.MaxWorkload)
	available := mustCandidate(t, 3, 50, 1, 0)

	ranked, err := matcher.Match([]expert.Candidate{overloaded, available}, 0)

	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.True(t, ranked[0].ExpertID().IsEqual(available.ExpertID()))
}

func TestExpertMatcherShouldLimitResults(t *testing.T) {
	matcher := NewExpertMatcher()
	candidates := make([]expert.Candidate, 0, 8)
	for i := 0; i < 8; i++ {
		candidates = append(candidates, mustCandidate(t, 4, 80, i, 0))
	}

	t.Run("default limit", func(t *testing.T) {
		ranked, err := matcher.Match(candidates, 0)

		require.NoError(t, err)
		assert.Len(t, ranked, DefaultCandidateLimit)
	})

	t.Run("explicit limit", func(t *testing.T) {
		ranked, err := matcher.Match(candidates, 3)

		require.NoError(t, err)
		assert.Len(t, ranked, 3)
	})

	t.Run("limit above pool size", func(t *testing.T) {
		ranked, err := matcher.Match(candidates, 100)

		require.NoError(t, err)
		assert.Len(t, ranked, 8)
	})
}

func TestExpertMatcherShouldBreakTiesByExpertID(t *testing.T) {
	matcher := NewExpertMatcher()
	a := mustCandidate(t, 4, 80, 3, 2)
	b := mustCandidate(t, 4, 80, 3, 2)

	ranked, err := matcher.Match([]expert.Candidate{b, a}, 0)

	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Less(t, ranked[0].ExpertID().String(), ranked[1].ExpertID().String())
}

func TestExpertMatcherShouldRejectMalformedCandidates(t *testing.T) {
	matcher := NewExpertMatcher()

	ranked, err := matcher.Match([]expert.Candidate{{}}, 0)

	assert.Nil(t, ranked)
	assert.ErrorIs(t, err, expert.ErrCandidateIsNotConstructed)
}

func TestExpertMatcherShouldReturnEmptyShortlistForEmptyPool(t *testing.T) {
	matcher := NewExpertMatcher()

	ranked, err := matcher.Match(nil, 0)

	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestExpertMatcherScoreFormula(t *testing.T) {
	matcher := NewExpertMatcher()
	c := mustCandidate(t, 4.5, 90, 5, 2)

	// 0.4*4.5 + 0.003*90 + 0.2*5 + 0.1*(1-2*0.02)
	assert.InDelta(t, 3.166, matcher.Score(c), 1e-9)
}
