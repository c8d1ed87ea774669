package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FinNavi/app/api/advisor/internal/agent/catalog"
	"FinNavi/app/api/advisor/internal/agent/pool"
	"FinNavi/app/common/consts/biz"
)

func testConfig() Config {
	return Config{
		YesBonus:            0.15,
		NoPenalty:           0.10,
		ComplexityPenalty:   0.10,
		ComplexityThreshold: 4,
		TopK:                3,
	}
}

func fiveKeyCatalog() catalog.Catalog {
	return catalog.Catalog{
		{Key: "k1", Patterns: []string{"급여이체"}},
		{Key: "k2", Patterns: []string{"자동이체"}},
		{Key: "k3", Patterns: []string{"카드실적"}},
		{Key: "k4", Patterns: []string{"비대면"}},
		{Key: "k5", Patterns: []string{"청년"}},
	}
}

func TestScore(t *testing.T) {
	e := NewEngine(testConfig())
	cat := fiveKeyCatalog()

	t.Run("base is the rate", func(t *testing.T) {
		s := e.Score(pool.Candidate{Rate: 3.5}, biz.ProductSaving, cat, nil)
		assert.InDelta(t, 3.5, s.Score, 1e-9)
	})

	t.Run("loan rates are negated", func(t *testing.T) {
		s := e.Score(pool.Candidate{Rate: 3.5}, biz.ProductCredit, cat, nil)
		assert.InDelta(t, -3.5, s.Score, 1e-9)
	})

	t.Run("yes adds and no subtracts", func(t *testing.T) {
		c := pool.Candidate{Rate: 3.0, SpecialConditionRaw: "급여이체 및 자동이체 우대"}
		elig := map[string]string{"k1": biz.AnswerYes, "k2": biz.AnswerNo}
		s := e.Score(c, biz.ProductSaving, cat, elig)
		assert.InDelta(t, 3.0+0.15-0.10, s.Score, 1e-9)
		assert.Equal(t, []string{"k1", "k2"}, s.MatchedKeys)
	})

	t.Run("unknown contributes nothing", func(t *testing.T) {
		c := pool.Candidate{Rate: 3.0, SpecialConditionRaw: "급여이체 우대"}
		s := e.Score(c, biz.ProductSaving, cat, map[string]string{"k1": biz.AnswerUnknown})
		assert.InDelta(t, 3.0, s.Score, 1e-9)
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		c := pool.Candidate{Rate: 3.0, SpecialConditionRaw: "급여이체 카드실적 비대면"}
		elig := map[string]string{"k1": biz.AnswerYes, "k3": biz.AnswerNo}
		first := e.Score(c, biz.ProductSaving, cat, elig)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, e.Score(c, biz.ProductSaving, cat, elig))
		}
	})

	t.Run("monotonic in eligibility", func(t *testing.T) {
		c := pool.Candidate{Rate: 3.0, SpecialConditionRaw: "급여이체 자동이체"}
		worse := e.Score(c, biz.ProductSaving, cat, map[string]string{"k1": biz.AnswerNo}).Score
		better := e.Score(c, biz.ProductSaving, cat, map[string]string{"k1": biz.AnswerYes}).Score
		assert.Greater(t, better, worse)
	})

	t.Run("complexity penalty at threshold", func(t *testing.T) {
		allYes := map[string]string{
			"k1": biz.AnswerYes, "k2": biz.AnswerYes, "k3": biz.AnswerYes,
			"k4": biz.AnswerYes, "k5": biz.AnswerYes,
		}
		// five matched keys, all yes: base + 5*0.15 - 0.10
		heavy := pool.Candidate{Rate: 3.0, SpecialConditionRaw: "급여이체 자동이체 카드실적 비대면 청년"}
		// two matched keys, all yes: base + 2*0.15
		light := pool.Candidate{Rate: 3.0, SpecialConditionRaw: "급여이체 자동이체"}

		heavyScore := e.Score(heavy, biz.ProductSaving, cat, allYes).Score
		lightScore := e.Score(light, biz.ProductSaving, cat, allYes).Score

		assert.InDelta(t, 3.0+5*0.15-0.10, heavyScore, 1e-9)
		assert.InDelta(t, 3.0+2*0.15, lightScore, 1e-9)
		// the penalty narrows the gap the extra bonuses would otherwise open
		assert.InDelta(t, 3*0.15-0.10, heavyScore-lightScore, 1e-9)
	})
}

func TestRank(t *testing.T) {
	e := NewEngine(testConfig())
	cat := fiveKeyCatalog()

	t.Run("descending score, truncated to top k", func(t *testing.T) {
		cands := []pool.Candidate{
			{ProductID: "low", Rate: 2.0},
			{ProductID: "high", Rate: 4.0},
			{ProductID: "mid", Rate: 3.0},
			{ProductID: "tail", Rate: 1.0},
		}
		ranked := e.Rank(cands, biz.ProductSaving, cat, nil)
		require.Len(t, ranked, 3)
		assert.Equal(t, "high", ranked[0].Candidate.ProductID)
		assert.Equal(t, "mid", ranked[1].Candidate.ProductID)
		assert.Equal(t, "low", ranked[2].Candidate.ProductID)
	})

	t.Run("ties keep pool order", func(t *testing.T) {
		cands := []pool.Candidate{
			{ProductID: "first", Rate: 3.0},
			{ProductID: "second", Rate: 3.0},
		}
		ranked := e.Rank(cands, biz.ProductSaving, cat, nil)
		require.Len(t, ranked, 2)
		assert.Equal(t, "first", ranked[0].Candidate.ProductID)
		assert.Equal(t, "second", ranked[1].Candidate.ProductID)
	})

	t.Run("loans rank ascending by rate", func(t *testing.T) {
		cands := []pool.Candidate{
			{ProductID: "expensive", Rate: 6.0},
			{ProductID: "cheap", Rate: 4.0},
		}
		ranked := e.Rank(cands, biz.ProductCredit, cat, nil)
		require.Len(t, ranked, 2)
		assert.Equal(t, "cheap", ranked[0].Candidate.ProductID)
	})

	t.Run("dedupes before truncation", func(t *testing.T) {
		cands := []pool.Candidate{
			{ProductID: "a", Rate: 4.0},
			{ProductID: "a", Rate: 4.0},
			{ProductID: "b", Rate: 3.0},
		}
		ranked := e.Rank(cands, biz.ProductSaving, cat, nil)
		assert.Len(t, ranked, 2)
	})
}
