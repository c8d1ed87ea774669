package syncer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormKey(t *testing.T) {
	assert.Equal(t, "salary_transfer", normKey("  Salary-Transfer "))
	assert.Equal(t, "card_spend", normKey("card  spend"))
	assert.Equal(t, "youth", normKey("__youth__"))
	assert.Equal(t, "a_b_c", normKey("a---b///c"))
	assert.Equal(t, "", normKey("   "))
	assert.Equal(t, "", normKey("한글키"))
}

func TestCleanPatterns(t *testing.T) {
	t.Run("drops generic and short patterns", func(t *testing.T) {
		got := cleanPatterns([]string{"우대금리", "급여이체", "금", "가입", "자동이체"})
		assert.Equal(t, []string{"급여이체", "자동이체"}, got)
	})

	t.Run("drops overlong patterns", func(t *testing.T) {
		got := cleanPatterns([]string{strings.Repeat("가", 13), "카드실적"})
		assert.Equal(t, []string{"카드실적"}, got)
	})

	t.Run("dedupes preserving order", func(t *testing.T) {
		got := cleanPatterns([]string{" 급여이체 ", "카드실적", "급여이체"})
		assert.Equal(t, []string{"급여이체", "카드실적"}, got)
	})
}

func TestPatternsHash(t *testing.T) {
	a := patternsHash([]string{"급여이체", "카드실적"})
	b := patternsHash([]string{"카드실적", "급여이체"})
	c := patternsHash([]string{"급여이체"})
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 10)
}

func TestVet(t *testing.T) {
	base := proposal{
		Key:        "salary_transfer",
		Patterns:   []string{"급여이체", "급여 입금"},
		Question:   "급여이체를 이 은행으로 돌릴 수 있나요? (예/아니오/모름)",
		Explain:    "월급 계좌를 해당 은행으로 지정하는 조건이에요.",
		Confidence: 0.9,
	}
	none := map[string]struct{}{}

	t.Run("accepts a sound proposal", func(t *testing.T) {
		entry, ok := vet(base, none, none)
		require.True(t, ok)
		assert.Equal(t, "salary_transfer", entry.Key)
		assert.JSONEq(t, `["급여이체","급여 입금"]`, entry.PatternsJson)
		assert.True(t, entry.Explain.Valid)
		assert.Equal(t, int64(1), entry.IsActive)
	})

	t.Run("normalizes a messy key", func(t *testing.T) {
		p := base
		p.Key = " Salary-Transfer2 "
		entry, ok := vet(p, none, none)
		require.True(t, ok)
		assert.Equal(t, "salary_transfer2", entry.Key)
	})

	t.Run("rejects an unusable key", func(t *testing.T) {
		p := base
		p.Key = "한글키"
		_, ok := vet(p, none, none)
		assert.False(t, ok)
	})

	t.Run("rejects a duplicate key", func(t *testing.T) {
		_, ok := vet(base, map[string]struct{}{"salary_transfer": {}}, none)
		assert.False(t, ok)
	})

	t.Run("rejects low confidence", func(t *testing.T) {
		p := base
		p.Confidence = 0.5
		_, ok := vet(p, none, none)
		assert.False(t, ok)
	})

	t.Run("rejects when fewer than two patterns survive", func(t *testing.T) {
		p := base
		p.Patterns = []string{"급여이체", "우대금리", "금"}
		_, ok := vet(p, none, none)
		assert.False(t, ok)
	})

	t.Run("rejects a re-spelled pattern set", func(t *testing.T) {
		hashes := map[string]struct{}{patternsHash([]string{"급여 입금", "급여이체"}): {}}
		_, ok := vet(base, none, hashes)
		assert.False(t, ok)
	})

	t.Run("rejects questions outside the length bounds", func(t *testing.T) {
		short := base
		short.Question = "짧음?"
		_, ok := vet(short, none, none)
		assert.False(t, ok)

		long := base
		long.Question = strings.Repeat("가", 121)
		_, ok = vet(long, none, none)
		assert.False(t, ok)
	})

	t.Run("appends the answer hint when missing", func(t *testing.T) {
		p := base
		p.Question = "급여이체를 이 은행으로 돌릴 수 있나요?"
		entry, ok := vet(p, none, none)
		require.True(t, ok)
		assert.True(t, strings.HasSuffix(entry.Question, "(예/아니오/모름)"))
	})

	t.Run("leaves a long question without the hint", func(t *testing.T) {
		p := base
		p.Question = strings.Repeat("가", 110)
		entry, ok := vet(p, none, none)
		require.True(t, ok)
		assert.False(t, strings.Contains(entry.Question, "(예/아니오/모름)"))
	})

	t.Run("empty explain stays null", func(t *testing.T) {
		p := base
		p.Explain = "  "
		entry, ok := vet(p, none, none)
		require.True(t, ok)
		assert.False(t, entry.Explain.Valid)
	})
}

func TestMatchedByAny(t *testing.T) {
	sets := [][]string{{"급여이체"}, {"카드실적", "체크카드"}}
	assert.True(t, matchedByAny("급여이체 시 우대", sets))
	assert.True(t, matchedByAny("체크카드 월 30만원", sets))
	assert.False(t, matchedByAny("헌혈 시 우대", sets))
	assert.False(t, matchedByAny("아무거나", nil))
}
