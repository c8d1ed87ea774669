package catalog

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FinNavi/app/dal/bank"
)

func testCatalog() Catalog {
	return Catalog{
		{Key: "salary_transfer", Patterns: []string{"급여이체", "급여", "월급"}, Question: "급여이체 가능하세요?"},
		{Key: "card_spend", Patterns: []string{"카드실적", "체크카드"}, Question: "카드 실적 맞출 수 있나요?"},
		{Key: "non_face", Patterns: []string{"비대면", "앱"}, Question: "비대면 가입 괜찮으세요?"},
	}
}

func TestFindKeys(t *testing.T) {
	cat := testCatalog()

	t.Run("returns keys in catalog order", func(t *testing.T) {
		keys := FindKeys("비대면 가입 시 우대, 급여이체 고객 우대", cat)
		assert.Equal(t, []string{"salary_transfer", "non_face"}, keys)
	})

	t.Run("each key at most once", func(t *testing.T) {
		keys := FindKeys("급여이체 또는 월급 입금 시", cat)
		assert.Equal(t, []string{"salary_transfer"}, keys)
	})

	t.Run("idempotent", func(t *testing.T) {
		text := "체크카드 사용, 앱 가입, 급여이체"
		first := FindKeys(text, cat)
		second := FindKeys(text, cat)
		assert.Equal(t, first, second)
	})

	t.Run("empty inputs", func(t *testing.T) {
		assert.Empty(t, FindKeys("", cat))
		assert.Empty(t, FindKeys("아무거나", nil))
		assert.Empty(t, FindKeys("관련 없는 문구", cat))
	})
}

func TestSummarize(t *testing.T) {
	cat := testCatalog()

	t.Run("no text", func(t *testing.T) {
		assert.Equal(t, "우대조건 정보 없음", Summarize("", cat))
		assert.Equal(t, "우대조건 정보 없음", Summarize("   ", cat))
	})

	t.Run("matched keys joined up to two", func(t *testing.T) {
		got := Summarize("급여이체 및 체크카드 이용 시 우대", cat)
		assert.Equal(t, "주요 우대조건 키워드: salary_transfer, card_spend", got)
	})

	t.Run("overflow marker beyond two", func(t *testing.T) {
		got := Summarize("급여이체, 체크카드, 비대면 가입 우대", cat)
		assert.Equal(t, "주요 우대조건 키워드: salary_transfer, card_spend 외", got)
	})

	t.Run("falls back to first clause", func(t *testing.T) {
		got := Summarize("헌혈 시 우대금리 제공.\n기타 사항은 영업점 문의", cat)
		assert.Equal(t, "헌혈 시 우대금리 제공", got)
	})

	t.Run("truncates long fallback", func(t *testing.T) {
		long := strings.Repeat("가", 100)
		got := Summarize(long, cat)
		require.True(t, strings.HasSuffix(got, "…"))
		assert.Equal(t, 81, len([]rune(got)))
	})
}

func TestFromRows(t *testing.T) {
	rows := []*bank.ConditionCatalog{
		{Key: "salary_transfer", PatternsJson: `["급여이체","급여"]`, Question: "급여이체 가능하세요?"},
		{Key: "broken", PatternsJson: `not json`, Question: "무시되어야 함"},
		{Key: "empty", PatternsJson: `["", "  "]`, Question: "무시되어야 함"},
		nil,
		{Key: "non_face", PatternsJson: `["비대면"]`, Question: "비대면 괜찮으세요?", Explain: sql.NullString{String: "설명", Valid: true}},
	}

	cat := FromRows(rows)
	require.Len(t, cat, 2)
	assert.Equal(t, "salary_transfer", cat[0].Key)
	assert.Equal(t, []string{"급여이체", "급여"}, cat[0].Patterns)
	assert.Equal(t, "non_face", cat[1].Key)
	assert.Equal(t, "설명", cat[1].Explain)

	entry, ok := cat.Find("non_face")
	require.True(t, ok)
	assert.Equal(t, "비대면 괜찮으세요?", entry.Question)

	_, ok = cat.Find("broken")
	assert.False(t, ok)
}
