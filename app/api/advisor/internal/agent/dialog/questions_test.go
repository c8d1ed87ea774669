package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FinNavi/app/api/advisor/internal/agent/catalog"
	"FinNavi/app/common/consts/biz"
)

func TestPickSlotQuestion(t *testing.T) {
	t.Run("first missing slot in order", func(t *testing.T) {
		st := NewState()
		q := pickSlotQuestion(st, []string{"monthly_amount", "term_months"}, 2)
		require.NotNil(t, q)
		assert.Equal(t, "slot:monthly_amount", q.Key)
		assert.True(t, st.Asked["slot:monthly_amount"])
		assert.Equal(t, 1, st.SlotAskCounts["monthly_amount"])
	})

	t.Run("never repeats an asked identifier", func(t *testing.T) {
		st := NewState()
		first := pickSlotQuestion(st, []string{"monthly_amount"}, 2)
		require.NotNil(t, first)
		second := pickSlotQuestion(st, []string{"monthly_amount"}, 2)
		assert.Nil(t, second)
	})

	t.Run("skips capped slots", func(t *testing.T) {
		st := NewState()
		st.SlotAskCounts["monthly_amount"] = 2
		q := pickSlotQuestion(st, []string{"monthly_amount", "term_months"}, 2)
		require.NotNil(t, q)
		assert.Equal(t, "slot:term_months", q.Key)
	})

	t.Run("count never exceeds cap", func(t *testing.T) {
		st := NewState()
		for i := 0; i < 5; i++ {
			pickSlotQuestion(st, []string{"monthly_amount"}, 2)
		}
		assert.LessOrEqual(t, st.SlotAskCounts["monthly_amount"], 2)
	})
}

func TestPickConditionQuestion(t *testing.T) {
	cat := catalog.Catalog{
		{Key: "salary_transfer", Patterns: []string{"급여이체"}, Question: "급여이체 가능하세요?"},
		{Key: "card_spend", Patterns: []string{"카드실적"}, Question: "카드 실적 맞출 수 있나요?"},
	}

	t.Run("first unresolved relevant key", func(t *testing.T) {
		st := NewState()
		q := pickConditionQuestion(st, []string{"salary_transfer", "card_spend"}, cat)
		require.NotNil(t, q)
		assert.Equal(t, "cond:salary_transfer", q.Key)
		assert.Equal(t, "급여이체 가능하세요?", q.Text)
		assert.True(t, st.Asked["cond:salary_transfer"])
	})

	t.Run("skips resolved keys", func(t *testing.T) {
		st := NewState()
		st.Eligibility["salary_transfer"] = biz.AnswerYes
		q := pickConditionQuestion(st, []string{"salary_transfer", "card_spend"}, cat)
		require.NotNil(t, q)
		assert.Equal(t, "cond:card_spend", q.Key)
	})

	t.Run("unknown does not block re-asking a different key", func(t *testing.T) {
		st := NewState()
		st.Eligibility["salary_transfer"] = biz.AnswerUnknown
		q := pickConditionQuestion(st, []string{"salary_transfer"}, cat)
		require.NotNil(t, q)
		assert.Equal(t, "cond:salary_transfer", q.Key)
	})

	t.Run("nil when all asked or resolved", func(t *testing.T) {
		st := NewState()
		st.Asked["cond:salary_transfer"] = true
		st.Eligibility["card_spend"] = biz.AnswerNo
		q := pickConditionQuestion(st, []string{"salary_transfer", "card_spend"}, cat)
		assert.Nil(t, q)
	})

	t.Run("skips keys missing from catalog", func(t *testing.T) {
		st := NewState()
		q := pickConditionQuestion(st, []string{"ghost"}, cat)
		assert.Nil(t, q)
	})
}

func TestQuickYesNo(t *testing.T) {
	assert.Equal(t, biz.AnswerYes, QuickYesNo("네"))
	assert.Equal(t, biz.AnswerYes, QuickYesNo(" 가능 "))
	assert.Equal(t, biz.AnswerNo, QuickYesNo("아니"))
	assert.Equal(t, biz.AnswerUnknown, QuickYesNo("몰라"))
	assert.Equal(t, "", QuickYesNo("매달 30만원 정도요"))
}

func TestIsConfused(t *testing.T) {
	assert.True(t, IsConfused("그게 무슨 말이에요?"))
	assert.True(t, IsConfused("??"))
	assert.False(t, IsConfused("네 가능해요"))
}
