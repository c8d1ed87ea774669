package dialog

import (
	"FinNavi/app/api/advisor/internal/agent/catalog"
	"FinNavi/app/common/consts/biz"
)

// Question is one question to surface this turn, identified by a stable key
// ("slot:<name>" or "cond:<key>") so the next message can be read as its
// answer.
type Question struct {
	Key     string `json:"key"`
	Text    string `json:"text"`
	Preface string `json:"preface"`
}

const (
	slotKeyPrefix = "slot:"
	condKeyPrefix = "cond:"
)

// requiredSlots lists, per product type in ask order, the facts needed before
// a confident recommendation.
var requiredSlots = map[string][]string{
	biz.ProductSaving:   {"monthly_amount", "term_months"},
	biz.ProductDeposit:  {"lump_sum", "term_months"},
	biz.ProductPension:  {"monthly_amount"},
	biz.ProductMortgage: {"desired_amount", "income_monthly"},
	biz.ProductJeonse:   {"desired_amount", "income_monthly"},
	biz.ProductCredit:   {"desired_amount", "income_monthly"},
}

var slotQuestions = map[string]string{
	"monthly_amount": "매달 얼마 정도 넣을 계획이세요? (예: 30만원)",
	"lump_sum":       "목돈이 얼마 정도 있으세요? (예: 1000만원)",
	"term_months":    "기간은 어느 정도로 생각하세요? (예: 12개월/24개월)",
	"income_monthly": "월 소득(세후 기준 대략) 어느 정도세요? (예: 300만원)",
	"desired_amount": "필요한 대출 금액은 어느 정도세요? (예: 5000만원)",
}

// RequiredSlotsFor returns the ask-order slot list for a product type.
func RequiredSlotsFor(productType string) []string {
	return requiredSlots[productType]
}

// pickSlotQuestion returns the first missing slot that is neither capped nor
// already outstanding, recording the ask in the ledger and the per-slot
// counter. Returns nil when every missing slot is capped or awaiting an
// answer, which is what lets the orchestrator abandon a slot instead of
// looping on it.
func pickSlotQuestion(st *State, missing []string, askCap int) *Question {
	for _, s := range missing {
		key := slotKeyPrefix + s
		if st.Asked[key] {
			continue
		}
		if st.SlotAskCounts[s] >= askCap {
			continue
		}
		st.Asked[key] = true
		st.SlotAskCounts[s]++
		text, ok := slotQuestions[s]
		if !ok {
			text = "정보를 알려주세요"
		}
		return &Question{Key: key, Text: text, Preface: "조금만 더 물어볼게요 🙂"}
	}
	return nil
}

// pickConditionQuestion returns the catalog question for the first relevant
// condition key not yet resolved to yes/no and not yet asked, recording the
// ask. Keys come from the current candidate pool, not the whole catalog.
func pickConditionQuestion(st *State, conditionKeys []string, cat catalog.Catalog) *Question {
	for _, ck := range conditionKeys {
		key := condKeyPrefix + ck
		if st.Asked[key] {
			continue
		}
		if ans := st.Eligibility[ck]; ans == biz.AnswerYes || ans == biz.AnswerNo {
			continue
		}
		entry, ok := cat.Find(ck)
		if !ok || entry.Question == "" {
			continue
		}
		st.Asked[key] = true
		return &Question{
			Key:     key,
			Text:    entry.Question,
			Preface: "좋아요. 우대금리(금리 추가)를 받을 수 있는지 이것도 한 번만 볼게요 🙂",
		}
	}
	return nil
}
