package syncer

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"FinNavi/app/dal/bank"
)

type seed struct {
	Key      string
	Patterns []string
	Question string
	Explain  string
}

// seeds is the baseline condition catalog. Existing rows are never touched;
// the catalog is append-only and the curator grows it from here.
var seeds = []seed{
	{
		Key:      "salary_transfer",
		Patterns: []string{"급여이체", "급여", "급여입금", "월급"},
		Question: "급여이체(월급 들어오는 계좌로 설정) 가능하세요? (예/아니오/모름)",
	},
	{
		Key:      "auto_transfer",
		Patterns: []string{"자동이체", "정기이체", "CMS", "계좌자동이체"},
		Question: "매달 자동이체로 납입 설정 가능하세요? (예/아니오/모름)",
	},
	{
		Key:      "card_spend",
		Patterns: []string{"카드실적", "카드 이용", "체크카드", "신용카드", "카드사용"},
		Question: "카드 실적(한 달에 카드로 일정 금액 쓰기) 맞출 수 있나요? (예/아니오/모름)",
		Explain:  "카드 실적은 ‘한 달에 카드로 일정 금액 이상 쓰면’ 우대금리를 주는 조건이에요.",
	},
	{
		Key:      "primary_bank",
		Patterns: []string{"주거래", "주거래은행", "거래실적", "실적"},
		Question: "주거래로(이체/자동이체를 한 은행으로 모으기) 설정 가능하세요? (예/아니오/모름)",
	},
	{
		Key:      "non_face",
		Patterns: []string{"비대면", "모바일", "앱", "온라인", "인터넷"},
		Question: "비대면(앱으로 가입)도 괜찮으세요? (예/아니오/모름)",
	},
	{
		Key:      "youth",
		Patterns: []string{"청년", "만 34", "만34", "사회초년생", "19~34", "19-34"},
		Question: "청년 우대(대략 만 19~34세)에 해당하세요? (예/아니오/모름)",
	},
	{
		Key:      "marketing",
		Patterns: []string{"마케팅", "수신동의", "동의"},
		Question: "마케팅 수신 동의 같은 항목에 동의 가능하세요? (예/아니오/모름)",
	},
}

// EnsureSeeds inserts any missing seed entry, leaving present ones as-is.
func EnsureSeeds(ctx context.Context, model bank.ConditionCatalogModel) error {
	for _, s := range seeds {
		_, err := model.FindOne(ctx, s.Key)
		if err == nil {
			continue
		}
		if !errors.Is(err, bank.ErrNotFound) {
			return err
		}

		patterns, err := json.Marshal(s.Patterns)
		if err != nil {
			return err
		}
		if _, err := model.Insert(ctx, &bank.ConditionCatalog{
			Key:          s.Key,
			PatternsJson: string(patterns),
			Question:     s.Question,
			Explain:      sql.NullString{String: s.Explain, Valid: s.Explain != ""},
			IsActive:     1,
		}); err != nil {
			return err
		}
	}
	return nil
}
