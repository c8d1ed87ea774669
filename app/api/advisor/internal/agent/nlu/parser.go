package nlu

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"

	"FinNavi/app/api/advisor/internal/agent/dialog"
	"FinNavi/app/common/consts/biz"
)

const factParserSystem = `너는 금융 상담 파서야.
입력 JSON:
{
  "product_type": "...",
  "last_question_key": "...",
  "user_message": "..."
}

출력 JSON:
{
  "slots": {
    "monthly_amount": 500000,
    "term_months": 12,
    "lump_sum": 20000000,
    "income_monthly": 3000000,
    "desired_amount": 50000000
  },
  "eligibility": {
    "some_key": "yes|no|unknown"
  },
  "meta": { "user_uncertain": true|false }
}

규칙:
- 숫자/기간이 실제로 없으면 slots에 절대 넣지 마.
- 숫자는 원 단위로 변환(300만원=3000000, 1억=100000000, 5천만=50000000)
- 기간은 6/12/24/36개월 또는 "1년/2년" 같은 표현이 있을 때만 term_months로 채워.
- last_question_key가 cond:xxx면, 사용자가 예/아니오로 답하면 eligibility.xxx를 채워.
- 사용자가 "모름/대충/잘 모르겠어"면 meta.user_uncertain=true
- 한국어만`

// ErrModelCall marks a chat model transport failure, as opposed to malformed
// output which is absorbed locally.
var ErrModelCall = errors.New("chat model call failed")

// FactParser turns a raw user message into structured slot values and
// eligibility resolutions via the chat model. Malformed model output is
// absorbed and reported as empty facts; only transport failures surface as
// errors.
type FactParser struct {
	chatModel model.BaseChatModel
}

func NewFactParser(chatModel model.BaseChatModel) (*FactParser, error) {
	if chatModel == nil {
		return nil, fmt.Errorf("chat model is required")
	}
	return &FactParser{chatModel: chatModel}, nil
}

type factRequest struct {
	ProductType     string `json:"product_type"`
	LastQuestionKey string `json:"last_question_key"`
	UserMessage     string `json:"user_message"`
}

type factResponse struct {
	Slots       map[string]any    `json:"slots"`
	Eligibility map[string]string `json:"eligibility"`
	Meta        struct {
		UserUncertain bool `json:"user_uncertain"`
	} `json:"meta"`
}

func (p *FactParser) ExtractFacts(ctx context.Context, productType, lastQuestionKey, userMessage string, history []dialog.Message) (dialog.Facts, error) {
	payload, err := json.Marshal(factRequest{
		ProductType:     productType,
		LastQuestionKey: lastQuestionKey,
		UserMessage:     userMessage,
	})
	if err != nil {
		return dialog.Facts{}, err
	}

	messages := make([]*schema.Message, 0, len(history)+2)
	messages = append(messages, schema.SystemMessage(factParserSystem))
	for _, h := range history {
		switch h.Role {
		case "user":
			messages = append(messages, schema.UserMessage(h.Content))
		case "assistant":
			messages = append(messages, schema.AssistantMessage(h.Content, nil))
		}
	}
	messages = append(messages, schema.UserMessage(string(payload)))

	msg, err := p.chatModel.Generate(ctx, messages)
	if err != nil {
		return dialog.Facts{}, fmt.Errorf("fact extraction: %w: %v", ErrModelCall, err)
	}

	var resp factResponse
	if msg == nil || !Salvage(msg.Content, &resp) {
		logx.WithContext(ctx).Infow("fact parser output unusable, treating as empty",
			logx.Field("productType", productType))
		return emptyFacts(), nil
	}

	facts := emptyFacts()
	for k, v := range resp.Slots {
		if f, ok := asNumber(v); ok {
			facts.Slots[k] = f
		}
	}
	for k, v := range resp.Eligibility {
		if biz.IsAnswer(v) {
			facts.Eligibility[k] = v
		}
	}
	facts.UserUncertain = resp.Meta.UserUncertain
	return facts, nil
}

func emptyFacts() dialog.Facts {
	return dialog.Facts{
		Slots:       make(map[string]float64),
		Eligibility: make(map[string]string),
	}
}

// asNumber tolerates the model emitting numbers as strings.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
