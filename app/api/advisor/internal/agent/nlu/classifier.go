package nlu

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"

	"FinNavi/app/common/consts/biz"
)

const (
	classifierModelNodeKey = "type_classifier_model"
	classifierToolName     = "submit_type_decision"

	ActionAsk     = "ask"
	ActionProceed = "proceed"

	fallbackQuestion = "어떤 목적이세요? 모으기(적금/예금/연금저축)인지, 빌리기(주담대/전세자금/신용)인지 알려주세요 🙂"
)

const classifierSystem = `너는 금융 상담 챗봇의 '질문 흐름'을 결정하는 에이전트야.
사용자가 원하는 금융 목적을 파악해서 상품 유형을 분류해.

가능한 product_type:
- "적금"
- "예금"
- "연금저축"
- "주담대"
- "전세자금대출"
- "신용대출"

규칙:
- 모으기/저축/목돈 마련: 적금/예금/연금저축 중 하나
- 빌리기/대출/주택/전세/신용: 대출 3종 중 하나
- 유형을 고를 수 있으면 action="proceed"로 product_type을 채워
- 목적이 불분명하면 action="ask"로 되물을 question을 채워
- 한국어만`

// Decision is the classifier's verdict for a message whose product type is
// not yet fixed.
type Decision struct {
	Action      string `json:"action"`
	ProductType string `json:"product_type"`
	Question    string `json:"question"`
	Reason      string `json:"reason"`
}

// TypeClassifier fixes the conversation's product type on the first turn. It
// forces a tool call so the model answer arrives as arguments instead of
// prose, and coerces anything outside the fixed enum to a safe re-ask.
type TypeClassifier struct {
	log      logx.Logger
	runnable compose.Runnable[string, *Decision]
	tools    []*schema.ToolInfo
}

func NewTypeClassifier(ctx context.Context, logger logx.Logger, chatModel model.BaseChatModel) (*TypeClassifier, error) {
	if chatModel == nil {
		return nil, fmt.Errorf("chat model is required")
	}

	decisionTool := buildDecisionTool()
	tools := []*schema.ToolInfo{decisionTool}

	classifierModel := chatModel
	if toolCapable, ok := chatModel.(model.ToolCallingChatModel); ok {
		if modelWithTools, err := toolCapable.WithTools(tools); err != nil {
			logger.Errorf("bind classifier tool failed: %v", err)
		} else {
			classifierModel = modelWithTools
		}
	}

	chain := compose.NewChain[string, *Decision]()

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, userMessage string) ([]*schema.Message, error) {
		var instructions strings.Builder
		instructions.WriteString(classifierSystem)
		instructions.WriteString("\n반드시 도구 " + classifierToolName + "를 호출해서 결과를 제출해. 추가 텍스트는 출력하지 마.")

		return []*schema.Message{
			schema.SystemMessage(instructions.String()),
			schema.UserMessage(userMessage),
		}, nil
	}))

	chain.AppendChatModel(classifierModel, compose.WithNodeKey(classifierModelNodeKey))

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, msg *schema.Message) (*Decision, error) {
		if msg == nil {
			return nil, fmt.Errorf("empty message")
		}

		payload := extractToolArguments(msg)
		if payload == "" {
			// Some models ignore the forced tool and answer inline.
			payload = msg.Content
		}

		var decision Decision
		if !Salvage(payload, &decision) {
			return reAsk("분류 결과를 읽지 못했어요."), nil
		}
		return coerce(&decision), nil
	}))

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, err
	}

	return &TypeClassifier{
		log:      logger,
		runnable: runnable,
		tools:    tools,
	}, nil
}

// Classify returns a decision for the first message of a session. Transport
// failures surface as errors; every other irregularity is coerced to ask.
func (c *TypeClassifier) Classify(ctx context.Context, userMessage string) (*Decision, error) {
	if c == nil || c.runnable == nil {
		return nil, fmt.Errorf("type classifier unavailable")
	}

	var opts []compose.Option
	if len(c.tools) > 0 {
		opt := compose.WithChatModelOption(
			model.WithTools(c.tools),
			model.WithToolChoice(schema.ToolChoiceForced),
		).DesignateNode(classifierModelNodeKey)
		opts = append(opts, opt)
	}

	return c.runnable.Invoke(ctx, userMessage, opts...)
}

// coerce clamps the decision to the contract: a proceed with a product type
// outside the fixed six, or an unrecognized action, becomes a re-ask.
func coerce(d *Decision) *Decision {
	switch d.Action {
	case ActionProceed:
		if !biz.IsProductType(d.ProductType) {
			return reAsk(d.Reason)
		}
		return d
	case ActionAsk:
		if strings.TrimSpace(d.Question) == "" {
			d.Question = fallbackQuestion
		}
		return d
	default:
		return reAsk(d.Reason)
	}
}

func reAsk(reason string) *Decision {
	return &Decision{Action: ActionAsk, Question: fallbackQuestion, Reason: reason}
}

func extractToolArguments(msg *schema.Message) string {
	for _, call := range msg.ToolCalls {
		if strings.EqualFold(call.Function.Name, classifierToolName) {
			return strings.TrimSpace(call.Function.Arguments)
		}
	}
	return ""
}

func buildDecisionTool() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: classifierToolName,
		Desc: "금융 상품 유형 분류 결과를 제출하는 도구",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"action": {
				Type:     schema.String,
				Desc:     "proceed=유형 확정, ask=되묻기",
				Enum:     []string{ActionProceed, ActionAsk},
				Required: true,
			},
			"product_type": {
				Type: schema.String,
				Desc: "확정한 상품 유형, action=proceed일 때만",
				Enum: biz.ProductTypes,
			},
			"question": {
				Type: schema.String,
				Desc: "action=ask일 때 사용자에게 되물을 질문",
			},
			"reason": {
				Type: schema.String,
				Desc: "간단한 분류 근거",
			},
		}),
	}
}
