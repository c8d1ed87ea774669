package nlu

import (
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FinNavi/app/common/consts/biz"
)

func TestCoerce(t *testing.T) {
	t.Run("proceed with a known type passes through", func(t *testing.T) {
		d := coerce(&Decision{Action: ActionProceed, ProductType: biz.ProductSaving})
		assert.Equal(t, ActionProceed, d.Action)
		assert.Equal(t, biz.ProductSaving, d.ProductType)
	})

	t.Run("proceed with an unknown type becomes a re-ask", func(t *testing.T) {
		d := coerce(&Decision{Action: ActionProceed, ProductType: "비트코인"})
		assert.Equal(t, ActionAsk, d.Action)
		assert.Equal(t, fallbackQuestion, d.Question)
	})

	t.Run("ask without a question gets the fallback", func(t *testing.T) {
		d := coerce(&Decision{Action: ActionAsk, Question: "  "})
		assert.Equal(t, ActionAsk, d.Action)
		assert.Equal(t, fallbackQuestion, d.Question)
	})

	t.Run("ask keeps its own question", func(t *testing.T) {
		d := coerce(&Decision{Action: ActionAsk, Question: "모으기인가요, 빌리기인가요?"})
		assert.Equal(t, "모으기인가요, 빌리기인가요?", d.Question)
	})

	t.Run("unknown action becomes a re-ask", func(t *testing.T) {
		d := coerce(&Decision{Action: "panic"})
		assert.Equal(t, ActionAsk, d.Action)
		assert.Equal(t, fallbackQuestion, d.Question)
	})
}

func TestExtractToolArguments(t *testing.T) {
	t.Run("picks the decision tool call", func(t *testing.T) {
		msg := &schema.Message{
			ToolCalls: []schema.ToolCall{
				{Function: schema.FunctionCall{Name: "other_tool", Arguments: `{"x":1}`}},
				{Function: schema.FunctionCall{Name: classifierToolName, Arguments: ` {"action":"ask"} `}},
			},
		}
		assert.Equal(t, `{"action":"ask"}`, extractToolArguments(msg))
	})

	t.Run("tool name match is case insensitive", func(t *testing.T) {
		msg := &schema.Message{
			ToolCalls: []schema.ToolCall{
				{Function: schema.FunctionCall{Name: "Submit_Type_Decision", Arguments: `{"action":"proceed"}`}},
			},
		}
		assert.Equal(t, `{"action":"proceed"}`, extractToolArguments(msg))
	})

	t.Run("empty without a matching call", func(t *testing.T) {
		assert.Equal(t, "", extractToolArguments(&schema.Message{}))
	})
}

func TestBuildDecisionTool(t *testing.T) {
	tool := buildDecisionTool()
	require.NotNil(t, tool)
	assert.Equal(t, classifierToolName, tool.Name)
	assert.NotNil(t, tool.ParamsOneOf)
}
