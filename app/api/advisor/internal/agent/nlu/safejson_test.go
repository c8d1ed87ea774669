package nlu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalvage(t *testing.T) {
	type payload struct {
		Action string `json:"action"`
		Count  int    `json:"count"`
	}

	t.Run("clean json", func(t *testing.T) {
		var p payload
		require.True(t, Salvage(`{"action":"ask","count":2}`, &p))
		assert.Equal(t, "ask", p.Action)
		assert.Equal(t, 2, p.Count)
	})

	t.Run("json wrapped in prose", func(t *testing.T) {
		var p payload
		ok := Salvage("알겠습니다! 결과는 다음과 같아요.\n{\"action\":\"proceed\",\"count\":1}\n도움이 되었길 바라요.", &p)
		require.True(t, ok)
		assert.Equal(t, "proceed", p.Action)
	})

	t.Run("widest brace span wins", func(t *testing.T) {
		var m map[string]any
		ok := Salvage(`전처리 {"slots":{"monthly_amount":300000}} 끝`, &m)
		require.True(t, ok)
		assert.Contains(t, m, "slots")
	})

	t.Run("rejects non json", func(t *testing.T) {
		var p payload
		assert.False(t, Salvage("그냥 문장입니다", &p))
		assert.False(t, Salvage("", &p))
		assert.False(t, Salvage("   ", &p))
		assert.False(t, Salvage("{깨진 json", &p))
	})
}
