package session

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FinNavi/app/api/advisor/internal/agent/dialog"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("miss returns nil without error", func(t *testing.T) {
		s := NewMemoryStore()
		st, err := s.Get(ctx, "absent")
		require.NoError(t, err)
		assert.Nil(t, st)
	})

	t.Run("roundtrip preserves the state", func(t *testing.T) {
		s := NewMemoryStore()
		st := dialog.NewState()
		st.ProductType = "적금"
		st.Slots["monthly_amount"] = 300000
		st.Eligibility["salary_transfer"] = "yes"
		st.Asked["slot:monthly_amount"] = true
		st.SlotAskCounts["monthly_amount"] = 1
		st.LastQuestionKey = "cond:salary_transfer"
		st.AppendHistory("user", "적금 추천해줘")

		require.NoError(t, s.Put(ctx, "sid", st))

		got, err := s.Get(ctx, "sid")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, st.ProductType, got.ProductType)
		assert.Equal(t, st.Slots, got.Slots)
		assert.Equal(t, st.Eligibility, got.Eligibility)
		assert.Equal(t, st.Asked, got.Asked)
		assert.Equal(t, st.SlotAskCounts, got.SlotAskCounts)
		assert.Equal(t, st.LastQuestionKey, got.LastQuestionKey)
		assert.Equal(t, st.History, got.History)
	})

	t.Run("stored state is a copy", func(t *testing.T) {
		s := NewMemoryStore()
		st := dialog.NewState()
		st.Slots["monthly_amount"] = 1
		require.NoError(t, s.Put(ctx, "sid", st))

		st.Slots["monthly_amount"] = 999

		got, err := s.Get(ctx, "sid")
		require.NoError(t, err)
		assert.Equal(t, 1.0, got.Slots["monthly_amount"])

		// and each Get hands out an independent state
		other, err := s.Get(ctx, "sid")
		require.NoError(t, err)
		got.Slots["monthly_amount"] = 5
		assert.Equal(t, 1.0, other.Slots["monthly_amount"])
	})

	t.Run("delete forgets the session", func(t *testing.T) {
		s := NewMemoryStore()
		require.NoError(t, s.Put(ctx, "sid", dialog.NewState()))
		require.NoError(t, s.Delete(ctx, "sid"))
		got, err := s.Get(ctx, "sid")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestLocker(t *testing.T) {
	t.Run("serializes the same session", func(t *testing.T) {
		l := NewLocker()
		var mu sync.Mutex
		counter := 0

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock := l.Lock("sid")
				defer unlock()
				mu.Lock()
				counter++
				mu.Unlock()
			}()
		}
		wg.Wait()
		assert.Equal(t, 50, counter)
	})

	t.Run("different sessions do not block each other", func(t *testing.T) {
		l := NewLocker()
		unlockA := l.Lock("a")
		done := make(chan struct{})
		go func() {
			unlockB := l.Lock("b")
			unlockB()
			close(done)
		}()
		<-done
		unlockA()
	})

	t.Run("entries are released after the last holder", func(t *testing.T) {
		l := NewLocker()
		unlock := l.Lock("sid")
		unlock()
		l.mu.Lock()
		assert.Empty(t, l.entries)
		l.mu.Unlock()
	})
}
