package pool

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	byRate []Candidate
	bySpcl []Candidate
}

func (f *fakeStore) TopByRate(_ context.Context, _ string, limit int64) ([]Candidate, error) {
	if int64(len(f.byRate)) > limit {
		return f.byRate[:limit], nil
	}
	return f.byRate, nil
}

func (f *fakeStore) TopByConditionLength(_ context.Context, _ string, limit int64) ([]Candidate, error) {
	if int64(len(f.bySpcl)) > limit {
		return f.bySpcl[:limit], nil
	}
	return f.bySpcl, nil
}

func cand(id, provider, name string, rate float64) Candidate {
	return Candidate{ProductID: id, Provider: provider, Name: name, Rate: rate}
}

func TestBuild(t *testing.T) {
	t.Run("union keeps rate list order first", func(t *testing.T) {
		store := &fakeStore{
			byRate: []Candidate{cand("a", "은행A", "상품1", 4.0), cand("b", "은행B", "상품2", 3.5)},
			bySpcl: []Candidate{cand("c", "은행C", "상품3", 2.0), cand("a", "은행A", "상품1", 4.0)},
		}
		b := NewBuilder(store, 250, 250, 3)

		got, err := b.Build(context.Background(), "적금")
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "a", got[0].ProductID)
		assert.Equal(t, "b", got[1].ProductID)
		assert.Equal(t, "c", got[2].ProductID)
	})

	t.Run("never returns duplicate identities", func(t *testing.T) {
		store := &fakeStore{
			byRate: []Candidate{cand("a", "은행A", "상품1", 4.0), cand("a", "은행A", "상품1", 4.0)},
			bySpcl: []Candidate{cand("a", "은행A", "상품1", 4.0)},
		}
		b := NewBuilder(store, 250, 250, 3)

		got, err := b.Build(context.Background(), "적금")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("provider diversity cut never adds beyond cap", func(t *testing.T) {
		store := &fakeStore{
			byRate: []Candidate{
				cand("a1", "은행A", "상품1", 4.0),
				cand("a2", "은행A", "상품2", 3.9),
				cand("a3", "은행A", "상품3", 3.8),
				cand("b1", "은행B", "상품4", 3.7),
			},
		}
		b := NewBuilder(store, 250, 250, 1)

		got, err := b.Build(context.Background(), "적금")
		require.NoError(t, err)
		// the per-provider list is a subset of the rate list, so the union
		// adds nothing new; the rate list itself survives intact
		assert.Len(t, got, 4)
	})

	t.Run("respects store limits", func(t *testing.T) {
		store := &fakeStore{
			byRate: []Candidate{cand("a", "은행A", "상품1", 4.0), cand("b", "은행B", "상품2", 3.5)},
		}
		b := NewBuilder(store, 1, 1, 3)

		got, err := b.Build(context.Background(), "적금")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestDedupe(t *testing.T) {
	t.Run("falls back to provider and name without product id", func(t *testing.T) {
		in := []Candidate{
			{Provider: "은행A", Name: "상품1", Rate: 4.0},
			{Provider: "은행A", Name: "상품1", Rate: 4.0},
			{Provider: "은행A", Name: "상품2", Rate: 3.0},
		}
		out := Dedupe(in)
		require.Len(t, out, 2)
		assert.Equal(t, "상품1", out[0].Name)
		assert.Equal(t, "상품2", out[1].Name)
	})

	t.Run("keeps first occurrence", func(t *testing.T) {
		in := []Candidate{cand("x", "은행A", "상품1", 4.0), cand("x", "은행B", "다른이름", 1.0)}
		out := Dedupe(in)
		require.Len(t, out, 1)
		assert.Equal(t, "은행A", out[0].Provider)
	})
}
