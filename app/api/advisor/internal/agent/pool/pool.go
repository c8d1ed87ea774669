package pool

import (
	"context"
	"fmt"
)

// Candidate is one product under consideration, read fresh from the catalog
// store each turn and never mutated.
type Candidate struct {
	ProductID           string
	Provider            string
	Name                string
	Rate                float64
	SpecialConditionRaw string
}

// identity dedupes merged pools: product id when present, else provider+name.
func (c Candidate) identity() string {
	if c.ProductID != "" {
		return c.ProductID
	}
	return c.Provider + "\x00" + c.Name
}

// Store is the read-only slice of the catalog store the builder needs.
type Store interface {
	TopByRate(ctx context.Context, productType string, limit int64) ([]Candidate, error)
	TopByConditionLength(ctx context.Context, productType string, limit int64) ([]Candidate, error)
}

// Builder assembles the candidate pool as a union of three selections: a
// top-N by rate alone would systematically hide products whose base rate is
// modest but whose eligibility bonus is large, and would starve the condition
// question pipeline.
type Builder struct {
	store       Store
	rateLimit   int64
	spclLimit   int64
	perProvider int
}

func NewBuilder(store Store, rateLimit, spclLimit int64, perProvider int) *Builder {
	return &Builder{
		store:       store,
		rateLimit:   rateLimit,
		spclLimit:   spclLimit,
		perProvider: perProvider,
	}
}

// Build returns the deduplicated union of the rate-ordered list, the
// condition-richness list and a per-provider diversity cut of the rate list,
// preserving first-seen order with the rate list first.
func (b *Builder) Build(ctx context.Context, productType string) ([]Candidate, error) {
	rateList, err := b.store.TopByRate(ctx, productType, b.rateLimit)
	if err != nil {
		return nil, fmt.Errorf("candidate pool: top by rate: %w", err)
	}

	spclList, err := b.store.TopByConditionLength(ctx, productType, b.spclLimit)
	if err != nil {
		return nil, fmt.Errorf("candidate pool: top by condition length: %w", err)
	}

	perProviderList := make([]Candidate, 0, len(rateList))
	providerCount := make(map[string]int)
	for _, c := range rateList {
		if providerCount[c.Provider] >= b.perProvider {
			continue
		}
		providerCount[c.Provider]++
		perProviderList = append(perProviderList, c)
	}

	combined := make([]Candidate, 0, len(rateList)+len(spclList)+len(perProviderList))
	combined = append(combined, rateList...)
	combined = append(combined, spclList...)
	combined = append(combined, perProviderList...)
	return Dedupe(combined), nil
}

// Dedupe removes repeated candidates, keeping the first occurrence.
func Dedupe(list []Candidate) []Candidate {
	seen := make(map[string]struct{}, len(list))
	out := make([]Candidate, 0, len(list))
	for _, c := range list {
		id := c.identity()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, c)
	}
	return out
}
