package score

import (
	"sort"

	"FinNavi/app/api/advisor/internal/agent/catalog"
	"FinNavi/app/api/advisor/internal/agent/pool"
	"FinNavi/app/common/consts/biz"
)

// Config holds the scoring weights. Zero values are not usable; callers load
// them from service configuration.
type Config struct {
	YesBonus            float64
	NoPenalty           float64
	ComplexityPenalty   float64
	ComplexityThreshold int
	TopK                int
}

// Scored pairs a candidate with its computed score and the catalog keys its
// condition text matched this turn.
type Scored struct {
	Candidate   pool.Candidate
	Score       float64
	MatchedKeys []string
}

// Engine ranks candidates deterministically from the pool, the catalog and the
// user's eligibility answers. It holds no per-session state.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Score computes one candidate's score. The base is the candidate's rate,
// negated for loan products so that cheaper loans rank higher under the same
// descending sort. Each matched condition the user confirmed adds a bonus,
// each denied one subtracts a penalty, and a flat complexity penalty applies
// when the product matches at least the threshold number of keys.
func (e *Engine) Score(c pool.Candidate, productType string, cat catalog.Catalog, eligibility map[string]string) Scored {
	keys := catalog.FindKeys(c.SpecialConditionRaw, cat)

	base := c.Rate
	if biz.IsLoan(productType) {
		base = -base
	}

	s := base
	for _, k := range keys {
		switch eligibility[k] {
		case biz.AnswerYes:
			s += e.cfg.YesBonus
		case biz.AnswerNo:
			s -= e.cfg.NoPenalty
		}
	}
	if len(keys) >= e.cfg.ComplexityThreshold {
		s -= e.cfg.ComplexityPenalty
	}

	return Scored{Candidate: c, Score: s, MatchedKeys: keys}
}

// Rank scores every candidate and returns the top K by score. The sort is
// stable over the pool's input order, so equal scores keep pool order and the
// whole ranking is reproducible for a fixed pool, catalog and answer set.
func (e *Engine) Rank(candidates []pool.Candidate, productType string, cat catalog.Catalog, eligibility map[string]string) []Scored {
	deduped := pool.Dedupe(candidates)
	scored := make([]Scored, 0, len(deduped))
	for _, c := range deduped {
		scored = append(scored, e.Score(c, productType, cat, eligibility))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if e.cfg.TopK > 0 && len(scored) > e.cfg.TopK {
		scored = scored[:e.cfg.TopK]
	}
	return scored
}
