package dialog

import (
	"context"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"

	"FinNavi/app/api/advisor/internal/agent/catalog"
	"FinNavi/app/api/advisor/internal/agent/pool"
	"FinNavi/app/api/advisor/internal/agent/score"
	"FinNavi/app/common/consts/biz"
)

// Facts is what fact extraction yields for one user message.
type Facts struct {
	Slots         map[string]float64
	Eligibility   map[string]string
	UserUncertain bool
}

// FactExtractor is the NLU collaborator. A transport failure is returned as
// an error and aborts the turn; a malformed response must be absorbed by the
// implementation and reported as empty Facts.
type FactExtractor interface {
	ExtractFacts(ctx context.Context, productType, lastQuestionKey, userMessage string, history []Message) (Facts, error)
}

// PoolBuilder supplies the turn's candidate pool from the catalog store.
type PoolBuilder interface {
	Build(ctx context.Context, productType string) ([]pool.Candidate, error)
}

// CatalogLoader supplies the active condition catalog.
type CatalogLoader interface {
	Load(ctx context.Context) (catalog.Catalog, error)
}

// Orchestrator drives one dialogue turn: confusion handling, the quick
// yes/no shortcut, NLU fact merging, pool rebuild, and the ask/draft/final
// stage decision. It holds no per-session state; everything lives in the
// State it is handed.
type Orchestrator struct {
	extractor  FactExtractor
	pools      PoolBuilder
	catalogSrc CatalogLoader
	engine     *score.Engine
	slotAskCap int
}

func NewOrchestrator(extractor FactExtractor, pools PoolBuilder, catalogSrc CatalogLoader, engine *score.Engine, slotAskCap int) *Orchestrator {
	return &Orchestrator{
		extractor:  extractor,
		pools:      pools,
		catalogSrc: catalogSrc,
		engine:     engine,
		slotAskCap: slotAskCap,
	}
}

// AdvanceTurn processes one user message against the session state and
// returns the turn's stage result. The state is mutated in place; the caller
// persists it only after a successful return, so an error leaves the stored
// session untouched and the turn can be retried.
func (o *Orchestrator) AdvanceTurn(ctx context.Context, st *State, userMessage string) (*Result, error) {
	st.Normalize()
	productType := st.ProductType

	cat, err := o.catalogSrc.Load(ctx)
	if err != nil {
		return nil, err
	}

	// Confused by the outstanding condition question: explain and re-issue
	// it without advancing anything else.
	if ck, ok := outstandingConditionKey(st); ok && IsConfused(userMessage) {
		if entry, found := cat.Find(ck); found && entry.Explain != "" {
			return &Result{
				Stage: StageAsk,
				Question: &Question{
					Key:     st.LastQuestionKey,
					Text:    st.LastQuestionText,
					Preface: entry.Explain + "\n괜찮으면 이것만 답해줘요 🙂",
				},
			}, nil
		}
	}

	// Literal yes/no/unknown answers the outstanding condition question
	// directly. NLU still runs afterwards; it only ever adds or overwrites.
	if ck, ok := outstandingConditionKey(st); ok {
		if ans := QuickYesNo(userMessage); ans != "" {
			st.Eligibility[ck] = ans
		}
	}

	facts, err := o.extractor.ExtractFacts(ctx, productType, st.LastQuestionKey, userMessage, st.History)
	if err != nil {
		return nil, err
	}
	for k, v := range facts.Slots {
		st.Slots[k] = v
	}
	for k, v := range facts.Eligibility {
		if biz.IsAnswer(v) {
			st.Eligibility[k] = v
		}
	}

	products, err := o.pools.Build(ctx, productType)
	if err != nil {
		return nil, err
	}
	conditionKeys := poolConditionKeys(products, cat)

	logx.WithContext(ctx).Infow("turn facts merged",
		logx.Field("productType", productType),
		logx.Field("poolSize", len(products)),
		logx.Field("conditionKeys", len(conditionKeys)))

	missing := missingSlots(productType, st)
	if len(missing) > 0 {
		allCapped := true
		for _, s := range missing {
			if st.SlotAskCounts[s] < o.slotAskCap {
				allCapped = false
				break
			}
		}

		if !allCapped {
			if slotQ := pickSlotQuestion(st, missing, o.slotAskCap); slotQ != nil {
				return o.draft(st, products, cat,
					"오케이! 일단 일반 조건 기준으로 후보를 먼저 골라봤어요. (확정은 아니고 ‘초안’이에요)", slotQ), nil
			}
		}
		if condQ := pickConditionQuestion(st, conditionKeys, cat); condQ != nil {
			return o.draft(st, products, cat,
				"정보가 딱 맞게 안 잡혀도 괜찮아요. 일단 후보를 잡아뒀고, 이것만 답하면 더 좋아져요 🙂", condQ), nil
		}
	}

	if condQ := pickConditionQuestion(st, conditionKeys, cat); condQ != nil {
		st.LastQuestionKey = condQ.Key
		st.LastQuestionText = condQ.Text
		return &Result{Stage: StageAsk, Question: condQ}, nil
	}

	return o.final(st, products, cat), nil
}

func (o *Orchestrator) draft(st *State, products []pool.Candidate, cat catalog.Catalog, preface string, next *Question) *Result {
	ranked := o.engine.Rank(products, st.ProductType, cat, st.Eligibility)
	st.DraftShown = true
	st.LastQuestionKey = next.Key
	st.LastQuestionText = next.Text
	return &Result{
		Stage:          StageDraft,
		Preface:        preface,
		CandidatesText: candidatesToText(ranked),
		Draft:          ranked,
		NextQuestion:   next,
	}
}

func (o *Orchestrator) final(st *State, products []pool.Candidate, cat catalog.Catalog) *Result {
	ranked := o.engine.Rank(products, st.ProductType, cat, st.Eligibility)

	var reason string
	switch st.ProductType {
	case biz.ProductSaving:
		reason = "정기적으로 모으는 목적이라 적금이 자연스러워요. (DB 기준 금리/조건을 같이 봤어요)"
	case biz.ProductDeposit:
		reason = "목돈을 한 번에 맡기는 목적이라 예금이 자연스러워요. (DB 기준 금리/조건을 같이 봤어요)"
	default:
		reason = "목적에 맞는 유형으로 DB 기준(금리/조건)에서 골랐어요."
	}

	notes := "급여이체/카드실적/비대면 같은 조건에 따라 금리가 더 올라갈 수 있어요."
	if biz.IsLoan(st.ProductType) {
		notes = "우대조건(소득증빙/거래실적 등)에 따라 실제 금리/한도가 달라질 수 있어요."
	}

	recs := make([]RecommendedProduct, 0, len(ranked))
	for _, s := range ranked {
		c := s.Candidate
		recs = append(recs, RecommendedProduct{
			Bank:                    c.Provider,
			Name:                    c.Name,
			Rate:                    formatRate(c.Rate),
			SpecialConditionSummary: catalog.Summarize(c.SpecialConditionRaw, cat),
			SpecialConditionRaw:     c.SpecialConditionRaw,
			WhyRecommended:          "현재 답변 기준으로 조건을 맞출 가능성이 높고, 금리/최저금리 기준도 상위권이라서요.",
		})
	}

	st.LastQuestionKey = ""
	st.LastQuestionText = ""

	return &Result{
		Stage: StageFinal,
		Final: &FinalRecommendation{
			ProductType: st.ProductType,
			Reason:      reason,
			Products:    recs,
			Notes:       notes,
			Collected: CollectedFacts{
				Slots:       st.Slots,
				Eligibility: st.Eligibility,
			},
		},
	}
}

func outstandingConditionKey(st *State) (string, bool) {
	if strings.HasPrefix(st.LastQuestionKey, condKeyPrefix) {
		return strings.TrimPrefix(st.LastQuestionKey, condKeyPrefix), true
	}
	return "", false
}

// poolConditionKeys matches the catalog against the pool's concatenated
// condition text, yielding only the keys a question could actually affect.
func poolConditionKeys(products []pool.Candidate, cat catalog.Catalog) []string {
	var b strings.Builder
	for _, p := range products {
		b.WriteString(p.SpecialConditionRaw)
		b.WriteByte('\n')
	}
	return catalog.FindKeys(b.String(), cat)
}

func missingSlots(productType string, st *State) []string {
	required := RequiredSlotsFor(productType)
	missing := make([]string, 0, len(required))
	for _, s := range required {
		if _, ok := st.Slots[s]; !ok {
			missing = append(missing, s)
		}
	}
	return missing
}
