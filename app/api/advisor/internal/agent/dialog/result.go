package dialog

import (
	"strconv"
	"strings"

	"FinNavi/app/api/advisor/internal/agent/score"
)

// Stage values of a turn result.
const (
	StageAsk   = "ask"
	StageDraft = "draft"
	StageFinal = "final"
)

// Result is what one turn produces. Exactly one of the stage payloads is
// populated: Question for ask, Preface/CandidatesText/Draft/NextQuestion for
// draft, Final for final.
type Result struct {
	Stage          string
	Question       *Question
	Preface        string
	CandidatesText string
	Draft          []score.Scored
	NextQuestion   *Question
	Final          *FinalRecommendation
}

// FinalRecommendation is the terminal payload, rendered to the user as JSON.
type FinalRecommendation struct {
	ProductType string               `json:"product_type"`
	Reason      string               `json:"reason"`
	Products    []RecommendedProduct `json:"products"`
	Notes       string               `json:"notes"`
	Collected   CollectedFacts       `json:"collected"`
}

type RecommendedProduct struct {
	Bank                    string `json:"bank"`
	Name                    string `json:"name"`
	Rate                    string `json:"rate"`
	SpecialConditionSummary string `json:"special_condition_summary"`
	SpecialConditionRaw     string `json:"special_condition_raw"`
	WhyRecommended          string `json:"why_recommended"`
}

type CollectedFacts struct {
	Slots       map[string]float64 `json:"slots"`
	Eligibility map[string]string  `json:"eligibility"`
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'g', -1, 64)
}

func candidatesToText(cands []score.Scored) string {
	lines := make([]string, 0, len(cands))
	for i, s := range cands {
		c := s.Candidate
		lines = append(lines, strconv.Itoa(i+1)+". "+c.Provider+" - "+c.Name+" (기준: "+formatRate(c.Rate)+")")
	}
	return strings.Join(lines, "\n")
}
