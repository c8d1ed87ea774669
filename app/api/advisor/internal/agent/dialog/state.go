package dialog

// Message is one prior exchange line kept for NLU context.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// State is the per-conversation record. It is owned by the front door per
// session id, handed to the orchestrator for the duration of one turn, and
// mutated only inside that turn. It round-trips through JSON in the session
// store, so every field carries a tag and Normalize repairs nil maps after
// decode.
type State struct {
	ProductType      string             `json:"product_type"`
	Slots            map[string]float64 `json:"slots"`
	Eligibility      map[string]string  `json:"eligibility"`
	Asked            map[string]bool    `json:"asked"`
	SlotAskCounts    map[string]int     `json:"slot_ask_counts"`
	LastQuestionKey  string             `json:"last_question_key"`
	LastQuestionText string             `json:"last_question_text"`
	DraftShown       bool               `json:"draft_shown"`
	History          []Message          `json:"history"`
}

const historyLimit = 20

func NewState() *State {
	s := &State{}
	s.Normalize()
	return s
}

// Normalize makes every map usable. JSON decoding leaves absent maps nil.
func (s *State) Normalize() {
	if s.Slots == nil {
		s.Slots = make(map[string]float64)
	}
	if s.Eligibility == nil {
		s.Eligibility = make(map[string]string)
	}
	if s.Asked == nil {
		s.Asked = make(map[string]bool)
	}
	if s.SlotAskCounts == nil {
		s.SlotAskCounts = make(map[string]int)
	}
}

// AppendHistory records one exchange line, dropping the oldest beyond the
// retention limit.
func (s *State) AppendHistory(role, content string) {
	s.History = append(s.History, Message{Role: role, Content: content})
	if len(s.History) > historyLimit {
		s.History = s.History[len(s.History)-historyLimit:]
	}
}
