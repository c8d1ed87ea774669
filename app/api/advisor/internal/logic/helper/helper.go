package helper

import (
	"encoding/json"

	"FinNavi/app/api/advisor/internal/agent/dialog"
)

const (
	defaultAskPreface      = "좋아요. 딱 한 가지만 확인할게요 🙂"
	defaultDraftPreface    = "일단 조건이 덜 까다로운 후보를 먼저 골라봤어요. (확정은 아니고 ‘초안’이에요)"
	defaultQuestionPreface = "이 후보들 중에서 더 딱 맞추려면 이것만 알려주세요 🙂"
)

// RenderReply flattens a turn result into the single chat reply string. Final
// recommendations are rendered as JSON so the client can present them
// structurally.
func RenderReply(out *dialog.Result) (string, error) {
	switch out.Stage {
	case dialog.StageAsk:
		q := out.Question
		preface := q.Preface
		if preface == "" {
			preface = defaultAskPreface
		}
		return preface + "\n" + q.Text, nil

	case dialog.StageDraft:
		preface := out.Preface
		if preface == "" {
			preface = defaultDraftPreface
		}
		reply := preface + "\n\n" + out.CandidatesText
		if out.NextQuestion != nil {
			qpref := out.NextQuestion.Preface
			if qpref == "" {
				qpref = defaultQuestionPreface
			}
			reply += "\n\n" + qpref + "\n" + out.NextQuestion.Text
		}
		return reply, nil

	default:
		raw, err := json.Marshal(out.Final)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
}
