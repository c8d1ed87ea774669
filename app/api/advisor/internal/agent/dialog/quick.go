package dialog

import (
	"strings"

	"FinNavi/app/common/consts/biz"
)

var (
	yesTokens = map[string]struct{}{
		"예": {}, "네": {}, "응": {}, "ㅇㅇ": {}, "가능": {},
		"할게": {}, "할수있어": {}, "할 수 있어": {}, "가능해": {},
	}
	noTokens = map[string]struct{}{
		"아니오": {}, "아니": {}, "못해": {}, "불가": {},
		"어려워": {}, "안돼": {}, "안 돼": {},
	}
	unknownTokens = map[string]struct{}{
		"모름": {}, "몰라": {}, "잘 모르겠어": {}, "글쎄": {},
		"애매": {}, "대충": {}, "잘 모르겠다": {},
	}

	confusionMarkers = []string{"무슨", "뭐야", "이해", "잘 모르", "설명", "어떤 뜻", "헷갈", "??", "어케"}
)

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// QuickYesNo maps a short literal answer onto an eligibility resolution
// without an NLU round trip. Returns "" when the message is not one of the
// known tokens.
func QuickYesNo(message string) string {
	t := normalize(message)
	if _, ok := yesTokens[t]; ok {
		return biz.AnswerYes
	}
	if _, ok := noTokens[t]; ok {
		return biz.AnswerNo
	}
	if _, ok := unknownTokens[t]; ok {
		return biz.AnswerUnknown
	}
	return ""
}

// IsConfused reports whether the message reads as "I don't understand the
// question" rather than as an answer.
func IsConfused(message string) bool {
	t := normalize(message)
	for _, m := range confusionMarkers {
		if strings.Contains(t, m) {
			return true
		}
	}
	return false
}
