package syncer

import (
	"context"
	"crypto/sha1"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"

	"FinNavi/app/api/advisor/internal/agent/nlu"
	"FinNavi/app/dal/bank"
)

const curatorSystem = `너는 금융상품 '우대조건(spcl_cnd)' 문구를 분석해, 재사용 가능한 '조건 카탈로그' 항목을 만드는 역할이야.

입력 JSON:
{
  "samples": ["우대조건 문구1", "우대조건 문구2", ...],
  "existing_keys": ["salary_transfer", ...]
}

출력은 반드시 JSON만:
{
  "items": [
    {
      "key": "snake_case_english",
      "patterns": ["한국어 핵심 키워드/짧은 구", "..."],
      "question": "사용자에게 예/아니오/모름으로 답할 수 있게 묻는 한 문장",
      "explain": "짧은 설명(없으면 빈 문자열)",
      "confidence": 0.0~1.0
    }
  ]
}

규칙:
- items는 최대 10개.
- key는 영문 소문자 + 숫자 + 언더스코어만. (예: salary_transfer)
- patterns는 2~8개, 각 2~10자 정도의 짧은 표현. (너무 긴 문장 금지)
- question은 15~80자 정도, 끝에 (예/아니오/모름) 포함 권장.
- existing_keys와 충돌하는 key는 만들지 마.
- 너무 상품 특정적인 패턴(특정 상품명/은행명 등)은 patterns에 넣지 마.
- '우대금리', '추가금리' 같은 너무 범용 패턴은 피하고, 실제 조건을 대표하는 단어를 써.`

const (
	maxUnmatchedSamples = 60
	maxNewItems         = 10
	minConfidence       = 0.78
	sampleScanLimit     = 2000
)

var (
	keyPattern      = regexp.MustCompile(`^[a-z0-9_]{3,40}$`)
	keyScrubPattern = regexp.MustCompile(`[^a-z0-9_]+`)
	underscoreRuns  = regexp.MustCompile(`_+`)

	genericPatterns = map[string]struct{}{
		"우대": {}, "우대금리": {}, "추가금리": {}, "금리": {}, "해당": {},
		"조건": {}, "적용": {}, "가입": {}, "이용": {},
	}
)

// Curator grows the condition catalog from condition texts no existing
// pattern matches. Every proposal passes a validation gate before it becomes
// visible to the matcher; a rejected batch costs nothing but the model call.
type Curator struct {
	chatModel model.BaseChatModel
	products  bank.ProductsBaseModel
	catalog   bank.ConditionCatalogModel
}

func NewCurator(chatModel model.BaseChatModel, products bank.ProductsBaseModel, catalog bank.ConditionCatalogModel) *Curator {
	return &Curator{chatModel: chatModel, products: products, catalog: catalog}
}

type proposal struct {
	Key        string   `json:"key"`
	Patterns   []string `json:"patterns"`
	Question   string   `json:"question"`
	Explain    string   `json:"explain"`
	Confidence float64  `json:"confidence"`
}

type proposalBatch struct {
	Items []proposal `json:"items"`
}

// Refresh runs one curation round and reports how many entries were added
// and how many proposals the gate rejected.
func (c *Curator) Refresh(ctx context.Context) (added, skipped int, err error) {
	active, err := c.catalog.ListActive(ctx)
	if err != nil {
		return 0, 0, err
	}

	existingKeys := make([]string, 0, len(active))
	activePatterns := make([][]string, 0, len(active))
	for _, row := range active {
		existingKeys = append(existingKeys, row.Key)
		var pats []string
		if json.Unmarshal([]byte(row.PatternsJson), &pats) == nil {
			activePatterns = append(activePatterns, pats)
		}
	}

	texts, err := c.products.ActiveConditionTexts(ctx, sampleScanLimit)
	if err != nil {
		return 0, 0, err
	}

	unmatched := make([]string, 0, maxUnmatchedSamples)
	for _, txt := range texts {
		if matchedByAny(txt, activePatterns) {
			continue
		}
		unmatched = append(unmatched, txt)
		if len(unmatched) >= maxUnmatchedSamples {
			break
		}
	}
	if len(unmatched) == 0 {
		return 0, 0, nil
	}

	payload, err := json.Marshal(map[string]any{
		"samples":       unmatched,
		"existing_keys": existingKeys,
	})
	if err != nil {
		return 0, 0, err
	}

	msg, err := c.chatModel.Generate(ctx, []*schema.Message{
		schema.SystemMessage(curatorSystem),
		schema.UserMessage(string(payload)),
	})
	if err != nil {
		return 0, 0, err
	}

	var batch proposalBatch
	if msg == nil || !nlu.Salvage(msg.Content, &batch) {
		logx.WithContext(ctx).Infow("curator output unusable, skipping round")
		return 0, 0, nil
	}

	all, err := c.catalog.ListAll(ctx)
	if err != nil {
		return 0, 0, err
	}
	existingByKey := make(map[string]struct{}, len(all))
	existingHashes := make(map[string]struct{}, len(all))
	for _, row := range all {
		existingByKey[row.Key] = struct{}{}
		var pats []string
		if json.Unmarshal([]byte(row.PatternsJson), &pats) == nil {
			existingHashes[patternsHash(pats)] = struct{}{}
		}
	}

	items := batch.Items
	if len(items) > maxNewItems {
		items = items[:maxNewItems]
	}
	for _, it := range items {
		entry, ok := vet(it, existingByKey, existingHashes)
		if !ok {
			skipped++
			continue
		}
		if _, err := c.catalog.Insert(ctx, entry); err != nil {
			return added, skipped, err
		}
		existingByKey[entry.Key] = struct{}{}
		var pats []string
		_ = json.Unmarshal([]byte(entry.PatternsJson), &pats)
		existingHashes[patternsHash(pats)] = struct{}{}
		added++
	}

	return added, skipped, nil
}

// vet applies the validation gate to one proposal.
func vet(it proposal, existingByKey, existingHashes map[string]struct{}) (*bank.ConditionCatalog, bool) {
	key := normKey(it.Key)
	if key == "" || !keyPattern.MatchString(key) {
		return nil, false
	}
	if _, dup := existingByKey[key]; dup {
		return nil, false
	}
	if it.Confidence < minConfidence {
		return nil, false
	}

	patterns := cleanPatterns(it.Patterns)
	if len(patterns) < 2 {
		return nil, false
	}
	if _, dup := existingHashes[patternsHash(patterns)]; dup {
		return nil, false
	}

	question := strings.TrimSpace(it.Question)
	qLen := utf8.RuneCountInString(question)
	if qLen < 10 || qLen > 120 {
		return nil, false
	}
	if !strings.Contains(question, "(예/아니오/모름)") && qLen <= 100 {
		question += " (예/아니오/모름)"
	}

	raw, err := json.Marshal(patterns)
	if err != nil {
		return nil, false
	}
	explain := strings.TrimSpace(it.Explain)
	return &bank.ConditionCatalog{
		Key:          key,
		PatternsJson: string(raw),
		Question:     question,
		Explain:      sql.NullString{String: explain, Valid: explain != ""},
		IsActive:     1,
	}, true
}

func matchedByAny(text string, patternSets [][]string) bool {
	for _, pats := range patternSets {
		for _, p := range pats {
			if p != "" && strings.Contains(text, p) {
				return true
			}
		}
	}
	return false
}

func normKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = keyScrubPattern.ReplaceAllString(s, "_")
	s = underscoreRuns.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

func isGenericPattern(p string) bool {
	p = strings.TrimSpace(p)
	if _, ok := genericPatterns[p]; ok {
		return true
	}
	return utf8.RuneCountInString(p) < 2
}

// cleanPatterns trims, bounds, de-generalizes and de-duplicates a proposed
// pattern list, preserving order.
func cleanPatterns(patterns []string) []string {
	out := make([]string, 0, len(patterns))
	seen := make(map[string]struct{}, len(patterns))
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" || utf8.RuneCountInString(p) > 12 || isGenericPattern(p) {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// patternsHash fingerprints a pattern set independent of order, used to
// reject proposals that re-spell an existing entry.
func patternsHash(patterns []string) string {
	sorted := append([]string(nil), patterns...)
	sort.Strings(sorted)
	sum := sha1.Sum([]byte(strings.Join(sorted, "|")))
	return hex.EncodeToString(sum[:])[:10]
}
