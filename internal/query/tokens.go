package query

import (
	"regexp"
	"strings"
)

// defaultStopWords are the filler words suppliers type around the thing they
// actually mean: completion and politeness particles, mostly. Anything left
// after stripping these is treated as a literal search key.
var defaultStopWords = map[string]struct{}{}

func init() {
	words := []string{
		// completion / politeness particles
		"했어", "했나요", "했냐", "했나여", "있나요", "있나", "있나여", "있는지",
		"작업", "완료", "조회", "확인", "좀", "해주세요", "해줘", "주세요",
		"있었나", "있었나요", "되었나", "되었나요", "되었나여", "다", "되었어",
		"끝났어", "끝나", "됐나", "다되었", "다됐", "다되었나요", "다되었나",
		"완성", "완료됐", "완료되었나요", "완료됐나요", "완료되었나", "됐나요",
		"했나", "있다", "했니", "있어", "작업했", "작업되었",
		"작업완료", "작업다되었", "작업됐", "했을까", "되었을까", "있을까",
		// intent nouns — classified from the raw query, never search keys
		"인수", "요청", "수량", "몇건", "내역", "보여", "보여줘", "알려줘", "뭐야",
		"발주", "발주번호", "주문번호", "아이템", "품목", "제품명", "패키지",
		"포장", "브랜드", "업체명", "규격", "표",
		// english filler
		"did", "the", "it", "get", "got", "is", "was", "are", "were", "a", "an",
		"what", "whats", "how", "many", "much", "show", "me", "please", "done",
		"complete", "completed", "work", "worked", "on", "of", "for", "total",
		"quantity", "qty", "receipt", "received", "receive", "request",
		"requested", "order", "item", "items", "package", "brand", "company",
		"name", "list", "to",
	}
	for _, w := range words {
		defaultStopWords[w] = struct{}{}
	}
}

var (
	tokenSplitRe = regexp.MustCompile(`[^0-9a-z가-힣]+`)
	codeTokenRe  = regexp.MustCompile(`^[a-z0-9]{5,}$`)
)

// ExtractTokens pulls the literal search keys out of a query: lowercase,
// erase date expressions, split on anything outside digits/latin/Hangul,
// drop stop words. Tokens of five or more alphanumeric characters always
// survive — those are order and part codes, never filler.
func ExtractTokens(text string, extraStops ...string) []string {
	s := StripDates(strings.ToLower(text))

	var tokens []string
	for _, t := range tokenSplitRe.Split(s, -1) {
		if t == "" {
			continue
		}
		if codeTokenRe.MatchString(t) {
			tokens = append(tokens, t)
			continue
		}
		if _, stop := defaultStopWords[t]; stop {
			continue
		}
		if containsWord(extraStops, t) {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}

func containsWord(words []string, w string) bool {
	for _, x := range words {
		if strings.ToLower(x) == w {
			return true
		}
	}
	return false
}
