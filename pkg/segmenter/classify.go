package segmenter

import (
	"strings"
	"unicode"

	"github.com/shouni/go-webtoon-kit/pkg/domain"
)

// action level の閾値です。
const (
	highActionHits   = 3
	mediumActionHits = 1
)

// Classify はシーン本文から mood / action level / action type を判定します。
// 本文だけの純粋関数で、同じ本文には常に同じ結果を返します。
func Classify(text string) domain.Classification {
	tokens := tokenize(text)
	actionHits := countHits(tokens, actionForms)

	return domain.Classification{
		Mood:        detectMood(tokens),
		ActionLevel: actionLevel(actionHits),
		ActionType:  actionType(text, tokens, actionHits),
	}
}

// tokenize は本文を小文字の単語列に分解します。
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

// countHits は語彙に含まれるトークンの出現回数を数えます。
func countHits(tokens []string, forms map[string]struct{}) int {
	hits := 0
	for _, tok := range tokens {
		if _, ok := forms[tok]; ok {
			hits++
		}
	}
	return hits
}

func detectMood(tokens []string) domain.Mood {
	best := domain.MoodNeutral
	bestHits := 0
	for i, entry := range moodTable {
		// 同点は先勝ちにするため、厳密に上回ったときだけ更新する
		if hits := countHits(tokens, moodForms[i]); hits > bestHits {
			best = entry.mood
			bestHits = hits
		}
	}
	return best
}

func actionLevel(hits int) domain.ActionLevel {
	switch {
	case hits >= highActionHits:
		return domain.ActionHigh
	case hits >= mediumActionHits:
		return domain.ActionMedium
	default:
		return domain.ActionLow
	}
}

func actionType(text string, tokens []string, actionHits int) domain.ActionType {
	if strings.ContainsAny(text, quoteChars) || countHits(tokens, speechForms) > 0 || hasSpeechPhrase(tokens) {
		return domain.ActionTypeDialogue
	}
	if actionHits > 0 {
		return domain.ActionTypeAction
	}
	return domain.ActionTypeDescription
}

// hasSpeechPhrase は "cried out" などの2語の発話句を含むとき true を返します。
func hasSpeechPhrase(tokens []string) bool {
	for i := 0; i+1 < len(tokens); i++ {
		for _, p := range speechPhrases {
			if _, ok := p.verbs[tokens[i]]; ok && tokens[i+1] == p.particle {
				return true
			}
		}
	}
	return false
}
