package segmenter

import (
	"strings"

	"github.com/shouni/go-webtoon-kit/pkg/domain"
)

// SceneMarkers はシーン境界の区切りです。この順序で適用します。
var SceneMarkers = []string{
	"\n\n",       // 段落区切り
	"Meanwhile,", // 場面転換の語
	"Suddenly,",
	"Later,",
	"***", // 手動の区切り
	"---",
}

// transitionMarkers は区切った後も本文として次の断片の先頭に残すマーカーです。
var transitionMarkers = map[string]bool{
	"Meanwhile,": true,
	"Suddenly,":  true,
	"Later,":     true,
}

// actionStems は動きの激しさを測るための動詞の語幹です。
var actionStems = []string{
	"attack", "battle", "charge", "chase", "dash", "dodge", "fight", "fought",
	"jump", "leap", "leapt", "lunge", "punch", "run", "ran", "rush", "slash",
	"sprint", "strike", "struck", "swing", "swung",
}

// speechStems は発話を示す動詞です。
var speechStems = []string{
	"said", "say", "ask", "shout", "whisper", "reply", "yell", "mutter", "answer", "exclaim",
}

// moodEntry は mood 判定テーブルの1行です。
type moodEntry struct {
	mood  domain.Mood
	stems []string
}

// moodTable は mood 判定テーブルです。同点の場合は先に並んでいる方を採用します。
var moodTable = []moodEntry{
	{domain.MoodTense, []string{"danger", "dangerous", "fear", "tension", "threat", "dark", "afraid", "nervous", "tense", "worry"}},
	{domain.MoodPeaceful, []string{"calm", "gentle", "serene", "quiet", "peaceful", "tranquil"}},
	{domain.MoodExciting, []string{"excitement", "exciting", "thrilling", "amazing", "wonderful", "adventure", "fast"}},
	{domain.MoodSad, []string{"tear", "cry", "sorrow", "sad", "grief", "loss", "mourn"}},
	{domain.MoodHappy, []string{"happy", "joy", "smile", "laugh", "delight", "cheerful"}},
	{domain.MoodMysterious, []string{"mysterious", "mystery", "strange", "unknown", "shadow", "hidden", "eerie"}},
}

// speechPhrase は "cried out" のように動詞と小辞の2語で発話を示す句です。
type speechPhrase struct {
	verbs    map[string]struct{}
	particle string
}

var speechPhrases = []speechPhrase{
	{verbs: buildForms([]string{"cry"}), particle: "out"},
}

// quoteChars は台詞を示す引用符です。
const quoteChars = "\"“”"

var (
	actionForms = buildForms(actionStems)
	speechForms = buildForms(speechStems)
	moodForms   = buildMoodForms(moodTable)
)

func buildMoodForms(table []moodEntry) []map[string]struct{} {
	forms := make([]map[string]struct{}, len(table))
	for i, e := range table {
		forms[i] = buildForms(e.stems)
	}
	return forms
}

// buildForms は語幹とその規則的な活用形の集合を作ります。
func buildForms(stems []string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, stem := range stems {
		for _, f := range inflect(stem) {
			set[f] = struct{}{}
		}
	}
	return set
}

// inflect は英語の規則動詞・名詞の活用形を列挙します。
func inflect(stem string) []string {
	forms := []string{stem, stem + "s", stem + "es", stem + "ed", stem + "ing"}
	n := len(stem)
	if n < 2 {
		return forms
	}
	last := stem[n-1]
	prev := stem[n-2]

	switch {
	case last == 'e':
		// dodge -> dodged, dodging
		forms = append(forms, stem+"d", stem[:n-1]+"ing")
	case last == 'y' && !isVowel(prev):
		// cry -> cries, cried
		forms = append(forms, stem[:n-1]+"ies", stem[:n-1]+"ied")
	case n >= 3 && !isVowel(last) && isVowel(prev) && !isVowel(stem[n-3]) && !strings.ContainsRune("wxy", rune(last)):
		// run -> running, stop -> stopped
		forms = append(forms, stem+string(last)+"ing", stem+string(last)+"ed", stem+string(last)+"er")
	}
	return forms
}

func isVowel(b byte) bool {
	return strings.IndexByte("aeiou", b) >= 0
}
