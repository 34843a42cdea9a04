package prompts

import (
	"regexp"
	"strings"
)

var dialogueRegex = regexp.MustCompile(`"[^"]*"|“[^”]*”`)

// Condense はシーン本文から台詞を取り除き、maxChars 文字に収まるよう要約します。
// 超過する場合は直前の単語境界で切り、末尾に "..." を付けます。
// 台詞を除くと何も残らない場合は本文そのものを要約します。
func Condense(text string, maxChars int) string {
	stripped := strings.Join(strings.Fields(dialogueRegex.ReplaceAllString(text, " ")), " ")
	if stripped == "" {
		stripped = strings.Join(strings.Fields(text), " ")
	}
	return truncateAtWord(stripped, maxChars)
}

func truncateAtWord(s string, maxChars int) string {
	r := []rune(s)
	if maxChars <= 0 || len(r) <= maxChars {
		return s
	}
	cut := string(r[:maxChars])
	// 次の文字が空白なら単語の途中ではない
	if r[maxChars] != ' ' {
		if i := strings.LastIndex(cut, " "); i > 0 {
			cut = cut[:i]
		}
	}
	return strings.TrimRight(cut, " ,;:") + ellipsis
}
