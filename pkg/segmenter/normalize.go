package segmenter

import (
	"strings"
)

const paragraphBreak = "\n\n"

// Normalize は改行コードをそろえ、段落内の空白を1つにまとめます。
// 1行以上の空行は1つの段落区切りになります。
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var paragraphs []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, " "))
			current = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		words := strings.Fields(line)
		if len(words) == 0 {
			flush()
			continue
		}
		current = append(current, words...)
	}
	flush()

	return strings.Join(paragraphs, paragraphBreak)
}

// splitMarkers は正規化済みの本文を SceneMarkers の順に分割します。
func splitMarkers(text string) []string {
	segments := []string{text}
	for _, marker := range SceneMarkers {
		var next []string
		for _, seg := range segments {
			next = append(next, splitOn(seg, marker)...)
		}
		segments = next
	}
	return segments
}

// splitOn は marker で分割し、空の断片を捨てます。
// 場面転換の語は次の断片の先頭に残します。
func splitOn(seg, marker string) []string {
	parts := strings.Split(seg, marker)
	keep := transitionMarkers[marker]

	out := make([]string, 0, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if keep && i > 0 {
			p = strings.TrimSpace(marker + " " + p)
		}
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
