// Package segmenter は章の本文を、パネル1枚ずつに対応する分類済みのシーン列に分割します。
package segmenter

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shouni/go-webtoon-kit/pkg/advisor"
	"github.com/shouni/go-webtoon-kit/pkg/config"
	"github.com/shouni/go-webtoon-kit/pkg/domain"
)

// Segmenter はシーン分割を行います。
type Segmenter struct {
	minWords int
	maxWords int
}

// New は設定の閾値を使う Segmenter を生成します。
func New(cfg config.Config) *Segmenter {
	cfg = cfg.WithDefaults()
	return &Segmenter{
		minWords: cfg.MinWords,
		maxWords: cfg.MaxWords,
	}
}

// Segment は本文をシーン列に分割します。
// adv が利用可能で空でない結果を返した場合はそれを使い、それ以外はルールベースで分割します。
// 単語を1つも含まない入力に対してだけ空のスライスを返します。
func (s *Segmenter) Segment(ctx context.Context, rawText string, maxScenes int, adv advisor.Advisor) domain.Scenes {
	if advisor.Usable(adv) {
		if scenes, ok := adv.Segment(ctx, rawText, maxScenes); ok && len(scenes) > 0 {
			slog.InfoContext(ctx, "AIによるシーン分割を採用しました", "scenes", len(scenes))
			return domain.Scenes(scenes).Truncate(maxScenes).Reindex()
		}
		slog.InfoContext(ctx, "AIによるシーン分割が得られなかったため、ルールベースで分割します")
	}

	texts := s.SplitText(rawText)
	texts = truncate(texts, maxScenes)

	scenes := make(domain.Scenes, 0, len(texts))
	for _, text := range texts {
		scene, err := domain.NewScene(len(scenes)+1, text, Classify(text))
		if err != nil {
			// SplitText は空の断片を返さないため通常は到達しない
			slog.WarnContext(ctx, "シーンの生成をスキップしました", "error", err)
			continue
		}
		scenes = append(scenes, scene)
	}
	return scenes
}

// SplitText はルールベースでシーン本文の列を返します。上限による切り詰めは行いません。
func (s *Segmenter) SplitText(rawText string) []string {
	fragments := splitMarkers(Normalize(rawText))

	var out []string
	var buffer []string
	for _, frag := range fragments {
		buffer = append(buffer, strings.Fields(frag)...)
		if len(buffer) < s.minWords {
			continue
		}
		if len(buffer) > s.maxWords {
			var emitted [][]string
			emitted, buffer = s.splitSentences(buffer)
			for _, words := range emitted {
				out = append(out, strings.Join(words, " "))
			}
			continue
		}
		out = append(out, strings.Join(buffer, " "))
		buffer = nil
	}
	// 入力の末尾に残った短い断片も最後のシーンとして出力する
	if len(buffer) > 0 {
		out = append(out, strings.Join(buffer, " "))
	}
	return out
}

// splitSentences は長すぎる単語列を文の区切りで分け直します。
// minWords に達するまで文を積み上げてシーンを閉じ、届かなかった残りを返します。
func (s *Segmenter) splitSentences(words []string) (emitted [][]string, rest []string) {
	var current []string
	for _, sentence := range sentences(words) {
		current = append(current, sentence...)
		if len(current) >= s.minWords {
			emitted = append(emitted, current)
			current = nil
		}
	}
	return emitted, current
}

// sentences は単語列を文ごとに分けます。
func sentences(words []string) [][]string {
	var out [][]string
	start := 0
	for i, w := range words {
		if endsSentence(w) {
			out = append(out, words[start:i+1])
			start = i + 1
		}
	}
	if start < len(words) {
		out = append(out, words[start:])
	}
	return out
}

// endsSentence は閉じ引用符や括弧を除いた末尾が . ! ? の単語で true を返します。
func endsSentence(word string) bool {
	w := strings.TrimRight(word, "\"'”’)]")
	return w != "" && strings.ContainsRune(".!?", rune(w[len(w)-1]))
}

func truncate(texts []string, limit int) []string {
	if limit <= 0 || len(texts) <= limit {
		return texts
	}
	return texts[:limit]
}
