package advisor

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/shouni/go-webtoon-kit/pkg/domain"
)

var jsonBlockRegex = regexp.MustCompile("(?s)```(?:json)?\\s*(.*\\S)\\s*```")

// sceneReply は AI が返すシーン1件分の JSON です。
type sceneReply struct {
	Text        string `json:"text"`
	Mood        string `json:"mood"`
	ActionLevel string `json:"action_level"`
	ActionType  string `json:"action_type"`
}

// characterReply は AI が返すキャラクター情報の JSON です。
type characterReply struct {
	Name     string `json:"name"`
	Gender   string `json:"gender"`
	Age      string `json:"age"`
	Hair     string `json:"hair"`
	Eyes     string `json:"eyes"`
	Outfit   string `json:"outfit"`
	Features string `json:"features"`
	Vibe     string `json:"vibe"`
}

// extractJSON は応答からコードブロック、または最も外側の括弧で囲まれた JSON を取り出します。
func extractJSON(raw, openDelim, closeDelim string) string {
	raw = strings.TrimSpace(raw)
	if matches := jsonBlockRegex.FindStringSubmatch(raw); len(matches) > 1 {
		return matches[1]
	}
	first := strings.Index(raw, openDelim)
	last := strings.LastIndex(raw, closeDelim)
	if first != -1 && last > first {
		return raw[first : last+1]
	}
	return raw
}

// parseScenes は AI の応答をシーン列に変換します。
// 本文が空の要素は捨て、分類が読めない場合は neutral / low に寄せます。
func parseScenes(raw string, maxScenes int) ([]domain.Scene, error) {
	var replies []sceneReply
	if err := json.Unmarshal([]byte(extractJSON(raw, "[", "]")), &replies); err != nil {
		return nil, fmt.Errorf("AIからの応答に含まれるJSONの解析に失敗しました (応答抜粋: %q): %w", truncateString(raw, 200), err)
	}

	scenes := make([]domain.Scene, 0, len(replies))
	for _, r := range replies {
		if maxScenes > 0 && len(scenes) >= maxScenes {
			break
		}
		scene, err := domain.NewScene(len(scenes)+1, r.Text, r.classification())
		if err != nil {
			continue
		}
		scenes = append(scenes, scene)
	}
	return scenes, nil
}

func (r sceneReply) classification() domain.Classification {
	mood, err := domain.ParseMood(r.Mood)
	if err != nil {
		mood = domain.MoodNeutral
	}
	level, err := domain.ParseActionLevel(r.ActionLevel)
	if err != nil {
		level = domain.ActionLow
	}
	actionType, err := domain.ParseActionType(r.ActionType)
	if err != nil {
		actionType = domain.ActionTypeDescription
		if level == domain.ActionHigh {
			actionType = domain.ActionTypeAction
		}
	}
	return domain.Classification{Mood: mood, ActionLevel: level, ActionType: actionType}
}

// parseCharacter は AI の応答をキャラクター記述子に変換します。
func parseCharacter(raw string) (domain.CharacterDescriptor, error) {
	var r characterReply
	if err := json.Unmarshal([]byte(extractJSON(raw, "{", "}")), &r); err != nil {
		return domain.CharacterDescriptor{}, fmt.Errorf("AIからの応答に含まれるJSONの解析に失敗しました (応答抜粋: %q): %w", truncateString(raw, 200), err)
	}

	c := domain.CharacterDescriptor{
		Name:     domain.Trait(r.Name),
		Gender:   domain.Gender(r.Gender),
		Age:      domain.Trait(r.Age),
		Hair:     domain.Trait(r.Hair),
		Eyes:     domain.Trait(r.Eyes),
		Outfit:   domain.Trait(r.Outfit),
		Features: domain.Trait(r.Features),
		Vibe:     domain.Trait(r.Vibe),
	}.Normalize()
	return c.ApplyFallbacks(domain.DefaultCharacter()), nil
}

// cleanEnhancedPrompt は補強済みプロンプトを整形し、使えない応答を弾きます。
func cleanEnhancedPrompt(raw string) (string, bool) {
	if len(raw) >= maxEnhancedPromptLen {
		return "", false
	}
	enhanced := strings.Trim(strings.TrimSpace(raw), `"'`)
	enhanced = strings.TrimSpace(enhanced)
	if enhanced == "" || strings.HasPrefix(enhanced, "Enhanced") {
		return "", false
	}
	return enhanced, true
}

func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "..."
}
