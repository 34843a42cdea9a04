package advisor

import (
	"context"
	"strings"
	"testing"

	"github.com/shouni/go-webtoon-kit/pkg/domain"
)

func TestParseScenes(t *testing.T) {
	t.Run("コードブロック内のJSON配列を解析できること", func(t *testing.T) {
		raw := "```json\n[" +
			`{"text": "Elena stood at the cliff edge.", "mood": "Tense", "action_level": "low", "action_type": "description"},` +
			`{"text": "   ", "mood": "sad"},` +
			`{"text": "The dragon charged.", "mood": "furious", "action_level": "high"}` +
			"]\n```"

		scenes, err := parseScenes(raw, 0)
		if err != nil {
			t.Fatalf("想定外のエラーが発生しました: %v", err)
		}
		if len(scenes) != 2 {
			t.Fatalf("空の本文は捨てられる必要があります。期待値 2, 実際の値 %d", len(scenes))
		}
		if scenes[0].Mood != domain.MoodTense || scenes[0].Index != 1 {
			t.Errorf("1件目の解析結果が不正です: %+v", scenes[0])
		}
		second := scenes[1]
		if second.Index != 2 || second.Mood != domain.MoodNeutral || second.ActionType != domain.ActionTypeAction {
			t.Errorf("未知の mood は neutral、high は action に寄せる必要があります: %+v", second)
		}
	})

	t.Run("maxScenes で件数が打ち切られること", func(t *testing.T) {
		raw := `Here you go: [{"text":"a"},{"text":"b"},{"text":"c"}] done`
		scenes, err := parseScenes(raw, 2)
		if err != nil {
			t.Fatalf("想定外のエラーが発生しました: %v", err)
		}
		if len(scenes) != 2 || scenes[1].Text != "b" {
			t.Errorf("打ち切り結果が不正です: %+v", scenes)
		}
	})

	t.Run("JSONでない応答はエラーになること", func(t *testing.T) {
		if _, err := parseScenes("I cannot help with that.", 0); err == nil {
			t.Error("不正な応答でエラーが発生しませんでした")
		}
	})
}

func TestParseCharacter(t *testing.T) {
	t.Run("前後に説明文があっても最も外側のオブジェクトを解析できること", func(t *testing.T) {
		raw := `Sure! {"name": "Elena", "gender": "Female", "hair": "silver hair", "eyes": "blue eyes", "outfit": ""} Hope this helps.`
		c, err := parseCharacter(raw)
		if err != nil {
			t.Fatalf("想定外のエラーが発生しました: %v", err)
		}
		expected := "Elena, female, silver hair, blue eyes"
		if got := c.Description(); got != expected {
			t.Errorf("期待値 '%s', 実際の値 '%s'", expected, got)
		}
	})

	t.Run("名前がない場合はデフォルト名で補われること", func(t *testing.T) {
		c, err := parseCharacter(`{"hair": "red"}`)
		if err != nil {
			t.Fatalf("想定外のエラーが発生しました: %v", err)
		}
		if c.Name != domain.DefaultCharacterName {
			t.Errorf("期待値 '%s', 実際の値 '%s'", domain.DefaultCharacterName, c.Name)
		}
	})
}

func TestCleanEnhancedPrompt(t *testing.T) {
	if got, ok := cleanEnhancedPrompt(`  "manhwa style, hero on a cliff"  `); !ok || got != "manhwa style, hero on a cliff" {
		t.Errorf("整形結果が不正です: %q, %v", got, ok)
	}
	if _, ok := cleanEnhancedPrompt("Enhanced prompt: something"); ok {
		t.Error("Enhanced で始まる応答は弾く必要があります")
	}
	if _, ok := cleanEnhancedPrompt(strings.Repeat("a", maxEnhancedPromptLen)); ok {
		t.Error("長すぎる応答は弾く必要があります")
	}
	if _, ok := cleanEnhancedPrompt("   "); ok {
		t.Error("空の応答は弾く必要があります")
	}
}

func TestNop(t *testing.T) {
	var adv Advisor = Nop{}
	ctx := context.Background()

	if adv.Available() || Usable(adv) {
		t.Error("Nop は利用不可である必要があります")
	}
	if _, ok := adv.Segment(ctx, "text", 3); ok {
		t.Error("Nop.Segment は未提供である必要があります")
	}
	if _, ok := adv.SynthesizePrompt(ctx, "style", "scene", ""); ok {
		t.Error("Nop.SynthesizePrompt は未提供である必要があります")
	}
	if _, ok := adv.ExtractCharacter(ctx, "text"); ok {
		t.Error("Nop.ExtractCharacter は未提供である必要があります")
	}
	if Usable(nil) {
		t.Error("nil は利用不可である必要があります")
	}
}

func TestNewGeminiAdvisor(t *testing.T) {
	if _, err := NewGeminiAdvisor(nil, "model", 0); err == nil {
		t.Error("aiClient が nil でもエラーになりませんでした")
	}
}

func TestClip(t *testing.T) {
	if got := clip("あいうえお", 3); got != "あいう" {
		t.Errorf("期待値 'あいう', 実際の値 '%s'", got)
	}
	if got := clip("abc", 10); got != "abc" {
		t.Errorf("期待値 'abc', 実際の値 '%s'", got)
	}
}
