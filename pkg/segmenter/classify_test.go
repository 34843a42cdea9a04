package segmenter

import (
	"testing"

	"github.com/shouni/go-webtoon-kit/pkg/domain"
)

func TestClassify_ActionLevel(t *testing.T) {
	tests := []struct {
		name string
		text string
		want domain.ActionLevel
	}{
		{"動詞がなければ low", "He walked to the door.", domain.ActionLow},
		{"1件なら medium", "She drew her sword and charged.", domain.ActionMedium},
		{"2件でも medium", "They ran and jumped over the wall.", domain.ActionMedium},
		{"3件以上なら high", "He sprinted, dodged, and struck the enemy.", domain.ActionHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text).ActionLevel; got != tt.want {
				t.Errorf("期待値 '%s', 実際の値 '%s'", tt.want, got)
			}
		})
	}
}

func TestClassify_ActionType(t *testing.T) {
	tests := []struct {
		name string
		text string
		want domain.ActionType
	}{
		{"引用符があれば dialogue", `"Are you ready?" Marcus asked.`, domain.ActionTypeDialogue},
		{"全角の引用符でも dialogue", "“Run,” she breathed.", domain.ActionTypeDialogue},
		{"発話動詞だけでも dialogue", "He said nothing and attacked.", domain.ActionTypeDialogue},
		{"cried out も発話として dialogue", "She cried out in pain as the wall fell.", domain.ActionTypeDialogue},
		{"cries out の活用形でも dialogue", "The boy cries out for his mother.", domain.ActionTypeDialogue},
		{"out を伴わない cried は発話ではない", "She cried for hours in the empty hall.", domain.ActionTypeDescription},
		{"動詞があれば action", "The knight charged across the field.", domain.ActionTypeAction},
		{"それ以外は description", "The castle loomed over the valley.", domain.ActionTypeDescription},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text).ActionType; got != tt.want {
				t.Errorf("期待値 '%s', 実際の値 '%s'", tt.want, got)
			}
		})
	}
}

func TestClassify_Mood(t *testing.T) {
	tests := []struct {
		name string
		text string
		want domain.Mood
	}{
		{"キーワードがなければ neutral", "He walked to the door.", domain.MoodNeutral},
		{"最多ヒットの mood を採用する", "A calm breeze. Then danger, fear and a dark threat.", domain.MoodTense},
		{"同点の場合はテーブル順で先の mood を採用する", "She smiled through her tears.", domain.MoodSad},
		{"同点の場合はテーブル順で先の mood を採用する（tense 優先）", "A quiet danger.", domain.MoodTense},
		{"活用形も数える", "The children laughed and smiled with joy.", domain.MoodHappy},
		{"mysterious を判定できる", "A strange shadow moved in the hidden hall.", domain.MoodMysterious},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text).Mood; got != tt.want {
				t.Errorf("期待値 '%s', 実際の値 '%s'", tt.want, got)
			}
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	text := `"Watch out!" Elena shouted as the dragon charged through the dark smoke.`
	first := Classify(text)
	for i := 0; i < 10; i++ {
		if got := Classify(text); got != first {
			t.Fatalf("同じ本文から異なる分類が得られました: %+v != %+v", got, first)
		}
	}
}

func TestInflect(t *testing.T) {
	forms := buildForms([]string{"run", "dodge", "cry", "jump"})
	for _, w := range []string{"run", "runs", "running", "dodged", "dodging", "cried", "cries", "jumped", "jumping"} {
		if _, ok := forms[w]; !ok {
			t.Errorf("活用形 '%s' が含まれていません", w)
		}
	}
}
