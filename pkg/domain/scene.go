package domain

import (
	"fmt"
	"strings"
)

// Mood はシーンの雰囲気を表す分類です。
type Mood string

const (
	MoodTense      Mood = "tense"
	MoodPeaceful   Mood = "peaceful"
	MoodExciting   Mood = "exciting"
	MoodSad        Mood = "sad"
	MoodHappy      Mood = "happy"
	MoodMysterious Mood = "mysterious"
	MoodNeutral    Mood = "neutral"
)

// Moods は判定テーブルの順序を保持した Mood の一覧です。neutral は末尾に置きます。
var Moods = []Mood{MoodTense, MoodPeaceful, MoodExciting, MoodSad, MoodHappy, MoodMysterious, MoodNeutral}

// ActionLevel はシーン内の動きの激しさです。
type ActionLevel string

const (
	ActionLow    ActionLevel = "low"
	ActionMedium ActionLevel = "medium"
	ActionHigh   ActionLevel = "high"
)

// ActionType はシーンの種別です。
type ActionType string

const (
	ActionTypeDialogue    ActionType = "dialogue"
	ActionTypeAction      ActionType = "action"
	ActionTypeDescription ActionType = "description"
)

// Valid は既知の Mood かどうかを返します。
func (m Mood) Valid() bool {
	for _, v := range Moods {
		if m == v {
			return true
		}
	}
	return false
}

// Valid は既知の ActionLevel かどうかを返します。
func (l ActionLevel) Valid() bool {
	switch l {
	case ActionLow, ActionMedium, ActionHigh:
		return true
	}
	return false
}

// Valid は既知の ActionType かどうかを返します。
func (t ActionType) Valid() bool {
	switch t {
	case ActionTypeDialogue, ActionTypeAction, ActionTypeDescription:
		return true
	}
	return false
}

// ParseMood は文字列を Mood に変換します。大文字小文字と前後の空白は無視します。
func ParseMood(s string) (Mood, error) {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("未知の mood です: %q", s)
	}
	return m, nil
}

// ParseActionLevel は文字列を ActionLevel に変換します。
func ParseActionLevel(s string) (ActionLevel, error) {
	l := ActionLevel(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("未知の action level です: %q", s)
	}
	return l, nil
}

// ParseActionType は文字列を ActionType に変換します。
func ParseActionType(s string) (ActionType, error) {
	t := ActionType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("未知の action type です: %q", s)
	}
	return t, nil
}

// Classification はシーン本文から導かれる分類結果です。
type Classification struct {
	Mood        Mood        `json:"mood"`
	ActionLevel ActionLevel `json:"action_level"`
	ActionType  ActionType  `json:"action_type"`
}

// Scene は1枚のパネルになる、分類済みの物語の一区切りです。
type Scene struct {
	Index       int         `json:"index"` // 1 始まりの連番
	Text        string      `json:"text"`
	Mood        Mood        `json:"mood"`
	ActionLevel ActionLevel `json:"action_level"`
	ActionType  ActionType  `json:"action_type"`
}

// NewScene は検証済みの Scene を生成します。
func NewScene(index int, text string, c Classification) (Scene, error) {
	text = strings.TrimSpace(text)
	if index < 1 {
		return Scene{}, fmt.Errorf("シーン番号は1以上である必要があります: %d", index)
	}
	if text == "" {
		return Scene{}, fmt.Errorf("シーン %d の本文が空です", index)
	}
	if !c.Mood.Valid() {
		return Scene{}, fmt.Errorf("シーン %d の mood が不正です: %q", index, c.Mood)
	}
	if !c.ActionLevel.Valid() {
		return Scene{}, fmt.Errorf("シーン %d の action level が不正です: %q", index, c.ActionLevel)
	}
	if !c.ActionType.Valid() {
		return Scene{}, fmt.Errorf("シーン %d の action type が不正です: %q", index, c.ActionType)
	}
	return Scene{
		Index:       index,
		Text:        text,
		Mood:        c.Mood,
		ActionLevel: c.ActionLevel,
		ActionType:  c.ActionType,
	}, nil
}

// Classification はシーンの分類部分を返します。
func (s Scene) Classification() Classification {
	return Classification{Mood: s.Mood, ActionLevel: s.ActionLevel, ActionType: s.ActionType}
}

// String はログ出力用の短い表現を返します。
func (s Scene) String() string {
	preview := []rune(s.Text)
	if len(preview) > 50 {
		preview = append(preview[:50], []rune("...")...)
	}
	return fmt.Sprintf("Scene %d (%s, %s): %s", s.Index, s.ActionType, s.Mood, string(preview))
}

// Scenes はシーンの順序付きリストです。
type Scenes []Scene

// Reindex は並び順を保ったまま Index を 1 から振り直したコピーを返します。
func (ss Scenes) Reindex() Scenes {
	out := make(Scenes, len(ss))
	for i, s := range ss {
		s.Index = i + 1
		out[i] = s
	}
	return out
}

// Truncate は先頭から最大 limit 件を返します。limit が 0 以下なら全件です。
func (ss Scenes) Truncate(limit int) Scenes {
	if limit <= 0 || len(ss) <= limit {
		return ss
	}
	return ss[:limit]
}

// PromptPair はレンダラーに渡すポジティブ/ネガティブプロンプトの組です。
type PromptPair struct {
	Index    int    `json:"index"`
	Positive string `json:"positive"`
	Negative string `json:"negative"`
}
