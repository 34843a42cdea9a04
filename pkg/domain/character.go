package domain

import (
	"fmt"
	"strings"
)

// Trait はキャラクターの属性値です。Unset は「未設定」を明示する番兵値なのだ。
type Trait string

// Unset は属性が設定されていないことを表します。
const Unset Trait = ""

// IsSet は属性が設定済みかどうかを返します。
func (t Trait) IsSet() bool {
	return strings.TrimSpace(string(t)) != ""
}

// String は前後の空白を除いた値を返します。
func (t Trait) String() string {
	return strings.TrimSpace(string(t))
}

// Gender はキャラクターの性別です。
type Gender string

const (
	GenderUnknown Gender = "unknown"
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
)

// ParseGender は文字列を Gender に変換します。未知の値や空文字は unknown として扱います。
func ParseGender(s string) Gender {
	switch g := Gender(strings.ToLower(strings.TrimSpace(s))); g {
	case GenderMale, GenderFemale:
		return g
	}
	return GenderUnknown
}

// CharacterDescriptor はプロンプトに注入する主人公の外見情報を保持します。
type CharacterDescriptor struct {
	ID       string `json:"id,omitempty" yaml:"id,omitempty"`
	Name     Trait  `json:"name" yaml:"name"`
	Gender   Gender `json:"gender" yaml:"gender"`
	Age      Trait  `json:"age" yaml:"age"`
	Hair     Trait  `json:"hair" yaml:"hair"`
	Eyes     Trait  `json:"eyes" yaml:"eyes"`
	Outfit   Trait  `json:"outfit" yaml:"outfit"`
	Features Trait  `json:"features" yaml:"features"` // ほくろ、傷などの特徴
	Vibe     Trait  `json:"vibe" yaml:"vibe"`
}

// DefaultCharacterName は情報が得られなかった場合の主人公名です。
const DefaultCharacterName = "Protagonist"

// DefaultCharacter は汎用的な主人公の記述子を返します。
func DefaultCharacter() CharacterDescriptor {
	return CharacterDescriptor{
		Name:   DefaultCharacterName,
		Gender: GenderUnknown,
	}
}

// Normalize は各属性の空白を整え、"hair"/"eyes" の重複語尾を取り除いた記述子を返します。
// 性別は既知の値以外を unknown にそろえます。
func (c CharacterDescriptor) Normalize() CharacterDescriptor {
	c.ID = strings.TrimSpace(c.ID)
	c.Name = Trait(c.Name.String())
	c.Gender = ParseGender(string(c.Gender))
	c.Age = Trait(c.Age.String())
	c.Hair = trimNoun(c.Hair, "hair")
	c.Eyes = trimNoun(c.Eyes, "eyes")
	c.Outfit = Trait(c.Outfit.String())
	c.Features = Trait(c.Features.String())
	c.Vibe = trimNoun(c.Vibe, "expression")
	return c
}

// Validate は記述子が最低限の情報を持っているかを確認します。
func (c CharacterDescriptor) Validate() error {
	if !c.Name.IsSet() {
		return fmt.Errorf("キャラクター名は必須です")
	}
	return nil
}

// Description はプロンプト用の記述を、定められた順序で設定済みの属性だけ連結して返します。
func (c CharacterDescriptor) Description() string {
	var parts []string
	if c.Name.IsSet() {
		parts = append(parts, c.Name.String())
	}
	if g := ParseGender(string(c.Gender)); g != GenderUnknown {
		parts = append(parts, string(g))
	}
	if c.Age.IsSet() {
		parts = append(parts, fmt.Sprintf("%s years old", c.Age))
	}
	if c.Hair.IsSet() {
		parts = append(parts, fmt.Sprintf("%s hair", c.Hair))
	}
	if c.Eyes.IsSet() {
		parts = append(parts, fmt.Sprintf("%s eyes", c.Eyes))
	}
	if c.Outfit.IsSet() {
		parts = append(parts, fmt.Sprintf("wearing %s", c.Outfit))
	}
	if c.Features.IsSet() {
		parts = append(parts, c.Features.String())
	}
	if c.Vibe.IsSet() {
		parts = append(parts, fmt.Sprintf("%s expression", c.Vibe))
	}
	return strings.Join(parts, ", ")
}

// String はキャラクターの情報を文字列で返すのだ。
func (c CharacterDescriptor) String() string {
	if c.ID == "" {
		return c.Name.String()
	}
	return fmt.Sprintf("%s (%s)", c.Name, c.ID)
}
