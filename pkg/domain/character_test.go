package domain

import (
	"testing"
)

func TestCharacterDescriptor_Description(t *testing.T) {
	t.Run("全属性が定められた順序で連結されること", func(t *testing.T) {
		c := CharacterDescriptor{
			Name:     "Elena",
			Gender:   GenderFemale,
			Age:      "19",
			Hair:     "long silver",
			Eyes:     "bright blue",
			Outfit:   "elegant black combat armor",
			Features: "scar on left cheek",
			Vibe:     "determined",
		}
		expected := "Elena, female, 19 years old, long silver hair, bright blue eyes, wearing elegant black combat armor, scar on left cheek, determined expression"
		if got := c.Description(); got != expected {
			t.Errorf("期待値 '%s', 実際の値 '%s'", expected, got)
		}
	})

	t.Run("unknown の性別と未設定の属性は省略されること", func(t *testing.T) {
		c := CharacterDescriptor{Name: "Marcus", Gender: GenderUnknown, Eyes: "dark"}
		expected := "Marcus, dark eyes"
		if got := c.Description(); got != expected {
			t.Errorf("期待値 '%s', 実際の値 '%s'", expected, got)
		}
	})

	t.Run("デフォルトのキャラクターは名前だけになること", func(t *testing.T) {
		if got := DefaultCharacter().Description(); got != DefaultCharacterName {
			t.Errorf("期待値 '%s', 実際の値 '%s'", DefaultCharacterName, got)
		}
	})

	t.Run("空白だけの属性は未設定として扱われること", func(t *testing.T) {
		c := CharacterDescriptor{Name: "Kai", Hair: "   "}
		if got := c.Description(); got != "Kai" {
			t.Errorf("期待値 'Kai', 実際の値 '%s'", got)
		}
	})
}

func TestCharacterDescriptor_Normalize(t *testing.T) {
	c := CharacterDescriptor{
		Name:   "  Elena ",
		Gender: "Female",
		Hair:   "silver hair",
		Eyes:   "blue eyes",
		Vibe:   "eyes",
	}.Normalize()

	if c.Name != "Elena" {
		t.Errorf("期待値 'Elena', 実際の値 '%s'", c.Name)
	}
	if c.Gender != GenderFemale {
		t.Errorf("期待値 '%s', 実際の値 '%s'", GenderFemale, c.Gender)
	}
	if c.Hair != "silver" {
		t.Errorf("末尾の hair が除去されていません: '%s'", c.Hair)
	}
	if c.Eyes != "blue" {
		t.Errorf("末尾の eyes が除去されていません: '%s'", c.Eyes)
	}
	if got := c.Description(); got != "Elena, female, silver hair, blue eyes, eyes expression" {
		t.Errorf("想定外の記述です: '%s'", got)
	}
}

func TestCharacterDescriptor_ApplyFallbacks(t *testing.T) {
	extracted := CharacterDescriptor{Hair: "red"}
	got := extracted.ApplyFallbacks(DefaultCharacter())

	if got.Name != DefaultCharacterName {
		t.Errorf("期待値 '%s', 実際の値 '%s'", DefaultCharacterName, got.Name)
	}
	if got.Hair != "red" {
		t.Errorf("設定済みの属性が上書きされました: '%s'", got.Hair)
	}
	if got.Gender != GenderUnknown {
		t.Errorf("期待値 '%s', 実際の値 '%s'", GenderUnknown, got.Gender)
	}
}

func TestParseGender(t *testing.T) {
	cases := map[string]Gender{
		"male":    GenderMale,
		" FEMALE": GenderFemale,
		"":        GenderUnknown,
		"robot":   GenderUnknown,
	}
	for in, want := range cases {
		if got := ParseGender(in); got != want {
			t.Errorf("ParseGender(%q): 期待値 '%s', 実際の値 '%s'", in, want, got)
		}
	}
}

func TestCharacterDescriptor_Validate(t *testing.T) {
	if err := (CharacterDescriptor{}).Validate(); err == nil {
		t.Error("名前が未設定でもエラーになりませんでした")
	}
	if err := DefaultCharacter().Validate(); err != nil {
		t.Errorf("デフォルトのキャラクターでエラーが発生しました: %v", err)
	}
}
