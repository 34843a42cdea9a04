package domain

import (
	"strings"
)

// trimNoun は "silver hair" のように名詞まで含んだ値から末尾の名詞を取り除きます。
// Description が "silver hair hair" を生成しないためのものなのだ。
func trimNoun(t Trait, noun string) Trait {
	s := t.String()
	lower := strings.ToLower(s)
	if lower == noun {
		return Unset
	}
	if strings.HasSuffix(lower, " "+noun) {
		s = strings.TrimSpace(s[:len(s)-len(noun)])
	}
	return Trait(s)
}

// ApplyFallbacks は未設定の属性を fallback の値で補った記述子を返します。
// ID は上書きせず、名前は未設定のときだけ補います。
func (c CharacterDescriptor) ApplyFallbacks(fallback CharacterDescriptor) CharacterDescriptor {
	if !c.Name.IsSet() {
		c.Name = fallback.Name
	}
	if ParseGender(string(c.Gender)) == GenderUnknown {
		c.Gender = fallback.Gender
	}
	fill := func(dst *Trait, src Trait) {
		if !dst.IsSet() {
			*dst = src
		}
	}
	fill(&c.Age, fallback.Age)
	fill(&c.Hair, fallback.Hair)
	fill(&c.Eyes, fallback.Eyes)
	fill(&c.Outfit, fallback.Outfit)
	fill(&c.Features, fallback.Features)
	fill(&c.Vibe, fallback.Vibe)
	return c
}
