package prompts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shouni/go-webtoon-kit/pkg/domain"
)

// StylePreset は画風のプリセットです。
type StylePreset struct {
	Key         string
	Name        string
	Description string
	BasePrompt  string
}

// DefaultStyle はスタイル未指定の設定画面などで既定として示すプリセットです。
const DefaultStyle = "manhwa"

// stylePresets は選択可能な画風の一覧です。
var stylePresets = map[string]StylePreset{
	"manhwa": {
		Name:        "Korean Manhwa",
		Description: "Modern Korean webtoon style with clean lineart and vibrant colors",
		BasePrompt:  "Korean manhwa webtoon style, clean lineart, full color, highly detailed, professional digital art, vibrant colors, smooth shading",
	},
	"manga": {
		Name:        "Japanese Manga",
		Description: "Traditional Japanese manga style with screentones",
		BasePrompt:  "Japanese manga style, detailed lineart, screentones, black and white, dynamic composition, professional manga art",
	},
	"anime": {
		Name:        "Anime Style",
		Description: "Japanese anime aesthetic with soft colors",
		BasePrompt:  "anime style, soft cel shading, pastel colors, large expressive eyes, detailed hair, anime art",
	},
	"realistic": {
		Name:        "Semi-Realistic",
		Description: "Realistic style with artistic touches",
		BasePrompt:  "semi-realistic digital art, detailed rendering, realistic proportions, professional illustration, painterly style",
	},
	"watercolor": {
		Name:        "Watercolor",
		Description: "Soft watercolor painting style",
		BasePrompt:  "watercolor painting style, soft edges, flowing colors, artistic, dreamy atmosphere, traditional art",
	},
	"dark": {
		Name:        "Dark Fantasy",
		Description: "Dark, moody aesthetic for dramatic scenes",
		BasePrompt:  "dark fantasy art style, dramatic shadows, moody lighting, detailed lineart, gothic atmosphere, professional dark art",
	},
	"chibi": {
		Name:        "Chibi/Cute",
		Description: "Super deformed cute style",
		BasePrompt:  "chibi style, cute, super deformed proportions, kawaii, bright colors, simple but detailed, adorable",
	},
	"comic": {
		Name:        "Western Comic",
		Description: "American comic book style",
		BasePrompt:  "western comic book style, bold lineart, dynamic poses, halftone shading, professional comic art, action-packed",
	},
}

// LookupStyle はキー（大文字小文字は区別しない）でプリセットを取得します。
// 未知のキーは domain.ErrInvalidInput をラップしたエラーになります。
func LookupStyle(key string) (StylePreset, error) {
	k := strings.ToLower(strings.TrimSpace(key))
	p, ok := stylePresets[k]
	if !ok {
		return StylePreset{}, fmt.Errorf("%w: unknown style %q (available: %s)", domain.ErrInvalidInput, key, strings.Join(StyleKeys(), ", "))
	}
	p.Key = k
	return p, nil
}

// StyleKeys はプリセットのキーを昇順で返します。
func StyleKeys() []string {
	keys := make([]string, 0, len(stylePresets))
	for k := range stylePresets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ForStyle はスタイルのキーに応じた Synthesizer を返します。空なら BaseStyle を使います。
func ForStyle(key string) (*Synthesizer, error) {
	if strings.TrimSpace(key) == "" {
		return NewSynthesizer(), nil
	}
	p, err := LookupStyle(key)
	if err != nil {
		return nil, err
	}
	return NewSynthesizer(WithBaseStyle(p.BasePrompt)), nil
}
