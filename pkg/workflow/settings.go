package workflow

import (
	"github.com/shouni/go-webtoon-kit/pkg/config"
	"github.com/shouni/go-webtoon-kit/pkg/prompts"
)

// Settings はジョブごとの生成オプションです。
// ゼロ値は AI アドバイザーを使いません。通常は DefaultSettings から始めてください。
type Settings struct {
	// MaxPanels はパネル数の上限です。0 以下なら設定値を使い、1..50 に丸められます。
	MaxPanels int
	// UseAdvisorScenes が true のとき、シーン分割にアドバイザーを使います。
	UseAdvisorScenes bool
	// UseAdvisorPrompts が true のとき、プロンプト補強とキャラクター抽出にアドバイザーを使います。
	UseAdvisorPrompts bool
	// BaseSeed が nil なら設定値を使います。
	BaseSeed *int64
	// CharacterID はライブラリに登録済みのキャラクターを指定します。
	CharacterID string
	// Style は画風プリセットのキーです（manhwa, manga など）。空なら既定の画風を使います。
	Style string
}

// DefaultSettings はアドバイザーを有効にした既定の Settings を返します。
func DefaultSettings() Settings {
	return Settings{
		UseAdvisorScenes:  true,
		UseAdvisorPrompts: true,
	}
}

// resolvedSettings はデフォルトと範囲の補正を済ませた Settings です。
type resolvedSettings struct {
	maxPanels         int
	useAdvisorScenes  bool
	useAdvisorPrompts bool
	baseSeed          int64
	characterID       string
	synthesizer       *prompts.Synthesizer
}

// resolve は設定値で空欄を埋め、パネル数を 1..MaxPanelsLimit に丸めます。
// 未知の Style は domain.ErrInvalidInput をラップしたエラーになります。
func (s Settings) resolve(cfg config.Config) (resolvedSettings, error) {
	synth, err := prompts.ForStyle(s.Style)
	if err != nil {
		return resolvedSettings{}, err
	}

	maxPanels := s.MaxPanels
	if maxPanels <= 0 {
		maxPanels = cfg.MaxPanels
	}
	maxPanels = min(max(maxPanels, 1), config.MaxPanelsLimit)

	baseSeed := cfg.BaseSeed
	if s.BaseSeed != nil {
		baseSeed = *s.BaseSeed
	}

	return resolvedSettings{
		maxPanels:         maxPanels,
		useAdvisorScenes:  s.UseAdvisorScenes,
		useAdvisorPrompts: s.UseAdvisorPrompts,
		baseSeed:          baseSeed,
		characterID:       s.CharacterID,
		synthesizer:       synth,
	}, nil
}

// PanelSeed はパネル番号（1始まり）から決定的なシード値を求めます。
// 1枚目のパネルは base をそのまま使います。
func PanelSeed(base int64, index int) int64 {
	return base + int64(index-1)
}
