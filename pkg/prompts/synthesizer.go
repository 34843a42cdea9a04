// Package prompts は、シーンとキャラクター情報から画像生成用のプロンプトを組み立てます。
package prompts

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shouni/go-webtoon-kit/pkg/advisor"
	"github.com/shouni/go-webtoon-kit/pkg/domain"
)

// Synthesizer はシーンごとのプロンプトを生成します。
type Synthesizer struct {
	baseStyle     string
	qualitySuffix string
	maxSceneChars int
}

// Option は Synthesizer の設定を変更します。
type Option func(*Synthesizer)

// WithBaseStyle はベーススタイルを差し替えます。
func WithBaseStyle(style string) Option {
	return func(s *Synthesizer) {
		if style != "" {
			s.baseStyle = style
		}
	}
}

// NewSynthesizer は新しい Synthesizer を生成します。
func NewSynthesizer(opts ...Option) *Synthesizer {
	s := &Synthesizer{
		baseStyle:     BaseStyle,
		qualitySuffix: QualitySuffix,
		maxSceneChars: DefaultMaxSceneChars,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize は1シーン分のプロンプトを生成します。
// adv が利用可能なら補強済みプロンプトを使い、得られなければテンプレートで組み立てます。
func (s *Synthesizer) Synthesize(ctx context.Context, scene domain.Scene, character *domain.CharacterDescriptor, adv advisor.Advisor) domain.PromptPair {
	charDesc := ""
	if character != nil {
		charDesc = character.Description()
	}

	positive, ok := s.enhance(ctx, scene, charDesc, adv)
	if !ok {
		positive = s.template(scene, charDesc)
	}

	return domain.PromptPair{
		Index:    scene.Index,
		Positive: positive,
		Negative: NegativePrompt,
	}
}

// SynthesizeBatch はシーン列と同じ順序・件数のプロンプト列を返します。
func (s *Synthesizer) SynthesizeBatch(ctx context.Context, scenes []domain.Scene, character *domain.CharacterDescriptor, adv advisor.Advisor) []domain.PromptPair {
	pairs := make([]domain.PromptPair, len(scenes))
	for i, scene := range scenes {
		pairs[i] = s.Synthesize(ctx, scene, character, adv)
	}
	return pairs
}

func (s *Synthesizer) enhance(ctx context.Context, scene domain.Scene, charDesc string, adv advisor.Advisor) (string, bool) {
	if !advisor.Usable(adv) {
		return "", false
	}
	enhanced, ok := adv.SynthesizePrompt(ctx, s.baseStyle, scene.Text, charDesc)
	enhanced = strings.TrimSpace(enhanced)
	if !ok || enhanced == "" {
		slog.DebugContext(ctx, "プロンプト補強が得られなかったため、テンプレートを使用します", "scene_index", scene.Index)
		return "", false
	}

	parts := []string{enhanced}
	if charDesc != "" && !strings.Contains(enhanced, charDesc) {
		parts = append(parts, charDesc)
	}
	parts = append(parts, s.qualitySuffix)
	return joinParts(parts), true
}

// template は固定の順序でプロンプトを組み立てます。
func (s *Synthesizer) template(scene domain.Scene, charDesc string) string {
	parts := []string{
		s.baseStyle,
		CameraAngle(scene),
		Lighting(scene),
	}
	if charDesc != "" {
		parts = append(parts, characterPrefix+charDesc)
	}
	parts = append(parts,
		Condense(scene.Text, s.maxSceneChars),
		s.qualitySuffix,
	)
	return joinParts(parts)
}

// joinParts は空の要素を除いて ", " で連結します。
func joinParts(parts []string) string {
	var cleanParts []string
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			cleanParts = append(cleanParts, v)
		}
	}
	return strings.Join(cleanParts, ", ")
}
