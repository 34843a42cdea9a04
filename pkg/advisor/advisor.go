// Package advisor は、シーン分割・プロンプト補強・キャラクター抽出を肩代わりできる
// 任意の外部知能（LLM など）との境界を定義します。
package advisor

import (
	"context"

	"github.com/shouni/go-webtoon-kit/pkg/domain"
)

// Advisor は任意で差し込める解析能力です。
// すべてのメソッドは全域的で、失敗・タイムアウト・未接続はいずれも ok=false として返します。
// 呼び出し側は false を受け取ったら決定論的なフォールバックに切り替えるだけでよいのだ。
type Advisor interface {
	// Available は現在この Advisor を利用できるかを返します。
	Available() bool
	// Segment は本文を分類済みのシーン列に分割します。
	Segment(ctx context.Context, text string, maxScenes int) ([]domain.Scene, bool)
	// SynthesizePrompt はベーススタイルとシーン本文から補強済みのポジティブプロンプトを返します。
	SynthesizePrompt(ctx context.Context, baseStyle, sceneText, characterDescription string) (string, bool)
	// ExtractCharacter は本文から主人公の外見情報を抽出します。
	ExtractCharacter(ctx context.Context, text string) (domain.CharacterDescriptor, bool)
}

// Nop は何も提供しない Advisor です。
type Nop struct{}

// Available は常に false を返します。
func (Nop) Available() bool { return false }

// Segment は常に未提供です。
func (Nop) Segment(context.Context, string, int) ([]domain.Scene, bool) { return nil, false }

// SynthesizePrompt は常に未提供です。
func (Nop) SynthesizePrompt(context.Context, string, string, string) (string, bool) {
	return "", false
}

// ExtractCharacter は常に未提供です。
func (Nop) ExtractCharacter(context.Context, string) (domain.CharacterDescriptor, bool) {
	return domain.CharacterDescriptor{}, false
}

// Usable は adv が nil でなく利用可能な場合に true を返します。
func Usable(adv Advisor) bool {
	return adv != nil && adv.Available()
}
