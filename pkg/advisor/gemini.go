package advisor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shouni/go-webtoon-kit/pkg/domain"

	"github.com/shouni/go-gemini-client/pkg/gemini"
)

// AI に渡す本文の上限（文字数）です。
const (
	characterInputLimit  = 1000
	sceneInputLimit      = 2000
	promptSceneLimit     = 200
	maxEnhancedPromptLen = 500
)

// generateFunc はプロンプトを送り、応答テキストを返します。
type generateFunc func(ctx context.Context, prompt string) (string, error)

// GeminiAdvisor は Gemini のテキストモデルで Advisor を実装します。
// 呼び出しはジョブごとに独立しており、同じ本文でも結果を共有しません。
type GeminiAdvisor struct {
	call    generateFunc
	model   string
	timeout time.Duration
}

// NewGeminiAdvisor は GeminiAdvisor を初期化します。
func NewGeminiAdvisor(aiClient gemini.GenerativeModel, model string, timeout time.Duration) (*GeminiAdvisor, error) {
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient は必須です")
	}
	if model == "" {
		return nil, fmt.Errorf("model は必須です")
	}
	return &GeminiAdvisor{
		call: func(ctx context.Context, prompt string) (string, error) {
			resp, err := aiClient.GenerateContent(ctx, prompt, model)
			if err != nil {
				return "", err
			}
			return resp.Text, nil
		},
		model:   model,
		timeout: timeout,
	}, nil
}

// Available はクライアントが構成済みなら true を返します。
func (a *GeminiAdvisor) Available() bool {
	return a != nil && a.call != nil
}

// Segment は Gemini に本文を渡し、シーン列を JSON で受け取ります。
func (a *GeminiAdvisor) Segment(ctx context.Context, text string, maxScenes int) ([]domain.Scene, bool) {
	if !a.Available() {
		return nil, false
	}
	prompt := fmt.Sprintf(scenePromptTemplate, maxScenes, clip(text, sceneInputLimit))

	raw, err := a.generate(ctx, prompt)
	if err != nil {
		slog.WarnContext(ctx, "AIによるシーン分割に失敗しました。ルールベースに切り替えます", "error", err)
		return nil, false
	}
	scenes, err := parseScenes(raw, maxScenes)
	if err != nil {
		slog.WarnContext(ctx, "AIのシーン分割結果を解釈できませんでした", "error", err)
		return nil, false
	}
	return scenes, len(scenes) > 0
}

// SynthesizePrompt は Gemini にプロンプトの補強を依頼します。
func (a *GeminiAdvisor) SynthesizePrompt(ctx context.Context, baseStyle, sceneText, characterDescription string) (string, bool) {
	if !a.Available() || sceneText == "" {
		return "", false
	}
	prompt := fmt.Sprintf(enhancePromptTemplate, clip(sceneText, promptSceneLimit), baseStyle, characterDescription)

	raw, err := a.generate(ctx, prompt)
	if err != nil {
		slog.WarnContext(ctx, "AIによるプロンプト補強に失敗しました。テンプレートに切り替えます", "error", err)
		return "", false
	}
	return cleanEnhancedPrompt(raw)
}

// ExtractCharacter は Gemini に主人公の外見情報を抽出させます。
func (a *GeminiAdvisor) ExtractCharacter(ctx context.Context, text string) (domain.CharacterDescriptor, bool) {
	if !a.Available() {
		return domain.CharacterDescriptor{}, false
	}

	raw, err := a.generate(ctx, fmt.Sprintf(characterPromptTemplate, clip(text, characterInputLimit)))
	if err != nil {
		slog.WarnContext(ctx, "AIによるキャラクター抽出に失敗しました", "error", err)
		return domain.CharacterDescriptor{}, false
	}
	c, err := parseCharacter(raw)
	if err != nil {
		slog.WarnContext(ctx, "AIのキャラクター抽出結果を解釈できませんでした", "error", err)
		return domain.CharacterDescriptor{}, false
	}
	return c, true
}

// generate はタイムアウト付きで Gemini を呼び出し、応答テキストを返します。
func (a *GeminiAdvisor) generate(ctx context.Context, prompt string) (string, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	startTime := time.Now()
	text, err := a.call(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("Gemini API の呼び出しに失敗しました: %w", err)
	}
	slog.DebugContext(ctx, "Gemini API call completed", "model", a.model, "duration", time.Since(startTime).Round(time.Millisecond))
	return text, nil
}

// clip は先頭から最大 limit 文字を返します。
func clip(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
