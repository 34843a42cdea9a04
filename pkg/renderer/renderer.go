// Package renderer は、プロンプトから画像を生成する外部の描画能力との境界を定義します。
package renderer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	imagedom "github.com/shouni/gemini-image-kit/pkg/domain"
	"golang.org/x/time/rate"
)

// Image はレンダリング結果の画像です。
type Image struct {
	Data     []byte
	MimeType string
	Seed     int64 // 実際に使用されたシード値
}

// Renderer はプロンプトとシード値から画像を生成します。
type Renderer interface {
	Render(ctx context.Context, positive, negative string, seed int64) (*Image, error)
}

// PanelGenerator は単一パネルの画像生成を行う能力です。
// gemini-image-kit の ImageGenerator がこれを満たします。
type PanelGenerator interface {
	GenerateMangaPanel(ctx context.Context, req imagedom.ImageGenerationRequest) (*imagedom.ImageResponse, error)
}

// GeminiRenderer は画像生成 API をレート制限付きで呼び出す Renderer です。
type GeminiRenderer struct {
	generator   PanelGenerator
	limiter     *rate.Limiter
	aspectRatio string
}

// NewGeminiRenderer は GeminiRenderer を初期化します。limiter が nil の場合は制限しません。
func NewGeminiRenderer(generator PanelGenerator, limiter *rate.Limiter, aspectRatio string) (*GeminiRenderer, error) {
	if generator == nil {
		return nil, fmt.Errorf("generator は必須です")
	}
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}
	return &GeminiRenderer{
		generator:   generator,
		limiter:     limiter,
		aspectRatio: aspectRatio,
	}, nil
}

// Render は1枚のパネル画像を生成します。
func (r *GeminiRenderer) Render(ctx context.Context, positive, negative string, seed int64) (*Image, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("レート制限の待機に失敗しました: %w", err)
	}

	startTime := time.Now()
	resp, err := r.generator.GenerateMangaPanel(ctx, imagedom.ImageGenerationRequest{
		Prompt:         positive,
		NegativePrompt: negative,
		AspectRatio:    r.aspectRatio,
		Seed:           &seed,
	})
	if err != nil {
		return nil, fmt.Errorf("画像生成に失敗しました (seed: %d): %w", seed, err)
	}
	if resp == nil || len(resp.Data) == 0 {
		return nil, fmt.Errorf("画像生成の応答が空です (seed: %d)", seed)
	}

	slog.DebugContext(ctx, "Panel rendering completed", "seed", seed, "duration", time.Since(startTime).Round(time.Millisecond))

	used := resp.UsedSeed
	if used == 0 {
		used = seed
	}
	return &Image{
		Data:     resp.Data,
		MimeType: resp.MimeType,
		Seed:     used,
	}, nil
}
