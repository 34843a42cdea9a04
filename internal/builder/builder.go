package builder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/shouni/go-webtoon-kit/internal/config"
	"github.com/shouni/go-webtoon-kit/pkg/advisor"
	"github.com/shouni/go-webtoon-kit/pkg/character"
	"github.com/shouni/go-webtoon-kit/pkg/domain"
	"github.com/shouni/go-webtoon-kit/pkg/prompts"
	"github.com/shouni/go-webtoon-kit/pkg/publisher"
	"github.com/shouni/go-webtoon-kit/pkg/renderer"
	"github.com/shouni/go-webtoon-kit/pkg/workflow"

	imagekit "github.com/shouni/gemini-image-kit/pkg/generator"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"github.com/shouni/go-http-kit/pkg/httpkit"
)

const (
	defaultGeminiTemperature = float32(0.2)
	defaultRateBurst         = 2
	defaultCacheExpiration   = 5 * time.Minute
	cacheCleanupInterval     = 15 * time.Minute
	defaultTTL               = 5 * time.Minute
)

// Setup は設定から AppContext を組み立てます。
// API キーがない場合や --no-advisor の場合、アドバイザーは無効になります。
func Setup(ctx context.Context, cfg *config.Config) (*AppContext, error) {
	opts := cfg.Options
	httpClient := httpkit.New(opts.HTTPTimeout)

	var aiClient gemini.GenerativeModel
	if cfg.Core.GeminiAPIKey != "" {
		c, err := InitializeAIClient(ctx, cfg.Core.GeminiAPIKey)
		if err != nil {
			return nil, err
		}
		aiClient = c
	}

	adv, err := InitializeAdvisor(aiClient, cfg)
	if err != nil {
		return nil, err
	}

	explicit, err := LoadCharacter(opts.CharacterFile)
	if err != nil {
		return nil, err
	}

	characters, err := InitializeLibrary(opts.LibraryDir)
	if err != nil {
		return nil, err
	}

	synth, err := prompts.ForStyle(opts.Style)
	if err != nil {
		return nil, err
	}

	appCtx := NewAppContext(cfg, httpClient, aiClient, adv, characters, explicit, synth)
	return &appCtx, nil
}

// InitializeAIClient は gemini クライアントを初期化します。
func InitializeAIClient(ctx context.Context, apiKey string) (gemini.GenerativeModel, error) {
	clientConfig := gemini.Config{
		APIKey:      apiKey,
		Temperature: genai.Ptr(defaultGeminiTemperature),
	}
	aiClient, err := gemini.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return aiClient, nil
}

// InitializeAdvisor はテキストモデルを使うアドバイザーを初期化します。
func InitializeAdvisor(aiClient gemini.GenerativeModel, cfg *config.Config) (advisor.Advisor, error) {
	if cfg.Options.NoAdvisor || aiClient == nil {
		slog.Info("AIアドバイザーは無効なのだ。ルールベースで処理するのだ")
		return advisor.Nop{}, nil
	}
	adv, err := advisor.NewGeminiAdvisor(aiClient, cfg.Core.GeminiModel, cfg.Core.AdvisorTimeout)
	if err != nil {
		return nil, fmt.Errorf("アドバイザーの初期化に失敗しました: %w", err)
	}
	return adv, nil
}

// InitializeRenderer は画像生成モデルを使う Renderer を初期化します。
func InitializeRenderer(appCtx *AppContext) (*renderer.GeminiRenderer, error) {
	if appCtx.aiClient == nil {
		return nil, fmt.Errorf("画像生成には GEMINI_API_KEY が必須です")
	}
	core := appCtx.Config.Core

	imgCache := cache.New(defaultCacheExpiration, cacheCleanupInterval)
	imageCore, err := imagekit.NewGeminiImageCore(
		appCtx.aiClient,
		nil, // 参照画像はローカルに持たないため InputReader は使わない
		appCtx.httpClient,
		imgCache,
		defaultTTL,
	)
	if err != nil {
		return nil, fmt.Errorf("GeminiImageCore の初期化に失敗しました: %w", err)
	}

	imageGenerator, err := imagekit.NewGeminiGenerator(core.ImageModel, imageCore)
	if err != nil {
		return nil, fmt.Errorf("ImageGeneratorの初期化に失敗しました: %w", err)
	}

	return renderer.NewGeminiRenderer(
		imageGenerator,
		rate.NewLimiter(rate.Every(core.RateInterval), defaultRateBurst),
		core.PanelAspectRatio,
	)
}

// BuildOrchestrator はジョブの実行に必要なコンポーネントを組み立てます。
func BuildOrchestrator(appCtx *AppContext) (*workflow.Orchestrator, *publisher.LocalSink, error) {
	r, err := InitializeRenderer(appCtx)
	if err != nil {
		return nil, nil, err
	}

	sink, err := publisher.NewLocalSink(appCtx.Options.OutputDir)
	if err != nil {
		return nil, nil, err
	}

	o, err := workflow.New(appCtx.Config.Core, workflow.Dependencies{
		Renderer:   r,
		Advisor:    appCtx.Advisor,
		Characters: appCtx.Characters,
		Sink:       sink,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("Orchestrator の初期化に失敗しました: %w", err)
	}
	return o, sink, nil
}

// InitializeLibrary はキャラクターライブラリを生成し、dir があれば中の定義を登録します。
func InitializeLibrary(dir string) (*character.Store, error) {
	store := character.NewStore()
	if dir == "" {
		return store, nil
	}
	n, err := character.LoadDir(store, dir)
	if err != nil {
		return nil, err
	}
	slog.Info("キャラクターライブラリを読み込んだのだ", "dir", dir, "count", n)
	return store, nil
}

// LoadCharacter は --character で指定された YAML を読み込みます。未指定なら nil を返します。
func LoadCharacter(path string) (*domain.CharacterDescriptor, error) {
	if path == "" {
		return nil, nil
	}
	c, err := character.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Settings はフラグからジョブの設定を組み立てます。
func (a *AppContext) Settings() workflow.Settings {
	s := workflow.DefaultSettings()
	s.MaxPanels = a.Config.Core.MaxPanels
	s.UseAdvisorScenes = !a.Options.NoAdvisor
	s.UseAdvisorPrompts = !a.Options.NoAdvisor
	s.CharacterID = a.Options.CharacterID
	s.Style = a.Options.Style
	return s
}
