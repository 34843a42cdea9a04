package config

import (
	"time"

	"github.com/shouni/go-utils/envutil"

	"github.com/shouni/go-webtoon-kit/pkg/config"
)

// CLI 固有のデフォルト値なのだ
const (
	DefaultHTTPTimeout  = 30 * time.Second
	DefaultOutputDir    = "output/frames" // パネル画像の保存先なのだ
	DefaultPollInterval = 2 * time.Second
)

// Config はアプリケーション全体の環境設定を保持する構造体なのだ。
type Config struct {
	Core    config.Config
	Options GenerateOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	core := config.DefaultConfig()
	core.GeminiAPIKey = envutil.GetEnv("GEMINI_API_KEY", "")
	core.GeminiModel = envutil.GetEnv("GEMINI_MODEL", config.DefaultGeminiModel)
	core.ImageModel = envutil.GetEnv("IMAGE_GEMINI_MODEL", config.DefaultImageModel)
	core.PanelAspectRatio = envutil.GetEnv("PANEL_ASPECT_RATIO", config.DefaultPanelAspectRatio)
	core.RateInterval = parseDuration(envutil.GetEnv("IMAGE_RATE_INTERVAL", ""), config.DefaultRateInterval)
	core.AdvisorTimeout = parseDuration(envutil.GetEnv("ADVISOR_TIMEOUT", ""), config.DefaultAdvisorTimeout)

	return &Config{Core: core}
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	// ソース入力関連
	InputFile     string // --input-file（'-' または未指定で標準入力）
	CharacterFile string // --character
	CharacterID   string // --character-id（--library で登録したキャラクターを指定）
	LibraryDir    string // --library

	// 出力関連
	OutputDir string // --output-dir

	// AI挙動設定
	AIModel    string // --model
	ImageModel string // --image-model
	NoAdvisor  bool   // --no-advisor

	// 生成パラメータ
	PanelLimit int    // --panel-limit
	BaseSeed   int64  // --seed
	MinWords   int    // --min-words
	MaxWords   int    // --max-words
	Style      string // --style（空なら既定の画風）

	// 実行制御
	HTTPTimeout  time.Duration // --http-timeout
	PollInterval time.Duration // --poll-interval
}

// Apply はフラグで指定された値を Core に反映するのだ。
func (c *Config) Apply(opts GenerateOptions) {
	c.Options = opts
	if opts.AIModel != "" {
		c.Core.GeminiModel = opts.AIModel
	}
	if opts.ImageModel != "" {
		c.Core.ImageModel = opts.ImageModel
	}
	if opts.PanelLimit > 0 {
		c.Core.MaxPanels = min(opts.PanelLimit, config.MaxPanelsLimit)
	}
	if opts.MinWords > 0 {
		c.Core.MinWords = opts.MinWords
	}
	if opts.MaxWords > 0 {
		c.Core.MaxWords = opts.MaxWords
	}
	c.Core.BaseSeed = opts.BaseSeed
	c.Core = c.Core.WithDefaults()
}
