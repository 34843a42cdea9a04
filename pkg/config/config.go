package config

import (
	"time"
)

// デフォルト値の定義
const (
	DefaultGeminiModel      = "gemini-3-flash-preview"
	DefaultImageModel       = "gemini-3-pro-image-preview"
	DefaultRateInterval     = 10 * time.Second
	DefaultAdvisorTimeout   = 30 * time.Second
	DefaultPanelAspectRatio = "9:16" // 縦スクロールのウェブトゥーン形式
	DefaultMinWords         = 30
	DefaultMaxWords         = 150
	DefaultMaxPanels        = 10
	MaxPanelsLimit          = 50
	DefaultMaxJobs          = 100
	DefaultMaxInputChars    = 50000
	DefaultBaseSeed         = 42
)

// Config は Go Webtoon Kit の各コンポーネントを動作させるための基本設定です。
type Config struct {
	// --- AI Model Settings ---
	GeminiModel string // シーン解析・プロンプト補強用のテキストモデル
	ImageModel  string // パネル画像生成用のモデル

	// --- Google AI (Gemini API) Settings ---
	GeminiAPIKey string

	// --- Advisor Settings ---
	AdvisorTimeout time.Duration // 1回の呼び出しに許す最大時間

	// --- Segmentation Settings ---
	MinWords int
	MaxWords int

	// --- Generation Settings ---
	MaxPanels        int
	BaseSeed         int64
	PanelAspectRatio string
	RateInterval     time.Duration

	// --- Job Registry Settings ---
	MaxJobs       int
	MaxInputChars int
}

// DefaultConfig は推奨されるデフォルト設定を返すヘルパー関数です。
func DefaultConfig() Config {
	return Config{
		GeminiModel:      DefaultGeminiModel,
		ImageModel:       DefaultImageModel,
		AdvisorTimeout:   DefaultAdvisorTimeout,
		MinWords:         DefaultMinWords,
		MaxWords:         DefaultMaxWords,
		MaxPanels:        DefaultMaxPanels,
		BaseSeed:         DefaultBaseSeed,
		PanelAspectRatio: DefaultPanelAspectRatio,
		RateInterval:     DefaultRateInterval,
		MaxJobs:          DefaultMaxJobs,
		MaxInputChars:    DefaultMaxInputChars,
	}
}

// WithDefaults はゼロ値のフィールドをデフォルト値で埋めた設定を返します。
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.GeminiModel == "" {
		c.GeminiModel = d.GeminiModel
	}
	if c.ImageModel == "" {
		c.ImageModel = d.ImageModel
	}
	if c.AdvisorTimeout <= 0 {
		c.AdvisorTimeout = d.AdvisorTimeout
	}
	if c.MinWords <= 0 {
		c.MinWords = d.MinWords
	}
	if c.MaxWords < c.MinWords {
		c.MaxWords = max(d.MaxWords, c.MinWords)
	}
	if c.MaxPanels <= 0 {
		c.MaxPanels = d.MaxPanels
	}
	if c.PanelAspectRatio == "" {
		c.PanelAspectRatio = d.PanelAspectRatio
	}
	if c.RateInterval <= 0 {
		c.RateInterval = d.RateInterval
	}
	if c.MaxJobs <= 0 {
		c.MaxJobs = d.MaxJobs
	}
	if c.MaxInputChars <= 0 {
		c.MaxInputChars = d.MaxInputChars
	}
	return c
}
