package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shouni/go-webtoon-kit/internal/config"
	"github.com/shouni/go-webtoon-kit/internal/pipeline"
)

// generateCmd は、章テキストからパネル画像を生成するのだ。
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "章テキストからパネル画像を生成するのだ。",
	Long: `章テキストをシーンに分割し、シーンごとのプロンプトからパネル画像を生成するのだ。
画像は <output-dir>/<job_id>/panel_001.png の形式で保存されるのだよ。`,
	RunE: generateCommand,
}

func init() {
	generateCmd.Flags().StringVarP(&opts.OutputDir, "output-dir", "o", config.DefaultOutputDir, "パネル画像を保存するディレクトリなのだ。")
	generateCmd.Flags().DurationVar(&opts.PollInterval, "poll-interval", config.DefaultPollInterval, "進捗を確認する間隔なのだ。")
}

func generateCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg := loadConfig()
	if cfg.Core.GeminiAPIKey == "" {
		return fmt.Errorf("エラー: 環境変数 GEMINI_API_KEY が設定されていません。画像生成には必須なのだ")
	}

	slog.Info("パネル生成パイプラインを起動するのだ！",
		"text_model", cfg.Core.GeminiModel,
		"image_model", cfg.Core.ImageModel,
		"panel_limit", cfg.Core.MaxPanels,
		"output", opts.OutputDir)

	if err := pipeline.Execute(ctx, cfg); err != nil {
		return fmt.Errorf("パイプライン実行中にエラーが発生したのだ: %w", err)
	}

	slog.Info("すべての生成工程が完了したのだ！")
	return nil
}
