package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/shouni/go-webtoon-kit/internal/config"
	core "github.com/shouni/go-webtoon-kit/pkg/config"
	"github.com/shouni/go-webtoon-kit/pkg/prompts"
)

// opts はフラグの値を受け取るのだ。
var opts config.GenerateOptions

var verbose bool

var rootCmd = &cobra.Command{
	Use:               "webtoon",
	Short:             "章テキストから縦読み漫画のパネル画像を生成するのだ。",
	SilenceUsage:      true,
	PersistentPreRunE: preRunAppE,
}

func init() {
	addAppFlags(rootCmd)
	rootCmd.AddCommand(generateCmd, segmentCmd, promptCmd)
}

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	flags := rootCmd.PersistentFlags()

	// --- ソース入力関連 ---
	flags.StringVarP(&opts.InputFile, "input-file", "f", "", "章テキストのパス（'-'または未指定で標準入力なのだ）。")
	flags.StringVarP(&opts.CharacterFile, "character", "c", "", "主人公の外見を定義した YAML のパスなのだ。")
	flags.StringVar(&opts.LibraryDir, "library", "", "キャラクター定義の YAML を置いたディレクトリなのだ。起動時にライブラリへ登録するのだ。")
	flags.StringVar(&opts.CharacterID, "character-id", "", "ライブラリに登録済みのキャラクター ID なのだ。")

	// --- AIモデル・挙動設定 ---
	flags.StringVar(&opts.AIModel, "model", "", "シーン分析に使う Gemini モデル名なのだ。")
	flags.StringVar(&opts.ImageModel, "image-model", "", "画像生成に使う Gemini モデル名なのだ。")
	flags.BoolVar(&opts.NoAdvisor, "no-advisor", false, "AIアドバイザーを使わずルールベースだけで処理するのだ。")
	flags.DurationVar(&opts.HTTPTimeout, "http-timeout", config.DefaultHTTPTimeout, "Webリクエストのタイムアウトなのだ。")

	// --- 生成パラメータ ---
	flags.IntVarP(&opts.PanelLimit, "panel-limit", "p", core.DefaultMaxPanels, "生成するパネルの最大数（1〜50）なのだ。")
	flags.Int64Var(&opts.BaseSeed, "seed", core.DefaultBaseSeed, "パネルのシード値の基準なのだ。")
	flags.IntVar(&opts.MinWords, "min-words", core.DefaultMinWords, "1シーンの最小語数なのだ。")
	flags.IntVar(&opts.MaxWords, "max-words", core.DefaultMaxWords, "1シーンの最大語数なのだ。")
	flags.StringVar(&opts.Style, "style", "", "画風のプリセット（"+strings.Join(prompts.StyleKeys(), ", ")+"）なのだ。")

	flags.BoolVarP(&verbose, "verbose", "v", false, "詳細なログを出力するのだ。")
}

// preRunAppE は、コマンド実行前に .env の読み込みとログ設定を行うのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn(".env の読み込みに失敗したのだ", "error", err)
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// loadConfig は環境変数とフラグから設定を組み立てるのだ。
func loadConfig() *config.Config {
	cfg := config.LoadConfig()
	cfg.Apply(opts)
	return cfg
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
