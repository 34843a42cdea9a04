package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shouni/go-webtoon-kit/internal/pipeline"
)

// promptCmd は、画像を生成せずにシーンごとのプロンプトを確認するのだ。
var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "シーンごとの画像生成プロンプトを JSON で表示するのだ。",
	RunE: func(cmd *cobra.Command, args []string) error {
		return pipeline.ExecutePromptOnly(cmd.Context(), loadConfig(), cmd.OutOrStdout())
	},
}
