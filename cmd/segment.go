package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shouni/go-webtoon-kit/internal/pipeline"
)

// segmentCmd は、シーン分割の結果だけを確認するのだ。
var segmentCmd = &cobra.Command{
	Use:   "segment",
	Short: "章テキストを分類済みのシーンに分割して JSON で表示するのだ。",
	RunE: func(cmd *cobra.Command, args []string) error {
		return pipeline.ExecuteSegmentOnly(cmd.Context(), loadConfig(), cmd.OutOrStdout())
	},
}
