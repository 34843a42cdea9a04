package publisher

import (
	"fmt"
	"path/filepath"
	"strings"
)

// PanelFileName はパネル番号から "panel_001.png" 形式のファイル名を生成します。
func PanelFileName(index int, mimeType string) string {
	return fmt.Sprintf("panel_%03d%s", index, extensionFor(mimeType))
}

// ResolveOutputPath は出力ディレクトリ・ジョブ ID・ファイル名から保存先のパスを生成します。
// ジョブ ID にパス区切りや ".." が含まれる場合はエラーを返すのだ。
func ResolveOutputPath(baseDir, jobID, fileName string) (string, error) {
	if jobID == "" || jobID == "." || jobID == ".." || strings.ContainsAny(jobID, `/\`) {
		return "", fmt.Errorf("無効なジョブ ID です: %q", jobID)
	}
	return filepath.Join(baseDir, jobID, fileName), nil
}

func extensionFor(mimeType string) string {
	switch strings.ToLower(mimeType) {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
