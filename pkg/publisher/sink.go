// Package publisher は、生成したパネル画像をジョブごとのディレクトリに書き出します。
package publisher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shouni/go-webtoon-kit/pkg/renderer"
)

// LocalSink はパネルを <dir>/<jobID>/panel_001.png の形式でローカルに保存します。
type LocalSink struct {
	dir string
}

// NewLocalSink は出力ディレクトリを指定して LocalSink を生成します。
func NewLocalSink(dir string) (*LocalSink, error) {
	if dir == "" {
		return nil, fmt.Errorf("出力ディレクトリは必須です")
	}
	return &LocalSink{dir: dir}, nil
}

// Dir は保存先のジョブディレクトリを返します。
func (s *LocalSink) Dir(jobID string) string {
	return filepath.Join(s.dir, jobID)
}

// Store は1枚のパネル画像を書き出します。
func (s *LocalSink) Store(ctx context.Context, jobID string, index int, img *renderer.Image) error {
	if img == nil || len(img.Data) == 0 {
		return fmt.Errorf("パネル %d の画像データが空です", index)
	}

	path, err := ResolveOutputPath(s.dir, jobID, PanelFileName(index, img.MimeType))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("出力ディレクトリの作成に失敗しました: %w", err)
	}
	if err := os.WriteFile(path, img.Data, 0o644); err != nil {
		return fmt.Errorf("パネル画像の書き込みに失敗しました: %w", err)
	}

	slog.DebugContext(ctx, "パネル画像を保存しました", "job_id", jobID, "panel_index", index, "path", path)
	return nil
}
