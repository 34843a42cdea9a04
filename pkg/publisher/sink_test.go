package publisher

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shouni/go-webtoon-kit/pkg/renderer"
)

func TestLocalSink_Store(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewLocalSink(dir)
	if err != nil {
		t.Fatalf("初期化に失敗しました: %v", err)
	}
	ctx := context.Background()

	t.Run("ジョブごとのディレクトリに連番で保存されること", func(t *testing.T) {
		data := []byte{0x89, 0x50, 0x4e, 0x47}
		if err := sink.Store(ctx, "job-1", 2, &renderer.Image{Data: data, MimeType: "image/png"}); err != nil {
			t.Fatalf("保存に失敗しました: %v", err)
		}

		got, err := os.ReadFile(filepath.Join(dir, "job-1", "panel_002.png"))
		if err != nil {
			t.Fatalf("保存したファイルが読めません: %v", err)
		}
		if !bytes.Equal(got, data) {
			t.Errorf("期待値 %v, 実際の値 %v", data, got)
		}
	})

	t.Run("空の画像はエラーになること", func(t *testing.T) {
		if err := sink.Store(ctx, "job-1", 1, &renderer.Image{}); err == nil {
			t.Error("空の画像でエラーになりませんでした")
		}
	})

	t.Run("不正なジョブ ID はエラーになること", func(t *testing.T) {
		img := &renderer.Image{Data: []byte{1}}
		for _, id := range []string{"", "..", "a/b"} {
			if err := sink.Store(ctx, id, 1, img); err == nil {
				t.Errorf("ジョブ ID %q でエラーになりませんでした", id)
			}
		}
	})
}

func TestPanelFileName(t *testing.T) {
	tests := []struct {
		index    int
		mimeType string
		want     string
	}{
		{1, "image/png", "panel_001.png"},
		{12, "image/jpeg", "panel_012.jpg"},
		{3, "", "panel_003.png"},
	}
	for _, tt := range tests {
		if got := PanelFileName(tt.index, tt.mimeType); got != tt.want {
			t.Errorf("期待値 '%s', 実際の値 '%s'", tt.want, got)
		}
	}
}

func TestNewLocalSink(t *testing.T) {
	if _, err := NewLocalSink(""); err == nil {
		t.Error("ディレクトリが空でもエラーになりませんでした")
	}
}
