package builder

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shouni/go-webtoon-kit/internal/config"
	"github.com/shouni/go-webtoon-kit/pkg/advisor"
	core "github.com/shouni/go-webtoon-kit/pkg/config"
	"github.com/shouni/go-webtoon-kit/pkg/domain"
)

func newTestConfig(opts config.GenerateOptions) *config.Config {
	if opts.HTTPTimeout == 0 {
		opts.HTTPTimeout = config.DefaultHTTPTimeout
	}
	cfg := &config.Config{Core: core.DefaultConfig()}
	cfg.Apply(opts)
	return cfg
}

func TestSetup(t *testing.T) {
	ctx := context.Background()

	t.Run("ライブラリを読み込み、フラグがジョブ設定に反映されること", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "marcus.yaml"), []byte("id: marcus\nname: Marcus\n"), 0o644); err != nil {
			t.Fatalf("テストファイルの作成に失敗しました: %v", err)
		}
		cfg := newTestConfig(config.GenerateOptions{
			LibraryDir:  dir,
			CharacterID: "marcus",
			Style:       "manga",
			PanelLimit:  4,
			NoAdvisor:   true,
		})

		appCtx, err := Setup(ctx, cfg)
		if err != nil {
			t.Fatalf("想定外のエラーが発生しました: %v", err)
		}
		if _, ok := appCtx.Characters.Get("marcus"); !ok {
			t.Error("ライブラリのキャラクターが登録されていません")
		}
		if _, ok := appCtx.Advisor.(advisor.Nop); !ok {
			t.Errorf("アドバイザーが無効になっていません: %T", appCtx.Advisor)
		}

		s := appCtx.Settings()
		if s.CharacterID != "marcus" {
			t.Errorf("期待値 'marcus', 実際の値 '%s'", s.CharacterID)
		}
		if s.Style != "manga" {
			t.Errorf("期待値 'manga', 実際の値 '%s'", s.Style)
		}
		if s.MaxPanels != 4 {
			t.Errorf("期待値 4, 実際の値 %d", s.MaxPanels)
		}
		if s.UseAdvisorScenes || s.UseAdvisorPrompts {
			t.Error("--no-advisor がジョブ設定に反映されていません")
		}
	})

	t.Run("未知の画風はエラーになること", func(t *testing.T) {
		cfg := newTestConfig(config.GenerateOptions{Style: "cubism"})
		if _, err := Setup(ctx, cfg); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("期待値 ErrInvalidInput, 実際の値 %v", err)
		}
	})

	t.Run("ライブラリのディレクトリがなければエラーになること", func(t *testing.T) {
		cfg := newTestConfig(config.GenerateOptions{LibraryDir: filepath.Join(t.TempDir(), "missing")})
		if _, err := Setup(ctx, cfg); err == nil {
			t.Error("エラーになりませんでした")
		}
	})
}

func TestInitializeRenderer(t *testing.T) {
	appCtx, err := Setup(context.Background(), newTestConfig(config.GenerateOptions{}))
	if err != nil {
		t.Fatalf("想定外のエラーが発生しました: %v", err)
	}
	if _, err := InitializeRenderer(appCtx); err == nil {
		t.Error("API キーがなくてもエラーになりませんでした")
	}
}
