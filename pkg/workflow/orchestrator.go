// Package workflow は、章テキストからパネル画像を生成するジョブの受付と実行を管理します。
package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/shouni/go-webtoon-kit/pkg/advisor"
	"github.com/shouni/go-webtoon-kit/pkg/character"
	"github.com/shouni/go-webtoon-kit/pkg/config"
	"github.com/shouni/go-webtoon-kit/pkg/domain"
	"github.com/shouni/go-webtoon-kit/pkg/renderer"
	"github.com/shouni/go-webtoon-kit/pkg/segmenter"
)

// PanelSink は生成済みのパネル画像を受け取ります。
type PanelSink interface {
	Store(ctx context.Context, jobID string, index int, img *renderer.Image) error
}

// characterSaver を実装するライブラリには、明示指定されたキャラクターを登録します。
type characterSaver interface {
	Save(c domain.CharacterDescriptor) (string, error)
}

// Dependencies は Orchestrator に注入する外部コンポーネントです。
type Dependencies struct {
	Renderer   renderer.Renderer // 必須
	Advisor    advisor.Advisor
	Characters character.Lookup
	Sink       PanelSink
}

// Orchestrator はジョブを受け付け、ジョブごとに1つのワーカーで生成処理を進めます。
type Orchestrator struct {
	cfg        config.Config
	registry   *Registry
	segmenter  *segmenter.Segmenter
	renderer   renderer.Renderer
	advisor    advisor.Advisor
	characters character.Lookup
	sink       PanelSink
	workers    errgroup.Group
}

// New は設定と依存コンポーネントから Orchestrator を初期化します。
func New(cfg config.Config, deps Dependencies) (*Orchestrator, error) {
	if deps.Renderer == nil {
		return nil, fmt.Errorf("Renderer は必須です")
	}
	cfg = cfg.WithDefaults()

	adv := deps.Advisor
	if adv == nil {
		adv = advisor.Nop{}
	}

	return &Orchestrator{
		cfg:        cfg,
		registry:   NewRegistry(cfg.MaxJobs),
		segmenter:  segmenter.New(cfg),
		renderer:   deps.Renderer,
		advisor:    adv,
		characters: deps.Characters,
		sink:       deps.Sink,
	}, nil
}

// Submit は入力を検証してジョブを登録し、ジョブ ID を返します。
// 処理はバックグラウンドで進み、ctx のキャンセルはワーカーに伝播しません。
func (o *Orchestrator) Submit(ctx context.Context, text string, char *domain.CharacterDescriptor, settings Settings) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", domain.ErrEmptyInput
	}
	if n := utf8.RuneCountInString(text); n > o.cfg.MaxInputChars {
		return "", fmt.Errorf("%w (%d > %d)", domain.ErrInputTooLarge, n, o.cfg.MaxInputChars)
	}

	rs, err := settings.resolve(o.cfg)
	if err != nil {
		return "", err
	}

	var explicit *domain.CharacterDescriptor
	if char != nil {
		c := char.Normalize().ApplyFallbacks(domain.DefaultCharacter())
		explicit = &c
	}

	id := uuid.NewString()
	handle := o.registry.create(id)

	slog.InfoContext(ctx, "ジョブを受け付けました",
		"job_id", id,
		"chars", utf8.RuneCountInString(text),
		"max_panels", rs.maxPanels,
		"style", settings.Style,
	)

	workerCtx := context.WithoutCancel(ctx)
	o.workers.Go(func() error {
		o.run(workerCtx, handle, text, explicit, rs)
		return nil
	})

	return id, nil
}

// GetStatus はジョブのスナップショットを返します。
func (o *Orchestrator) GetStatus(id string) (domain.Job, error) {
	return o.registry.Get(id)
}

// Wait は実行中のすべてのワーカーが終了するまで待ちます。
func (o *Orchestrator) Wait() {
	_ = o.workers.Wait()
}
