package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shouni/go-webtoon-kit/pkg/advisor"
	"github.com/shouni/go-webtoon-kit/pkg/domain"
)

// 各工程の完了時点での進捗率です。
const (
	progressSegmented   = 10
	progressCharacter   = 20
	progressSynthesized = 30
	progressRenderSpan  = 60
	progressHandoff     = 90
	progressCompleted   = 100
)

// run は1件のジョブを最後まで処理します。ジョブへの書き込みはこのゴルーチンだけが行います。
func (o *Orchestrator) run(ctx context.Context, h *jobHandle, text string, explicit *domain.CharacterDescriptor, rs resolvedSettings) {
	jobID := h.snapshot().ID
	logger := slog.With("job_id", jobID)
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("ワーカーで panic が発生しました", "panic", r)
			o.fail(h, fmt.Errorf("internal error: %v", r))
		}
	}()

	if err := o.process(ctx, logger, h, jobID, text, explicit, rs); err != nil {
		logger.Error("ジョブが失敗しました", "error", err, "duration", time.Since(start).Round(time.Millisecond))
		o.fail(h, err)
		return
	}

	logger.Info("ジョブが完了しました", "duration", time.Since(start).Round(time.Millisecond))
}

func (o *Orchestrator) process(ctx context.Context, logger *slog.Logger, h *jobHandle, jobID, text string, explicit *domain.CharacterDescriptor, rs resolvedSettings) error {
	// --- 1. シーン分割 ---
	h.update(func(j *domain.Job) {
		j.Status = domain.JobProcessing
		j.Stage = "Segmenting text..."
	})

	sceneAdvisor := o.advisorFor(rs.useAdvisorScenes)
	scenes := o.segmenter.Segment(ctx, text, rs.maxPanels, sceneAdvisor)
	if len(scenes) == 0 {
		return domain.ErrNoScenes
	}
	logger.Info("シーン分割が完了しました", "scenes", len(scenes))

	h.update(func(j *domain.Job) {
		j.Progress = progressSegmented
		j.Stage = "Resolving character..."
	})

	// --- 2. キャラクターの決定 ---
	promptAdvisor := o.advisorFor(rs.useAdvisorPrompts)
	char := o.resolveCharacter(ctx, logger, text, explicit, rs.characterID, promptAdvisor)
	logger.Info("キャラクターを決定しました", "character", char.Name.String())

	h.update(func(j *domain.Job) {
		j.Progress = progressCharacter
		j.Stage = "Synthesizing prompts..."
	})

	// --- 3. プロンプト生成 ---
	pairs := rs.synthesizer.SynthesizeBatch(ctx, scenes, &char, promptAdvisor)
	total := len(pairs)

	h.update(func(j *domain.Job) {
		j.Progress = progressSynthesized
		j.TotalPanels = total
		j.Stage = fmt.Sprintf("Generating panel 1/%d...", total)
	})

	// --- 4. 画像生成 ---
	for k, pair := range pairs {
		if err := o.renderPanel(ctx, jobID, pair, rs.baseSeed); err != nil {
			return err
		}

		done := k + 1
		h.update(func(j *domain.Job) {
			j.GeneratedPanels = done
			j.Progress = progressSynthesized + progressRenderSpan*done/total
			if done < total {
				j.Stage = fmt.Sprintf("Generating panel %d/%d...", done+1, total)
			} else {
				j.Stage = "Finalizing..."
			}
		})
	}

	// --- 5. 引き渡し ---
	h.update(func(j *domain.Job) {
		j.Progress = progressHandoff
	})
	h.update(func(j *domain.Job) {
		j.Status = domain.JobCompleted
		j.Progress = progressCompleted
		j.Stage = "Completed"
	})
	return nil
}

// renderPanel は1枚のパネルを生成し、出力先があれば保存します。
func (o *Orchestrator) renderPanel(ctx context.Context, jobID string, pair domain.PromptPair, baseSeed int64) error {
	seed := PanelSeed(baseSeed, pair.Index)
	logger := slog.With("job_id", jobID, "panel_index", pair.Index, "seed", seed)
	logger.Info("パネルの生成を開始します")

	startTime := time.Now()
	img, err := o.renderer.Render(ctx, pair.Positive, pair.Negative, seed)
	if err != nil {
		return fmt.Errorf("%w: panel %d: %w", domain.ErrRenderFailed, pair.Index, err)
	}

	if o.sink != nil {
		if err := o.sink.Store(ctx, jobID, pair.Index, img); err != nil {
			return fmt.Errorf("%w: panel %d: 画像の保存に失敗しました: %w", domain.ErrRenderFailed, pair.Index, err)
		}
	}

	logger.Info("パネルの生成が完了しました", "duration", time.Since(startTime).Round(time.Millisecond))
	return nil
}

// resolveCharacter は 明示指定 → ライブラリ → アドバイザー → 既定 の順でキャラクターを決めます。
func (o *Orchestrator) resolveCharacter(ctx context.Context, logger *slog.Logger, text string, explicit *domain.CharacterDescriptor, characterID string, adv advisor.Advisor) domain.CharacterDescriptor {
	if explicit != nil {
		o.remember(logger, *explicit)
		return *explicit
	}

	if characterID != "" && o.characters != nil {
		if c, ok := o.characters.Get(characterID); ok {
			return c
		}
		logger.Warn("指定されたキャラクターがライブラリにありません", "character_id", characterID)
	}

	if advisor.Usable(adv) {
		if c, ok := adv.ExtractCharacter(ctx, text); ok {
			return c
		}
		logger.Debug("AIによるキャラクター抽出が得られなかったため、既定のキャラクターを使います")
	}

	return domain.DefaultCharacter()
}

// remember は明示指定されたキャラクターをライブラリに登録します。失敗してもジョブは続行します。
func (o *Orchestrator) remember(logger *slog.Logger, c domain.CharacterDescriptor) {
	saver, ok := o.characters.(characterSaver)
	if !ok {
		return
	}
	if _, err := saver.Save(c); err != nil {
		logger.Warn("キャラクターの登録に失敗しました", "error", err)
	}
}

func (o *Orchestrator) advisorFor(enabled bool) advisor.Advisor {
	if !enabled {
		return advisor.Nop{}
	}
	return o.advisor
}

// fail はジョブを failed にします。すでに終了していれば何もしません。
func (o *Orchestrator) fail(h *jobHandle, err error) {
	h.update(func(j *domain.Job) {
		j.Status = domain.JobFailed
		j.Stage = "Failed"
		j.Error = err.Error()
	})
}
