package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/shouni/go-webtoon-kit/internal/builder"
	"github.com/shouni/go-webtoon-kit/internal/config"
	"github.com/shouni/go-webtoon-kit/pkg/advisor"
	"github.com/shouni/go-webtoon-kit/pkg/domain"
)

// Execute は章テキストを読み込んでジョブを登録し、完了するまで進捗を表示するのだ。
func Execute(ctx context.Context, cfg *config.Config) error {
	appCtx, err := builder.Setup(ctx, cfg)
	if err != nil {
		return err
	}

	text, err := readInput(cfg.Options.InputFile)
	if err != nil {
		return err
	}

	orchestrator, sink, err := builder.BuildOrchestrator(appCtx)
	if err != nil {
		return err
	}
	defer orchestrator.Wait()

	jobID, err := orchestrator.Submit(ctx, text, appCtx.Character, appCtx.Settings())
	if err != nil {
		return fmt.Errorf("ジョブの登録に失敗しました: %w", err)
	}

	job, err := waitForJob(ctx, orchestrator, jobID, cfg.Options.PollInterval)
	if err != nil {
		return err
	}
	if job.Status == domain.JobFailed {
		return fmt.Errorf("ジョブ %s が失敗したのだ: %s", jobID, job.Error)
	}

	slog.Info("パネル画像を保存したのだ！",
		"job_id", jobID,
		"panels", job.GeneratedPanels,
		"dir", sink.Dir(jobID),
	)
	return nil
}

// statusSource はジョブの状態を取得できるものなのだ。
type statusSource interface {
	GetStatus(id string) (domain.Job, error)
}

// waitForJob はジョブが終了するまで一定間隔で状態を確認するのだ。
func waitForJob(ctx context.Context, src statusSource, jobID string, interval time.Duration) (domain.Job, error) {
	if interval <= 0 {
		interval = config.DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastStage := ""
	for {
		job, err := src.GetStatus(jobID)
		if err != nil {
			return domain.Job{}, fmt.Errorf("ジョブ状態の取得に失敗しました: %w", err)
		}
		if job.Stage != lastStage {
			slog.Info("進捗なのだ", "job_id", jobID, "progress", job.Progress, "step", job.Stage)
			lastStage = job.Stage
		}
		if job.Status.IsTerminal() {
			return job, nil
		}

		select {
		case <-ctx.Done():
			return job, ctx.Err()
		case <-ticker.C:
		}
	}
}

// ExecuteSegmentOnly はシーン分割の結果だけを JSON で出力するのだ。画像は生成しないのだ。
func ExecuteSegmentOnly(ctx context.Context, cfg *config.Config, w io.Writer) error {
	appCtx, err := builder.Setup(ctx, cfg)
	if err != nil {
		return err
	}
	text, err := readInput(cfg.Options.InputFile)
	if err != nil {
		return err
	}

	scenes := appCtx.Segmenter.Segment(ctx, text, appCtx.Config.Core.MaxPanels, appCtx.Advisor)
	if len(scenes) == 0 {
		return domain.ErrNoScenes
	}
	return writeJSON(w, scenes)
}

// ExecutePromptOnly はシーンごとのプロンプトを JSON で出力するのだ。画像は生成しないのだ。
func ExecutePromptOnly(ctx context.Context, cfg *config.Config, w io.Writer) error {
	appCtx, err := builder.Setup(ctx, cfg)
	if err != nil {
		return err
	}
	text, err := readInput(cfg.Options.InputFile)
	if err != nil {
		return err
	}

	scenes := appCtx.Segmenter.Segment(ctx, text, appCtx.Config.Core.MaxPanels, appCtx.Advisor)
	if len(scenes) == 0 {
		return domain.ErrNoScenes
	}

	char := resolveCharacter(ctx, appCtx, text)
	pairs := appCtx.Synthesizer.SynthesizeBatch(ctx, scenes, &char, appCtx.Advisor)
	return writeJSON(w, pairs)
}

// resolveCharacter は --character、--character-id、アドバイザー、既定値の順でキャラクターを決めるのだ。
func resolveCharacter(ctx context.Context, appCtx *builder.AppContext, text string) domain.CharacterDescriptor {
	if appCtx.Character != nil {
		return *appCtx.Character
	}
	if id := appCtx.Options.CharacterID; id != "" && appCtx.Characters != nil {
		if c, ok := appCtx.Characters.Get(id); ok {
			return c
		}
		slog.Warn("指定されたキャラクターがライブラリにないのだ", "character_id", id)
	}
	if advisor.Usable(appCtx.Advisor) {
		if c, ok := appCtx.Advisor.ExtractCharacter(ctx, text); ok {
			return c
		}
	}
	return domain.DefaultCharacter()
}

// readInput はファイルまたは標準入力から本文を読み込むのだ。
func readInput(path string) (string, error) {
	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("入力ファイル '%s' の読み込みに失敗しました: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("入力の読み込みに失敗しました: %w", err)
	}
	return string(data), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("JSONの出力に失敗しました: %w", err)
	}
	return nil
}
