package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shouni/go-webtoon-kit/pkg/domain"
)

// scriptedSource は呼び出しごとに用意した状態を順に返します。
type scriptedSource struct {
	jobs  []domain.Job
	calls int
}

func (s *scriptedSource) GetStatus(string) (domain.Job, error) {
	job := s.jobs[min(s.calls, len(s.jobs)-1)]
	s.calls++
	return job, nil
}

type missingSource struct{}

func (missingSource) GetStatus(string) (domain.Job, error) {
	return domain.Job{}, domain.ErrJobNotFound
}

func TestWaitForJob(t *testing.T) {
	t.Run("終了状態になるまで確認を続けること", func(t *testing.T) {
		src := &scriptedSource{jobs: []domain.Job{
			{Status: domain.JobQueued},
			{Status: domain.JobProcessing, Progress: 40, Stage: "Generating panel 2/3..."},
			{Status: domain.JobCompleted, Progress: 100, Stage: "Completed"},
		}}

		job, err := waitForJob(context.Background(), src, "job-1", time.Millisecond)
		if err != nil {
			t.Fatalf("想定外のエラーが発生しました: %v", err)
		}
		if job.Status != domain.JobCompleted {
			t.Errorf("期待値 completed, 実際の値 %s", job.Status)
		}
		if src.calls != 3 {
			t.Errorf("期待値 3, 実際の値 %d", src.calls)
		}
	})

	t.Run("ジョブが見つからなければエラーを返すこと", func(t *testing.T) {
		_, err := waitForJob(context.Background(), missingSource{}, "job-1", time.Millisecond)
		if !errors.Is(err, domain.ErrJobNotFound) {
			t.Errorf("期待値 ErrJobNotFound, 実際の値 %v", err)
		}
	})

	t.Run("コンテキストがキャンセルされたら中断すること", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		src := &scriptedSource{jobs: []domain.Job{{Status: domain.JobProcessing}}}

		if _, err := waitForJob(ctx, src, "job-1", time.Hour); !errors.Is(err, context.Canceled) {
			t.Errorf("期待値 context.Canceled, 実際の値 %v", err)
		}
	})
}

func TestReadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chapter.txt")
	if err := os.WriteFile(path, []byte("Elena stood at the cliff edge."), 0o644); err != nil {
		t.Fatalf("テストファイルの作成に失敗しました: %v", err)
	}

	got, err := readInput(path)
	if err != nil {
		t.Fatalf("想定外のエラーが発生しました: %v", err)
	}
	if got != "Elena stood at the cliff edge." {
		t.Errorf("期待値 'Elena stood at the cliff edge.', 実際の値 '%s'", got)
	}

	if _, err := readInput(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("存在しないファイルでエラーになりませんでした")
	}
}
