package workflow

import (
	"log/slog"
	"sync"
	"time"

	"github.com/shouni/go-webtoon-kit/pkg/domain"
)

// record は1件のジョブを保持します。書き込むのはそのジョブのワーカーだけです。
type record struct {
	mu  sync.RWMutex
	job domain.Job
}

// snapshot は読み取り時点で一貫したコピーを返します。
func (r *record) snapshot() domain.Job {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.job.Clone()
}

// Registry はジョブ ID とジョブの対応を保持します。
// 挿入・削除・検索は mu で保護し、各ジョブの内容は record ごとのロックで保護します。
type Registry struct {
	mu      sync.RWMutex
	records map[string]*record
	order   []string // 作成順
	maxJobs int
	now     func() time.Time
}

// NewRegistry は最大 maxJobs 件を保持する Registry を生成します。
func NewRegistry(maxJobs int) *Registry {
	return &Registry{
		records: make(map[string]*record),
		maxJobs: maxJobs,
		now:     time.Now,
	}
}

// create は queued 状態のジョブを登録し、書き込み用のハンドルを返します。
// 上限を超えた場合は終了済みのジョブを古い順に削除します。
func (r *Registry) create(id string) *jobHandle {
	rec := &record{job: domain.Job{
		ID:        id,
		Status:    domain.JobQueued,
		Stage:     "Queued",
		CreatedAt: r.now(),
	}}

	r.mu.Lock()
	r.records[id] = rec
	r.order = append(r.order, id)
	r.evictLocked()
	r.mu.Unlock()

	return &jobHandle{rec: rec, now: r.now}
}

// evictLocked は上限を超えている間、終了済みのジョブを古い順に削除します。
// 処理中・待機中のジョブは削除しません。
func (r *Registry) evictLocked() {
	if r.maxJobs <= 0 || len(r.records) <= r.maxJobs {
		return
	}
	excess := len(r.records) - r.maxJobs

	kept := r.order[:0]
	for _, id := range r.order {
		rec := r.records[id]
		if excess > 0 && rec.snapshot().Status.IsTerminal() {
			delete(r.records, id)
			excess--
			slog.Debug("終了済みのジョブを削除しました", "job_id", id)
			continue
		}
		kept = append(kept, id)
	}
	r.order = kept
}

// Get はジョブのスナップショットを返します。
func (r *Registry) Get(id string) (domain.Job, error) {
	r.mu.RLock()
	rec, ok := r.records[id]
	r.mu.RUnlock()
	if !ok {
		return domain.Job{}, domain.ErrJobNotFound
	}
	return rec.snapshot(), nil
}

// Len は保持しているジョブの件数を返します。
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// jobHandle は1件のジョブへの唯一の書き込み口です。
type jobHandle struct {
	rec *record
	now func() time.Time
}

// update は不変条件を守りながらジョブを更新します。
// 終了済みのジョブは変更せず false を返します。
func (h *jobHandle) update(fn func(j *domain.Job)) bool {
	h.rec.mu.Lock()
	defer h.rec.mu.Unlock()

	prev := h.rec.job
	if prev.Status.IsTerminal() {
		return false
	}

	next := prev
	fn(&next)

	next.ID = prev.ID
	next.CreatedAt = prev.CreatedAt
	next.Progress = min(max(next.Progress, prev.Progress), 100)
	next.TotalPanels = max(next.TotalPanels, 0)
	next.GeneratedPanels = min(max(next.GeneratedPanels, prev.GeneratedPanels), next.TotalPanels)
	if next.Status.IsTerminal() && next.CompletedAt == nil {
		t := h.now()
		next.CompletedAt = &t
	}

	h.rec.job = next
	return true
}

// snapshot は現在のジョブのコピーを返します。
func (h *jobHandle) snapshot() domain.Job {
	return h.rec.snapshot()
}
