package domain

import "time"

// JobStatus はジョブの状態です。
type JobStatus string

const (
	JobQueued     JobStatus = "queued"
	JobProcessing JobStatus = "processing"
	JobCompleted  JobStatus = "completed"
	JobFailed     JobStatus = "failed"
)

// IsTerminal は completed または failed のとき true を返します。
func (s JobStatus) IsTerminal() bool {
	return s == JobCompleted || s == JobFailed
}

// Job は1件の生成リクエストの進捗状況です。
type Job struct {
	ID              string     `json:"job_id"`
	Status          JobStatus  `json:"status"`
	Progress        int        `json:"progress"` // 0..100、終了まで減少しない
	Stage           string     `json:"current_step"`
	TotalPanels     int        `json:"total_panels"`
	GeneratedPanels int        `json:"generated_panels"`
	Error           string     `json:"error,omitempty"`
	CreatedAt       time.Time  `json:"started_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// Clone は参照を共有しないコピーを返します。
func (j Job) Clone() Job {
	if j.CompletedAt != nil {
		t := *j.CompletedAt
		j.CompletedAt = &t
	}
	return j
}
