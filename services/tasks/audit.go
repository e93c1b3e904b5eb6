package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeAuditPayments = "audit:payments"

// AuditPayload identifies one scheduled audit run.
type AuditPayload struct {
	ScheduledAt time.Time `json:"scheduledAt"`
}

// NewAuditTask builds the payment audit task. Runs are not retried; the next tick covers a failure.
func NewAuditTask(scheduledAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(AuditPayload{ScheduledAt: scheduledAt})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeAuditPayments, b)
	opts := []asynq.Option{asynq.MaxRetry(0), asynq.Timeout(10 * time.Minute)}

	return task, opts, nil
}
