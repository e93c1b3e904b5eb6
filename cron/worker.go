package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"smarthome/services/payment"
	"smarthome/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// PaymentAuditor finds paid bookings without a payment record.
type PaymentAuditor interface {
	Run(ctx context.Context) ([]payment.Discrepancy, error)
}

// AuditWorker schedules and processes the payment audit task.
type AuditWorker struct {
	scheduler *asynq.Scheduler
	server    *asynq.Server
	logger    *zap.Logger
}

// StartAuditWorker registers the audit on schedule (cron spec or "@every <duration>") and starts
// both the scheduler and the task server in the background.
func StartAuditWorker(redisOpts asynq.RedisClientOpt, schedule string, auditor PaymentAuditor, logger *zap.Logger) (*AuditWorker, error) {
	task, opts, err := tasks.NewAuditTask(time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("error building audit task: %w", err)
	}

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{Location: time.UTC})
	entryID, err := scheduler.Register(schedule, task, opts...)
	if err != nil {
		return nil, fmt.Errorf("error registering audit schedule %q: %w", schedule, err)
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAuditPayments, handleAuditTask(auditor, logger))

	if err := srv.Start(mux); err != nil {
		return nil, fmt.Errorf("error starting audit worker: %w", err)
	}
	if err := scheduler.Start(); err != nil {
		srv.Shutdown()
		return nil, fmt.Errorf("error starting audit scheduler: %w", err)
	}

	logger.Info("Payment audit scheduled", zap.String("schedule", schedule), zap.String("entryId", entryID))
	return &AuditWorker{scheduler: scheduler, server: srv, logger: logger}, nil
}

// Shutdown stops scheduling new runs and waits for an in-flight run to finish.
func (w *AuditWorker) Shutdown() {
	w.scheduler.Shutdown()
	w.server.Shutdown()
	w.logger.Info("Payment audit worker stopped")
}

func handleAuditTask(auditor PaymentAuditor, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.AuditPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid audit payload", zap.Error(err))
			return fmt.Errorf("invalid audit payload: %v: %w", err, asynq.SkipRetry)
		}

		found, err := auditor.Run(ctx)
		if err != nil {
			logger.Error("payment audit failed", zap.Error(err))
			return err
		}
		if len(found) > 0 {
			logger.Warn("payment audit found paid bookings without payments", zap.Int("count", len(found)))
		}
		return nil
	}
}
