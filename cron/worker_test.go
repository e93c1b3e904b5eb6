package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"smarthome/services/payment"
	"smarthome/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAuditor struct {
	calls int
	found []payment.Discrepancy
	err   error
}

func (s *stubAuditor) Run(context.Context) ([]payment.Discrepancy, error) {
	s.calls++
	return s.found, s.err
}

func TestHandleAuditTask(t *testing.T) {
	task, _, err := tasks.NewAuditTask(time.Now())
	require.NoError(t, err)
	assert.Equal(t, tasks.TypeAuditPayments, task.Type())

	auditor := &stubAuditor{found: []payment.Discrepancy{{BookingID: "b1", TrackingID: "PRCL-20240101-AAAAAA"}}}
	require.NoError(t, handleAuditTask(auditor, zap.NewNop())(context.Background(), task))
	assert.Equal(t, 1, auditor.calls)

	auditor.err = errors.New("mongo down")
	assert.Error(t, handleAuditTask(auditor, zap.NewNop())(context.Background(), task))
}

func TestHandleAuditTaskRejectsBadPayload(t *testing.T) {
	auditor := &stubAuditor{}
	err := handleAuditTask(auditor, zap.NewNop())(context.Background(), asynq.NewTask(tasks.TypeAuditPayments, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
	assert.Zero(t, auditor.calls)
}
