package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/linesmerrill/vehicle-check-api/audit"
)

// Scheduler handles periodic background jobs for the audit trail
type Scheduler struct {
	cron     *cron.Cron
	AuditLog *audit.FileLogger
}

// NewScheduler creates a new scheduler instance
func NewScheduler(auditLog *audit.FileLogger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		AuditLog: auditLog,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Rotate the append-only audit log daily at midnight UTC
	_, err := s.cron.AddFunc("0 0 * * *", s.rotateAuditLog)
	if err != nil {
		zap.S().Errorw("failed to register audit rotation job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("audit scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("audit scheduler stopped")
}

func (s *Scheduler) rotateAuditLog() {
	if err := s.AuditLog.Rotate(); err != nil {
		zap.S().Errorw("failed to rotate audit log", "error", err)
	}
}
