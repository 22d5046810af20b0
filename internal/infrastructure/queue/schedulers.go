package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"sportcenter-backend/internal/config"
	"sportcenter-backend/internal/shared"
	"sportcenter-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
	jobConfig config.JobConfig
}

func NewScheduler(redisAddress string, jobConfig config.JobConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler: scheduler,
		jobConfig: jobConfig,
	}
}

func (s *Scheduler) RegisterJobs() error {
	if err := s.registerCleanupExpiredBookingsJob(); err != nil {
		return err
	}
	if err := s.registerFieldAvailabilityJob(); err != nil {
		return err
	}
	return nil
}

// ================================================
// JOB 1: Cleanup Expired Bookings (Every 5 minutes)
// ================================================
// A pending booking holds its slot until payment_deadline. The sweep
// releases overdue slots shortly after the deadline passes; the status
// guard in the update keeps it safe to re-run.
func (s *Scheduler) registerCleanupExpiredBookingsJob() error {
	payload, err := json.Marshal(shared.CleanupExpiredBookingsPayload{
		Limit: s.jobConfig.ExpireSweepBatch,
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeCleanupExpiredBookings, payload)

	_, err = s.scheduler.Register(
		"*/5 * * * *",
		task,
		asynq.Queue(shared.QueueBooking),
		asynq.MaxRetry(2),
		asynq.Timeout(2*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register CleanupExpiredBookings job", err)
		return err
	}

	logger.Info("Registered CleanupExpiredBookings: every 5 minutes", map[string]interface{}{
		"batch": s.jobConfig.ExpireSweepBatch,
	})
	return nil
}

// ================================================
// JOB 2: Field Availability Recompute (Every 10 minutes)
// ================================================
// Availability caches are also invalidated inline when bookings change;
// the recurring recompute repairs whatever slipped through.
func (s *Scheduler) registerFieldAvailabilityJob() error {
	payload, err := json.Marshal(shared.FieldAvailabilityPayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeFieldAvailabilityUpdate, payload)

	_, err = s.scheduler.Register(
		"*/10 * * * *",
		task,
		asynq.Queue(shared.QueueField),
		asynq.MaxRetry(1),
		asynq.Timeout(5*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register FieldAvailabilityUpdate job", err)
		return err
	}

	logger.Info("Registered FieldAvailabilityUpdate: every 10 minutes", map[string]interface{}{})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
