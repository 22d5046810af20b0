package main

import (
	"log"

	"sportcenter-backend/internal/config"
	"sportcenter-backend/internal/infrastructure/queue"
)

// asynqScheduler wraps queue.Scheduler for graceful shutdown.
type asynqScheduler struct {
	*queue.Scheduler
}

func setupScheduler(cfg *Config, jobConfig config.JobConfig) *asynqScheduler {
	scheduler := queue.NewScheduler(cfg.RedisAddr, jobConfig)

	if err := scheduler.RegisterJobs(); err != nil {
		log.Fatalf("[Scheduler] Failed to register: %v", err)
	}

	go func() {
		log.Println("[Scheduler] Starting...")
		if err := scheduler.Start(); err != nil {
			log.Fatalf("[Scheduler] Failed: %v", err)
		}
	}()

	return &asynqScheduler{Scheduler: scheduler}
}

func (s *asynqScheduler) Shutdown() {
	log.Println("[Scheduler] Shutting down...")
	s.Scheduler.Shutdown()
	log.Println("[Scheduler] Stopped")
}
