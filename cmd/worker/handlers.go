package main

import (
	"github.com/hibiken/asynq"

	bookingJob "sportcenter-backend/internal/domains/booking/job"
	fieldJob "sportcenter-backend/internal/domains/field/job"
	"sportcenter-backend/internal/shared"
	"sportcenter-backend/pkg/container"
)

// HandlerRegistry holds all job handlers.
type HandlerRegistry struct {
	cleanupExpired *bookingJob.CleanupExpiredHandler
	availability   *fieldJob.AvailabilityHandler
}

func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		cleanupExpired: bookingJob.NewCleanupExpiredHandler(
			c.BookingRepo,
			c.Cache,
			c.Broadcaster,
		),
		availability: fieldJob.NewAvailabilityHandler(c.FieldService),
	}
}

func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeCleanupExpiredBookings, h.cleanupExpired.ProcessTask)
	mux.HandleFunc(shared.TypeFieldAvailabilityUpdate, h.availability.ProcessTask)
}
