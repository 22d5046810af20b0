package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sportcenter-backend/pkg/container"
)

// healthCheckHandler reports db and redis reachability. Degraded (redis
// down) still returns 200 so load balancers keep routing; db down is 503.
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checks := gin.H{}
		status := http.StatusOK
		healthy := "ok"

		if err := c.DB.Ping(ctx.Request.Context()); err != nil {
			checks["database"] = "down"
			status = http.StatusServiceUnavailable
			healthy = "unhealthy"
		} else {
			checks["database"] = "up"
		}

		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			checks["redis"] = "down"
			if healthy == "ok" {
				healthy = "degraded"
			}
		} else {
			checks["redis"] = "up"
		}

		ctx.JSON(status, gin.H{
			"status":    healthy,
			"version":   c.Config.App.Version,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"checks":    checks,
		})
	}
}
