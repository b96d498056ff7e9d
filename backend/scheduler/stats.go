// Package scheduler runs the periodic platform jobs.
package scheduler

import (
	"log"

	"github.com/robfig/cron/v3"

	"skillshub/backend/services"
)

// Start launches the daily stats snapshot job and returns the running
// cron so the caller can Stop it on shutdown.
func Start(stats *services.StatsService, logger *log.Logger) *cron.Cron {
	c := cron.New()

	c.AddFunc("@daily", func() {
		snap, err := stats.Snapshot()
		if err != nil {
			logger.Printf("stats snapshot failed: %v", err)
			return
		}
		logger.Printf("daily stats: users=%d enrollments=%d feedback=%d avgProgress=%.1f",
			snap.TotalUsers, snap.TotalEnrollments, snap.TotalFeedback, snap.AverageProgress)
	})

	c.Start()
	return c
}
