package cron

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/vigilbook/vigil-booking/config"
	"github.com/vigilbook/vigil-booking/db"
	"github.com/vigilbook/vigil-booking/models"
	"github.com/vigilbook/vigil-booking/utils"
)

// StartCronJobs initializes and starts the cron scheduler for the pending
// booking sweeper
func StartCronJobs() {
	c := cron.New()
	// Run every five minutes to release windows held by abandoned requests
	_, err := c.AddFunc("*/5 * * * *", expireStalePendingBookings)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	utils.GetLogger().Info("cron scheduler started for pending booking expiry")
}

// expireStalePendingBookings cancels pending bookings older than the
// configured TTL. A reservation that never got confirmed should not occupy
// the provider's time forever; cancelling frees the window for the next
// availability query.
func expireStalePendingBookings() {
	logger := utils.GetLogger()
	cutoff := time.Now().Add(-config.AppConfig.PendingTTL)

	result := db.DB.Model(&models.Booking{}).
		Where("status = ? AND created_at < ?", models.StatusPending, cutoff).
		Update("status", models.StatusCancelled)
	if result.Error != nil {
		logger.Error("failed to expire stale pending bookings", zap.Error(result.Error))
		return
	}
	if result.RowsAffected > 0 {
		logger.Info("expired stale pending bookings",
			zap.Int64("count", result.RowsAffected),
			zap.Time("cutoff", cutoff))
	}
}
