package helper

import (
	"log"
	"time"

	"mess_finder/constants"
	"mess_finder/database"
	"mess_finder/model"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

var (
	maintenanceScheduler gocron.Scheduler
	pendingSweep         *cron.Cron
)

// PendingReviewSLA is how long a request may sit in the queue before the
// sweep flags it for attention.
const PendingReviewSLA = 72 * time.Hour

func RunDailyMaintenance() {
	log.Println("[CRON] daily maintenance triggered")
	db := database.DB
	now := time.Now()

	if err := db.Where("expires_at < ?", now).
		Delete(&model.PasswordResetToken{}).Error; err != nil {
		log.Printf("reset token purge failed: %v", err)
	}
	if err := db.Where("expires_at < ?", now).
		Delete(&model.EmailVerificationToken{}).Error; err != nil {
		log.Printf("verification token purge failed: %v", err)
	}

	// Consistency sweep: a published listing with no vacancy is full, and
	// vice versa. Bookings keep this in step already; the sweep catches
	// records touched outside the booking path.
	db.Model(&model.Seat{}).
		Where("status = ? AND vacant_seats <= 0", constants.SEAT_STATUS_PUBLISHED).
		Update("status", constants.SEAT_STATUS_FULL)
	db.Model(&model.Seat{}).
		Where("status = ? AND vacant_seats > 0", constants.SEAT_STATUS_FULL).
		Update("status", constants.SEAT_STATUS_PUBLISHED)
}

func StartMaintenanceScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("could not create maintenance scheduler: %v", err)
		return
	}

	_, err = s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(3, 0, 0))),
		gocron.NewTask(RunDailyMaintenance),
	)
	if err != nil {
		log.Printf("could not schedule maintenance job: %v", err)
		return
	}

	s.Start()
	maintenanceScheduler = s
	log.Println("maintenance scheduler started (daily 03:00)")
}

func StopMaintenanceScheduler() {
	if maintenanceScheduler != nil {
		_ = maintenanceScheduler.Shutdown()
	}
}

func flagStalePendingRequests() {
	cutoff := time.Now().Add(-PendingReviewSLA)
	result := database.DB.Model(&model.PendingRequest{}).
		Where("stale = false AND created_at < ?", cutoff).
		Update("stale", true)

	if result.Error != nil {
		log.Printf("stale pending sweep failed: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("flagged %d pending requests as stale", result.RowsAffected)
	}
}

func StartPendingSweep() {
	pendingSweep = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := pendingSweep.AddFunc("0 * * * *", flagStalePendingRequests)
	if err != nil {
		log.Printf("could not start pending sweep: %v", err)
		return
	}

	pendingSweep.Start()
	log.Println("pending review sweep started (hourly)")
}

func StopPendingSweep() {
	if pendingSweep != nil {
		pendingSweep.Stop()
	}
}
