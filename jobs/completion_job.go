package jobs

import (
	"log"
	"time"

	"github.com/shev-k/mikes-cut/database"
	"github.com/shev-k/mikes-cut/models"
)

// CompletionJob moves confirmed bookings whose slot has passed into the
// completed state, so the calendar and stats reflect finished appointments
// without staff touching every row.
type CompletionJob struct {
	stopChan chan bool
}

// NewCompletionJob creates a new completion job
func NewCompletionJob() *CompletionJob {
	return &CompletionJob{
		stopChan: make(chan bool),
	}
}

// Start begins the completion job
func (j *CompletionJob) Start() {
	go j.run()
	log.Println("🚀 Booking completion job started")
}

// Stop stops the completion job
func (j *CompletionJob) Stop() {
	j.stopChan <- true
	log.Println("🛑 Booking completion job stopped")
}

func (j *CompletionJob) run() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.completePastBookings()
		case <-j.stopChan:
			return
		}
	}
}

// completePastBookings finds confirmed bookings before the current date/time
// and marks them completed. Date and time columns are lexically comparable
// (YYYY-MM-DD, HH:MM:SS), so the cutoff is two string comparisons.
func (j *CompletionJob) completePastBookings() {
	now := time.Now()
	today := now.Format("2006-01-02")
	currentTime := now.Format("15:04:05")

	result := database.DB.Model(&models.Booking{}).
		Where("status = ? AND (booking_date < ? OR (booking_date = ? AND booking_time < ?))",
			models.BookingStatusConfirmed, today, today, currentTime).
		Update("status", models.BookingStatusCompleted)

	if result.Error != nil {
		log.Printf("❌ Error completing past bookings: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("⏰ Marked %d past bookings as completed", result.RowsAffected)
	}
}
