package jobs

import (
	"log"
	"time"

	"github.com/fitstudio/marketplace/database"
	"github.com/fitstudio/marketplace/models"
)

// sweepStatus maps a live booking status to its post-class terminal state.
// Confirmed attendees completed their class; anyone still awaiting payment
// when the class ended never showed up.
func sweepStatus(current string) (string, bool) {
	switch current {
	case "confirmed":
		return "completed", true
	case "pending_payment":
		return "unattended", true
	}
	return "", false
}

// CompleteFinishedClasses sweeps bookings for classes that ended a few
// minutes ago and moves them to their terminal state.
func CompleteFinishedClasses() {
	log.Println("Running job: CompleteFinishedClasses...")

	now := time.Now()
	upperBound := now.Add(-5 * time.Minute)
	lowerBound := now.Add(-15 * time.Minute)

	var finishedBookings []models.Booking

	err := database.DB.
		Joins("JOIN classes ON bookings.class_id = classes.id").
		Where("bookings.status IN ? AND classes.end_time BETWEEN ? AND ?",
			[]string{"confirmed", "pending_payment"}, lowerBound, upperBound).
		Find(&finishedBookings).Error

	if err != nil {
		log.Printf("Error checking for finished classes: %v", err)
		return
	}

	if len(finishedBookings) == 0 {
		return
	}

	for _, booking := range finishedBookings {
		next, ok := sweepStatus(booking.Status)
		if !ok {
			continue
		}
		booking.Status = next
		database.DB.Save(&booking)
	}

	log.Printf("Swept %d booking(s) for finished classes.", len(finishedBookings))
}
