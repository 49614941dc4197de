package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/fitstudio/marketplace/database"
	"github.com/fitstudio/marketplace/models"
	"github.com/fitstudio/marketplace/notifications"
)

func SendClassReminders() {
	log.Println("Running job: SendClassReminders...")

	now := time.Now()
	lowerBound := now.Add(60 * time.Minute)
	upperBound := now.Add(65 * time.Minute)

	var upcomingBookings []models.Booking

	err := database.DB.
		Preload("Customer").
		Preload("Class").
		Joins("JOIN classes ON bookings.class_id = classes.id").
		Where("bookings.status = ? AND classes.start_time BETWEEN ? AND ?", "confirmed", lowerBound, upperBound).
		Find(&upcomingBookings).Error

	if err != nil {
		log.Printf("Error checking for upcoming classes: %v", err)
		return
	}

	if len(upcomingBookings) == 0 {
		return
	}

	for _, booking := range upcomingBookings {
		log.Printf("Sending reminder for booking ID: %s", booking.ID)

		emailSubject := "Reminder: Your Class Starts in 1 Hour!"
		location := "your studio"
		if booking.Class.Location != nil {
			location = *booking.Class.Location
		}
		emailBody := fmt.Sprintf(
			"<h1>Class Reminder</h1><p>Hi there,</p><p>This is a friendly reminder that %s starts at %s at %s.</p>",
			booking.Class.Title,
			booking.Class.StartTime.Format(time.Kitchen),
			location,
		)

		go notifications.SendEmail(booking.Customer.FullName, booking.Customer.Email, emailSubject, emailBody)
	}
}
