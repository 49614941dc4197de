package handlers

import (
	"errors"
	"time"

	"github.com/fitstudio/marketplace/database"
	"github.com/fitstudio/marketplace/middleware"
	"github.com/fitstudio/marketplace/models"
	"github.com/fitstudio/marketplace/notifications"
	"github.com/fitstudio/marketplace/payments"
	"github.com/fitstudio/marketplace/services"
	"github.com/fitstudio/marketplace/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateBookingRequest struct {
	ClassID string `json:"class_id" validate:"required,uuid"`
}

func CreateBooking(c *fiber.Ctx) error {
	customerID, _ := uuid.Parse(middleware.TokenUserID(c))

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	classID, _ := uuid.Parse(req.ClassID)

	var class models.Class
	if err := database.DB.First(&class, "id = ?", classID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
	}
	if class.Status != "scheduled" || !class.StartTime.After(time.Now()) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "This class can no longer be booked"})
	}

	var booking models.Booking
	var payment models.Payment
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&class, "id = ?", classID).Error; err != nil {
			return err
		}

		if class.BookedCount >= class.Capacity {
			return errors.New("this class is full")
		}
		class.BookedCount++
		if err := tx.Save(&class).Error; err != nil {
			return err
		}

		status := "pending_payment"
		if class.Price == 0 {
			status = "confirmed"
		}

		booking = models.Booking{
			CustomerID: customerID,
			ClassID:    class.ID,
			Status:     status,
			Price:      class.Price,
			Currency:   class.Currency,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		provider := "paypal"
		paymentStatus := "pending"
		if class.Price == 0 {
			provider = "free"
			paymentStatus = "succeeded"
		}
		payment = models.Payment{
			BookingID: &booking.ID,
			Amount:    class.Price,
			Currency:  class.Currency,
			Provider:  provider,
			Status:    paymentStatus,
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		if err.Error() == "this class is full" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "This class is full"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking"})
	}

	if class.Price == 0 {
		go notifyBookingConfirmed(booking.ID)
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Booking confirmed.",
			"booking": booking,
		})
	}

	order, err := payments.CreateOrder(class.Price, class.Currency)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to initiate payment"})
	}
	orderID := order.ID
	database.DB.Model(&payment).Update("provider_order_id", orderID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"booking":  booking,
		"order_id": orderID,
	})
}

func CaptureBookingPayment(c *fiber.Ctx) error {
	customerID, _ := uuid.Parse(middleware.TokenUserID(c))
	bookingID := c.Params("bookingId")

	var booking models.Booking
	if err := database.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	if booking.CustomerID != customerID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This is not your booking"})
	}
	if booking.Status != "pending_payment" {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Booking is not awaiting payment"})
	}

	var payment models.Payment
	if err := database.DB.First(&payment, "booking_id = ?", booking.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Payment record not found"})
	}
	if payment.ProviderOrderID == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "No payment order to capture"})
	}

	order, err := payments.CaptureOrder(*payment.ProviderOrderID)
	if err != nil || order.Status != "COMPLETED" {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Payment capture failed"})
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		booking.Status = "confirmed"
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}
		payment.Status = "succeeded"
		return tx.Save(&payment).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to confirm booking"})
	}

	go services.GenerateBookingReceipt(payment.ID)
	go notifyBookingConfirmed(booking.ID)

	return c.JSON(fiber.Map{
		"message": "Booking confirmed.",
		"booking": booking,
	})
}

func notifyBookingConfirmed(bookingID uuid.UUID) {
	var booking models.Booking
	if err := database.DB.Preload("Customer").Preload("Class.Studio").First(&booking, "id = ?", bookingID).Error; err != nil {
		return
	}
	notifications.SendEmail(booking.Customer.FullName, booking.Customer.Email, "Your Booking is Confirmed!",
		"<h1>Booking Confirmed</h1><p>Your spot in "+booking.Class.Title+" is reserved.</p>")
	notifications.SendEmail(booking.Class.Studio.FullName, booking.Class.Studio.Email, "You Have a New Booking!",
		"<h1>New Booking</h1><p>A customer has booked a spot in "+booking.Class.Title+".</p>")
	websocket.Push(booking.Class.StudioID, "booking.confirmed", booking)
}

func GetMyBookings(c *fiber.Ctx) error {
	customerID := middleware.TokenUserID(c)

	var bookings []models.Booking
	database.DB.Preload("Class").Where("customer_id = ?", customerID).Order("created_at desc").Find(&bookings)

	return c.JSON(bookings)
}

func CancelBooking(c *fiber.Ctx) error {
	customerID, _ := uuid.Parse(middleware.TokenUserID(c))
	bookingID := c.Params("bookingId")

	var booking models.Booking
	if err := database.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	if booking.CustomerID != customerID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This is not your booking"})
	}
	if booking.Status != "pending_payment" && booking.Status != "confirmed" {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Booking cannot be cancelled"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var class models.Class
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&class, "id = ?", booking.ClassID).Error; err != nil {
			return err
		}
		if class.BookedCount > 0 {
			class.BookedCount--
		}
		if err := tx.Save(&class).Error; err != nil {
			return err
		}
		booking.Status = "cancelled"
		return tx.Save(&booking).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to cancel booking"})
	}

	return c.JSON(fiber.Map{"message": "Booking cancelled"})
}
