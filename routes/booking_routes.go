package routes

import (
	"github.com/fitstudio/marketplace/handlers"
	"github.com/fitstudio/marketplace/middleware"
	"github.com/gofiber/fiber/v2"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	bookings := api.Group("/bookings", middleware.Protected())
	bookings.Post("", handlers.CreateBooking)
	bookings.Get("/me", handlers.GetMyBookings)
	bookings.Post("/:bookingId/capture", handlers.CaptureBookingPayment)
	bookings.Post("/:bookingId/cancel", handlers.CancelBooking)
}
