package routes

import (
	"github.com/fitstudio/marketplace/handlers"
	"github.com/fitstudio/marketplace/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())
	admin.Get("/instructors/pending", handlers.ListUnverifiedInstructors)
	admin.Put("/instructors/:instructorId/verify", handlers.SetInstructorVerification)
	admin.Get("/users", handlers.ListUsers)
}
