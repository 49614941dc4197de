package routes

import (
	"github.com/fitstudio/marketplace/handlers"
	"github.com/fitstudio/marketplace/middleware"
	"github.com/gofiber/fiber/v2"
)

func ClassRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/classes", handlers.ListClasses)
	api.Get("/classes/:classId", handlers.GetClass)

	studio := api.Group("/classes", middleware.Protected(), middleware.MarketplaceRequired())
	studio.Post("", handlers.CreateClass)
	studio.Put("/:classId", handlers.UpdateClass)
	studio.Delete("/:classId", handlers.CancelClass)
}
