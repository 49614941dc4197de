package routes

import (
	"github.com/fitstudio/marketplace/handlers"
	"github.com/fitstudio/marketplace/middleware"
	"github.com/gofiber/fiber/v2"
)

func DashboardRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	dashboard := api.Group("/dashboard", middleware.Protected(), middleware.MarketplaceRequired())
	dashboard.Get("/merchant", handlers.GetMerchantDashboard)
	dashboard.Get("/instructor", handlers.GetInstructorDashboard)
}
