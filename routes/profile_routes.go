package routes

import (
	"github.com/fitstudio/marketplace/handlers"
	"github.com/fitstudio/marketplace/middleware"
	"github.com/gofiber/fiber/v2"
)

func ProfileRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	profile := api.Group("/profile/me", middleware.Protected())
	profile.Get("", handlers.GetProfile)
	profile.Put("", handlers.UpdateProfile)

	onboarding := api.Group("/onboarding", middleware.Protected())
	onboarding.Post("/complete", handlers.CompleteOnboarding)
	onboarding.Get("/status", handlers.GetOnboardingStatus)
}
