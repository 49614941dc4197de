package routes

import (
	"github.com/fitstudio/marketplace/handlers"
	"github.com/fitstudio/marketplace/middleware"
	"github.com/gofiber/fiber/v2"
)

func MarketplaceRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	marketplace := api.Group("/marketplace", middleware.Protected())

	// Own-record settings and link responses only need authentication. These
	// must be registered before the guarded group: group middleware is a
	// prefix Use, so anything registered after it runs behind the full guard.
	marketplace.Get("/profile", handlers.GetMarketplaceProfile)
	marketplace.Put("/profile", handlers.UpdateMarketplaceProfile)
	marketplace.Put("/visibility", handlers.SetVisibility)

	// Link ownership is enforced inside the handlers against the composite key.
	marketplace.Post("/invite/:studioId/:instructorId/respond", handlers.RespondToInvite)
	marketplace.Put("/invite/:studioId/:instructorId/withdraw", handlers.WithdrawInvite)

	// Directory and invites sit behind the full guard; instructor PII beyond
	// public fields never leaves without it.
	guarded := marketplace.Group("", middleware.MarketplaceRequired())
	guarded.Get("/instructors", handlers.SearchInstructors)
	guarded.Post("/invite", handlers.CreateInvite)
	guarded.Get("/invites", handlers.ListInvites)
}
