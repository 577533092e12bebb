package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vigilbook/vigil-booking/config"
	"github.com/vigilbook/vigil-booking/controllers"
	"github.com/vigilbook/vigil-booking/middleware"
)

// SetupProviderRoutes configures availability queries, reservations and the
// provider-owned rule/unavailability data for a provider
func SetupProviderRoutes(app *fiber.App) {
	provider := app.Group("/providers/:id")

	provider.Get("/slots", middleware.RateLimit(config.AppConfig.QueryRateLimit), controllers.GetAvailableSlots)
	provider.Post("/reservations", middleware.Protected(), controllers.CreateReservation)

	provider.Get("/rules", controllers.GetProviderRules)
	provider.Post("/rules", middleware.Protected(), controllers.CreateRule)
	provider.Delete("/rules/:ruleId", middleware.Protected(), controllers.DeleteRule)

	provider.Get("/unavailabilities", controllers.GetProviderUnavailabilities)
	provider.Post("/unavailabilities", middleware.Protected(), controllers.CreateUnavailability)
	provider.Delete("/unavailabilities/:blockId", middleware.Protected(), controllers.DeleteUnavailability)
}
