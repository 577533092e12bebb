package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vigilbook/vigil-booking/controllers"
	"github.com/vigilbook/vigil-booking/middleware"
)

// SetupBookingRoutes configures all booking related routes
func SetupBookingRoutes(app *fiber.App) {
	booking := app.Group("/bookings")
	booking.Get("/:id", middleware.Protected(), controllers.GetBooking)
	booking.Post("/:id/cancel", middleware.Protected(), controllers.CancelBooking)
}
