package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/vigilbook/vigil-booking/availability"
	"github.com/vigilbook/vigil-booking/utils"
)

// GetAvailableSlots returns the free, bookable slots for a provider.
// Query params: from and to (YYYY-MM-DD, to exclusive), duration (hours).
// Every call recomputes from current state; slots are proposals only and
// must be re-validated when reserving.
func GetAvailableSlots(c *fiber.Ctx) error {
	providerID, err := c.ParamsInt("id")
	if err != nil || providerID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid provider id",
		})
	}

	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid from date, expected YYYY-MM-DD",
			Error:   err.Error(),
		})
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid to date, expected YYYY-MM-DD",
			Error:   err.Error(),
		})
	}
	duration := c.QueryInt("duration", 1)

	slots, err := engine.ComputeAvailableSlots(c.Context(), uint(providerID), from, to, duration)
	if err != nil {
		var validationErr *availability.ValidationError
		if errors.As(err, &validationErr) {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid query",
				Error:   validationErr.Error(),
			})
		}
		var depErr *availability.DependencyError
		if errors.As(err, &depErr) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
				Message: "Availability is temporarily unknown, try again",
				Error:   depErr.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to compute available slots",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"provider_id": providerID,
		"from":        from.Format("2006-01-02"),
		"to":          to.Format("2006-01-02"),
		"duration":    duration,
		"count":       len(slots),
		"slots":       slots,
	})
}
