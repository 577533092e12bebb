package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/vigilbook/vigil-booking/models"
	"github.com/vigilbook/vigil-booking/utils"
)

// UnavailabilityRequest is the payload for a one-off exclusion block.
type UnavailabilityRequest struct {
	StartAt time.Time `json:"start_at" validate:"required"`
	EndAt   time.Time `json:"end_at" validate:"required"`
	Reason  string    `json:"reason"`
}

// GetProviderUnavailabilities lists blocks overlapping an optional window
// (defaults to the next 30 days).
func GetProviderUnavailabilities(c *fiber.Ctx) error {
	providerID, err := c.ParamsInt("id")
	if err != nil || providerID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid provider id",
		})
	}

	from := time.Now()
	to := from.AddDate(0, 0, 30)
	if q := c.Query("from"); q != "" {
		if parsed, err := time.Parse("2006-01-02", q); err == nil {
			from = parsed
		}
	}
	if q := c.Query("to"); q != "" {
		if parsed, err := time.Parse("2006-01-02", q); err == nil {
			to = parsed
		}
	}

	blocks, err := unavailabilityRepo.ListUnavailabilities(c.Context(), uint(providerID), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch unavailabilities",
			Error:   err.Error(),
		})
	}
	return c.JSON(blocks)
}

// CreateUnavailability blocks out a one-off window. The block takes
// precedence over recurring rules for its span regardless of creation order.
func CreateUnavailability(c *fiber.Ctx) error {
	providerID, err := c.ParamsInt("id")
	if err != nil || providerID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid provider id",
		})
	}

	var req UnavailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Missing or invalid unavailability fields",
			Error:   err.Error(),
		})
	}

	block := models.Unavailability{
		ProviderID: uint(providerID),
		StartAt:    req.StartAt,
		EndAt:      req.EndAt,
		Reason:     req.Reason,
	}
	if err := block.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid unavailability window",
			Error:   err.Error(),
		})
	}

	if err := unavailabilityRepo.Create(c.Context(), &block); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create unavailability",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(block)
}

// DeleteUnavailability removes a block by id.
func DeleteUnavailability(c *fiber.Ctx) error {
	providerID, err := c.ParamsInt("id")
	if err != nil || providerID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid provider id",
		})
	}
	blockID, err := c.ParamsInt("blockId")
	if err != nil || blockID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid unavailability id",
		})
	}

	if err := unavailabilityRepo.Delete(c.Context(), uint(providerID), uint(blockID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Unavailability not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete unavailability",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
