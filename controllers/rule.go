package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/vigilbook/vigil-booking/models"
	"github.com/vigilbook/vigil-booking/utils"
)

// RuleRequest is the payload for declaring a weekly availability window.
type RuleRequest struct {
	Weekday   int    `json:"weekday" validate:"min=0,max=6"`
	StartHour int    `json:"start_hour" validate:"min=0,max=23"`
	EndHour   int    `json:"end_hour" validate:"min=1,max=24"`
	ValidFrom string `json:"valid_from" validate:"required"` // YYYY-MM-DD
	ValidTo   string `json:"valid_to"`                       // YYYY-MM-DD, empty = open-ended
}

// GetProviderRules lists all recurring rules for a provider.
func GetProviderRules(c *fiber.Ctx) error {
	providerID, err := c.ParamsInt("id")
	if err != nil || providerID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid provider id",
		})
	}

	rules, err := ruleRepo.ListRules(c.Context(), uint(providerID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch availability rules",
			Error:   err.Error(),
		})
	}
	return c.JSON(rules)
}

// CreateRule declares a new weekly availability window. Rules are immutable:
// there is no update endpoint, an edit is a delete followed by a create.
func CreateRule(c *fiber.Ctx) error {
	providerID, err := c.ParamsInt("id")
	if err != nil || providerID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid provider id",
		})
	}

	var req RuleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Missing or invalid rule fields",
			Error:   err.Error(),
		})
	}

	validFrom, err := time.Parse("2006-01-02", req.ValidFrom)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid valid_from date, expected YYYY-MM-DD",
			Error:   err.Error(),
		})
	}
	var validTo *time.Time
	if req.ValidTo != "" {
		parsed, err := time.Parse("2006-01-02", req.ValidTo)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid valid_to date, expected YYYY-MM-DD",
				Error:   err.Error(),
			})
		}
		validTo = &parsed
	}

	rule := models.AvailabilityRule{
		ProviderID: uint(providerID),
		Weekday:    models.DayOfWeek(req.Weekday),
		StartHour:  req.StartHour,
		EndHour:    req.EndHour,
		ValidFrom:  validFrom,
		ValidTo:    validTo,
	}
	if err := rule.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid availability rule",
			Error:   err.Error(),
		})
	}

	if err := ruleRepo.Create(c.Context(), &rule); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create availability rule",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(rule)
}

// DeleteRule removes a rule by id.
func DeleteRule(c *fiber.Ctx) error {
	providerID, err := c.ParamsInt("id")
	if err != nil || providerID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid provider id",
		})
	}
	ruleID, err := c.ParamsInt("ruleId")
	if err != nil || ruleID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid rule id",
		})
	}

	if err := ruleRepo.Delete(c.Context(), uint(providerID), uint(ruleID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Availability rule not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete availability rule",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
