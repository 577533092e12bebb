package controllers

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/vigilbook/vigil-booking/availability"
	"github.com/vigilbook/vigil-booking/utils"
)

var validate = validator.New()

// ReservationRequest is the payload for committing a chosen slot.
type ReservationRequest struct {
	StartAt    time.Time `json:"start_at" validate:"required"`
	EndAt      time.Time `json:"end_at" validate:"required"`
	ConsumerID uint      `json:"consumer_id" validate:"required"`
	ServiceRef string    `json:"service_ref"`
}

// CreateReservation commits a chosen slot into a pending booking. A 409
// means the slot was taken in the meantime: re-query and pick another. A 502
// means the outcome is unknown: re-query before retrying the same slot.
func CreateReservation(c *fiber.Ctx) error {
	providerID, err := c.ParamsInt("id")
	if err != nil || providerID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid provider id",
		})
	}

	var req ReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Missing or invalid reservation fields",
			Error:   err.Error(),
		})
	}

	bookingID, err := engine.ReserveSlot(c.Context(), uint(providerID), req.StartAt, req.EndAt,
		availability.ReservationPayload{
			ConsumerID: req.ConsumerID,
			ServiceRef: req.ServiceRef,
		})
	if err != nil {
		if errors.Is(err, availability.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "Time slot not available",
			})
		}
		var validationErr *availability.ValidationError
		if errors.As(err, &validationErr) {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid reservation window",
				Error:   validationErr.Error(),
			})
		}
		var commitErr *availability.CommitFailure
		if errors.As(err, &commitErr) {
			return c.Status(fiber.StatusBadGateway).JSON(utils.ErrorResponse{
				Message: "Reservation outcome unknown, re-query before retrying",
				Error:   commitErr.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create reservation",
			Error:   err.Error(),
		})
	}

	booking, err := bookingRepo.Get(c.Context(), bookingID)
	if err != nil {
		// The insert committed; return what we have.
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"booking_id": bookingID})
	}
	return c.Status(fiber.StatusCreated).JSON(booking)
}

// GetBooking returns a booking by id.
func GetBooking(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid booking id",
		})
	}

	booking, err := bookingRepo.Get(c.Context(), uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(booking)
}

// CancelBooking transitions a booking to cancelled, which frees its time
// window for subsequent availability queries immediately.
func CancelBooking(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid booking id",
		})
	}

	booking, err := bookingRepo.Cancel(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Booking not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to cancel booking",
			Error:   err.Error(),
		})
	}
	return c.JSON(booking)
}
