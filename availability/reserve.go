package availability

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// ReserveSlot atomically converts a chosen window into a pending booking.
// Outcomes:
//   - booking id on success,
//   - ErrConflict when the window was taken in the meantime (the caller must
//     re-query for fresh slots, the engine never substitutes another slot),
//   - *ValidationError for malformed input,
//   - *CommitFailure when the insert outcome is unknown; the caller must
//     re-query before retrying.
//
// Once the atomic re-validation+insert unit starts it cannot be cancelled by
// the caller, so the commit runs on a context detached from the request.
func (e *Engine) ReserveSlot(ctx context.Context, providerID uint, start, end time.Time, payload ReservationPayload) (uint, error) {
	if !end.After(start) {
		return 0, &ValidationError{Field: "window", Reason: "end must be after start"}
	}
	if !start.Truncate(time.Hour).Equal(start) || !end.Truncate(time.Hour).Equal(end) {
		return 0, &ValidationError{Field: "window", Reason: "bounds must fall on whole-hour boundaries"}
	}
	durationHours := int(end.Sub(start) / time.Hour)
	if durationHours%e.settings.SlotGranularityHours != 0 {
		return 0, &ValidationError{Field: "window", Reason: "duration must be a multiple of the slot granularity"}
	}

	// Cancellation before the critical section is a safe no-op.
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	commitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.settings.CommitTimeout)
	defer cancel()

	id, err := e.bookings.InsertBookingIfFree(commitCtx, providerID, start, end, payload)
	switch {
	case err == nil:
		e.log.Info("reservation committed",
			zap.Uint("provider_id", providerID),
			zap.Uint("booking_id", id),
			zap.Time("start", start),
			zap.Time("end", end))
		return id, nil
	case errors.Is(err, ErrConflict):
		e.log.Info("reservation lost the race",
			zap.Uint("provider_id", providerID),
			zap.Time("start", start),
			zap.Time("end", end))
		return 0, ErrConflict
	default:
		// Includes commit timeouts: the insert may or may not have landed.
		e.log.Error("reservation commit failed",
			zap.Uint("provider_id", providerID),
			zap.Error(err))
		return 0, &CommitFailure{Err: err}
	}
}
