package availability

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/vigilbook/vigil-booking/models"
)

// RuleStore provides a provider's recurring availability rules. It returns
// every rule regardless of validity window; date filtering happens here.
type RuleStore interface {
	ListRules(ctx context.Context, providerID uint) ([]models.AvailabilityRule, error)
}

// UnavailabilityStore provides one-off exclusion blocks overlapping
// [from, to) for a provider.
type UnavailabilityStore interface {
	ListUnavailabilities(ctx context.Context, providerID uint, from, to time.Time) ([]models.Unavailability, error)
}

// BookingStore provides existing bookings and the atomic reservation insert.
type BookingStore interface {
	// ListActiveBookings returns non-cancelled bookings overlapping [from, to).
	ListActiveBookings(ctx context.Context, providerID uint, from, to time.Time) ([]models.Booking, error)
	// InsertBookingIfFree re-validates [start, end) and inserts a pending
	// booking in one atomic unit, returning ErrConflict when the window is
	// already taken.
	InsertBookingIfFree(ctx context.Context, providerID uint, start, end time.Time, payload ReservationPayload) (uint, error)
}

// ReservationPayload carries the caller-supplied identifiers attached to a
// new booking. Opaque to the engine.
type ReservationPayload struct {
	ConsumerID uint
	ServiceRef string
}

// Settings tunes the engine per deployment.
type Settings struct {
	SlotGranularityHours int
	StoreTimeout         time.Duration
	CommitTimeout        time.Duration
}

// Engine computes bookable slots for providers and commits reservations.
// It holds no state between requests; every query recomputes from current
// store contents, since a stale answer here means a double booking.
type Engine struct {
	rules            RuleStore
	unavailabilities UnavailabilityStore
	bookings         BookingStore
	settings         Settings
	log              *zap.Logger
}

// New builds an Engine over the given stores.
func New(rules RuleStore, unavailabilities UnavailabilityStore, bookings BookingStore, settings Settings, log *zap.Logger) *Engine {
	if settings.SlotGranularityHours < 1 {
		settings.SlotGranularityHours = 1
	}
	if settings.StoreTimeout <= 0 {
		settings.StoreTimeout = 5 * time.Second
	}
	if settings.CommitTimeout <= 0 {
		settings.CommitTimeout = 10 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		rules:            rules,
		unavailabilities: unavailabilities,
		bookings:         bookings,
		settings:         settings,
		log:              log,
	}
}
