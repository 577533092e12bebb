package availability

import (
	"context"
	"sync"
	"time"

	"github.com/vigilbook/vigil-booking/models"
)

// In-memory stores for engine tests.

type fakeRuleStore struct {
	rules []models.AvailabilityRule
	err   error
}

func (f *fakeRuleStore) ListRules(ctx context.Context, providerID uint) ([]models.AvailabilityRule, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.AvailabilityRule
	for _, r := range f.rules {
		if r.ProviderID == providerID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeUnavailabilityStore struct {
	blocks []models.Unavailability
	err    error
}

func (f *fakeUnavailabilityStore) ListUnavailabilities(ctx context.Context, providerID uint, from, to time.Time) ([]models.Unavailability, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Unavailability
	for _, b := range f.blocks {
		if b.ProviderID == providerID && b.StartAt.Before(to) && b.EndAt.After(from) {
			out = append(out, b)
		}
	}
	return out, nil
}

// fakeBookingStore serializes inserts behind a mutex, mimicking the
// database-level conflict detection of the real store.
type fakeBookingStore struct {
	mu       sync.Mutex
	bookings []models.Booking
	nextID   uint
	listErr  error
	// insertHook runs inside InsertBookingIfFree before the conflict check,
	// outside the lock. Lets tests simulate slow or failing commits.
	insertHook func(ctx context.Context) error
}

func (f *fakeBookingStore) ListActiveBookings(ctx context.Context, providerID uint, from, to time.Time) ([]models.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.ProviderID == providerID && b.Status != models.StatusCancelled &&
			b.StartAt.Before(to) && b.EndAt.After(from) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) InsertBookingIfFree(ctx context.Context, providerID uint, start, end time.Time, payload ReservationPayload) (uint, error) {
	if f.insertHook != nil {
		if err := f.insertHook(ctx); err != nil {
			return 0, err
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ProviderID == providerID && b.Status != models.StatusCancelled &&
			b.StartAt.Before(end) && b.EndAt.After(start) {
			return 0, ErrConflict
		}
	}
	f.nextID++
	booking := models.Booking{
		ProviderID: providerID,
		ConsumerID: payload.ConsumerID,
		ServiceRef: payload.ServiceRef,
		StartAt:    start,
		EndAt:      end,
		Status:     models.StatusPending,
	}
	booking.ID = f.nextID
	f.bookings = append(f.bookings, booking)
	return booking.ID, nil
}

func (f *fakeBookingStore) cancel(id uint) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].Status = models.StatusCancelled
		}
	}
}

func newTestEngine(rules *fakeRuleStore, blocks *fakeUnavailabilityStore, bookings *fakeBookingStore, granularityHours int) *Engine {
	return New(rules, blocks, bookings, Settings{
		SlotGranularityHours: granularityHours,
		StoreTimeout:         time.Second,
		CommitTimeout:        time.Second,
	}, nil)
}
