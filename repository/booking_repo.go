package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vigilbook/vigil-booking/availability"
	"github.com/vigilbook/vigil-booking/models"
)

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

// GormBookingRepo reads existing bookings and performs the atomic
// reservation insert.
type GormBookingRepo struct {
	db *gorm.DB
}

func NewBookingRepo(db *gorm.DB) *GormBookingRepo {
	return &GormBookingRepo{db: db}
}

// ListActiveBookings returns non-cancelled bookings overlapping [from, to).
func (r *GormBookingRepo) ListActiveBookings(ctx context.Context, providerID uint, from, to time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Where("provider_id = ? AND status <> ? AND start_at < ? AND end_at > ?",
			providerID, models.StatusCancelled, to, from).
		Order("start_at asc").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// InsertBookingIfFree re-validates the window and inserts a pending booking
// in one transaction. Conflicting rows are locked for the duration of the
// check so two racing commits for overlapping windows serialize on the
// database, not on a provider-wide lock; commits for disjoint windows or
// other providers proceed in parallel. On Postgres the exclusion constraint
// on (provider_id, time range) backstops whatever the isolation level
// misses.
func (r *GormBookingRepo) InsertBookingIfFree(ctx context.Context, providerID uint, start, end time.Time, payload availability.ReservationPayload) (uint, error) {
	var booking models.Booking

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		overlap := tx.
			Where("provider_id = ? AND status <> ? AND start_at < ? AND end_at > ?",
				providerID, models.StatusCancelled, end, start)
		if tx.Dialector.Name() == "postgres" {
			overlap = overlap.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var taken []models.Booking
		if err := overlap.Limit(1).Find(&taken).Error; err != nil {
			return err
		}
		if len(taken) > 0 {
			return availability.ErrConflict
		}

		var blocked int64
		err := tx.Model(&models.Unavailability{}).
			Where("provider_id = ? AND start_at < ? AND end_at > ?", providerID, end, start).
			Count(&blocked).Error
		if err != nil {
			return err
		}
		if blocked > 0 {
			return availability.ErrConflict
		}

		booking = models.Booking{
			ProviderID: providerID,
			ConsumerID: payload.ConsumerID,
			ServiceRef: payload.ServiceRef,
			StartAt:    start,
			EndAt:      end,
			Status:     models.StatusPending,
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		if isRangeViolation(err) {
			return 0, availability.ErrConflict
		}
		return 0, err
	}
	return booking.ID, nil
}

// Get fetches a booking by id.
func (r *GormBookingRepo) Get(ctx context.Context, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).First(&booking, bookingID).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// Cancel transitions a booking to cancelled, freeing its window.
func (r *GormBookingRepo) Cancel(ctx context.Context, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, bookingID).Error; err != nil {
			return err
		}
		return booking.UpdateStatus(tx, models.StatusCancelled)
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// isRangeViolation detects the Postgres overlap constraint firing on a
// concurrent insert that slipped past the transactional check.
func isRangeViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgExclusionViolation {
			return true
		}
		return pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == models.BookingOverlapConstraint
	}
	return false
}
