package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingOverlapConstraint names the Postgres exclusion constraint that
// rejects overlapping non-cancelled bookings for the same provider.
const BookingOverlapConstraint = "bookings_no_double_book"

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking is a reserved time window for a provider. Only non-cancelled
// bookings occupy time; cancelling a booking frees its window immediately.
type Booking struct {
	gorm.Model
	Reference  string        `json:"reference" gorm:"uniqueIndex;size:36"`
	ProviderID uint          `json:"provider_id" gorm:"index;not null"`
	ConsumerID uint          `json:"consumer_id"`
	ServiceRef string        `json:"service_ref"` // opaque to this engine
	StartAt    time.Time     `json:"start_at" gorm:"index;not null"`
	EndAt      time.Time     `json:"end_at" gorm:"not null"`
	Status     BookingStatus `json:"status"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = StatusPending
	}
	if b.Reference == "" {
		b.Reference = uuid.NewString()
	}
	return nil
}

// UpdateStatus applies a status transition, rejecting invalid ones.
func (b *Booking) UpdateStatus(tx *gorm.DB, newStatus BookingStatus) error {
	switch b.Status {
	case StatusPending:
		if newStatus != StatusConfirmed && newStatus != StatusCancelled {
			return fmt.Errorf("invalid transition from pending to %s", newStatus)
		}
	case StatusConfirmed:
		if newStatus != StatusCompleted && newStatus != StatusCancelled {
			return fmt.Errorf("invalid transition from confirmed to %s", newStatus)
		}
	case StatusCompleted, StatusCancelled:
		return fmt.Errorf("no transitions allowed from %s", b.Status)
	}

	b.Status = newStatus
	return tx.Save(b).Error
}
