package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Unavailability is a one-off absolute-time block that removes time from a
// provider's availability. It always wins over recurring rules for its span.
type Unavailability struct {
	gorm.Model
	ProviderID uint      `json:"provider_id" gorm:"index;not null"`
	StartAt    time.Time `json:"start_at" gorm:"index;not null"`
	EndAt      time.Time `json:"end_at" gorm:"not null"`
	Reason     string    `json:"reason"` // display only
}

// Validate checks the block invariants before it is persisted.
func (u *Unavailability) Validate() error {
	if !u.EndAt.After(u.StartAt) {
		return fmt.Errorf("end_at must be after start_at")
	}
	return nil
}
