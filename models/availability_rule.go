package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// AvailabilityRule is a recurring weekly availability window for a provider.
// Rules are immutable once created; an edit is modeled as delete + create.
// Multiple rules may cover the same weekday, their spans are unioned.
type AvailabilityRule struct {
	gorm.Model
	ProviderID uint       `json:"provider_id" gorm:"index;not null"`
	Weekday    DayOfWeek  `json:"weekday"`
	StartHour  int        `json:"start_hour"` // 0-23
	EndHour    int        `json:"end_hour"`   // 1-24, exclusive, 24 = until midnight
	ValidFrom  time.Time  `json:"valid_from"`
	ValidTo    *time.Time `json:"valid_to"` // nil = open-ended
}

// Validate checks the rule invariants before it is persisted.
func (r *AvailabilityRule) Validate() error {
	if r.Weekday < Sunday || r.Weekday > Saturday {
		return fmt.Errorf("weekday must be between 0 (Sunday) and 6 (Saturday)")
	}
	if r.StartHour < 0 || r.StartHour > 23 {
		return fmt.Errorf("start_hour must be between 0 and 23")
	}
	if r.EndHour < 1 || r.EndHour > 24 {
		return fmt.Errorf("end_hour must be between 1 and 24")
	}
	if r.EndHour <= r.StartHour {
		return fmt.Errorf("end_hour must be greater than start_hour")
	}
	if r.ValidTo != nil && r.ValidTo.Before(r.ValidFrom) {
		return fmt.Errorf("valid_to must not be before valid_from")
	}
	return nil
}

// AppliesOn reports whether the rule covers the given calendar date.
func (r *AvailabilityRule) AppliesOn(date time.Time) bool {
	if DayOfWeek(date.Weekday()) != r.Weekday {
		return false
	}
	day := date.Truncate(24 * time.Hour)
	if day.Before(r.ValidFrom.Truncate(24 * time.Hour)) {
		return false
	}
	if r.ValidTo != nil && day.After(r.ValidTo.Truncate(24*time.Hour)) {
		return false
	}
	return true
}
