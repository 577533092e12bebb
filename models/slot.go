package models

import "time"

// Slot is a computed, bookable candidate window. Slots are never persisted
// or cached: a concurrent booking can invalidate one at any moment, so a
// slot is only a proposal that gets re-validated at reservation time.
type Slot struct {
	Date          string    `json:"date"` // YYYY-MM-DD of the start instant
	StartAt       time.Time `json:"start_at"`
	EndAt         time.Time `json:"end_at"`
	StartHour     int       `json:"start_hour"` // hours since midnight of Date
	EndHour       int       `json:"end_hour"`   // may exceed 24 when the slot crosses midnight
	DurationHours int       `json:"duration_hours"`
	Available     bool      `json:"available"`
}
