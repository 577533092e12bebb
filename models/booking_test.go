package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Booking{}))
	return db
}

func newBooking(t *testing.T, db *gorm.DB, status BookingStatus) *Booking {
	t.Helper()
	b := &Booking{
		ProviderID: 1,
		StartAt:    time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC),
		EndAt:      time.Date(2024, 6, 3, 11, 0, 0, 0, time.UTC),
		Status:     status,
	}
	require.NoError(t, db.Create(b).Error)
	return b
}

func TestBookingDefaultsOnCreate(t *testing.T) {
	db := openTestDB(t)

	b := &Booking{
		ProviderID: 1,
		StartAt:    time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC),
		EndAt:      time.Date(2024, 6, 3, 11, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(b).Error)

	assert.Equal(t, StatusPending, b.Status)
	assert.NotEmpty(t, b.Reference)
}

func TestBookingStatusTransitions(t *testing.T) {
	db := openTestDB(t)

	t.Run("pending to confirmed", func(t *testing.T) {
		b := newBooking(t, db, StatusPending)
		assert.NoError(t, b.UpdateStatus(db, StatusConfirmed))
	})

	t.Run("pending to cancelled", func(t *testing.T) {
		b := newBooking(t, db, StatusPending)
		assert.NoError(t, b.UpdateStatus(db, StatusCancelled))
	})

	t.Run("pending to completed is invalid", func(t *testing.T) {
		b := newBooking(t, db, StatusPending)
		assert.Error(t, b.UpdateStatus(db, StatusCompleted))
	})

	t.Run("confirmed to completed", func(t *testing.T) {
		b := newBooking(t, db, StatusConfirmed)
		assert.NoError(t, b.UpdateStatus(db, StatusCompleted))
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		b := newBooking(t, db, StatusCancelled)
		assert.Error(t, b.UpdateStatus(db, StatusPending))
		assert.Error(t, b.UpdateStatus(db, StatusConfirmed))
	})

	t.Run("completed is terminal", func(t *testing.T) {
		b := newBooking(t, db, StatusCompleted)
		assert.Error(t, b.UpdateStatus(db, StatusCancelled))
	})
}

func TestAvailabilityRuleValidate(t *testing.T) {
	valid := AvailabilityRule{
		ProviderID: 1,
		Weekday:    Monday,
		StartHour:  9,
		EndHour:    17,
		ValidFrom:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, valid.Validate())

	midnight := valid
	midnight.StartHour = 20
	midnight.EndHour = 24
	assert.NoError(t, midnight.Validate(), "end_hour 24 means until midnight")

	backwards := valid
	backwards.EndHour = 9
	assert.Error(t, backwards.Validate())

	badWeekday := valid
	badWeekday.Weekday = 7
	assert.Error(t, badWeekday.Validate())

	inverted := valid
	before := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	inverted.ValidTo = &before
	assert.Error(t, inverted.Validate())
}

func TestUnavailabilityValidate(t *testing.T) {
	start := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)

	ok := Unavailability{ProviderID: 1, StartAt: start, EndAt: start.Add(time.Hour)}
	assert.NoError(t, ok.Validate())

	empty := Unavailability{ProviderID: 1, StartAt: start, EndAt: start}
	assert.Error(t, empty.Validate())

	backwards := Unavailability{ProviderID: 1, StartAt: start, EndAt: start.Add(-time.Hour)}
	assert.Error(t, backwards.Validate())
}
