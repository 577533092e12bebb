package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigilbook/vigil-booking/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func weeklyRule(weekday models.DayOfWeek, startHour, endHour int, validFrom time.Time, validTo *time.Time) models.AvailabilityRule {
	return models.AvailabilityRule{
		ProviderID: 1,
		Weekday:    weekday,
		StartHour:  startHour,
		EndHour:    endHour,
		ValidFrom:  validFrom,
		ValidTo:    validTo,
	}
}

func TestExpandRulesSingleWeekday(t *testing.T) {
	rules := []models.AvailabilityRule{
		weeklyRule(models.Monday, 9, 17, date(2024, 1, 1), nil),
	}

	// 2024-06-03 is a Monday.
	got := ExpandRules(rules, date(2024, 6, 3), date(2024, 6, 4)).Intervals()
	require.Len(t, got, 1)
	assert.Equal(t, at(9), got[0].Start)
	assert.Equal(t, at(17), got[0].End)
}

func TestExpandRulesMultiWeekWindow(t *testing.T) {
	rules := []models.AvailabilityRule{
		weeklyRule(models.Monday, 9, 17, date(2024, 1, 1), nil),
	}

	// Two Mondays fall inside [2024-06-03, 2024-06-11).
	got := ExpandRules(rules, date(2024, 6, 3), date(2024, 6, 11)).Intervals()
	require.Len(t, got, 2)
	assert.Equal(t, date(2024, 6, 3).Add(9*time.Hour), got[0].Start)
	assert.Equal(t, date(2024, 6, 10).Add(9*time.Hour), got[1].Start)
}

func TestExpandRulesEndHourMidnight(t *testing.T) {
	rules := []models.AvailabilityRule{
		weeklyRule(models.Monday, 20, 24, date(2024, 1, 1), nil),
	}

	got := ExpandRules(rules, date(2024, 6, 3), date(2024, 6, 4)).Intervals()
	require.Len(t, got, 1)
	assert.Equal(t, date(2024, 6, 4), got[0].End, "end_hour 24 must land on the next midnight")
}

func TestExpandRulesValidityWindow(t *testing.T) {
	validTo := date(2024, 5, 31)
	rules := []models.AvailabilityRule{
		weeklyRule(models.Monday, 9, 17, date(2024, 1, 1), &validTo),
	}

	got := ExpandRules(rules, date(2024, 6, 3), date(2024, 6, 10))
	assert.True(t, got.IsEmpty(), "rule expired before the query window")
}

func TestExpandRulesValidFromInFuture(t *testing.T) {
	rules := []models.AvailabilityRule{
		weeklyRule(models.Monday, 9, 17, date(2024, 7, 1), nil),
	}

	got := ExpandRules(rules, date(2024, 6, 3), date(2024, 6, 10))
	assert.True(t, got.IsEmpty())
}

func TestExpandRulesValidToInclusive(t *testing.T) {
	validTo := date(2024, 6, 3)
	rules := []models.AvailabilityRule{
		weeklyRule(models.Monday, 9, 17, date(2024, 1, 1), &validTo),
	}

	got := ExpandRules(rules, date(2024, 6, 3), date(2024, 6, 10)).Intervals()
	require.Len(t, got, 1, "valid_to is inclusive of its calendar date")
	assert.Equal(t, at(9), got[0].Start)
}

func TestExpandRulesOverlappingRulesUnion(t *testing.T) {
	rules := []models.AvailabilityRule{
		weeklyRule(models.Monday, 9, 12, date(2024, 1, 1), nil),
		weeklyRule(models.Monday, 11, 17, date(2024, 1, 1), nil),
	}

	got := ExpandRules(rules, date(2024, 6, 3), date(2024, 6, 4)).Intervals()
	require.Len(t, got, 1, "overlapping rules must merge, not fragment")
	assert.Equal(t, at(9), got[0].Start)
	assert.Equal(t, at(17), got[0].End)
}

func TestExpandRulesNoRules(t *testing.T) {
	got := ExpandRules(nil, date(2024, 6, 3), date(2024, 6, 10))
	assert.True(t, got.IsEmpty(), "zero rules means no availability, not an error")
}

func TestExpandRulesEmptyWindow(t *testing.T) {
	rules := []models.AvailabilityRule{
		weeklyRule(models.Monday, 9, 17, date(2024, 1, 1), nil),
	}
	got := ExpandRules(rules, date(2024, 6, 3), date(2024, 6, 3))
	assert.True(t, got.IsEmpty())
}
