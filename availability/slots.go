package availability

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/vigilbook/vigil-booking/models"
)

// ComputeAvailableSlots returns the grid-aligned candidate slots of the
// given duration that remain free for the provider over the calendar window
// [from, to). from and to must be midnight-aligned dates.
//
// Rule expansion and exclusion collection have no ordering dependency and
// run concurrently; slot discretization joins both.
func (e *Engine) ComputeAvailableSlots(ctx context.Context, providerID uint, from, to time.Time, durationHours int) ([]models.Slot, error) {
	if to.Before(from) {
		return nil, &ValidationError{Field: "range", Reason: "from must not be after to"}
	}
	if durationHours <= 0 {
		return nil, &ValidationError{Field: "duration", Reason: "must be a positive number of hours"}
	}
	if durationHours%e.settings.SlotGranularityHours != 0 {
		return nil, &ValidationError{Field: "duration", Reason: "must be a multiple of the slot granularity"}
	}

	type ruleResult struct {
		set IntervalSet
		err error
	}
	type exclusionResult struct {
		set IntervalSet
		err error
	}

	ruleCh := make(chan ruleResult, 1)
	exclCh := make(chan exclusionResult, 1)

	go func() {
		readCtx, cancel := context.WithTimeout(ctx, e.settings.StoreTimeout)
		defer cancel()
		rules, err := e.rules.ListRules(readCtx, providerID)
		if err != nil {
			ruleCh <- ruleResult{err: &DependencyError{Source: "rule store", Err: err}}
			return
		}
		ruleCh <- ruleResult{set: ExpandRules(rules, from, to)}
	}()

	go func() {
		set, err := e.collectExclusions(ctx, providerID, from, to)
		exclCh <- exclusionResult{set: set, err: err}
	}()

	rules := <-ruleCh
	exclusions := <-exclCh
	if rules.err != nil {
		return nil, rules.err
	}
	if exclusions.err != nil {
		return nil, exclusions.err
	}
	if err := ctx.Err(); err != nil {
		// Caller went away; discard partial work.
		return nil, err
	}

	free := rules.set.Subtract(exclusions.set)
	slots := discretize(free, durationHours, e.settings.SlotGranularityHours)

	e.log.Debug("computed available slots",
		zap.Uint("provider_id", providerID),
		zap.Int("duration_hours", durationHours),
		zap.Int("count", len(slots)))

	return slots, nil
}

// discretize walks each maximal free interval on the granularity grid and
// emits every start position whose slot still fits before the interval ends.
// Free intervals arrive sorted, so the result is already chronological.
func discretize(free IntervalSet, durationHours, granularityHours int) []models.Slot {
	duration := time.Duration(durationHours) * time.Hour
	step := time.Duration(granularityHours) * time.Hour

	slots := []models.Slot{}
	for _, iv := range free.Intervals() {
		for p := iv.Start; !p.Add(duration).After(iv.End); p = p.Add(step) {
			midnight := time.Date(p.Year(), p.Month(), p.Day(), 0, 0, 0, 0, p.Location())
			startHour := int(p.Sub(midnight) / time.Hour)
			slots = append(slots, models.Slot{
				Date:          p.Format("2006-01-02"),
				StartAt:       p,
				EndAt:         p.Add(duration),
				StartHour:     startHour,
				EndHour:       startHour + durationHours,
				DurationHours: durationHours,
				Available:     true,
			})
		}
	}
	return slots
}
