package controllers

import (
	"github.com/vigilbook/vigil-booking/availability"
	"github.com/vigilbook/vigil-booking/config"
	"github.com/vigilbook/vigil-booking/db"
	"github.com/vigilbook/vigil-booking/repository"
	"github.com/vigilbook/vigil-booking/utils"
)

var (
	engine             *availability.Engine
	ruleRepo           *repository.GormRuleRepo
	unavailabilityRepo *repository.GormUnavailabilityRepo
	bookingRepo        *repository.GormBookingRepo
)

// InitEngine wires the availability engine to the gorm-backed stores.
// Must run after db.Init.
func InitEngine() {
	ruleRepo = repository.NewRuleRepo(db.DB)
	unavailabilityRepo = repository.NewUnavailabilityRepo(db.DB)
	bookingRepo = repository.NewBookingRepo(db.DB)

	engine = availability.New(
		ruleRepo,
		unavailabilityRepo,
		bookingRepo,
		availability.Settings{
			SlotGranularityHours: config.AppConfig.SlotGranularityHours,
			StoreTimeout:         config.AppConfig.StoreTimeout,
			CommitTimeout:        config.AppConfig.CommitTimeout,
		},
		utils.GetLogger(),
	)
}
