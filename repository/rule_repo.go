package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/vigilbook/vigil-booking/models"
)

// GormRuleRepo persists availability rules.
type GormRuleRepo struct {
	db *gorm.DB
}

func NewRuleRepo(db *gorm.DB) *GormRuleRepo {
	return &GormRuleRepo{db: db}
}

// ListRules returns every rule for the provider, regardless of validity
// window. Date filtering belongs to the engine's rule expansion.
func (r *GormRuleRepo) ListRules(ctx context.Context, providerID uint) ([]models.AvailabilityRule, error) {
	var rules []models.AvailabilityRule
	err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("weekday asc, start_hour asc").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}

// Create stores a new rule. Rules are immutable afterwards; edits are
// delete + create.
func (r *GormRuleRepo) Create(ctx context.Context, rule *models.AvailabilityRule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

// Delete removes a provider's rule by id.
func (r *GormRuleRepo) Delete(ctx context.Context, providerID, ruleID uint) error {
	result := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Delete(&models.AvailabilityRule{}, ruleID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
