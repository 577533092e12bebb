package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/vigilbook/vigil-booking/models"
)

// GormUnavailabilityRepo persists one-off exclusion blocks.
type GormUnavailabilityRepo struct {
	db *gorm.DB
}

func NewUnavailabilityRepo(db *gorm.DB) *GormUnavailabilityRepo {
	return &GormUnavailabilityRepo{db: db}
}

// ListUnavailabilities returns blocks overlapping [from, to). Overlap, not
// containment: a partially covered block still truncates availability.
func (r *GormUnavailabilityRepo) ListUnavailabilities(ctx context.Context, providerID uint, from, to time.Time) ([]models.Unavailability, error) {
	var blocks []models.Unavailability
	err := r.db.WithContext(ctx).
		Where("provider_id = ? AND start_at < ? AND end_at > ?", providerID, to, from).
		Order("start_at asc").
		Find(&blocks).Error
	if err != nil {
		return nil, err
	}
	return blocks, nil
}

// Create stores a new block.
func (r *GormUnavailabilityRepo) Create(ctx context.Context, block *models.Unavailability) error {
	return r.db.WithContext(ctx).Create(block).Error
}

// Delete removes a provider's block by id.
func (r *GormUnavailabilityRepo) Delete(ctx context.Context, providerID, blockID uint) error {
	result := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Delete(&models.Unavailability{}, blockID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
