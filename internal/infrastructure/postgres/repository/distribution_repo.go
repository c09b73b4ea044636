package repository

import (
	"errors"

	"github.com/LavaJover/shvark-revenue-service/internal/domain"
	"github.com/LavaJover/shvark-revenue-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultDistributionRepository struct {
	DB *gorm.DB
}

func NewDefaultDistributionRepository(db *gorm.DB) *DefaultDistributionRepository {
	return &DefaultDistributionRepository{DB: db}
}

func toDistributionDomain(m *models.DistributionModel) *domain.DistributionEvent {
	return &domain.DistributionEvent{
		ID:        m.ID,
		ContentID: m.ContentID,
		TenantID:  m.TenantID,
		ViewCount: m.ViewCount,
		Outcome:   domain.DistributionOutcome(m.Outcome),
		CreatedAt: m.CreatedAt,
	}
}

func (r *DefaultDistributionRepository) CreateDistribution(event *domain.DistributionEvent) error {
	distributionModel := models.DistributionModel{
		ID:        event.ID,
		ContentID: event.ContentID,
		TenantID:  event.TenantID,
		ViewCount: event.ViewCount,
		Outcome:   string(event.Outcome),
		CreatedAt: event.CreatedAt,
	}
	return r.DB.Create(&distributionModel).Error
}

func (r *DefaultDistributionRepository) GetDistributionByID(distributionID string) (*domain.DistributionEvent, error) {
	var distributionModel models.DistributionModel
	if err := r.DB.Where("id = ?", distributionID).First(&distributionModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUnknownReference
		}
		return nil, err
	}
	return toDistributionDomain(&distributionModel), nil
}

func (r *DefaultDistributionRepository) GetDistributionsByTenantID(tenantID string) ([]*domain.DistributionEvent, error) {
	var distributionModels []models.DistributionModel
	if err := r.DB.Where("tenant_id = ?", tenantID).Order("created_at ASC").Find(&distributionModels).Error; err != nil {
		return nil, err
	}
	events := make([]*domain.DistributionEvent, len(distributionModels))
	for i := range distributionModels {
		events[i] = toDistributionDomain(&distributionModels[i])
	}
	return events, nil
}

func (r *DefaultDistributionRepository) GetDistributions() ([]*domain.DistributionEvent, error) {
	var distributionModels []models.DistributionModel
	if err := r.DB.Order("created_at ASC").Find(&distributionModels).Error; err != nil {
		return nil, err
	}
	events := make([]*domain.DistributionEvent, len(distributionModels))
	for i := range distributionModels {
		events[i] = toDistributionDomain(&distributionModels[i])
	}
	return events, nil
}

func (r *DefaultDistributionRepository) GetSuccessfulDistributionIDs() ([]string, error) {
	var ids []string
	if err := r.DB.Model(&models.DistributionModel{}).
		Where("outcome = ?", string(domain.OutcomeSuccess)).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// AddViews bumps the counter in place. The update expression keeps the
// increment atomic so concurrent simulator ticks never lose views.
func (r *DefaultDistributionRepository) AddViews(distributionID string, delta int64) error {
	result := r.DB.Model(&models.DistributionModel{}).
		Where("id = ?", distributionID).
		Update("view_count", gorm.Expr("view_count + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrUnknownReference
	}
	return nil
}
