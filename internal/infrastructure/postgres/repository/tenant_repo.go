package repository

import (
	"errors"

	"github.com/LavaJover/shvark-revenue-service/internal/domain"
	"github.com/LavaJover/shvark-revenue-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultTenantRepository struct {
	DB *gorm.DB
}

func NewDefaultTenantRepository(db *gorm.DB) *DefaultTenantRepository {
	return &DefaultTenantRepository{DB: db}
}

func toTenantDomain(m *models.TenantModel) *domain.Tenant {
	return &domain.Tenant{
		ID:          m.ID,
		DisplayName: m.DisplayName,
		Secret:      m.Secret,
		Role:        domain.TenantRole(m.Role),
		SplitRatio:  m.SplitRatio,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *DefaultTenantRepository) CreateTenant(tenant *domain.Tenant) error {
	tenantModel := models.TenantModel{
		ID:          tenant.ID,
		DisplayName: tenant.DisplayName,
		Secret:      tenant.Secret,
		Role:        string(tenant.Role),
		SplitRatio:  tenant.SplitRatio,
		CreatedAt:   tenant.CreatedAt,
	}
	return r.DB.Create(&tenantModel).Error
}

func (r *DefaultTenantRepository) GetTenantByID(tenantID string) (*domain.Tenant, error) {
	var tenantModel models.TenantModel
	if err := r.DB.Where("id = ?", tenantID).First(&tenantModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTenantNotFound
		}
		return nil, err
	}
	return toTenantDomain(&tenantModel), nil
}

func (r *DefaultTenantRepository) GetTenantByDisplayName(displayName string) (*domain.Tenant, error) {
	var tenantModel models.TenantModel
	if err := r.DB.Where("display_name = ?", displayName).First(&tenantModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTenantNotFound
		}
		return nil, err
	}
	return toTenantDomain(&tenantModel), nil
}

func (r *DefaultTenantRepository) GetTenants() ([]*domain.Tenant, error) {
	var tenantModels []models.TenantModel
	if err := r.DB.Order("created_at ASC").Find(&tenantModels).Error; err != nil {
		return nil, err
	}
	tenants := make([]*domain.Tenant, len(tenantModels))
	for i := range tenantModels {
		tenants[i] = toTenantDomain(&tenantModels[i])
	}
	return tenants, nil
}

func (r *DefaultTenantRepository) GetOperator() (*domain.Tenant, error) {
	var tenantModel models.TenantModel
	if err := r.DB.Where("role = ?", string(domain.RoleOperator)).First(&tenantModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTenantNotFound
		}
		return nil, err
	}
	return toTenantDomain(&tenantModel), nil
}

func (r *DefaultTenantRepository) UpdateSplitRatio(tenantID string, splitRatio float64) error {
	result := r.DB.Model(&models.TenantModel{}).
		Where("id = ?", tenantID).
		Update("split_ratio", splitRatio)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTenantNotFound
	}
	return nil
}

func (r *DefaultTenantRepository) DeleteTenant(tenantID string) error {
	result := r.DB.Delete(&models.TenantModel{ID: tenantID})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTenantNotFound
	}
	return nil
}
