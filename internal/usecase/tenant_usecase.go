package usecase

import (
	"errors"
	"time"

	"github.com/LavaJover/shvark-revenue-service/internal/domain"
	"github.com/google/uuid"
)

type DefaultTenantUsecase struct {
	TenantRepo domain.TenantRepository
}

func NewDefaultTenantUsecase(tenantRepo domain.TenantRepository) *DefaultTenantUsecase {
	return &DefaultTenantUsecase{TenantRepo: tenantRepo}
}

func (uc *DefaultTenantUsecase) CreateTenant(tenant *domain.Tenant) error {
	if tenant.Role == "" {
		tenant.Role = domain.RoleTenant
	}
	if tenant.Role == domain.RoleOperator {
		// Exactly one operator account may exist.
		if _, err := uc.TenantRepo.GetOperator(); err == nil {
			return domain.ErrOperatorImmutable
		} else if !errors.Is(err, domain.ErrTenantNotFound) {
			return err
		}
	}
	if tenant.SplitRatio < 0 || tenant.SplitRatio > 100 {
		return domain.ErrInvalidConfig
	}
	if tenant.ID == "" {
		tenant.ID = uuid.New().String()
	}
	tenant.CreatedAt = time.Now()
	return uc.TenantRepo.CreateTenant(tenant)
}

func (uc *DefaultTenantUsecase) GetTenantByID(tenantID string) (*domain.Tenant, error) {
	return uc.TenantRepo.GetTenantByID(tenantID)
}

func (uc *DefaultTenantUsecase) GetTenants() ([]*domain.Tenant, error) {
	return uc.TenantRepo.GetTenants()
}

func (uc *DefaultTenantUsecase) EditSplitRatio(tenantID string, splitRatio float64) error {
	if splitRatio < 0 || splitRatio > 100 {
		return domain.ErrInvalidConfig
	}
	tenant, err := uc.TenantRepo.GetTenantByID(tenantID)
	if err != nil {
		return err
	}
	if tenant.IsOperator() {
		return domain.ErrOperatorImmutable
	}
	return uc.TenantRepo.UpdateSplitRatio(tenantID, splitRatio)
}

// DeleteTenant removes the registry record only. Distributions and
// withdrawals that reference it stay in place and drop out of every
// future aggregation because attribution iterates live tenants.
func (uc *DefaultTenantUsecase) DeleteTenant(tenantID string) error {
	tenant, err := uc.TenantRepo.GetTenantByID(tenantID)
	if err != nil {
		return err
	}
	if tenant.IsOperator() {
		return domain.ErrOperatorImmutable
	}
	return uc.TenantRepo.DeleteTenant(tenantID)
}

// EnsureOperator seeds the single operator account on first start.
func (uc *DefaultTenantUsecase) EnsureOperator(displayName, secret string) (*domain.Tenant, error) {
	operator, err := uc.TenantRepo.GetOperator()
	if err == nil {
		return operator, nil
	}
	if !errors.Is(err, domain.ErrTenantNotFound) {
		return nil, err
	}
	operator = &domain.Tenant{
		ID:          uuid.New().String(),
		DisplayName: displayName,
		Secret:      secret,
		Role:        domain.RoleOperator,
		CreatedAt:   time.Now(),
	}
	if err := uc.TenantRepo.CreateTenant(operator); err != nil {
		return nil, err
	}
	return operator, nil
}
