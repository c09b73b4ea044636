package domain

import "time"

type TenantRole string

const (
	RoleOperator TenantRole = "operator"
	RoleTenant   TenantRole = "tenant"
)

type Tenant struct {
	ID          string
	DisplayName string
	Secret      string
	Role        TenantRole
	SplitRatio  float64
	CreatedAt   time.Time
}

func (t *Tenant) IsOperator() bool {
	return t.Role == RoleOperator
}

type TenantRepository interface {
	CreateTenant(tenant *Tenant) error
	GetTenantByID(tenantID string) (*Tenant, error)
	GetTenantByDisplayName(displayName string) (*Tenant, error)
	GetTenants() ([]*Tenant, error)
	GetOperator() (*Tenant, error)
	UpdateSplitRatio(tenantID string, splitRatio float64) error
	DeleteTenant(tenantID string) error
}

type TenantUsecase interface {
	CreateTenant(tenant *Tenant) error
	GetTenantByID(tenantID string) (*Tenant, error)
	GetTenants() ([]*Tenant, error)
	EditSplitRatio(tenantID string, splitRatio float64) error
	DeleteTenant(tenantID string) error
}
