package domain

import "time"

type WithdrawalStatus string

const (
	WithdrawalPending   WithdrawalStatus = "pending"
	WithdrawalCompleted WithdrawalStatus = "completed"
)

type Withdrawal struct {
	ID          string
	TenantID    string
	Amount      float64
	Status      WithdrawalStatus
	RequestedAt time.Time
}

type WithdrawalRepository interface {
	CreateWithdrawal(withdrawal *Withdrawal) error
	GetWithdrawalsByTenantID(tenantID string) ([]*Withdrawal, error)
	SumWithdrawnByTenantID(tenantID string) (float64, error)
	UpdateWithdrawalStatus(withdrawalID string, status WithdrawalStatus) error
}

type WithdrawalUsecase interface {
	RequestWithdrawal(tenantID string) (*Withdrawal, error)
	GetWithdrawalsByTenantID(tenantID string) ([]*Withdrawal, error)
	CompleteWithdrawal(withdrawalID string) error
}
