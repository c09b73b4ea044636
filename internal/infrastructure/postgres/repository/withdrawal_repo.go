package repository

import (
	"github.com/LavaJover/shvark-revenue-service/internal/domain"
	"github.com/LavaJover/shvark-revenue-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultWithdrawalRepository struct {
	DB *gorm.DB
}

func NewDefaultWithdrawalRepository(db *gorm.DB) *DefaultWithdrawalRepository {
	return &DefaultWithdrawalRepository{DB: db}
}

func (r *DefaultWithdrawalRepository) CreateWithdrawal(withdrawal *domain.Withdrawal) error {
	withdrawalModel := models.WithdrawalModel{
		ID:          withdrawal.ID,
		TenantID:    withdrawal.TenantID,
		Amount:      withdrawal.Amount,
		Status:      string(withdrawal.Status),
		RequestedAt: withdrawal.RequestedAt,
	}
	return r.DB.Create(&withdrawalModel).Error
}

func (r *DefaultWithdrawalRepository) GetWithdrawalsByTenantID(tenantID string) ([]*domain.Withdrawal, error) {
	var withdrawalModels []models.WithdrawalModel
	if err := r.DB.Where("tenant_id = ?", tenantID).
		Order("requested_at DESC").
		Find(&withdrawalModels).Error; err != nil {
		return nil, err
	}
	withdrawals := make([]*domain.Withdrawal, len(withdrawalModels))
	for i, m := range withdrawalModels {
		withdrawals[i] = &domain.Withdrawal{
			ID:          m.ID,
			TenantID:    m.TenantID,
			Amount:      m.Amount,
			Status:      domain.WithdrawalStatus(m.Status),
			RequestedAt: m.RequestedAt,
		}
	}
	return withdrawals, nil
}

func (r *DefaultWithdrawalRepository) SumWithdrawnByTenantID(tenantID string) (float64, error) {
	var sum float64
	if err := r.DB.Model(&models.WithdrawalModel{}).
		Where("tenant_id = ?", tenantID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error; err != nil {
		return 0, err
	}
	return sum, nil
}

func (r *DefaultWithdrawalRepository) UpdateWithdrawalStatus(withdrawalID string, status domain.WithdrawalStatus) error {
	result := r.DB.Model(&models.WithdrawalModel{}).
		Where("id = ?", withdrawalID).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrUnknownReference
	}
	return nil
}
