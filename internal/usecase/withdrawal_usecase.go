package usecase

import (
	"context"
	"log"
	"time"

	"github.com/LavaJover/shvark-revenue-service/internal/domain"
	"github.com/LavaJover/shvark-revenue-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-revenue-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-revenue-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-revenue-service/internal/usecase/attribution"
	"github.com/jaevor/go-nanoid"
)

type DefaultWithdrawalUsecase struct {
	TxManager      domain.TxManager
	WithdrawalRepo domain.WithdrawalRepository
	MinWithdrawal  float64
	Publisher      *publisher.KafkaPublisher
	EventLog       logger.LedgerEventLogger
	Metrics        *metrics.RevenueMetrics
}

func NewDefaultWithdrawalUsecase(
	txManager domain.TxManager,
	withdrawalRepo domain.WithdrawalRepository,
	minWithdrawal float64,
	kafkaPublisher *publisher.KafkaPublisher,
	eventLogger logger.LedgerEventLogger,
	revenueMetrics *metrics.RevenueMetrics) *DefaultWithdrawalUsecase {

	return &DefaultWithdrawalUsecase{
		TxManager:      txManager,
		WithdrawalRepo: withdrawalRepo,
		MinWithdrawal:  minWithdrawal,
		Publisher:      kafkaPublisher,
		EventLog:       eventLogger,
		Metrics:        revenueMetrics,
	}
}

// RequestWithdrawal drains the tenant's entire available balance into one
// pending withdrawal. There is no partial path. The balance read and the
// append run in one transaction, so two back-to-back requests cannot both
// see the same balance: the second fails with ErrInsufficientBalance
// unless view counts grew in between.
func (uc *DefaultWithdrawalUsecase) RequestWithdrawal(tenantID string) (*domain.Withdrawal, error) {
	var withdrawal *domain.Withdrawal
	err := uc.TxManager.Do(func(r domain.Repositories) error {
		snapshot, withdrawn, err := loadTenantSnapshot(r, tenantID)
		if err != nil {
			return err
		}
		tenant := snapshot.Tenants[0]
		if tenant.IsOperator() {
			return domain.ErrOperatorImmutable
		}
		balance := attribution.AvailableBalance(snapshot, tenantID, withdrawn)
		if balance < uc.MinWithdrawal {
			return domain.ErrInsufficientBalance
		}
		idGenerator, err := nanoid.Standard(15)
		if err != nil {
			return err
		}
		withdrawal = &domain.Withdrawal{
			ID:          idGenerator(),
			TenantID:    tenantID,
			Amount:      balance,
			Status:      domain.WithdrawalPending,
			RequestedAt: time.Now(),
		}
		return r.Withdrawals.CreateWithdrawal(withdrawal)
	})
	if err != nil {
		uc.recordWithdrawalRejected(tenantID, err)
		return nil, err
	}

	uc.recordWithdrawalRequested(withdrawal)
	uc.auditWithdrawal(withdrawal)
	uc.publishWithdrawalEvent(withdrawal)
	return withdrawal, nil
}

func (uc *DefaultWithdrawalUsecase) auditWithdrawal(withdrawal *domain.Withdrawal) {
	if uc.EventLog == nil {
		return
	}
	event := logger.WithdrawalRequestedEvent{
		WithdrawalID: withdrawal.ID,
		TenantID:     withdrawal.TenantID,
		Amount:       withdrawal.Amount,
		Status:       string(withdrawal.Status),
		Timestamp:    withdrawal.RequestedAt,
	}
	if err := uc.EventLog.LogWithdrawalRequested(context.Background(), event); err != nil {
		log.Printf("failed to log withdrawal event: %v", err)
	}
}

func (uc *DefaultWithdrawalUsecase) GetWithdrawalsByTenantID(tenantID string) ([]*domain.Withdrawal, error) {
	return uc.WithdrawalRepo.GetWithdrawalsByTenantID(tenantID)
}

// CompleteWithdrawal is the operator-side status flip. Money movement
// itself happens outside this service.
func (uc *DefaultWithdrawalUsecase) CompleteWithdrawal(withdrawalID string) error {
	return uc.WithdrawalRepo.UpdateWithdrawalStatus(withdrawalID, domain.WithdrawalCompleted)
}

func (uc *DefaultWithdrawalUsecase) publishWithdrawalEvent(withdrawal *domain.Withdrawal) {
	if uc.Publisher == nil {
		return
	}
	event := publisher.WithdrawalEvent{
		WithdrawalID: withdrawal.ID,
		TenantID:     withdrawal.TenantID,
		Amount:       withdrawal.Amount,
		Status:       string(withdrawal.Status),
		RequestedAt:  withdrawal.RequestedAt,
	}
	if err := uc.Publisher.PublishWithdrawal(event); err != nil {
		log.Printf("failed to publish withdrawal event: %v", err)
	}
}

func (uc *DefaultWithdrawalUsecase) recordWithdrawalRequested(withdrawal *domain.Withdrawal) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordWithdrawalRequested(withdrawal.TenantID, withdrawal.Amount)
}

func (uc *DefaultWithdrawalUsecase) recordWithdrawalRejected(tenantID string, err error) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordWithdrawalRejected(tenantID, err)
}
