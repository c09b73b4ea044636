package logger

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type WithdrawalRequestedEvent struct {
	ID           uint `gorm:"primaryKey"`
	WithdrawalID string
	TenantID     string
	Amount       float64
	Status       string
	Timestamp    time.Time
}

type ImportCompletedEvent struct {
	ID              uint `gorm:"primaryKey"`
	TenantsCreated  int
	ChannelsCreated int
	Timestamp       time.Time
}

// LedgerEventLogger keeps an append-only audit trail of the operations
// that move or create money-relevant records.
type LedgerEventLogger interface {
	LogWithdrawalRequested(ctx context.Context, event WithdrawalRequestedEvent) error
	LogImportCompleted(ctx context.Context, event ImportCompletedEvent) error
}

type PGLedgerEventLogger struct {
	db *gorm.DB
}

func NewPGLedgerEventLogger(db *gorm.DB) *PGLedgerEventLogger {
	return &PGLedgerEventLogger{db: db}
}

func (l *PGLedgerEventLogger) LogWithdrawalRequested(ctx context.Context, event WithdrawalRequestedEvent) error {
	return l.db.WithContext(ctx).Create(&event).Error
}

func (l *PGLedgerEventLogger) LogImportCompleted(ctx context.Context, event ImportCompletedEvent) error {
	return l.db.WithContext(ctx).Create(&event).Error
}
