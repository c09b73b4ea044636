package repository

import (
	"github.com/LavaJover/shvark-revenue-service/internal/domain"
	"gorm.io/gorm"
)

// NewRepositories binds every repository to one storage handle, either
// the shared pool or a transaction.
func NewRepositories(db *gorm.DB, rateDefaults domain.RateConfig) domain.Repositories {
	return domain.Repositories{
		Tenants:       NewDefaultTenantRepository(db),
		Channels:      NewDefaultChannelRepository(db),
		Distributions: NewDefaultDistributionRepository(db),
		Withdrawals:   NewDefaultWithdrawalRepository(db),
		Rates:         NewDefaultRateConfigRepository(db, rateDefaults),
	}
}

type GormTxManager struct {
	DB           *gorm.DB
	RateDefaults domain.RateConfig
}

func NewGormTxManager(db *gorm.DB, rateDefaults domain.RateConfig) *GormTxManager {
	return &GormTxManager{DB: db, RateDefaults: rateDefaults}
}

// Do runs fn with repositories bound to one database transaction. A
// non-nil error from fn rolls everything back, which is what makes a
// malformed import row or a failed balance check free of side effects.
func (m *GormTxManager) Do(fn func(r domain.Repositories) error) error {
	return m.DB.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx, m.RateDefaults))
	})
}
