package domain

// Repositories bundles every ledger/registry repository bound to one
// storage handle, so a transaction can hand out transactional variants.
type Repositories struct {
	Tenants       TenantRepository
	Channels      ChannelRepository
	Distributions DistributionRepository
	Withdrawals   WithdrawalRepository
	Rates         RateConfigRepository
}

// TxManager runs fn against repositories bound to a single transaction.
// Balance checks and the writes that depend on them must share one
// transaction so a withdrawal never acts on view counts newer than the
// balance it validated, and so a batch import commit is all-or-nothing.
type TxManager interface {
	Do(fn func(r Repositories) error) error
}
