package publisher

import "time"

const (
	TopicWithdrawalEvents = "withdrawal-events"
	TopicImportEvents     = "import-events"
)

type WithdrawalEvent struct {
	WithdrawalID string    `json:"withdrawal_id"`
	TenantID     string    `json:"tenant_id"`
	Amount       float64   `json:"amount"`
	Status       string    `json:"status"`
	RequestedAt  time.Time `json:"requested_at"`
}

type ImportEvent struct {
	TenantsCreated  int       `json:"tenants_created"`
	ChannelsCreated int       `json:"channels_created"`
	CompletedAt     time.Time `json:"completed_at"`
}
