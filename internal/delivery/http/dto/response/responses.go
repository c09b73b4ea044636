package response

import "time"

type ErrorResponse struct {
	Error string `json:"error"`
}

type TenantResponse struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	SplitRatio  float64   `json:"split_ratio"`
	CreatedAt   time.Time `json:"created_at"`
}

type ChannelResponse struct {
	ID          string `json:"id"`
	TenantID    string `json:"tenant_id"`
	Platform    string `json:"platform"`
	ExternalID  string `json:"external_id"`
	DisplayName string `json:"display_name"`
}

type DistributionResponse struct {
	ID        string    `json:"id"`
	ContentID string    `json:"content_id"`
	TenantID  string    `json:"tenant_id"`
	ViewCount int64     `json:"view_count"`
	Outcome   string    `json:"outcome"`
	CreatedAt time.Time `json:"created_at"`
}

type BalanceResponse struct {
	TenantID   string  `json:"tenant_id"`
	TotalViews int64   `json:"total_views"`
	Gross      float64 `json:"gross_revenue"`
	Net        float64 `json:"net_revenue"`
	Withdrawn  float64 `json:"withdrawn"`
	Available  float64 `json:"available_balance"`
}

type WithdrawalResponse struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	RequestedAt time.Time `json:"requested_at"`
}

type RateConfigResponse struct {
	PricePerThousandViews float64 `json:"price_per_thousand_views"`
	PlatformFeePercent    float64 `json:"platform_fee_percent"`
}

type ImportResponse struct {
	TenantsCreated  int `json:"tenants_created"`
	ChannelsCreated int `json:"channels_created"`
}
