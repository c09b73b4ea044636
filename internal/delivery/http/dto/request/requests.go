package request

type CreateTenantRequest struct {
	DisplayName string  `json:"display_name"`
	Secret      string  `json:"secret"`
	SplitRatio  float64 `json:"split_ratio"`
}

type EditSplitRatioRequest struct {
	SplitRatio float64 `json:"split_ratio"`
}

type CreateChannelRequest struct {
	TenantID    string `json:"tenant_id"`
	Platform    string `json:"platform,omitempty"`
	ExternalID  string `json:"external_id"`
	DisplayName string `json:"display_name"`
}

type CreateDistributionRequest struct {
	ContentID string `json:"content_id"`
	TenantID  string `json:"tenant_id"`
	ViewCount int64  `json:"view_count"`
	Outcome   string `json:"outcome,omitempty"`
}

type AddViewsRequest struct {
	Delta int64 `json:"delta"`
}

type SetRateConfigRequest struct {
	PricePerThousandViews float64 `json:"price_per_thousand_views"`
	PlatformFeePercent    float64 `json:"platform_fee_percent"`
}
