package domain

// RateConfig is the process-wide pricing singleton. Revenue is always
// derived from the config in effect at read time, so edits apply
// retroactively to every historical distribution.
type RateConfig struct {
	PricePerThousandViews float64
	PlatformFeePercent    float64
}

func (c RateConfig) Validate() error {
	if c.PricePerThousandViews < 0 {
		return ErrInvalidConfig
	}
	if c.PlatformFeePercent < 0 || c.PlatformFeePercent > 100 {
		return ErrInvalidConfig
	}
	return nil
}

type RateConfigRepository interface {
	GetRateConfig() (*RateConfig, error)
	SetRateConfig(config *RateConfig) error
}

type RateConfigUsecase interface {
	GetRateConfig() (*RateConfig, error)
	SetRateConfig(config *RateConfig) error
}
