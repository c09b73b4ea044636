package usecase

import "github.com/LavaJover/shvark-revenue-service/internal/domain"

type DefaultRateConfigUsecase struct {
	RateRepo domain.RateConfigRepository
}

func NewDefaultRateConfigUsecase(rateRepo domain.RateConfigRepository) *DefaultRateConfigUsecase {
	return &DefaultRateConfigUsecase{RateRepo: rateRepo}
}

func (uc *DefaultRateConfigUsecase) GetRateConfig() (*domain.RateConfig, error) {
	return uc.RateRepo.GetRateConfig()
}

// SetRateConfig swaps the pricing singleton. The next attribution read
// anywhere in the system picks it up: revenue is derived, never stored,
// so the change is retroactive by construction.
func (uc *DefaultRateConfigUsecase) SetRateConfig(config *domain.RateConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}
	return uc.RateRepo.SetRateConfig(config)
}
