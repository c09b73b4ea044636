package setup

import (
	"github.com/LavaJover/shvark-revenue-service/internal/usecase"
)

type Usecases struct {
	Tenant       *usecase.DefaultTenantUsecase
	Channel      *usecase.DefaultChannelUsecase
	Distribution *usecase.DefaultDistributionUsecase
	Rate         *usecase.DefaultRateConfigUsecase
	Attribution  *usecase.DefaultAttributionUsecase
	Withdrawal   *usecase.DefaultWithdrawalUsecase
	Import       *usecase.DefaultBatchImportUsecase
	Report       *usecase.DefaultReportUsecase
}

func InitializeUsecases(deps *Dependencies) *Usecases {
	attributionUsecase := usecase.NewDefaultAttributionUsecase(deps.TxManager)

	return &Usecases{
		Tenant:       usecase.NewDefaultTenantUsecase(deps.Repositories.Tenants),
		Channel:      usecase.NewDefaultChannelUsecase(deps.Repositories.Channels, deps.Repositories.Tenants),
		Distribution: usecase.NewDefaultDistributionUsecase(deps.Repositories.Distributions, deps.Repositories.Tenants),
		Rate:         usecase.NewDefaultRateConfigUsecase(deps.Repositories.Rates),
		Attribution:  attributionUsecase,
		Withdrawal: usecase.NewDefaultWithdrawalUsecase(
			deps.TxManager,
			deps.Repositories.Withdrawals,
			deps.Config.Ledger.MinWithdrawal,
			deps.Publisher,
			deps.EventLog,
			deps.Metrics,
		),
		Import: usecase.NewDefaultBatchImportUsecase(
			deps.TxManager,
			deps.Publisher,
			deps.EventLog,
			deps.Metrics,
		),
		Report: usecase.NewDefaultReportUsecase(attributionUsecase),
	}
}
