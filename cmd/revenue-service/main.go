package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/LavaJover/shvark-revenue-service/internal/app/background"
	"github.com/LavaJover/shvark-revenue-service/internal/app/setup"
	"github.com/LavaJover/shvark-revenue-service/internal/delivery/http/handlers"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	deps, err := setup.InitializeDependencies()
	if err != nil {
		log.Fatalf("failed to init dependencies: %v", err)
	}
	cfg := deps.Config

	usecases := setup.InitializeUsecases(deps)

	// The service is unusable without its single operator account.
	if _, err := usecases.Tenant.EnsureOperator(cfg.Operator.DisplayName, cfg.Operator.Secret); err != nil {
		log.Fatalf("failed to ensure operator account: %v", err)
	}

	router := handlers.NewRouter(handlers.RouterHandlers{
		Tenant:       handlers.NewTenantHandler(usecases.Tenant, usecases.Attribution),
		Channel:      handlers.NewChannelHandler(usecases.Channel),
		Distribution: handlers.NewDistributionHandler(usecases.Distribution),
		Rate:         handlers.NewRateConfigHandler(usecases.Rate),
		Withdrawal:   handlers.NewWithdrawalHandler(usecases.Withdrawal),
		Import:       handlers.NewImportHandler(usecases.Import),
		Report:       handlers.NewReportHandler(usecases.Report),
	})

	if cfg.TrafficSimulator.Enabled {
		simulator := background.NewTrafficSimulator(
			deps.Repositories.Distributions,
			cfg.TrafficSimulator.Interval,
			cfg.TrafficSimulator.MaxViewsPerTick,
			deps.Metrics,
		)
		go simulator.Start(context.Background())
	}

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
