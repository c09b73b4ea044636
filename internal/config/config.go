package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type RevenueConfig struct {
	Env              string `yaml:"env"`
	HTTPServer       `yaml:"http_server"`
	RevenueDB        `yaml:"revenue_db"`
	LogConfig        `yaml:"log_config"`
	KafkaService     `yaml:"kafka-service"`
	Ledger           `yaml:"ledger"`
	TrafficSimulator `yaml:"traffic-simulator"`
	Operator         `yaml:"operator"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type RevenueDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    string `yaml:"port"`
}

// Ledger carries the pricing defaults used until the operator edits the
// rate config, plus the withdrawal minimum.
type Ledger struct {
	PricePerThousandViews float64 `yaml:"price_per_thousand_views" env-default:"0.03"`
	PlatformFeePercent    float64 `yaml:"platform_fee_percent" env-default:"30"`
	MinWithdrawal         float64 `yaml:"min_withdrawal" env-default:"10"`
}

type TrafficSimulator struct {
	Enabled         bool          `yaml:"enabled" env-default:"true"`
	Interval        time.Duration `yaml:"interval" env-default:"15s"`
	MaxViewsPerTick int64         `yaml:"max_views_per_tick" env-default:"500"`
}

type Operator struct {
	DisplayName string `yaml:"display_name" env-default:"operator"`
	Secret      string `yaml:"secret"`
}

func MustLoad() *RevenueConfig {

	// Processing env config variable and file
	configPath := os.Getenv("REVENUE_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("REVENUE_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg RevenueConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
