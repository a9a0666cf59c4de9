package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/umalmyha/ordering/internal/domain/customer"
	"github.com/umalmyha/ordering/internal/domain/loyalty"
	"github.com/umalmyha/ordering/internal/domain/money"
)

type MongoCfg struct {
	User        string `env:"MONGO_USER"`
	Password    string `env:"MONGO_PASSWORD"`
	Host        string `env:"MONGO_HOST" envDefault:"mongo-ordering"`
	Port        int    `env:"MONGO_PORT" envDefault:"27017"`
	MaxPoolSize int    `env:"MONGO_MAX_POOL_SIZE" envDefault:"100"`
}

type PostgresCfg struct {
	User        string `env:"POSTGRES_USER"`
	Password    string `env:"POSTGRES_PASSWORD"`
	Database    string `env:"POSTGRES_DB"`
	Host        string `env:"POSTGRES_HOST" envDefault:"pg-ordering"`
	SslMode     string `env:"POSTGRES_SLL_MODE" envDefault:"disable"`
	Port        int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PoolMaxConn int    `env:"POSTGRES_POOL_MAX_CONN" envDefault:"100"`
}

type RedisCfg struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"redis-ordering:6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// LoyaltyCfg allows varying the award policy per deployment instead of
// hardcoding it next to the calculation.
type LoyaltyCfg struct {
	BasePoints     int    `env:"LOYALTY_BASE_POINTS" envDefault:"5"`
	ExpectedAmount string `env:"LOYALTY_EXPECTED_AMOUNT" envDefault:"1000"`
}

func (c LoyaltyCfg) Policy() (loyalty.Policy, error) {
	basePoints, err := customer.NewLoyaltyPoints(c.BasePoints)
	if err != nil {
		return loyalty.Policy{}, fmt.Errorf("invalid loyalty base points - %w", err)
	}

	expectedAmount, err := money.New(c.ExpectedAmount)
	if err != nil {
		return loyalty.Policy{}, fmt.Errorf("invalid loyalty expected amount - %w", err)
	}

	return loyalty.Policy{BasePoints: basePoints, ExpectedAmount: expectedAmount}, nil
}

type Config struct {
	MongoCfg    MongoCfg
	PostgresCfg PostgresCfg
	RedisCfg    RedisCfg
	LoyaltyCfg  LoyaltyCfg
}

func Build() (Config, error) {
	var cfg Config
	opts := env.Options{RequiredIfNoDef: true}

	if err := env.Parse(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	if _, err := cfg.LoyaltyCfg.Policy(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
