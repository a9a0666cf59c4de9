package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umalmyha/ordering/internal/domain/money"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("POSTGRES_USER", "ordering")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "ordering")
	t.Setenv("MONGO_USER", "ordering")
	t.Setenv("MONGO_PASSWORD", "secret")
}

func TestBuild(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Build()
	require.NoError(t, err)

	assert.Equal(t, "ordering", cfg.PostgresCfg.User)
	assert.Equal(t, 5432, cfg.PostgresCfg.Port)
	assert.Equal(t, "disable", cfg.PostgresCfg.SslMode)
	assert.Equal(t, 100, cfg.MongoCfg.MaxPoolSize)
	assert.Equal(t, "redis-ordering:6379", cfg.RedisCfg.Addr)
}

func TestBuildMissingRequired(t *testing.T) {
	t.Setenv("POSTGRES_USER", "")

	_, err := Build()
	assert.Error(t, err)
}

func TestLoyaltyPolicyDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Build()
	require.NoError(t, err)

	policy, err := cfg.LoyaltyCfg.Policy()
	require.NoError(t, err)
	assert.Equal(t, 5, policy.BasePoints.Value())
	assert.True(t, policy.ExpectedAmount.Equal(money.MustNew("1000")))
}

func TestLoyaltyPolicyInvalid(t *testing.T) {
	_, err := LoyaltyCfg{BasePoints: -1, ExpectedAmount: "1000"}.Policy()
	assert.Error(t, err)

	_, err = LoyaltyCfg{BasePoints: 5, ExpectedAmount: "lots"}.Policy()
	assert.Error(t, err)
}
