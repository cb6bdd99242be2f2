package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFrom merges the given configs through the builder machinery the same
// way GetStructuredConfig does, without touching process env or flags.
func buildFrom(t *testing.T, configs ...*StructuredConfig) (*StructuredConfig, error) {
	t.Helper()
	b := newConfigBuilder()
	b.configs = append(b.configs, configs...)
	return b.build()
}

func TestBuild_FirstSourceWins(t *testing.T) {
	// Arrange: env-like source first, json-like source second.
	envCfg := &StructuredConfig{
		App:     App{TokenSignKey: "env_key"},
		Storage: Storage{DB: DB{DSN: "postgres://env"}},
	}
	jsonCfg := &StructuredConfig{
		App:     App{TokenSignKey: "json_key", TokenIssuer: "json_issuer"},
		Storage: Storage{DB: DB{DSN: "postgres://json"}},
	}

	// Act
	cfg, err := buildFrom(t, envCfg, jsonCfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "env_key", cfg.App.TokenSignKey)
	assert.Equal(t, "postgres://env", cfg.Storage.DB.DSN)
	// json fills the gap env left
	assert.Equal(t, "json_issuer", cfg.App.TokenIssuer)
}

func TestBuild_DefaultsFillGaps(t *testing.T) {
	// Arrange
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App:     App{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/hdnotes"}},
	})
	b.withDefaults()

	// Act
	cfg, err := b.build()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "hd-notes", cfg.App.TokenIssuer)
	assert.Equal(t, 7*24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "localhost:3000", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Minute, cfg.Workers.SweepInterval)
}

func TestBuild_MissingTokenSignKey(t *testing.T) {
	// Arrange
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://localhost/hdnotes"}},
	})
	b.withDefaults()

	// Act
	_, err := b.build()

	// Assert
	require.ErrorIs(t, err, ErrMissingTokenSignKey)
}

func TestBuild_MissingDSN(t *testing.T) {
	// Arrange
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App: App{TokenSignKey: "secret"},
	})
	b.withDefaults()

	// Act
	_, err := b.build()

	// Assert
	require.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuildUnvalidated_SkipsServerValidation(t *testing.T) {
	// Arrange: no sign key, no DSN: invalid for the server, fine for the client.
	b := newConfigBuilder()
	b.withDefaults()

	// Act
	cfg, err := b.buildUnvalidated()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", cfg.Adapter.BaseURL)
}

func TestClientConfigValidate_MissingBaseURL(t *testing.T) {
	cfg := &ClientConfig{}

	err := cfg.validate()

	require.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}
