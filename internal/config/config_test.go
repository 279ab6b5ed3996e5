package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Environment:  "development",
		DatabaseName: "myjobs",
		JWTSecret:    defaultJWTSecret,
		CacheBackend: "memory",
		DigestHour:   6,
	}
}

func TestValidate(t *testing.T) {
	t.Run("development accepts default secret", func(t *testing.T) {
		assert.NoError(t, validate(validConfig()))
	})

	t.Run("production rejects default secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.Environment = "production"
		err := validate(cfg)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("missing database name", func(t *testing.T) {
		cfg := validConfig()
		cfg.DatabaseName = ""
		assert.Error(t, validate(cfg))
	})

	t.Run("unknown cache backend", func(t *testing.T) {
		cfg := validConfig()
		cfg.CacheBackend = "memcached"
		assert.Error(t, validate(cfg))
	})

	t.Run("digest hour out of range", func(t *testing.T) {
		cfg := validConfig()
		cfg.DigestHour = 24
		assert.Error(t, validate(cfg))
	})
}

func TestBuildDatabaseURL(t *testing.T) {
	cfg := &Config{
		DatabaseUser:     "u",
		DatabasePassword: "p",
		DatabaseHost:     "db",
		DatabasePort:     "5433",
		DatabaseName:     "myjobs",
		DatabaseSSLMode:  "disable",
	}
	assert.Equal(t, "postgres://u:p@db:5433/myjobs?sslmode=disable", buildDatabaseURL(cfg))
}

func TestEnvironmentHelpers(t *testing.T) {
	cfg := &Config{Environment: "production"}
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
}
