package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	return &Config{
		JWTSecret:             "0123456789abcdef0123456789abcdef",
		AccessTokenTTLMinutes: 30,
		Port:                  "8000",
		DBHost:                "localhost",
		DBPort:                "5432",
		DBUser:                "postgres",
		DBPassword:            "pass",
		DBName:                "inkwell",
		DBSSLMode:             "disable",
		Env:                   "development",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid development config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing port",
			mutate:  func(c *Config) { c.Port = "" },
			wantErr: "PORT is required",
		},
		{
			name:    "missing secret",
			mutate:  func(c *Config) { c.JWTSecret = "" },
			wantErr: "JWT_SECRET is required",
		},
		{
			name:    "non-positive token ttl",
			mutate:  func(c *Config) { c.AccessTokenTTLMinutes = 0 },
			wantErr: "ACCESS_TOKEN_TTL_MINUTES must be positive",
		},
		{
			name:   "short secret allowed outside production",
			mutate: func(c *Config) { c.JWTSecret = "short" },
		},
		{
			name: "short secret rejected in production",
			mutate: func(c *Config) {
				c.Env = "production"
				c.JWTSecret = "short"
				c.DBPassword = "a-strong-password"
				c.DBSSLMode = "require"
			},
			wantErr: "JWT_SECRET must be at least 32 characters in production",
		},
		{
			name: "default db password rejected in production",
			mutate: func(c *Config) {
				c.Env = "production"
				c.DBSSLMode = "require"
			},
			wantErr: "a strong DB_PASSWORD is required in production",
		},
		{
			name: "sslmode disable rejected in production",
			mutate: func(c *Config) {
				c.Env = "production"
				c.DBPassword = "a-strong-password"
			},
			wantErr: "DB_SSLMODE must not be 'disable' in production",
		},
		{
			name: "hardened production config passes",
			mutate: func(c *Config) {
				c.Env = "production"
				c.DBPassword = "a-strong-password"
				c.DBSSLMode = "require"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateSecret(t *testing.T) {
	first, err := generateSecret()
	require.NoError(t, err)
	second, err := generateSecret()
	require.NoError(t, err)

	// 32 bytes hex-encoded
	assert.Len(t, first, 64)
	assert.NotEqual(t, first, second)
}
