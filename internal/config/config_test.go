package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"development defaults", func(c *Config) {}, false},
		{"missing port", func(c *Config) { c.Port = "" }, true},
		{"missing db name", func(c *Config) { c.DBName = "" }, true},
		{"production with default password", func(c *Config) {
			c.Env = "production"
			c.DBSSLMode = "require"
		}, true},
		{"production with disabled ssl", func(c *Config) {
			c.Env = "production"
			c.DBPassword = "strong-password"
		}, true},
		{"production hardened", func(c *Config) {
			c.Env = "production"
			c.DBPassword = "strong-password"
			c.DBSSLMode = "verify-full"
		}, false},
		{"sample ratio out of range", func(c *Config) { c.TracingSampleRatio = 1.5 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{
				Port:               "8287",
				DBPassword:         "password",
				DBName:             "scam_reports",
				DBSSLMode:          "disable",
				RedisURL:           "localhost:6379",
				Env:                "development",
				TracingSampleRatio: 1.0,
			}
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_SSLModeNormalization(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer os.Unsetenv("DB_SSLMODE")
	defer viper.Reset()

	os.Setenv("APP_ENV", "development")
	os.Setenv("DB_SSLMODE", "  DISABLE  ")

	c, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "disable", c.DBSSLMode)
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer viper.Reset()

	c, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "8287", c.Port)
	assert.Equal(t, "scam_reports", c.DBName)
	assert.Equal(t, "localhost:6379", c.RedisURL)
	assert.False(t, c.IsProduction())
}
