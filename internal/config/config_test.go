package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		APIBaseURL:   "http://localhost:5000/api",
		HTTPTimeout:  15,
		TokenStore:   "file",
		RedisURL:     "localhost:6379",
		SamplerRatio: 1.0,
		LogLevel:     "info",
		Env:          "development",
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		c := validConfig()
		assert.NoError(t, c.Validate())
	})

	t.Run("redis token store with url", func(t *testing.T) {
		t.Parallel()
		c := validConfig()
		c.TokenStore = "redis"
		assert.NoError(t, c.Validate())
	})

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			name:   "missing base url",
			mutate: func(c *Config) { c.APIBaseURL = "" },
			want:   "API_BASE_URL is required",
		},
		{
			name:   "relative base url",
			mutate: func(c *Config) { c.APIBaseURL = "/api/v1" },
			want:   "not an absolute URL",
		},
		{
			name:   "zero timeout",
			mutate: func(c *Config) { c.HTTPTimeout = 0 },
			want:   "HTTP_TIMEOUT_SECONDS must be positive",
		},
		{
			name:   "unknown token store",
			mutate: func(c *Config) { c.TokenStore = "keychain" },
			want:   "TOKEN_STORE must be",
		},
		{
			name: "redis token store without url",
			mutate: func(c *Config) {
				c.TokenStore = "redis"
				c.RedisURL = ""
			},
			want: "REDIS_URL is required",
		},
		{
			name:   "sampler ratio above one",
			mutate: func(c *Config) { c.SamplerRatio = 1.5 },
			want:   "SAMPLER_RATIO must be between 0 and 1",
		},
		{
			name:   "negative sampler ratio",
			mutate: func(c *Config) { c.SamplerRatio = -0.1 },
			want:   "SAMPLER_RATIO must be between 0 and 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := validConfig()
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	// LoadConfig reads the process environment through viper, so no t.Parallel.
	c, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "file", c.TokenStore)
	assert.Equal(t, 15, c.HTTPTimeout)
	assert.Equal(t, "stdout", c.TraceExporter)
	assert.False(t, c.CacheEnabled)
	assert.InDelta(t, 1.0, c.SamplerRatio, 0.0001)
}
