package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Default Values", func(t *testing.T) {
		cfg, err := LoadConfig()
		assert.NoError(t, err)
		assert.Equal(t, "local", cfg.AppEnv)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "./public/uploads", cfg.UploadDir)
	})

	t.Run("Environment Variables", func(t *testing.T) {
		os.Setenv("PORT", "9999")
		os.Setenv("JWT_SECRET", "super-secret")
		defer os.Unsetenv("PORT")
		defer os.Unsetenv("JWT_SECRET")

		cfg, err := LoadConfig()
		assert.NoError(t, err)
		assert.Equal(t, "9999", cfg.Port)
		assert.Equal(t, "super-secret", cfg.JWTSecret)
	})
}

func TestValidate(t *testing.T) {
	t.Run("Missing secret in production", func(t *testing.T) {
		cfg := Config{AppEnv: "production"}
		err := cfg.Validate()
		assert.Error(t, err)
	})

	t.Run("Missing secret locally falls back", func(t *testing.T) {
		cfg := Config{AppEnv: "local"}
		err := cfg.Validate()
		assert.NoError(t, err)
		assert.Equal(t, FallbackJWTSecret, cfg.JWTSecret)
	})

	t.Run("Explicit secret kept", func(t *testing.T) {
		cfg := Config{AppEnv: "production", JWTSecret: "configured"}
		err := cfg.Validate()
		assert.NoError(t, err)
		assert.Equal(t, "configured", cfg.JWTSecret)
	})
}
