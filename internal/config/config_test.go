package config_test

import (
	"testing"
	"time"

	"github.com/pedromlchaves/traveltime/internal/config"
	"github.com/stretchr/testify/assert"
)

func Test_MustLoadFromEnv(t *testing.T) {
	t.Setenv("TRAVELTIME_ENV", "local")
	t.Setenv("TRAVELTIME_INTERVAL", "10m")
	t.Setenv("TRAVELTIME_PROVIDER_KEY", "testAPIKey")
	t.Setenv("DB_HOST", "testHost")
	t.Setenv("DB_PORT", "12345")
	t.Setenv("DB_USERNAME", "admin")
	t.Setenv("DB_PASSWORD", "adminpass")
	t.Setenv("DB_NAME", "testName")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "testHost", cfg.Database.Host)
	assert.Equal(t, "12345", cfg.Database.Port)
	assert.Equal(t, "admin", cfg.Database.User)
	assert.Equal(t, "adminpass", cfg.Database.Password)
	assert.Equal(t, "testName", cfg.Database.Name)
	assert.Equal(t, 10*time.Minute, cfg.Interval)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "google", cfg.ProviderType)
	assert.Equal(t, "testAPIKey", cfg.APIKey)
	assert.Equal(t, 10, cfg.Workers)
	assert.Equal(t, 1, cfg.MaxAttempts)
}

func TestMustLoad_IntervalError(t *testing.T) {
	t.Setenv("TRAVELTIME_INTERVAL", "error_value")

	assert.PanicsWithValue(t, "failed to parse interval from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_PortError(t *testing.T) {
	t.Setenv("TRAVELTIME_PORT", "error_value")

	assert.PanicsWithValue(t, "failed to parse port for the HTTP server from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_WorkersError(t *testing.T) {
	t.Setenv("TRAVELTIME_WORKERS", "error_value")

	assert.PanicsWithValue(t, "failed to parse workers from configuration, must be an integer", func() {
		config.MustLoad()
	})
}

func TestMustLoad_MaxAttemptsError(t *testing.T) {
	t.Setenv("TRAVELTIME_MAX_ATTEMPTS", "error_value")

	assert.PanicsWithValue(t, "failed to parse max attempts from configuration, must be an integer", func() {
		config.MustLoad()
	})
}
