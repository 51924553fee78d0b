package config

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setCredentials(t *testing.T) {
	t.Helper()
	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_SECRET", "rzp_test_secret")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setCredentials(t)
	t.Setenv("PORT", "5000")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "rzp_test_key", cfg.Razorpay.KeyID)
	assert.Equal(t, "rzp_test_secret", cfg.Razorpay.Secret)
	assert.Equal(t, "https://api.razorpay.com", cfg.Razorpay.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.Razorpay.Timeout)
	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 60*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadConfig_PortOverride(t *testing.T) {
	setCredentials(t)
	t.Setenv("PORT", "8081")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
}

func TestLoadConfig_PrefixedOverrides(t *testing.T) {
	setCredentials(t)
	t.Setenv("PORT", "5000")
	t.Setenv("INSTPRINT_SERVER__READ_TIMEOUT", "3s")
	t.Setenv("INSTPRINT_LOGGER__LEVEL", "debug")
	t.Setenv("INSTPRINT_CORS__ALLOWED_ORIGINS", "https://app.instprint.in,https://admin.instprint.in")
	t.Setenv("RAZORPAY_TIMEOUT", "10s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, []string{"https://app.instprint.in", "https://admin.instprint.in"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.Razorpay.Timeout)
}

func TestLoadConfig_MissingCredentials(t *testing.T) {
	tests := []struct {
		name   string
		keyID  string
		secret string
	}{
		{name: "missing key id", keyID: "", secret: "secret"},
		{name: "missing secret", keyID: "rzp_test_key", secret: ""},
		{name: "missing both", keyID: "", secret: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("RAZORPAY_KEY_ID", tt.keyID)
			t.Setenv("RAZORPAY_SECRET", tt.secret)

			cfg, err := LoadConfig()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}

func TestLoadConfig_ReportsErrorWithoutLogging(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_ID", "")
	t.Setenv("RAZORPAY_SECRET", "")

	r, w, err := os.Pipe()
	require.NoError(t, err)
	stderr := os.Stderr
	os.Stderr = w
	t.Cleanup(func() { os.Stderr = stderr })

	_, loadErr := LoadConfig()

	os.Stderr = stderr
	require.NoError(t, w.Close())
	written, err := io.ReadAll(r)
	require.NoError(t, err)

	require.Error(t, loadErr)
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, loadErr, &validationErrs)
	assert.Contains(t, loadErr.Error(), "KeyID")
	assert.Empty(t, written)
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	setCredentials(t)
	t.Setenv("PORT", "http")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoggerConfig_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := LoggerConfig{Level: "warn", Format: "text"}.newLogger(&buf)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.True(t, logger.Enabled(context.Background(), slog.LevelError))
}
