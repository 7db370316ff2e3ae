package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte(`"90m"`)))
	assert.Equal(t, 90*time.Minute, time.Duration(d))
}

func TestDuration_UnmarshalJSON_Invalid(t *testing.T) {
	var d Duration
	assert.Error(t, d.UnmarshalJSON([]byte(`"ninety minutes"`)))
	assert.Error(t, d.UnmarshalJSON([]byte(`42`)))
}

func TestParseJSON_FullFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"token_sign_key":       "sign",
			"token_issuer":         "issuer",
			"token_duration":       "24h",
			"reset_token_duration": "30m",
			"reset_token_hash_key": "reset",
		},
		"storage": map[string]any{"db": map[string]any{"dsn": "postgres://localhost/db"}},
		"server":  map[string]any{"http_address": ":5000", "request_timeout": "15s"},
		"mail": map[string]any{
			"host": "smtp.example.com", "port": 587,
			"user": "mailer", "password": "secret",
			"from": "noreply@example.com", "timeout": "5s",
		},
		"frontend": map[string]any{"base_url": "https://app.example.com"},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "sign", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 30*time.Minute, cfg.App.ResetTokenDuration)
	assert.Equal(t, "reset", cfg.App.ResetTokenHashKey)
	assert.Equal(t, ":5000", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://localhost/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "smtp.example.com", cfg.Mail.Host)
	assert.Equal(t, 587, cfg.Mail.Port)
	assert.Equal(t, "mailer", cfg.Mail.Username)
	assert.Equal(t, "secret", cfg.Mail.Password)
	assert.Equal(t, "noreply@example.com", cfg.Mail.From)
	assert.Equal(t, 5*time.Second, cfg.Mail.Timeout)
	assert.Equal(t, "https://app.example.com", cfg.Frontend.BaseURL)

	// the file never sets its own path
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON("/no/such/file.json")
	require.Error(t, err)
}

func TestParseJSON_MalformedFile(t *testing.T) {
	path := writeTempJSONConfig(t, "not-an-object")
	_, err := parseJSON(path)
	require.Error(t, err)
}
