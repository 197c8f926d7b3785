package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv(envOf(nil))

	assert.Equal(t, "development", cfg.GetAppEnv())
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, DefaultServerAddr, cfg.GetServerAddr())
	assert.Equal(t, DefaultWeb3FormsEndpoint, cfg.GetWeb3FormsEndpoint())
	assert.Equal(t, 10*time.Second, cfg.GetLeadSubmitTimeout())
	assert.Equal(t, 2*time.Hour, cfg.GetLeadWidgetTTL())
	assert.Equal(t, 10, cfg.GetRateLimitPerMinute())
	assert.Equal(t, "none", cfg.GetEmailProvider())
	assert.Equal(t, 587, cfg.GetSMTPPort())
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg := FromEnv(envOf(map[string]string{
		"APP_ENV":               "production",
		"SITE_ORIGIN":           "https://www.example.co.uk/",
		"WEB3FORMS_ACCESS_KEY":  "key-123",
		"LEAD_SUBMIT_TIMEOUT":   "3s",
		"LEAD_WIDGET_TTL":       "30m",
		"RATE_LIMIT_PER_MINUTE": "25",
		"EMAIL_PROVIDER":        "SMTP",
		"SMTP_PORT":             "2525",
	}))

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "https://www.example.co.uk", cfg.GetSiteOrigin())
	assert.Equal(t, "key-123", cfg.GetWeb3FormsAccessKey())
	assert.Equal(t, 3*time.Second, cfg.GetLeadSubmitTimeout())
	assert.Equal(t, 30*time.Minute, cfg.GetLeadWidgetTTL())
	assert.Equal(t, 25, cfg.GetRateLimitPerMinute())
	assert.Equal(t, "smtp", cfg.GetEmailProvider())
	assert.Equal(t, 2525, cfg.GetSMTPPort())
}

func TestFromEnv_MalformedValuesFallBack(t *testing.T) {
	cfg := FromEnv(envOf(map[string]string{
		"LEAD_SUBMIT_TIMEOUT":   "soon",
		"LEAD_WIDGET_TTL":       "-5m",
		"RATE_LIMIT_PER_MINUTE": "lots",
	}))

	assert.Equal(t, DefaultLeadSubmitTimeout, cfg.GetLeadSubmitTimeout())
	assert.Equal(t, DefaultLeadWidgetTTL, cfg.GetLeadWidgetTTL())
	assert.Equal(t, DefaultRateLimitPerMinute, cfg.GetRateLimitPerMinute())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name: "development without access key",
			env:  map[string]string{},
		},
		{
			name:    "production requires access key",
			env:     map[string]string{"APP_ENV": "production", "SESSION_SECRET": "s"},
			wantErr: "WEB3FORMS_ACCESS_KEY",
		},
		{
			name:    "production requires session secret",
			env:     map[string]string{"APP_ENV": "production", "WEB3FORMS_ACCESS_KEY": "k"},
			wantErr: "SESSION_SECRET",
		},
		{
			name:    "relative origin",
			env:     map[string]string{"SITE_ORIGIN": "example.com"},
			wantErr: "SITE_ORIGIN",
		},
		{
			name:    "unknown email provider",
			env:     map[string]string{"EMAIL_PROVIDER": "carrier-pigeon"},
			wantErr: "unknown EMAIL_PROVIDER",
		},
		{
			name: "complete production config",
			env: map[string]string{
				"APP_ENV":              "production",
				"WEB3FORMS_ACCESS_KEY": "k",
				"SESSION_SECRET":       "s",
				"SITE_ORIGIN":          "https://example.com",
				"EMAIL_PROVIDER":       "resend",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := FromEnv(envOf(tc.env)).Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
